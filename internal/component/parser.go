package component

import (
	"regexp"
	"strings"
)

// Section markers the generator is instructed to emit:
//
//	=== login.component.ts ===
//	=== component.html ===
//
// The stem before ".component" is free text; only the extension selects the
// section role.
var sectionMarkerRe = regexp.MustCompile(`(?i)===\s*[\w.-]*component\.(ts|html|css)\s*===[ \t]*\n?`)

// Fenced-block fallback for output that ignored the marker format and came
// back as tagged markdown blocks instead.
var fencedBlockRe = regexp.MustCompile("(?s)```([a-zA-Z]+)[ \t]*\n(.*?)\n?```")

// ParseSections extracts the ts/html/css sections from raw LLM output.
// Marker-delimited sections are preferred; when no marker is present the
// parser falls back to language-tagged fenced blocks. A missing section is
// recorded as the empty string. Identical input always yields an identical
// Source.
func ParseSections(raw string) Source {
	var src Source

	matches := sectionMarkerRe.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return parseFencedBlocks(raw)
	}

	for i, m := range matches {
		ext := strings.ToLower(raw[m[2]:m[3]])
		start := m[1] // end of the marker line
		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := StripFences(raw[start:end])
		assignSection(&src, ext, body)
	}

	return src
}

func parseFencedBlocks(raw string) Source {
	var src Source
	for _, m := range fencedBlockRe.FindAllStringSubmatch(raw, -1) {
		lang := strings.ToLower(m[1])
		body := strings.TrimSpace(m[2])
		switch lang {
		case "ts", "typescript":
			assignSection(&src, "ts", body)
		case "html":
			assignSection(&src, "html", body)
		case "css":
			assignSection(&src, "css", body)
		}
	}
	return src
}

// assignSection keeps the first non-empty body seen for a role.
func assignSection(src *Source, ext, body string) {
	switch ext {
	case "ts":
		if src.TS == "" {
			src.TS = body
		}
	case "html":
		if src.HTML == "" {
			src.HTML = body
		}
	case "css":
		if src.CSS == "" {
			src.CSS = body
		}
	}
}
