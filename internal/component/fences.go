package component

import (
	"regexp"
	"strings"
)

// Code-focused models wrap sections in markdown fences even when told not
// to, so section bodies are scrubbed before any check runs on them.
var (
	openFenceRe  = regexp.MustCompile("```[a-zA-Z]*\n?")
	closeFenceRe = regexp.MustCompile("(?m)^```\\s*$")
)

// StripFences removes markdown code fences from LLM output: ```lang openers
// anywhere and bare ``` closers on their own line.
func StripFences(text string) string {
	text = openFenceRe.ReplaceAllString(text, "")
	text = closeFenceRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
