// Package sanitize performs prompt-injection mitigation on raw user input
// before it reaches any LLM prompt.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxPromptLen caps the sanitized description length in runes.
const MaxPromptLen = 500

// RedactionMarker replaces each matched injection phrase.
const RedactionMarker = "[REDACTED]"

// Known injection trigger phrases, matched case-insensitively as substrings.
var injectionPhrases = []string{
	"ignore previous",
	"ignore above",
	"disregard all",
	"forget your instructions",
	"you are now",
	"act as",
	"system:",
	"assistant:",
	"new instruction",
	"override",
	"jailbreak",
}

// Clean scrubs injection phrases from input and truncates the result.
// Each redaction and the truncation (if any) produce one warning string for
// UI surfacing. Clean never fails; empty input yields empty output.
func Clean(input string) (string, []string) {
	cleaned := strings.TrimSpace(input)
	var warnings []string

	for _, phrase := range injectionPhrases {
		lower := strings.ToLower(cleaned)
		if !strings.Contains(lower, phrase) {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("Blocked suspicious phrase: %q", phrase))
		cleaned = replaceFold(cleaned, phrase, RedactionMarker)
	}

	if runes := []rune(cleaned); len(runes) > MaxPromptLen {
		cleaned = string(runes[:MaxPromptLen])
		warnings = append(warnings, fmt.Sprintf("Prompt truncated to %d characters.", MaxPromptLen))
	}

	return strings.TrimSpace(cleaned), warnings
}

// replaceFold replaces every case-insensitive occurrence of phrase in s.
func replaceFold(s, phrase, replacement string) string {
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(phrase))
	return re.ReplaceAllLiteralString(s, replacement)
}

var nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "with": true, "and": true,
	"for": true, "of": true, "in": true, "on": true, "at": true, "to": true,
}

// PromptToKebab derives a kebab-case component name from the cleaned
// description, keeping at most four significant words.
func PromptToKebab(prompt string) string {
	words := strings.Fields(strings.ToLower(nonAlnumRe.ReplaceAllString(prompt, "")))
	var kept []string
	for _, w := range words {
		if stopWords[w] {
			continue
		}
		kept = append(kept, w)
		if len(kept) == 4 {
			break
		}
	}
	if len(kept) == 0 {
		return "app-component"
	}
	return strings.Join(kept, "-")
}

// KebabToClass converts a kebab-case name to the PascalCase Angular class
// name, e.g. "login-card" -> "LoginCardComponent".
func KebabToClass(kebab string) string {
	var b strings.Builder
	for _, word := range strings.Split(kebab, "-") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	b.WriteString("Component")
	return b.String()
}
