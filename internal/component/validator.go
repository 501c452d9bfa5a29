package component

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pranavyk10/guided-component-architect/internal/tokens"
)

// Options tunes the validation battery. The zero value is the strict
// checked-in design-system mode.
type Options struct {
	// AllowForeignColors disables the unauthorized-hex-color check, leaving
	// only the required-token presence checks (the lenient variant).
	AllowForeignColors bool
}

var hexColorRe = regexp.MustCompile(`#[0-9a-fA-F]{6}\b`)

// Validate runs the fixed, ordered check battery against one parsed
// component and the design-token set. Every failing check contributes its
// errors instead of short-circuiting, so the fixer sees the complete
// picture. Pure function: no LLM, no I/O, identical input gives identical
// output.
func Validate(src Source, set tokens.Set, opts Options) []ValidationError {
	var errs []ValidationError

	errs = append(errs, checkPresence(src)...)
	errs = append(errs, checkDesignTokens(src, set)...)
	errs = append(errs, checkBrackets(src.TS, "ts")...)
	errs = append(errs, checkBrackets(src.CSS, "css")...)
	errs = append(errs, checkStructure(src.TS)...)
	errs = append(errs, checkTagBalance(src.HTML)...)
	if !opts.AllowForeignColors {
		errs = append(errs, checkAuthorizedColors(src, set)...)
	}

	return errs
}

func checkPresence(src Source) []ValidationError {
	var errs []ValidationError
	for _, section := range []struct {
		name, body string
	}{
		{"component.ts", src.TS},
		{"component.html", src.HTML},
		{"component.css", src.CSS},
	} {
		if strings.TrimSpace(section.body) == "" {
			errs = append(errs, ValidationError{
				Category: CategoryPresence,
				Message:  fmt.Sprintf("Missing section: %s not found or empty.", section.name),
			})
		}
	}
	return errs
}

func checkDesignTokens(src Source, set tokens.Set) []ValidationError {
	var errs []ValidationError
	combined := src.CSS + "\n" + src.HTML

	if !containsFold(combined, set.PrimaryColor()) {
		errs = append(errs, ValidationError{
			Category: CategoryTokenMissing,
			Message:  fmt.Sprintf("Primary color %s must appear in the CSS or HTML section.", set.PrimaryColor()),
		})
	}
	if !containsFold(src.CSS, set.BorderRadius()) {
		errs = append(errs, ValidationError{
			Category: CategoryTokenMissing,
			Message:  fmt.Sprintf("Border radius %q must appear in the CSS section.", set.BorderRadius()),
		})
	}
	if !containsFold(src.CSS, set.FontFamily()) {
		errs = append(errs, ValidationError{
			Category: CategoryTokenMissing,
			Message:  fmt.Sprintf("Font family %q must appear in the CSS section.", set.FontFamily()),
		})
	}

	return errs
}

var bracketPairs = map[rune]rune{'}': '{', ')': '(', ']': '['}
var bracketClosers = map[rune]rune{'{': '}', '(': ')', '[': ']'}

// checkBrackets is a single-pass stack check over one code section: push on
// open, pop-and-compare on close. A close with no matching open, a close
// that does not pair with the top of the stack, and opens left at the end
// each produce one error.
func checkBrackets(code, label string) []ValidationError {
	var errs []ValidationError
	var stack []rune

	for i, ch := range code {
		switch ch {
		case '{', '(', '[':
			stack = append(stack, ch)
		case '}', ')', ']':
			if len(stack) == 0 {
				errs = append(errs, ValidationError{
					Category: CategoryBracket,
					Message:  fmt.Sprintf("%s: unexpected '%c' at position %d with no open bracket.", label, ch, i),
				})
				continue
			}
			top := stack[len(stack)-1]
			if top != bracketPairs[ch] {
				errs = append(errs, ValidationError{
					Category: CategoryBracket,
					Message:  fmt.Sprintf("%s: mismatched bracket at position %d: expected '%c', got '%c'.", label, i, bracketClosers[top], ch),
				})
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		unclosed := make([]string, len(stack))
		for i, ch := range stack {
			unclosed[i] = string(ch)
		}
		errs = append(errs, ValidationError{
			Category: CategoryBracket,
			Message:  fmt.Sprintf("%s: unclosed brackets: %s", label, strings.Join(unclosed, " ")),
		})
	}

	return errs
}

var exportClassRe = regexp.MustCompile(`export\s+class\s+\w+`)

func checkStructure(ts string) []ValidationError {
	var errs []ValidationError
	if !strings.Contains(ts, "@Component") {
		errs = append(errs, ValidationError{
			Category: CategoryStructure,
			Message:  "TypeScript section is missing the @Component decorator.",
		})
	}
	if !exportClassRe.MatchString(ts) {
		errs = append(errs, ValidationError{
			Category: CategoryStructure,
			Message:  "TypeScript section is missing an 'export class' declaration.",
		})
	}
	return errs
}

// Void elements never take a closing tag and are exempt from the balance
// check, as are explicitly self-closed tags.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

var tagRe = regexp.MustCompile(`<(/?)([a-zA-Z][a-zA-Z0-9-]*)([^>]*?)(/?)>`)

// checkTagBalance walks the markup with a tag stack: opening tags push,
// matching closing tags pop. On a mismatch the offending close is reported,
// then intervening unclosed tags are reported and discarded.
func checkTagBalance(html string) []ValidationError {
	var errs []ValidationError
	var stack []string

	for _, m := range tagRe.FindAllStringSubmatch(html, -1) {
		closing := m[1] == "/"
		name := strings.ToLower(m[2])
		selfClosed := m[4] == "/"

		if voidTags[name] || selfClosed {
			continue
		}
		if !closing {
			stack = append(stack, name)
			continue
		}

		if len(stack) == 0 {
			errs = append(errs, ValidationError{
				Category: CategoryTagBalance,
				Message:  fmt.Sprintf("Unexpected closing tag </%s> with no matching open tag.", name),
			})
			continue
		}
		if stack[len(stack)-1] == name {
			stack = stack[:len(stack)-1]
			continue
		}

		errs = append(errs, ValidationError{
			Category: CategoryTagBalance,
			Message:  fmt.Sprintf("Mismatched tag: expected </%s> but found </%s>.", stack[len(stack)-1], name),
		})
		for len(stack) > 0 && stack[len(stack)-1] != name {
			errs = append(errs, ValidationError{
				Category: CategoryTagBalance,
				Message:  fmt.Sprintf("Unclosed <%s> tag.", stack[len(stack)-1]),
			})
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			stack = stack[:len(stack)-1] // pop the tag the close actually matched
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		errs = append(errs, ValidationError{
			Category: CategoryTagBalance,
			Message:  fmt.Sprintf("Unclosed <%s> tag.", stack[i]),
		})
	}

	return errs
}

// checkAuthorizedColors flags every distinct hex color in the CSS/HTML that
// is not a member of the design-token set.
func checkAuthorizedColors(src Source, set tokens.Set) []ValidationError {
	var errs []ValidationError
	allowed := set.AllowedColors()
	combined := src.CSS + "\n" + src.HTML

	seen := map[string]bool{}
	for _, hex := range hexColorRe.FindAllString(combined, -1) {
		hex = strings.ToLower(hex)
		if allowed[hex] || seen[hex] {
			continue
		}
		seen[hex] = true
		errs = append(errs, ValidationError{
			Category: CategoryUnauthorizedColor,
			Message:  fmt.Sprintf("Unauthorized color %s is not part of the design system.", hex),
		})
	}

	return errs
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
