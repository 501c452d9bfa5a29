// Package component holds the parsed representation of one generated
// Angular component and the deterministic validation battery that runs
// against it. Nothing in this package touches the network.
package component

import "fmt"

// Source is the three named code sections that together constitute one
// generation attempt. A section the parser could not locate is the empty
// string; the validator flags it, parsing never fails.
type Source struct {
	TS   string `json:"ts"`   // component logic (TypeScript)
	HTML string `json:"html"` // markup template
	CSS  string `json:"css"`  // styles
}

// Empty reports whether no section was recovered at all.
func (s Source) Empty() bool {
	return s.TS == "" && s.HTML == "" && s.CSS == ""
}

// Category identifies which validation check produced an error. Values are
// stable so the fixer prompt and tests can pattern-match on them.
type Category string

const (
	CategoryPresence          Category = "PRESENCE"
	CategoryTokenMissing      Category = "DESIGN_TOKEN"
	CategoryBracket           Category = "BRACKET"
	CategoryStructure         Category = "STRUCTURE"
	CategoryTagBalance        Category = "HTML"
	CategoryUnauthorizedColor Category = "UNAUTHORIZED_COLOR"
)

// ValidationError is one failed check: a category plus a human-readable
// description. Validation errors are values, never panics or Go errors
// propagated up the stack.
type ValidationError struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// Error renders the stable "[CATEGORY] message" form that is fed verbatim to
// the fixer prompt and printed to the user.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Category, e.Message)
}

// Messages renders a slice of validation errors in their stable form,
// preserving order.
func Messages(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}
