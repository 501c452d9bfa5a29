// Package tokens loads and exposes the immutable design-token set that
// generated components must use verbatim. The set is read once at process
// start and shared read-only by the validator and prompt construction.
package tokens

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Keys every token file must define.
const (
	KeyPrimaryColor   = "primary-color"
	KeySecondaryColor = "secondary-color"
	KeyBorderRadius   = "border-radius"
	KeyFontFamily     = "font-family"
	KeyCardPadding    = "card-padding"
	KeyCardShadow     = "card-shadow"
)

var requiredKeys = []string{
	KeyPrimaryColor,
	KeySecondaryColor,
	KeyBorderRadius,
	KeyFontFamily,
	KeyCardPadding,
	KeyCardShadow,
}

var hexColorRe = regexp.MustCompile(`#[0-9a-fA-F]{6}\b`)

// Set is an immutable flat mapping of token name to literal value.
// Construct it with Load or New; the zero value is empty but usable.
type Set struct {
	values map[string]string
}

// Load reads a token set from a JSON file and verifies the required keys.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read design tokens file: %w", err)
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return Set{}, fmt.Errorf("failed to parse design tokens file %s: %w", path, err)
	}

	return New(values)
}

// New builds a Set from an in-memory mapping, verifying the required keys.
// The input map is copied so later mutation cannot leak into the Set.
func New(values map[string]string) (Set, error) {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}

	var missing []string
	for _, key := range requiredKeys {
		if copied[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Set{}, fmt.Errorf("design tokens missing required keys: %s", strings.Join(missing, ", "))
	}

	return Set{values: copied}, nil
}

// Get returns the value for a token name, or "" when absent.
func (s Set) Get(name string) string {
	return s.values[name]
}

func (s Set) PrimaryColor() string   { return s.values[KeyPrimaryColor] }
func (s Set) SecondaryColor() string { return s.values[KeySecondaryColor] }
func (s Set) BorderRadius() string   { return s.values[KeyBorderRadius] }
func (s Set) FontFamily() string     { return s.values[KeyFontFamily] }
func (s Set) CardPadding() string    { return s.values[KeyCardPadding] }
func (s Set) CardShadow() string     { return s.values[KeyCardShadow] }

// AllowedColors returns the lowercase set of every #rrggbb literal appearing
// in any token value. Hex colors outside this set are unauthorized.
func (s Set) AllowedColors() map[string]bool {
	allowed := make(map[string]bool)
	for _, v := range s.values {
		for _, hex := range hexColorRe.FindAllString(v, -1) {
			allowed[strings.ToLower(hex)] = true
		}
	}
	return allowed
}

// Names returns the token names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.values))
	for k := range s.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the underlying mapping for serialization.
func (s Set) Map() map[string]string {
	copied := make(map[string]string, len(s.values))
	for k, v := range s.values {
		copied[k] = v
	}
	return copied
}

// JSON renders the token set as indented JSON, suitable for embedding in a
// prompt or returning from the API.
func (s Set) JSON() string {
	data, err := json.MarshalIndent(s.Map(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
