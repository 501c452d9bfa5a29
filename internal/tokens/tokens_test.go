package tokens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validValues() map[string]string {
	return map[string]string{
		KeyPrimaryColor:   "#1A73E8",
		KeySecondaryColor: "#FF6F61",
		KeyBorderRadius:   "12px",
		KeyFontFamily:     "Inter",
		KeyCardPadding:    "24px",
		KeyCardShadow:     "0 4px 12px rgba(0, 0, 0, 0.15)",
	}
}

func TestNew_RequiredKeys(t *testing.T) {
	_, err := New(validValues())
	require.NoError(t, err)

	incomplete := validValues()
	delete(incomplete, KeyFontFamily)
	_, err = New(incomplete)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyFontFamily)
}

func TestNew_CopiesInput(t *testing.T) {
	values := validValues()
	set, err := New(values)
	require.NoError(t, err)

	values[KeyPrimaryColor] = "#000000"
	assert.Equal(t, "#1A73E8", set.PrimaryColor())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design_tokens.json")
	content := `{
  "primary-color": "#1A73E8",
  "secondary-color": "#FF6F61",
  "border-radius": "12px",
  "font-family": "Inter",
  "card-padding": "24px",
  "card-shadow": "0 4px 12px rgba(0, 0, 0, 0.15)"
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#1A73E8", set.PrimaryColor())
	assert.Equal(t, "12px", set.BorderRadius())
	assert.Equal(t, "Inter", set.FontFamily())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestAllowedColors(t *testing.T) {
	set, err := New(validValues())
	require.NoError(t, err)

	allowed := set.AllowedColors()
	assert.True(t, allowed["#1a73e8"], "primary color should be allowed, lowercased")
	assert.True(t, allowed["#ff6f61"])
	assert.False(t, allowed["#ff0000"])
}

func TestJSONRoundTrip(t *testing.T) {
	set, err := New(validValues())
	require.NoError(t, err)

	out := set.JSON()
	assert.Contains(t, out, `"primary-color": "#1A73E8"`)
}
