package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavyk10/guided-component-architect/internal/component"
)

var naming = component.Naming{Stem: "login-card", ClassName: "LoginCardComponent"}

func TestSaveComponent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out") // not pre-created
	w := NewWriter(dir)

	src := component.Source{TS: "export class X {}", HTML: "<div></div>", CSS: ".card {}"}
	paths, err := w.SaveComponent(src, naming)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	data, err := os.ReadFile(paths["ts"])
	require.NoError(t, err)
	assert.Equal(t, "export class X {}", string(data))

	assert.Equal(t, filepath.Join(dir, "login-card.component.html"), paths["html"])
	assert.Equal(t, filepath.Join(dir, "login-card.component.css"), paths["css"])
}

func TestSaveFailed(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	src := component.Source{TS: "broken {", HTML: "<div>", CSS: ""}
	errs := []component.ValidationError{
		{Category: component.CategoryBracket, Message: "ts: unclosed brackets: {"},
		{Category: component.CategoryTagBalance, Message: "Unclosed <div> tag."},
	}

	paths, err := w.SaveFailed(src, errs, naming)
	require.NoError(t, err)

	raw, err := os.ReadFile(paths["failed"])
	require.NoError(t, err)
	assert.Contains(t, string(raw), "broken {")
	assert.Contains(t, string(raw), "=== login-card.component.html ===")

	errText, err := os.ReadFile(paths["errors"])
	require.NoError(t, err)
	assert.Equal(t, "[BRACKET] ts: unclosed brackets: {\n[HTML] Unclosed <div> tag.\n", string(errText))
}
