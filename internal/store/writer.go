// Package store persists generation results to the output directory: the
// three component files on success, the last raw attempt plus the ordered
// error list on terminal failure.
package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pranavyk10/guided-component-architect/internal/component"
)

// Writer writes component files under a fixed output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a writer rooted at outputDir. The directory is created
// lazily on first save.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// OutputDir returns the directory the writer saves into.
func (w *Writer) OutputDir() string {
	return w.outputDir
}

// SaveComponent writes the three section files named by the component role
// and returns the saved paths keyed by extension.
func (w *Writer) SaveComponent(src component.Source, naming component.Naming) (map[string]string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	sections := []struct {
		ext, body string
	}{
		{"ts", src.TS},
		{"html", src.HTML},
		{"css", src.CSS},
	}

	paths := make(map[string]string, len(sections))
	for _, s := range sections {
		path := filepath.Join(w.outputDir, naming.FileName(s.ext))
		if err := os.WriteFile(path, []byte(s.body), 0644); err != nil {
			return nil, fmt.Errorf("failed to write file %s: %w", path, err)
		}
		paths[s.ext] = path
	}

	log.Printf("[store] wrote %d component files to %s", len(paths), w.outputDir)
	return paths, nil
}

// SaveFailed persists a terminally invalid attempt for inspection: the last
// sections under a .failed.txt name and the ordered validation errors next
// to it. Returns the saved paths keyed "failed" and "errors".
func (w *Writer) SaveFailed(src component.Source, errs []component.ValidationError, naming component.Naming) (map[string]string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "=== %s ===\n%s\n\n", naming.FileName("ts"), src.TS)
	fmt.Fprintf(&body, "=== %s ===\n%s\n\n", naming.FileName("html"), src.HTML)
	fmt.Fprintf(&body, "=== %s ===\n%s\n", naming.FileName("css"), src.CSS)

	failedPath := filepath.Join(w.outputDir, naming.Stem+".component.failed.txt")
	if err := os.WriteFile(failedPath, []byte(body.String()), 0644); err != nil {
		return nil, fmt.Errorf("failed to write raw attempt %s: %w", failedPath, err)
	}

	errorsPath := filepath.Join(w.outputDir, naming.Stem+".errors.txt")
	errText := strings.Join(component.Messages(errs), "\n") + "\n"
	if err := os.WriteFile(errorsPath, []byte(errText), 0644); err != nil {
		return nil, fmt.Errorf("failed to write error list %s: %w", errorsPath, err)
	}

	log.Printf("[store] saved failed attempt for review: %s", failedPath)
	return map[string]string{"failed": failedPath, "errors": errorsPath}, nil
}
