// Package filesystem writes exported documents to disk.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// Exporter implements the ExportWriter port with plain files.
type Exporter struct{}

var _ ports.ExportWriter = (*Exporter)(nil)

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// WriteDocument writes body to <dir>/<sanitized title>.md, creating dir
// as needed and overwriting any previous export unconditionally.
func (e *Exporter) WriteDocument(dir, title string, body []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, domain.SanitizeFilename(title)+".md")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
