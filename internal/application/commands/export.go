package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"inkwell/internal/application"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// exportPageSize is the fixed window used when paging through children.
const exportPageSize = 50

// ExportCommand writes a document, and with Subtree its descendants, to
// local markdown files.
type ExportCommand struct {
	client ports.WikiClient
	writer ports.ExportWriter

	ID        string
	OutputDir string
	Subtree   bool
}

// ExportResult lists what was written.
type ExportResult struct {
	Documents int      `json:"documents"`
	Files     []string `json:"files"`
}

// NewExportCommand creates an ExportCommand.
func NewExportCommand(client ports.WikiClient, writer ports.ExportWriter, id, outputDir string) *ExportCommand {
	return &ExportCommand{client: client, writer: writer, ID: id, OutputDir: outputDir}
}

// Validate checks the export input.
func (c *ExportCommand) Validate() error {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}
	if c.OutputDir == "" {
		return &application.ValidationError{Field: "output-dir", Message: "--output-dir is required"}
	}
	return nil
}

// workItem is one pending export: a document id and the directory its
// file goes into.
type workItem struct {
	id  string
	dir string
}

// Execute walks the tree iteratively, parent before children, children in
// the page order the server returned them. The server's parent/child
// graph is trusted to be acyclic, but a visited set guards against a
// malformed response looping the walk.
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &ExportResult{}
	visited := make(map[string]bool)
	queue := []workItem{{id: c.ID, dir: c.OutputDir}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		doc, err := c.client.GetDocument(ctx, item.id)
		if err != nil {
			return nil, fmt.Errorf("export document %s: %w", item.id, err)
		}

		path, err := c.writer.WriteDocument(item.dir, doc.Title, []byte(doc.Text))
		if err != nil {
			return nil, fmt.Errorf("export document %s: %w", item.id, err)
		}
		result.Documents++
		result.Files = append(result.Files, path)

		if !c.Subtree {
			continue
		}

		childDir := filepath.Join(item.dir, domain.SanitizeFilename(doc.Title))
		children, err := c.listChildren(ctx, doc)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			queue = append(queue, workItem{id: child.ID, dir: childDir})
		}
	}

	return result, nil
}

// listChildren pages through all direct children of doc within its
// collection, stopping on the first short page.
func (c *ExportCommand) listChildren(ctx context.Context, doc *domain.Document) ([]domain.Document, error) {
	var all []domain.Document
	for offset := 0; ; offset += exportPageSize {
		page, _, err := c.client.ListDocuments(ctx, ports.ListDocumentsOptions{
			CollectionID: doc.CollectionID,
			ParentID:     doc.ID,
			Limit:        exportPageSize,
			Offset:       offset,
		})
		if err != nil {
			return nil, fmt.Errorf("list children of %s: %w", doc.ID, err)
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			return all, nil
		}
	}
}
