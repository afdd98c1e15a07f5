package commands

import (
	"context"
	"fmt"

	"inkwell/internal/application"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// UpdateCommand replaces a document's title and/or body. The remote API
// only supports full replacement; Append is implemented client-side as
// read-modify-write (fetch current text, concatenate, send the whole
// body), so a concurrent writer between the read and the write loses.
type UpdateCommand struct {
	client ports.WikiClient

	ID     string
	Title  string
	Text   string
	Append bool
}

// NewUpdateCommand creates an UpdateCommand.
func NewUpdateCommand(client ports.WikiClient, id string) *UpdateCommand {
	return &UpdateCommand{client: client, ID: id}
}

// Validate checks the update input.
func (c *UpdateCommand) Validate() error {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}
	if c.Title == "" && c.Text == "" {
		return &application.ValidationError{
			Field:   "text",
			Message: "nothing to update: provide --title, --text, --file, or --stdin",
		}
	}
	if c.Append && c.Text == "" {
		return &application.ValidationError{
			Field:   "append",
			Message: "--append requires body text",
		}
	}
	return nil
}

// Execute performs the update.
func (c *UpdateCommand) Execute(ctx context.Context) (*domain.Document, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	text := c.Text
	if c.Append {
		current, err := c.client.GetDocument(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch document %s for append: %w", c.ID, err)
		}
		if current.Text != "" {
			text = current.Text + "\n\n" + c.Text
		}
	}

	doc, err := c.client.UpdateDocument(ctx, ports.UpdateDocumentOptions{
		ID:    c.ID,
		Title: c.Title,
		Text:  text,
	})
	if err != nil {
		return nil, fmt.Errorf("update document %s: %w", c.ID, err)
	}
	return doc, nil
}
