package commands

import (
	"context"
	"fmt"

	"inkwell/internal/application"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// GetCommand fetches a single document.
type GetCommand struct {
	client ports.WikiClient

	ID string
}

// NewGetCommand creates a GetCommand.
func NewGetCommand(client ports.WikiClient, id string) *GetCommand {
	return &GetCommand{client: client, ID: id}
}

// Validate checks the get input.
func (c *GetCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute fetches the document.
func (c *GetCommand) Execute(ctx context.Context) (*domain.Document, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	doc, err := c.client.GetDocument(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", c.ID, err)
	}
	return doc, nil
}
