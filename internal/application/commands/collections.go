package commands

import (
	"context"
	"fmt"

	"inkwell/internal/application"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// ListCollectionsCommand pages through collections.
type ListCollectionsCommand struct {
	client ports.WikiClient

	Limit  int
	Offset int
}

// CollectionPage is one page of collections.
type CollectionPage struct {
	Collections []domain.Collection `json:"collections"`
	Pagination  *domain.Pagination  `json:"-"`
}

// NewListCollectionsCommand creates a ListCollectionsCommand.
func NewListCollectionsCommand(client ports.WikiClient) *ListCollectionsCommand {
	return &ListCollectionsCommand{client: client}
}

// Validate checks the listing window.
func (c *ListCollectionsCommand) Validate() error {
	if c.Offset < 0 {
		return &application.ValidationError{Field: "offset", Message: "must not be negative"}
	}
	return nil
}

// Execute lists collections.
func (c *ListCollectionsCommand) Execute(ctx context.Context) (*CollectionPage, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	cols, pag, err := c.client.ListCollections(ctx, ports.ListOptions{
		Limit:  application.ClampLimit(c.Limit, DefaultSearchLimit, MaxSearchLimit),
		Offset: c.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return &CollectionPage{Collections: cols, Pagination: pag}, nil
}
