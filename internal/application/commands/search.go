// Package commands implements one command object per user-facing
// operation. Each command validates its input, then executes against the
// ports it was constructed with; classification of failures happens at
// the adapter boundary and is only wrapped with domain context here.
package commands

import (
	"context"
	"fmt"

	"inkwell/internal/application"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// Search page-size bounds.
const (
	DefaultSearchLimit = 25
	MaxSearchLimit     = 100
)

// SearchCommand runs a ranked document search.
type SearchCommand struct {
	client ports.WikiClient

	Query           string
	CollectionID    string
	ParentID        string
	Limit           int
	Offset          int
	IncludeArchived bool
}

// SearchResultPage is a page of search hits.
type SearchResultPage struct {
	Results    []domain.SearchResult `json:"results"`
	Pagination *domain.Pagination    `json:"-"`
}

// NewSearchCommand creates a SearchCommand.
func NewSearchCommand(client ports.WikiClient, query string) *SearchCommand {
	return &SearchCommand{client: client, Query: query}
}

// Validate checks the search input.
func (c *SearchCommand) Validate() error {
	if err := application.ValidateRequired("query", c.Query); err != nil {
		return err
	}
	if c.Offset < 0 {
		return &application.ValidationError{Field: "offset", Message: "must not be negative"}
	}
	return nil
}

// Execute runs the search.
func (c *SearchCommand) Execute(ctx context.Context) (*SearchResultPage, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	results, pag, err := c.client.SearchDocuments(ctx, ports.SearchOptions{
		Query:           c.Query,
		CollectionID:    c.CollectionID,
		ParentID:        c.ParentID,
		Limit:           application.ClampLimit(c.Limit, DefaultSearchLimit, MaxSearchLimit),
		Offset:          c.Offset,
		IncludeArchived: c.IncludeArchived,
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", c.Query, err)
	}

	return &SearchResultPage{Results: results, Pagination: pag}, nil
}
