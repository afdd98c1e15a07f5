package ports

import (
	"context"

	"inkwell/internal/domain"
)

// ListOptions is the shared pagination window for listing calls.
type ListOptions struct {
	Limit  int
	Offset int
}

// SearchOptions narrows a document search.
type SearchOptions struct {
	Query           string
	CollectionID    string
	ParentID        string
	Limit           int
	Offset          int
	IncludeArchived bool
}

// CreateDocumentOptions carries the fields of a remote document create.
type CreateDocumentOptions struct {
	Title        string
	CollectionID string
	Text         string
	ParentID     string
}

// UpdateDocumentOptions carries a full-replacement document update. The
// remote API has no partial patch; empty Title or Text means "keep
// whatever the caller fetched and sent back".
type UpdateDocumentOptions struct {
	ID    string
	Title string
	Text  string
}

// ListDocumentsOptions pages through documents, optionally scoped to a
// collection and/or a parent document.
type ListDocumentsOptions struct {
	CollectionID string
	ParentID     string
	Limit        int
	Offset       int
}

// WikiClient is the authenticated API surface of the remote wiki.
type WikiClient interface {
	ListCollections(ctx context.Context, opts ListOptions) ([]domain.Collection, *domain.Pagination, error)
	SearchDocuments(ctx context.Context, opts SearchOptions) ([]domain.SearchResult, *domain.Pagination, error)
	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	CreateDocument(ctx context.Context, opts CreateDocumentOptions) (*domain.Document, error)
	UpdateDocument(ctx context.Context, opts UpdateDocumentOptions) (*domain.Document, error)
	ListDocuments(ctx context.Context, opts ListDocumentsOptions) ([]domain.Document, *domain.Pagination, error)
}
