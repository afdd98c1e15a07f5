package wikiapi

import (
	"context"
	"fmt"

	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// Logical endpoint names.
const (
	endpointCollectionsList = "collections.list"
	endpointDocumentsSearch = "documents.search"
	endpointDocumentsInfo   = "documents.info"
	endpointDocumentsCreate = "documents.create"
	endpointDocumentsUpdate = "documents.update"
	endpointDocumentsList   = "documents.list"
)

// ListCollections pages through the collections visible to the token.
func (c *Client) ListCollections(ctx context.Context, opts ports.ListOptions) ([]domain.Collection, *domain.Pagination, error) {
	params := map[string]any{
		"limit":  opts.Limit,
		"offset": opts.Offset,
	}
	var out []domain.Collection
	pag, err := c.post(ctx, endpointCollectionsList, params, &out)
	if err != nil {
		return nil, nil, fmt.Errorf("list collections: %w", err)
	}
	return out, pag, nil
}

// SearchDocuments runs a ranked full-text search.
func (c *Client) SearchDocuments(ctx context.Context, opts ports.SearchOptions) ([]domain.SearchResult, *domain.Pagination, error) {
	params := map[string]any{
		"query":  opts.Query,
		"limit":  opts.Limit,
		"offset": opts.Offset,
	}
	if opts.CollectionID != "" {
		params["collectionId"] = opts.CollectionID
	}
	if opts.ParentID != "" {
		params["parentDocumentId"] = opts.ParentID
	}
	if opts.IncludeArchived {
		params["includeArchived"] = true
	}
	var out []domain.SearchResult
	pag, err := c.post(ctx, endpointDocumentsSearch, params, &out)
	if err != nil {
		return nil, nil, fmt.Errorf("search documents: %w", err)
	}
	return out, pag, nil
}

// GetDocument fetches one document by id.
func (c *Client) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	params := map[string]any{"id": id}
	var out domain.Document
	if _, err := c.post(ctx, endpointDocumentsInfo, params, &out); err != nil {
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}
	return &out, nil
}

// CreateDocument creates and publishes a document.
func (c *Client) CreateDocument(ctx context.Context, opts ports.CreateDocumentOptions) (*domain.Document, error) {
	params := map[string]any{
		"title":        opts.Title,
		"collectionId": opts.CollectionID,
		"text":         opts.Text,
		"publish":      true,
	}
	if opts.ParentID != "" {
		params["parentDocumentId"] = opts.ParentID
	}
	var out domain.Document
	if _, err := c.post(ctx, endpointDocumentsCreate, params, &out); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return &out, nil
}

// UpdateDocument replaces a document's title and/or body.
func (c *Client) UpdateDocument(ctx context.Context, opts ports.UpdateDocumentOptions) (*domain.Document, error) {
	params := map[string]any{"id": opts.ID}
	if opts.Title != "" {
		params["title"] = opts.Title
	}
	if opts.Text != "" {
		params["text"] = opts.Text
	}
	var out domain.Document
	if _, err := c.post(ctx, endpointDocumentsUpdate, params, &out); err != nil {
		return nil, fmt.Errorf("update document %s: %w", opts.ID, err)
	}
	return &out, nil
}

// ListDocuments pages through documents, optionally below one parent.
func (c *Client) ListDocuments(ctx context.Context, opts ports.ListDocumentsOptions) ([]domain.Document, *domain.Pagination, error) {
	params := map[string]any{
		"limit":  opts.Limit,
		"offset": opts.Offset,
	}
	if opts.CollectionID != "" {
		params["collectionId"] = opts.CollectionID
	}
	if opts.ParentID != "" {
		params["parentDocumentId"] = opts.ParentID
	}
	var out []domain.Document
	pag, err := c.post(ctx, endpointDocumentsList, params, &out)
	if err != nil {
		return nil, nil, fmt.Errorf("list documents: %w", err)
	}
	return out, pag, nil
}
