package commands

import (
	"context"
	"fmt"

	"inkwell/internal/application"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// CreateCommand creates a document, optionally under an idempotency key.
type CreateCommand struct {
	client ports.WikiClient
	dedupe ports.DedupeStore

	Title        string
	CollectionID string
	Text         string
	ParentID     string
	DedupeKey    string
}

// CreateResult is the created (or rediscovered) document. Deduplicated is
// true when the dedupe key matched a previous create and no request was
// sent to documents.create.
type CreateResult struct {
	Document     *domain.Document `json:"document"`
	Deduplicated bool             `json:"deduplicated"`
}

// NewCreateCommand creates a CreateCommand. dedupe may be nil when no
// dedupe key will be used.
func NewCreateCommand(client ports.WikiClient, dedupe ports.DedupeStore, title, collectionID string) *CreateCommand {
	return &CreateCommand{
		client:       client,
		dedupe:       dedupe,
		Title:        title,
		CollectionID: collectionID,
	}
}

// Validate checks the create input.
func (c *CreateCommand) Validate() error {
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	if err := application.ValidateRequired("collection-id", c.CollectionID); err != nil {
		return err
	}
	if c.DedupeKey != "" && c.dedupe == nil {
		return &application.ValidationError{Field: "dedupe-key", Message: "no dedupe store available"}
	}
	return nil
}

// Execute creates the document. With a non-empty dedupe key, at most one
// remote document is ever created per distinct key for the lifetime of
// the local dedupe store: a recorded key short-circuits into a fetch of
// the previously created document's current state.
func (c *CreateCommand) Execute(ctx context.Context) (*CreateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.DedupeKey != "" {
		docID, ok, err := c.dedupe.Lookup(c.DedupeKey)
		if err != nil {
			return nil, fmt.Errorf("dedupe lookup: %w", err)
		}
		if ok {
			doc, err := c.client.GetDocument(ctx, docID)
			if err != nil {
				return nil, fmt.Errorf("fetch deduplicated document %s: %w", docID, err)
			}
			return &CreateResult{Document: doc, Deduplicated: true}, nil
		}
	}

	doc, err := c.client.CreateDocument(ctx, ports.CreateDocumentOptions{
		Title:        c.Title,
		CollectionID: c.CollectionID,
		Text:         c.Text,
		ParentID:     c.ParentID,
	})
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	// Not transactional with the create: a crash right here leaves a
	// remote document with no local record, and an exact retry would
	// create a duplicate. Accepted limitation.
	if c.DedupeKey != "" {
		if err := c.dedupe.Record(c.DedupeKey, doc.ID); err != nil {
			return nil, fmt.Errorf("document %s created, but recording dedupe key failed: %w", doc.ID, err)
		}
	}

	return &CreateResult{Document: doc}, nil
}
