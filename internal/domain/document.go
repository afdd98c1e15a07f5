package domain

import "time"

// Document represents a remote wiki document. The client never owns its
// lifecycle; instances are transient snapshots of server state.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Text         string    `json:"text,omitempty"`
	CollectionID string    `json:"collectionId"`
	ParentID     string    `json:"parentDocumentId,omitempty"`
	URL          string    `json:"url,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Collection represents a remote collection of documents.
type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// SearchResult is a single search hit with its ranking and snippet.
type SearchResult struct {
	Snippet  string   `json:"snippet"`
	Ranking  float64  `json:"rankingScore"`
	Document Document `json:"document"`
}

// Pagination describes the window a listing call covered and, when the
// server reports one, the path of the next page.
type Pagination struct {
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
	NextPath string `json:"nextPath,omitempty"`
}

// DedupeEntry records that a create bearing a dedupe key already produced
// a remote document. Entries are written once and never mutated.
type DedupeEntry struct {
	Key        string `json:"dedupeKey"`
	DocumentID string `json:"documentId"`
}
