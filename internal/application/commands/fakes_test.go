package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"inkwell/internal/application"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// fakeWiki is an in-memory WikiClient that records calls.
type fakeWiki struct {
	docs        map[string]*domain.Document
	children    map[string][]domain.Document // parent id → children in order
	collections []domain.Collection
	searchHits  []domain.SearchResult

	createCalls int
	getCalls    int
	searchOpts  ports.SearchOptions
	failWith    error
}

func newFakeWiki() *fakeWiki {
	return &fakeWiki{
		docs:     make(map[string]*domain.Document),
		children: make(map[string][]domain.Document),
	}
}

func (f *fakeWiki) addDoc(id, title, collectionID, text string) *domain.Document {
	doc := &domain.Document{ID: id, Title: title, CollectionID: collectionID, Text: text}
	f.docs[id] = doc
	return doc
}

func (f *fakeWiki) ListCollections(ctx context.Context, opts ports.ListOptions) ([]domain.Collection, *domain.Pagination, error) {
	if f.failWith != nil {
		return nil, nil, f.failWith
	}
	return f.collections, &domain.Pagination{Limit: opts.Limit, Offset: opts.Offset}, nil
}

func (f *fakeWiki) SearchDocuments(ctx context.Context, opts ports.SearchOptions) ([]domain.SearchResult, *domain.Pagination, error) {
	if f.failWith != nil {
		return nil, nil, f.failWith
	}
	f.searchOpts = opts
	return f.searchHits, &domain.Pagination{Limit: opts.Limit, Offset: opts.Offset}, nil
}

func (f *fakeWiki) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.getCalls++
	doc, ok := f.docs[id]
	if !ok {
		return nil, &application.RequestError{
			Method: "POST", Path: "/api/documents.info", Status: 404, Reason: "Not Found",
		}
	}
	return doc, nil
}

func (f *fakeWiki) CreateDocument(ctx context.Context, opts ports.CreateDocumentOptions) (*domain.Document, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.createCalls++
	id := fmt.Sprintf("doc%d", f.createCalls)
	doc := &domain.Document{
		ID:           id,
		Title:        opts.Title,
		Text:         opts.Text,
		CollectionID: opts.CollectionID,
		ParentID:     opts.ParentID,
	}
	f.docs[id] = doc
	return doc, nil
}

func (f *fakeWiki) UpdateDocument(ctx context.Context, opts ports.UpdateDocumentOptions) (*domain.Document, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	doc, ok := f.docs[opts.ID]
	if !ok {
		return nil, &application.RequestError{Method: "POST", Path: "/api/documents.update", Status: 404, Reason: "Not Found"}
	}
	if opts.Title != "" {
		doc.Title = opts.Title
	}
	if opts.Text != "" {
		doc.Text = opts.Text
	}
	return doc, nil
}

func (f *fakeWiki) ListDocuments(ctx context.Context, opts ports.ListDocumentsOptions) ([]domain.Document, *domain.Pagination, error) {
	if f.failWith != nil {
		return nil, nil, f.failWith
	}
	kids := f.children[opts.ParentID]
	if opts.Offset >= len(kids) {
		return nil, nil, nil
	}
	end := opts.Offset + opts.Limit
	if end > len(kids) {
		end = len(kids)
	}
	return kids[opts.Offset:end], nil, nil
}

// fakeDedupe is an in-memory DedupeStore.
type fakeDedupe struct {
	entries map[string]string
	err     error
}

func newFakeDedupe() *fakeDedupe {
	return &fakeDedupe{entries: make(map[string]string)}
}

func (f *fakeDedupe) Lookup(key string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	id, ok := f.entries[key]
	return id, ok, nil
}

func (f *fakeDedupe) Record(key, documentID string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.entries[key]; !ok {
		f.entries[key] = documentID
	}
	return nil
}

func (f *fakeDedupe) Close() error { return nil }

// fakeWriter collects exports in memory, using the same filename rules as
// the real exporter.
type fakeWriter struct {
	files map[string]string // path → content
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{files: make(map[string]string)}
}

func (f *fakeWriter) WriteDocument(dir, title string, body []byte) (string, error) {
	path := filepath.Join(dir, domain.SanitizeFilename(title)+".md")
	f.files[path] = string(body)
	return path, nil
}

// fakeConfigStore holds a config in memory.
type fakeConfigStore struct {
	cfg   domain.Config
	saves int
}

func (f *fakeConfigStore) Load() (domain.Config, error) { return f.cfg, nil }

func (f *fakeConfigStore) Save(cfg domain.Config) error {
	f.cfg = cfg
	f.saves++
	return nil
}

// fakeCreds holds credentials in memory.
type fakeCreds struct {
	secrets map[string]string
}

func newFakeCreds() *fakeCreds {
	return &fakeCreds{secrets: make(map[string]string)}
}

func (f *fakeCreds) Get(profile string) (string, error) {
	s, ok := f.secrets[profile]
	if !ok {
		return "", application.ErrCredentialNotFound
	}
	return s, nil
}

func (f *fakeCreds) Set(profile, secret string) error {
	f.secrets[profile] = secret
	return nil
}

func (f *fakeCreds) Delete(profile string) error {
	delete(f.secrets, profile)
	return nil
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
