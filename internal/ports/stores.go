package ports

import "inkwell/internal/domain"

// CredentialStore keeps one opaque secret per profile name. Implementations
// must never persist secrets next to non-sensitive config. Any failure other
// than "not found" is fatal to the caller; absent credentials are reported
// through the application-level sentinel, not an empty string.
type CredentialStore interface {
	Get(profile string) (string, error)
	Set(profile, secret string) error
	Delete(profile string) error
}

// ConfigStore loads and saves the profile configuration document. Load
// returns a zero Config when the file is missing or unreadable as JSON;
// it never fails for those cases. Save creates parent directories as
// needed. Concurrent writers are last-write-wins.
type ConfigStore interface {
	Load() (domain.Config, error)
	Save(cfg domain.Config) error
}

// DedupeStore persists dedupe-key records across invocations. Record is
// write-once per key; recording an existing key is a no-op.
type DedupeStore interface {
	Lookup(key string) (documentID string, ok bool, err error)
	Record(key, documentID string) error
	Close() error
}

// ExportWriter materializes a document body as a markdown file under dir,
// overwriting any previous export of the same title. It returns the path
// written.
type ExportWriter interface {
	WriteDocument(dir, title string, body []byte) (string, error)
}
