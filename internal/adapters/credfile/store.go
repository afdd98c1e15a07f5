// Package credfile is the file-backed credential store: one 0600 file
// per profile inside a 0700 directory. It implements the CredentialStore
// port; an OS-keychain implementation can replace it without touching
// callers.
package credfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inkwell/internal/application"
	"inkwell/internal/ports"
)

// Store keeps secrets under dir, keyed by profile name.
type Store struct {
	dir string
}

var _ ports.CredentialStore = (*Store)(nil)

// New creates a store rooted at dir. The directory is created lazily on
// the first Set.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Get returns the secret for a profile, or ErrCredentialNotFound.
func (s *Store) Get(profile string) (string, error) {
	path, err := s.path(profile)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", application.ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Set stores the secret for a profile with owner-only permissions.
func (s *Store) Set(profile, secret string) error {
	path, err := s.path(profile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(secret+"\n"), 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

// Delete removes a profile's secret. Deleting an absent credential is not
// an error.
func (s *Store) Delete(profile string) error {
	path, err := s.path(profile)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

// path validates the profile name and returns its secret file. Names that
// would escape the store directory are rejected.
func (s *Store) path(profile string) (string, error) {
	if profile == "" || strings.ContainsAny(profile, `/\`) || profile == "." || profile == ".." {
		return "", fmt.Errorf("invalid profile name %q", profile)
	}
	return filepath.Join(s.dir, profile+".token"), nil
}
