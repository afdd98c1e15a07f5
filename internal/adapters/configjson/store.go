// Package configjson persists the profile configuration as a single JSON
// document. Writes are atomic (tmp file, fsync, rename) so a crash never
// leaves a torn file; concurrent writers are last-write-wins by design.
package configjson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// Store reads and writes one config document at a fixed path.
type Store struct {
	path string
}

var _ ports.ConfigStore = (*Store)(nil)

// New creates a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored config. A missing or unparsable file yields a
// zero Config, never an error; the CLI must stay usable after a wiped or
// corrupted config.
func (s *Store) Load() (domain.Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Config{}, nil
	}
	var cfg domain.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, nil
	}
	return cfg, nil
}

// Save writes the config atomically, creating parent directories.
func (s *Store) Save(cfg domain.Config) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod config: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	success = true
	return nil
}
