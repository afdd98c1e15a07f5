// Package config resolves the effective settings for one process
// invocation. Environment variables are consulted exactly once, here;
// everything downstream receives an immutable Settings value.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inkwell/internal/application"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// Environment overrides, read only when the corresponding flag is absent.
const (
	EnvBaseURL   = "INKWELL_BASE_URL"
	EnvToken     = "INKWELL_API_TOKEN"
	EnvConfigDir = "INKWELL_CONFIG_DIR"
)

// Token sources, in resolution priority order.
const (
	TokenSourceFlag   = "flag"
	TokenSourceEnv    = "env"
	TokenSourceStored = "stored"
	TokenSourceNone   = "none"
)

// Dir returns the configuration directory, creating nothing.
func Dir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "inkwell"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "inkwell"), nil
}

// ConfigPath returns the profile config document path.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// CredentialsDir returns the directory holding per-profile secrets.
func CredentialsDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "credentials"), nil
}

// DedupePath returns the idempotency database path. It is independent of
// the config document so wiping config does not forget created documents.
func DedupePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dedupe.db"), nil
}

// Overrides are the per-invocation flag values that take precedence over
// stored configuration.
type Overrides struct {
	Profile        string
	BaseURL        string
	Token          string
	TimeoutSeconds int
}

// Settings is the effective configuration for one invocation.
type Settings struct {
	Profile     string
	BaseURL     string
	Token       string
	TokenSource string
	Timeout     time.Duration
}

// Resolve computes effective settings: flag > environment > stored profile.
// A missing base URL or token is not an error here; the API client fails
// fast on the first call that actually needs the base URL, and requests
// without a token are sent anyway so the server's 401 is the single source
// of auth failures.
func Resolve(o Overrides, cfg domain.Config, creds ports.CredentialStore) (Settings, error) {
	name := o.Profile
	if name == "" {
		name = cfg.CurrentProfile
	}
	prof, _ := cfg.Profile(name)

	s := Settings{Profile: name}

	switch {
	case o.BaseURL != "":
		s.BaseURL = domain.NormalizeBaseURL(o.BaseURL)
	case os.Getenv(EnvBaseURL) != "":
		s.BaseURL = domain.NormalizeBaseURL(os.Getenv(EnvBaseURL))
	default:
		s.BaseURL = domain.NormalizeBaseURL(prof.BaseURL)
	}

	switch {
	case o.Token != "":
		s.Token = o.Token
		s.TokenSource = TokenSourceFlag
	case os.Getenv(EnvToken) != "":
		s.Token = os.Getenv(EnvToken)
		s.TokenSource = TokenSourceEnv
	default:
		s.TokenSource = TokenSourceNone
		if name != "" && creds != nil {
			secret, err := creds.Get(name)
			switch {
			case err == nil:
				s.Token = secret
				s.TokenSource = TokenSourceStored
			case errors.Is(err, application.ErrCredentialNotFound):
				// no stored credential, proceed unauthenticated
			default:
				return Settings{}, fmt.Errorf("read credential for profile %q: %w", name, err)
			}
		}
	}

	seconds := o.TimeoutSeconds
	if seconds <= 0 {
		seconds = prof.Timeout()
	}
	s.Timeout = time.Duration(seconds) * time.Second

	return s, nil
}
