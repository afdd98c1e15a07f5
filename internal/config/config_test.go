package config

import (
	"testing"
	"time"

	"inkwell/internal/application"
	"inkwell/internal/domain"
)

type fakeCreds struct {
	secrets map[string]string
	err     error
}

func (f *fakeCreds) Get(profile string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	s, ok := f.secrets[profile]
	if !ok {
		return "", application.ErrCredentialNotFound
	}
	return s, nil
}

func (f *fakeCreds) Set(profile, secret string) error { return nil }
func (f *fakeCreds) Delete(profile string) error      { return nil }

func storedConfig() domain.Config {
	cfg := domain.Config{}
	cfg.SetProfile(domain.Profile{
		Name:           "work",
		BaseURL:        "https://wiki.example.com/",
		TimeoutSeconds: 10,
	})
	return cfg
}

func TestResolveBaseURLPrecedence(t *testing.T) {
	cfg := storedConfig()
	creds := &fakeCreds{}

	s, err := Resolve(Overrides{}, cfg, creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseURL != "https://wiki.example.com" {
		t.Errorf("profile base URL = %q, want trailing slash stripped", s.BaseURL)
	}

	t.Setenv(EnvBaseURL, "https://env.example.com/")
	s, err = Resolve(Overrides{}, cfg, creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseURL != "https://env.example.com" {
		t.Errorf("env override = %q, want https://env.example.com", s.BaseURL)
	}

	s, err = Resolve(Overrides{BaseURL: "https://flag.example.com"}, cfg, creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseURL != "https://flag.example.com" {
		t.Errorf("flag override = %q, want https://flag.example.com", s.BaseURL)
	}
}

func TestResolveTokenPrecedence(t *testing.T) {
	cfg := storedConfig()
	creds := &fakeCreds{secrets: map[string]string{"work": "stored-secret"}}

	s, err := Resolve(Overrides{}, cfg, creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Token != "stored-secret" || s.TokenSource != TokenSourceStored {
		t.Errorf("got token %q from %q, want stored-secret from stored", s.Token, s.TokenSource)
	}

	t.Setenv(EnvToken, "env-secret")
	s, _ = Resolve(Overrides{}, cfg, creds)
	if s.Token != "env-secret" || s.TokenSource != TokenSourceEnv {
		t.Errorf("got token from %q, want env", s.TokenSource)
	}

	s, _ = Resolve(Overrides{Token: "flag-secret"}, cfg, creds)
	if s.Token != "flag-secret" || s.TokenSource != TokenSourceFlag {
		t.Errorf("got token from %q, want flag", s.TokenSource)
	}
}

func TestResolveNoCredential(t *testing.T) {
	s, err := Resolve(Overrides{}, storedConfig(), &fakeCreds{})
	if err != nil {
		t.Fatalf("missing credential should not fail resolution: %v", err)
	}
	if s.Token != "" || s.TokenSource != TokenSourceNone {
		t.Errorf("got %q/%q, want empty token from none", s.Token, s.TokenSource)
	}
}

func TestResolveCredentialStoreFailureIsFatal(t *testing.T) {
	creds := &fakeCreds{err: errFatal}
	if _, err := Resolve(Overrides{}, storedConfig(), creds); err == nil {
		t.Fatal("credential store failure should propagate")
	}
}

var errFatal = &fatalErr{}

type fatalErr struct{}

func (*fatalErr) Error() string { return "keychain locked" }

func TestResolveTimeout(t *testing.T) {
	cfg := storedConfig()

	s, _ := Resolve(Overrides{}, cfg, &fakeCreds{})
	if s.Timeout != 10*time.Second {
		t.Errorf("profile timeout = %v, want 10s", s.Timeout)
	}

	s, _ = Resolve(Overrides{TimeoutSeconds: 3}, cfg, &fakeCreds{})
	if s.Timeout != 3*time.Second {
		t.Errorf("flag timeout = %v, want 3s", s.Timeout)
	}

	s, _ = Resolve(Overrides{}, domain.Config{}, &fakeCreds{})
	if s.Timeout != time.Duration(domain.DefaultTimeoutSeconds)*time.Second {
		t.Errorf("default timeout = %v, want %ds", s.Timeout, domain.DefaultTimeoutSeconds)
	}
}

func TestResolveProfileSelection(t *testing.T) {
	cfg := storedConfig()
	cfg.Profiles["staging"] = domain.Profile{Name: "staging", BaseURL: "https://staging.example.com"}

	s, _ := Resolve(Overrides{Profile: "staging"}, cfg, &fakeCreds{})
	if s.Profile != "staging" || s.BaseURL != "https://staging.example.com" {
		t.Errorf("profile flag not honored: %+v", s)
	}
}

func TestDirOverride(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/inkwell-test")
	dir, err := Dir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/tmp/inkwell-test" {
		t.Errorf("Dir() = %q, want /tmp/inkwell-test", dir)
	}
}
