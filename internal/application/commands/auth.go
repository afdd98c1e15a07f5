package commands

import (
	"context"
	"fmt"

	"inkwell/internal/application"
	"inkwell/internal/domain"
	"inkwell/internal/ports"
)

// DefaultProfileName is used when login is not given an explicit profile.
const DefaultProfileName = "default"

// LoginCommand stores a profile and its credential, then optionally
// verifies the pair against the server.
type LoginCommand struct {
	configs ports.ConfigStore
	creds   ports.CredentialStore
	// verify, when non-nil, is called after the profile is saved; a
	// failure downgrades to a warning so a flaky network cannot block
	// storing a correct token.
	verify func(ctx context.Context) error

	Profile        string
	BaseURL        string
	Token          string
	TimeoutSeconds int
}

// LoginResult reports what was stored.
type LoginResult struct {
	Profile  string `json:"profile"`
	BaseURL  string `json:"baseUrl"`
	Verified bool   `json:"verified"`
	Warning  string `json:"warning,omitempty"`
}

// NewLoginCommand creates a LoginCommand.
func NewLoginCommand(configs ports.ConfigStore, creds ports.CredentialStore, baseURL, token string) *LoginCommand {
	return &LoginCommand{configs: configs, creds: creds, BaseURL: baseURL, Token: token}
}

// WithVerify sets the post-save connectivity check.
func (c *LoginCommand) WithVerify(verify func(ctx context.Context) error) *LoginCommand {
	c.verify = verify
	return c
}

// Validate checks the login input.
func (c *LoginCommand) Validate() error {
	if err := application.ValidateBaseURL("base-url", c.BaseURL); err != nil {
		return err
	}
	return application.ValidateRequired("token", c.Token)
}

// Execute saves the profile and credential. The credential never touches
// the config document.
func (c *LoginCommand) Execute(ctx context.Context) (*LoginResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := c.Profile
	if name == "" {
		name = DefaultProfileName
	}

	cfg, err := c.configs.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.SetProfile(domain.Profile{
		Name:           name,
		BaseURL:        domain.NormalizeBaseURL(c.BaseURL),
		TimeoutSeconds: c.TimeoutSeconds,
	})
	if err := c.configs.Save(cfg); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}

	if err := c.creds.Set(name, c.Token); err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}

	result := &LoginResult{
		Profile: name,
		BaseURL: domain.NormalizeBaseURL(c.BaseURL),
	}
	if c.verify != nil {
		if err := c.verify(ctx); err != nil {
			result.Warning = fmt.Sprintf("saved, but could not verify against the server: %v", err)
		} else {
			result.Verified = true
		}
	}
	return result, nil
}

// StatusCommand reports the effective profile and whether the server
// accepts the resolved token.
type StatusCommand struct {
	// ping, when non-nil, performs a cheap authenticated call.
	ping func(ctx context.Context) error

	Profile     string
	BaseURL     string
	TokenSource string
}

// StatusResult is the auth status payload.
type StatusResult struct {
	Profile     string `json:"profile,omitempty"`
	BaseURL     string `json:"baseUrl,omitempty"`
	TokenSource string `json:"tokenSource"`
	Connected   bool   `json:"connected"`
	Error       string `json:"error,omitempty"`
}

// NewStatusCommand creates a StatusCommand from resolved settings.
func NewStatusCommand(profile, baseURL, tokenSource string, ping func(ctx context.Context) error) *StatusCommand {
	return &StatusCommand{Profile: profile, BaseURL: baseURL, TokenSource: tokenSource, ping: ping}
}

// Execute reports status. A failing ping is part of the result, not an
// error: "am I logged in" should exit 0 either way.
func (c *StatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	result := &StatusResult{
		Profile:     c.Profile,
		BaseURL:     c.BaseURL,
		TokenSource: c.TokenSource,
	}
	if c.BaseURL == "" {
		result.Error = "no profile configured"
		return result, nil
	}
	if c.ping != nil {
		if err := c.ping(ctx); err != nil {
			result.Error = err.Error()
		} else {
			result.Connected = true
		}
	}
	return result, nil
}

// LogoutCommand removes the stored credential. The profile itself stays
// in the config so a later login reuses its base URL.
type LogoutCommand struct {
	creds ports.CredentialStore

	Profile string
}

// LogoutResult names the profile whose credential was removed.
type LogoutResult struct {
	Profile string `json:"profile"`
}

// NewLogoutCommand creates a LogoutCommand.
func NewLogoutCommand(creds ports.CredentialStore, profile string) *LogoutCommand {
	return &LogoutCommand{creds: creds, Profile: profile}
}

// Validate checks that a profile is selected.
func (c *LogoutCommand) Validate() error {
	if c.Profile == "" {
		return fmt.Errorf("logout: %w", application.ErrNotConfigured)
	}
	return nil
}

// Execute deletes the credential.
func (c *LogoutCommand) Execute(ctx context.Context) (*LogoutResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.creds.Delete(c.Profile); err != nil {
		return nil, fmt.Errorf("delete credential: %w", err)
	}
	return &LogoutResult{Profile: c.Profile}, nil
}
