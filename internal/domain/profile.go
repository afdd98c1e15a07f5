package domain

import "strings"

// DefaultTimeoutSeconds bounds a single API call when a profile does not
// set its own timeout.
const DefaultTimeoutSeconds = 30

// Profile is a named server configuration the CLI operates against.
// The credential for a profile lives in the credential store, never here.
type Profile struct {
	Name           string `json:"name"`
	BaseURL        string `json:"baseUrl"`
	TimeoutSeconds int    `json:"timeoutSeconds,omitempty"`
}

// Timeout returns the profile timeout in seconds, falling back to the default.
func (p Profile) Timeout() int {
	if p.TimeoutSeconds > 0 {
		return p.TimeoutSeconds
	}
	return DefaultTimeoutSeconds
}

// Config is the persisted profile map plus the active profile name.
// CurrentProfile may dangle (profile removed by hand); callers treat that
// as "not configured" rather than an invariant violation.
type Config struct {
	Profiles       map[string]Profile `json:"profiles,omitempty"`
	CurrentProfile string             `json:"currentProfile,omitempty"`
}

// Profile looks up a profile by name. An empty name selects the current
// profile.
func (c Config) Profile(name string) (Profile, bool) {
	if name == "" {
		name = c.CurrentProfile
	}
	if name == "" {
		return Profile{}, false
	}
	p, ok := c.Profiles[name]
	return p, ok
}

// SetProfile upserts a profile and makes it current.
func (c *Config) SetProfile(p Profile) {
	if c.Profiles == nil {
		c.Profiles = make(map[string]Profile)
	}
	c.Profiles[p.Name] = p
	c.CurrentProfile = p.Name
}

// NormalizeBaseURL strips trailing slashes so endpoint paths can be
// appended uniformly.
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}
