package application

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateRequired checks that a flag value is non-empty after trimming.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("--%s is required", field),
		}
	}
	return nil
}

// ValidateBaseURL checks that a base URL parses and uses http or https.
func ValidateBaseURL(field, value string) error {
	if err := ValidateRequired(field, value); err != nil {
		return err
	}
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || u.Host == "" {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("not a valid URL: %s", value),
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("unsupported scheme %q (want http or https)", u.Scheme),
		}
	}
	return nil
}

// ClampLimit normalizes a page-size flag: zero picks the default, and
// values above max are capped.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
