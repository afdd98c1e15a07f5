package wikiapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"inkwell/internal/application"
)

// transportError marks a connection-level failure (dial, reset, timeout)
// as distinct from an HTTP response, so the retry loop can tell them apart.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// rateLimitedError is a 429 carrying the server's Retry-After, when given.
type rateLimitedError struct {
	*application.RequestError
	retryAfter time.Duration
}

func (e *rateLimitedError) Unwrap() error { return e.RequestError }

// retryable reports whether a failed attempt may be tried again: 429,
// 5xx, and transport-level errors qualify; other 4xx and local failures
// never do.
func retryable(err error) bool {
	var te *transportError
	if errors.As(err, &te) {
		return true
	}
	var re *application.RequestError
	if errors.As(err, &re) {
		return re.Status == http.StatusTooManyRequests || re.Status >= 500
	}
	return false
}

// parseRetryAfter reads a seconds-valued Retry-After header; zero when
// absent or unparsable.
func parseRetryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// extractMessage pulls a human-readable message out of an error response
// body: a "message" field, then an "error" field (string or object with
// "message"), else the truncated raw body.
func extractMessage(raw []byte) string {
	var probe struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil {
		if probe.Message != "" {
			return probe.Message
		}
		if len(probe.Error) > 0 {
			var s string
			if json.Unmarshal(probe.Error, &s) == nil && s != "" {
				return s
			}
			var obj struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(probe.Error, &obj) == nil && obj.Message != "" {
				return obj.Message
			}
		}
	}

	body := strings.TrimSpace(string(raw))
	if len(body) > maxErrorBody {
		return body[:maxErrorBody] + "…"
	}
	return body
}
