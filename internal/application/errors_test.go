package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"validation", &ValidationError{Field: "query", Message: "required"}, ExitValidation},
		{"not configured", ErrNotConfigured, ExitValidation},
		{"wrapped not configured", fmt.Errorf("resolve profile: %w", ErrNotConfigured), ExitValidation},
		{"401", &RequestError{Method: "POST", Path: "/api/documents.info", Status: 401, Reason: "Unauthorized"}, ExitAuth},
		{"403", &RequestError{Status: 403}, ExitAuth},
		{"404", &RequestError{Status: 404}, ExitNotFound},
		{"409", &RequestError{Status: 409}, ExitConflict},
		{"400 is unknown without classification", &RequestError{Status: 400}, ExitUnknown},
		{"retry exhausted", &RetryExhaustedError{Attempts: 4, Last: errors.New("dial tcp: refused")}, ExitRetryExhausted},
		{"cancelled", context.Canceled, ExitCancelled},
		{"wrapped cancelled", fmt.Errorf("search: %w", context.Canceled), ExitCancelled},
		{"plain error", errors.New("boom"), ExitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ValidationError{Field: "id", Message: "required"}, "validation_error"},
		{ErrNotConfigured, "not_configured"},
		{&RequestError{Status: 401}, "auth_error"},
		{&RequestError{Status: 404}, "not_found"},
		{&RequestError{Status: 409}, "conflict"},
		{&RetryExhaustedError{Attempts: 2, Last: errors.New("x")}, "retry_exhausted"},
		{context.Canceled, "cancelled"},
		{errors.New("boom"), "unknown"},
	}

	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.want {
			t.Errorf("ErrorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestRequestErrorClassification(t *testing.T) {
	// A wrapped RequestError still classifies through errors.Is.
	err := fmt.Errorf("get document: %w", &RequestError{Method: "POST", Path: "/api/documents.info", Status: 404, Reason: "Not Found"})
	if !errors.Is(err, ErrNotFound) {
		t.Error("wrapped 404 should match ErrNotFound")
	}
	if errors.Is(err, ErrConflict) {
		t.Error("404 should not match ErrConflict")
	}
}

func TestRetryExhaustedUnwrap(t *testing.T) {
	last := &RequestError{Status: 503, Reason: "Service Unavailable"}
	err := &RetryExhaustedError{Attempts: 4, Last: last}

	if !errors.Is(err, ErrRetryExhausted) {
		t.Error("should match ErrRetryExhausted")
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) || reqErr.Status != 503 {
		t.Error("last attempt error should be reachable via errors.As")
	}
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"https", "https://wiki.example.com", false},
		{"http", "http://localhost:3000", false},
		{"empty", "", true},
		{"no scheme", "wiki.example.com", true},
		{"bad scheme", "ftp://wiki.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseURL("base-url", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBaseURL(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	if got := ClampLimit(0, 25, 100); got != 25 {
		t.Errorf("default = %d, want 25", got)
	}
	if got := ClampLimit(500, 25, 100); got != 100 {
		t.Errorf("cap = %d, want 100", got)
	}
	if got := ClampLimit(10, 25, 100); got != 10 {
		t.Errorf("pass-through = %d, want 10", got)
	}
}
