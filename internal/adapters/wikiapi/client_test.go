package wikiapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"inkwell/internal/application"
	"inkwell/internal/ports"
)

func testClient(t *testing.T, handler http.Handler, maxAttempts int) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL:     srv.URL,
		Token:       "secret-token",
		MaxAttempts: maxAttempts,
		BackoffBase: time.Millisecond,
	})
}

func TestGetDocument(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/documents.info" {
			t.Errorf("path = %s, want /api/documents.info", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"doc1","title":"Hello","collectionId":"col1"}}`))
	}), 1)

	doc, err := c.GetDocument(context.Background(), "doc1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID != "doc1" || doc.Title != "Hello" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestEmptyBaseURLFailsFast(t *testing.T) {
	c := New(Config{})
	_, err := c.GetDocument(context.Background(), "doc1")
	if !errors.Is(err, application.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestRetryOn429ThenSuccess(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"data":[]}`))
	}), 5)

	_, _, err := c.SearchDocuments(context.Background(), ports.SearchOptions{Query: "x", Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := calls.Load(); got != 4 {
		t.Errorf("calls = %d, want 4", got)
	}
}

func TestRetryBudgetExhausted(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}), 2)

	_, _, err := c.SearchDocuments(context.Background(), ports.SearchOptions{Query: "x"})
	if !errors.Is(err, application.ErrRetryExhausted) {
		t.Fatalf("err = %v, want ErrRetryExhausted", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestServerErrorIsRetried(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"data":{"id":"doc1","title":"T","collectionId":"c1"}}`))
	}), 3)

	if _, err := c.GetDocument(context.Background(), "doc1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestNotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"document not found"}`))
	}), 5)

	_, err := c.GetDocument(context.Background(), "missing123")
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1 (no retries)", got)
	}

	var reqErr *application.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatal("expected RequestError")
	}
	if reqErr.Status != 404 || reqErr.Message != "document not found" {
		t.Errorf("RequestError = %+v", reqErr)
	}
}

func TestAuthFailuresAreNotRetried(t *testing.T) {
	for _, status := range []int{400, 401, 403, 409} {
		var calls atomic.Int32
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(status)
		}), 5)

		_, err := c.GetDocument(context.Background(), "doc1")
		if err == nil {
			t.Fatalf("status %d: expected error", status)
		}
		if errors.Is(err, application.ErrRetryExhausted) {
			t.Errorf("status %d should not exhaust retries", status)
		}
		if got := calls.Load(); got != 1 {
			t.Errorf("status %d: calls = %d, want 1", status, got)
		}
	}
}

func TestCancellationStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cancel()
		w.WriteHeader(http.StatusServiceUnavailable)
	}), 10)

	_, err := c.GetDocument(ctx, "doc1")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestMissingTokenStillSendsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("unexpected Authorization header")
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"authentication required"}}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, MaxAttempts: 1})
	_, err := c.GetDocument(context.Background(), "doc1")
	if !errors.Is(err, application.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestPaginationPassthrough(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"c1","name":"Eng"}],"pagination":{"limit":1,"offset":0,"nextPath":"/api/collections.list?offset=1"}}`))
	}), 1)

	cols, pag, err := c.ListCollections(context.Background(), ports.ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cols) != 1 || cols[0].Name != "Eng" {
		t.Errorf("collections = %+v", cols)
	}
	if pag == nil || pag.Limit != 1 || pag.NextPath == "" {
		t.Errorf("pagination = %+v", pag)
	}
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"nope"}`, "nope"},
		{"error string", `{"error":"bad input"}`, "bad input"},
		{"error object", `{"error":{"message":"inner"}}`, "inner"},
		{"plain text", `gateway timeout`, "gateway timeout"},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("extractMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}

	long := make([]byte, maxErrorBody+100)
	for i := range long {
		long[i] = 'a'
	}
	got := extractMessage(long)
	if len(got) != maxErrorBody+len("…") {
		t.Errorf("long body not truncated: len = %d", len(got))
	}
}
