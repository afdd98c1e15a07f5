package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"inkwell/internal/application"
	"inkwell/internal/application/commands"
	"inkwell/internal/domain"
)

func TestFormatter_JSONResultIsOneLine(t *testing.T) {
	var out, errw bytes.Buffer
	f := New(&out, &errw, "1.2.3")
	f.JSON = true

	page := &domain.Pagination{Limit: 25, Offset: 0, NextPath: "/api/documents.search?offset=25"}
	f.Result("docs.search", &commands.SearchResultPage{}, page, time.Now())

	got := out.String()
	if strings.Count(got, "\n") != 1 || !strings.HasSuffix(got, "\n") {
		t.Fatalf("expected exactly one line, got %q", got)
	}
	if errw.Len() != 0 {
		t.Errorf("stderr should stay empty, got %q", errw.String())
	}

	var env Envelope
	if err := json.Unmarshal([]byte(got), &env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !env.OK || env.Command != "docs.search" || env.Error != nil {
		t.Errorf("envelope = %+v", env)
	}
	if env.Meta.Version != "1.2.3" {
		t.Errorf("version = %q", env.Meta.Version)
	}
	if env.Meta.Pagination == nil || env.Meta.Pagination.NextOffset == nil || *env.Meta.Pagination.NextOffset != 25 {
		t.Errorf("pagination = %+v", env.Meta.Pagination)
	}
}

func TestFormatter_JSONOmitsNextOffsetOnLastPage(t *testing.T) {
	var out bytes.Buffer
	f := New(&out, &bytes.Buffer{}, "dev")
	f.JSON = true

	f.Result("collections.list", &commands.CollectionPage{}, &domain.Pagination{Limit: 25}, time.Now())

	if strings.Contains(out.String(), "nextOffset") {
		t.Errorf("last page must not advertise a next offset: %s", out.String())
	}
}

func TestFormatter_JSONFailureGoesToStdout(t *testing.T) {
	var out, errw bytes.Buffer
	f := New(&out, &errw, "dev")
	f.JSON = true

	err := &application.RequestError{Method: "POST", Path: "/api/documents.info", Status: 404, Message: "document not found"}
	f.Failure("docs.get", err, time.Now())

	if errw.Len() != 0 {
		t.Errorf("stderr should stay empty in JSON mode, got %q", errw.String())
	}
	var env Envelope
	if err := json.Unmarshal(out.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if env.OK || env.Error == nil {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Error.Code != "not_found" {
		t.Errorf("code = %q, want not_found", env.Error.Code)
	}
	if env.Data != nil {
		t.Error("data and error are mutually exclusive")
	}
}

func TestFormatter_QuietSuppressesResultsNotErrors(t *testing.T) {
	var out, errw bytes.Buffer
	f := New(&out, &errw, "dev")
	f.Quiet = true

	f.Result("docs.get", "body", nil, time.Now())
	if out.Len() != 0 {
		t.Errorf("quiet result should print nothing, got %q", out.String())
	}

	f.Failure("docs.get", fmt.Errorf("lookup: %w", application.ErrNotFound), time.Now())
	if !strings.Contains(errw.String(), "error:") {
		t.Errorf("quiet must not swallow errors, stderr = %q", errw.String())
	}
}

func TestFormatter_TextFailureWritesHint(t *testing.T) {
	var out, errw bytes.Buffer
	f := New(&out, &errw, "dev")

	f.Failure("docs.search", fmt.Errorf("resolve: %w", application.ErrNotConfigured), time.Now())

	if out.Len() != 0 {
		t.Errorf("text errors belong on stderr, stdout = %q", out.String())
	}
	if !strings.Contains(errw.String(), "hint:") {
		t.Errorf("expected a hint, got %q", errw.String())
	}
}

func TestRenderText_StringPassesThroughVerbatim(t *testing.T) {
	var out bytes.Buffer
	f := New(&out, &bytes.Buffer{}, "dev")

	f.Result("docs.get", "# Heading\n\nbody text", nil, time.Now())

	if out.String() != "# Heading\n\nbody text\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestRenderText_SearchTable(t *testing.T) {
	var out bytes.Buffer
	f := New(&out, &bytes.Buffer{}, "dev")

	page := &commands.SearchResultPage{
		Results: []domain.SearchResult{
			{Snippet: "a line\nwith break", Document: domain.Document{ID: "doc_1", Title: "Runbook"}},
		},
	}
	f.Result("docs.search", page, &domain.Pagination{Limit: 25, Offset: 0, NextPath: "/next"}, time.Now())

	got := out.String()
	for _, want := range []string{"doc_1", "Runbook", "a line with break", "--offset 25"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderText_EmptySearch(t *testing.T) {
	var out bytes.Buffer
	f := New(&out, &bytes.Buffer{}, "dev")

	f.Result("docs.search", &commands.SearchResultPage{}, nil, time.Now())

	if !strings.Contains(out.String(), "no results") {
		t.Errorf("got %q", out.String())
	}
}

func TestRenderText_UnknownTypeFallsBackToJSON(t *testing.T) {
	var out bytes.Buffer
	f := New(&out, &bytes.Buffer{}, "dev")

	f.Result("docs.get", map[string]int{"n": 1}, nil, time.Now())

	if !strings.Contains(out.String(), "\"n\": 1") {
		t.Errorf("got %q", out.String())
	}
}
