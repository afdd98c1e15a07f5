// Package output renders command results either as a single-line JSON
// envelope for scripting or as human-readable text. All diagnostics go
// to stderr; stdout carries results only.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"inkwell/internal/application"
	"inkwell/internal/domain"
)

// Envelope is the machine-readable result document. Exactly one of Data
// and Error is set.
type Envelope struct {
	OK      bool       `json:"ok"`
	Command string     `json:"command"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    Meta       `json:"meta"`
}

// ErrorBody carries a stable machine code plus a human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// Meta describes the invocation itself rather than its payload.
type Meta struct {
	DurationMs int64     `json:"durationMs"`
	Version    string    `json:"version"`
	Pagination *PageMeta `json:"pagination,omitempty"`
}

// PageMeta reports the window a listing covered. NextOffset is present
// only when the server says another page exists.
type PageMeta struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	NextOffset *int `json:"nextOffset,omitempty"`
}

func pageMeta(p *domain.Pagination) *PageMeta {
	if p == nil {
		return nil
	}
	m := &PageMeta{Limit: p.Limit, Offset: p.Offset}
	if p.NextPath != "" {
		next := p.Offset + p.Limit
		m.NextOffset = &next
	}
	return m
}

// Formatter writes results and failures in the selected mode.
type Formatter struct {
	JSON    bool
	Quiet   bool
	Version string

	out io.Writer
	err io.Writer
}

// New creates a Formatter writing results to out and diagnostics to errw.
func New(out, errw io.Writer, version string) *Formatter {
	return &Formatter{Version: version, out: out, err: errw}
}

// Result writes a successful command payload. Quiet suppresses it in
// both modes; exit codes already tell scripts what happened.
func (f *Formatter) Result(command string, data any, page *domain.Pagination, started time.Time) {
	if f.Quiet {
		return
	}
	if f.JSON {
		f.writeEnvelope(Envelope{
			OK:      true,
			Command: command,
			Data:    data,
			Meta:    f.meta(started, page),
		})
		return
	}
	renderText(f.out, data, page)
}

// Failure writes an error. Errors are never suppressed by quiet. In
// JSON mode the envelope still goes to stdout so a pipeline reads one
// document per invocation regardless of outcome.
func (f *Formatter) Failure(command string, err error, started time.Time) {
	code := application.ErrorCode(err)
	hint := application.ErrorHint(err)
	if f.JSON {
		f.writeEnvelope(Envelope{
			Command: command,
			Error:   &ErrorBody{Code: code, Message: err.Error(), Hint: hint},
			Meta:    f.meta(started, nil),
		})
		return
	}
	fmt.Fprintf(f.err, "error: %v\n", err)
	if hint != "" {
		fmt.Fprintf(f.err, "hint: %s\n", hint)
	}
}

func (f *Formatter) meta(started time.Time, page *domain.Pagination) Meta {
	return Meta{
		DurationMs: time.Since(started).Milliseconds(),
		Version:    f.Version,
		Pagination: pageMeta(page),
	}
}

func (f *Formatter) writeEnvelope(env Envelope) {
	enc := json.NewEncoder(f.out)
	if err := enc.Encode(env); err != nil {
		// A payload that cannot marshal is a programming error; report
		// it without losing the envelope contract.
		fallback := Envelope{
			Command: env.Command,
			Error:   &ErrorBody{Code: "unknown", Message: fmt.Sprintf("encode result: %v", err)},
			Meta:    env.Meta,
		}
		_ = enc.Encode(fallback)
	}
}
