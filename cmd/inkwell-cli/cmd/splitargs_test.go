package cmd

import (
	"reflect"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{
			name: "plain words",
			line: "docs search etcd",
			want: []string{"docs", "search", "etcd"},
		},
		{
			name: "double quotes group words",
			line: `docs search "etcd runbook" --limit 5`,
			want: []string{"docs", "search", "etcd runbook", "--limit", "5"},
		},
		{
			name: "single quotes group words",
			line: `docs create --title 'Release: 1.4'`,
			want: []string{"docs", "create", "--title", "Release: 1.4"},
		},
		{
			name: "escaped quote",
			line: `docs search \"etcd\"`,
			want: []string{"docs", "search", `"etcd"`},
		},
		{
			name: "escaped space",
			line: `docs export doc_1 --output-dir my\ backup`,
			want: []string{"docs", "export", "doc_1", "--output-dir", "my backup"},
		},
		{
			name: "empty quoted argument survives",
			line: `docs update doc_1 --text ""`,
			want: []string{"docs", "update", "doc_1", "--text", ""},
		},
		{
			name: "collapses runs of whitespace",
			line: "docs   get \t doc_1",
			want: []string{"docs", "get", "doc_1"},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name:    "unterminated quote",
			line:    `docs search "etcd`,
			wantErr: true,
		},
		{
			name:    "trailing backslash",
			line:    `docs search etcd\`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitArgs(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitArgs(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}
