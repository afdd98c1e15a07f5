package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"inkwell/internal/application/commands"
	"inkwell/internal/domain"
)

// renderText writes a human-readable form of known payload types.
// Strings pass through verbatim so raw document bodies stay untouched;
// anything unrecognized falls back to indented JSON.
func renderText(w io.Writer, data any, page *domain.Pagination) {
	switch v := data.(type) {
	case nil:
	case string:
		fmt.Fprintln(w, v)
	case *commands.SearchResultPage:
		renderSearch(w, v)
	case *commands.CollectionPage:
		renderCollections(w, v)
	case *domain.Document:
		renderDocument(w, v)
	case *commands.CreateResult:
		renderCreate(w, v)
	case *commands.ExportResult:
		fmt.Fprintf(w, "exported %d document(s)\n", v.Documents)
		for _, f := range v.Files {
			fmt.Fprintln(w, " ", f)
		}
	case *commands.LoginResult:
		renderLogin(w, v)
	case *commands.StatusResult:
		renderStatus(w, v)
	case *commands.LogoutResult:
		fmt.Fprintf(w, "logged out of profile %q\n", v.Profile)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(data)
	}
	if page != nil && page.NextPath != "" {
		fmt.Fprintf(w, "more results: rerun with --offset %d\n", page.Offset+page.Limit)
	}
}

func renderSearch(w io.Writer, page *commands.SearchResultPage) {
	if len(page.Results) == 0 {
		fmt.Fprintln(w, "no results")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSNIPPET")
	for _, r := range page.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Document.ID, r.Document.Title, oneLine(r.Snippet))
	}
	tw.Flush()
}

func renderCollections(w io.Writer, page *commands.CollectionPage) {
	if len(page.Collections) == 0 {
		fmt.Fprintln(w, "no collections")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range page.Collections {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	tw.Flush()
}

func renderDocument(w io.Writer, doc *domain.Document) {
	fmt.Fprintf(w, "%s (%s)\n", doc.Title, doc.ID)
	if doc.URL != "" {
		fmt.Fprintln(w, doc.URL)
	}
	if doc.Text != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, doc.Text)
	}
}

func renderCreate(w io.Writer, result *commands.CreateResult) {
	if result.Deduplicated {
		fmt.Fprintf(w, "already created: %s (%s)\n", result.Document.Title, result.Document.ID)
		return
	}
	fmt.Fprintf(w, "created: %s (%s)\n", result.Document.Title, result.Document.ID)
}

func renderLogin(w io.Writer, result *commands.LoginResult) {
	fmt.Fprintf(w, "profile %q -> %s\n", result.Profile, result.BaseURL)
	switch {
	case result.Verified:
		fmt.Fprintln(w, "token verified")
	case result.Warning != "":
		fmt.Fprintln(w, result.Warning)
	}
}

func renderStatus(w io.Writer, result *commands.StatusResult) {
	if result.BaseURL == "" {
		fmt.Fprintln(w, "not configured")
		return
	}
	fmt.Fprintf(w, "profile: %s\n", result.Profile)
	fmt.Fprintf(w, "server: %s\n", result.BaseURL)
	fmt.Fprintf(w, "token: %s\n", result.TokenSource)
	if result.Connected {
		fmt.Fprintln(w, "connected")
	} else if result.Error != "" {
		fmt.Fprintf(w, "not connected: %s\n", result.Error)
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
