package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"inkwell/internal/adapters/sqlite"
	"inkwell/internal/application/commands"
	"inkwell/internal/config"
	"inkwell/internal/ports"
)

var (
	createTitle        string
	createCollectionID string
	createText         string
	createFile         string
	createStdin        bool
	createParentID     string
	createDedupeKey    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a document",
	Long: `Create a document in a collection. The body comes from --text, --file,
or --stdin.

With --dedupe-key, rerunning the same create is safe: once a key has
produced a document, later runs with that key return it instead of
creating a duplicate. Keys are remembered locally per user.

Examples:
  inkwell-cli docs create --title "Release 1.4" --collection-id col_eng --file notes.md
  generate-report | inkwell-cli docs create --title "Daily report" --collection-id col_ops --stdin --dedupe-key report-2026-08-30`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		text, err := readBody(createText, createFile, createStdin)
		if err != nil {
			return respond(cmd, nil, nil, started, err)
		}

		var dedupe ports.DedupeStore
		if createDedupeKey != "" {
			path, err := config.DedupePath()
			if err != nil {
				return respond(cmd, nil, nil, started, err)
			}
			store, err := sqlite.Open(path)
			if err != nil {
				return respond(cmd, nil, nil, started, fmt.Errorf("open dedupe store: %w", err))
			}
			defer store.Close()
			dedupe = store
		}

		create := commands.NewCreateCommand(client, dedupe, createTitle, createCollectionID)
		create.Text = text
		create.ParentID = createParentID
		create.DedupeKey = createDedupeKey

		result, err := create.Execute(cmd.Context())
		return respond(cmd, result, nil, started, err)
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "document title")
	createCmd.Flags().StringVar(&createCollectionID, "collection-id", "", "collection to create the document in")
	createCmd.Flags().StringVar(&createText, "text", "", "Markdown body")
	createCmd.Flags().StringVar(&createFile, "file", "", "read the body from a file")
	createCmd.Flags().BoolVar(&createStdin, "stdin", false, "read the body from standard input")
	createCmd.Flags().StringVar(&createParentID, "parent-id", "", "parent document, for nested documents")
	createCmd.Flags().StringVar(&createDedupeKey, "dedupe-key", "", "idempotency key; repeats return the original document")
	docsCmd.AddCommand(createCmd)
}
