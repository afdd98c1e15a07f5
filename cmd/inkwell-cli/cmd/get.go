package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"inkwell/internal/adapters/browser"
	"inkwell/internal/application"
	"inkwell/internal/application/commands"
)

var (
	getID     string
	getFormat string
	getOpen   bool
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Fetch one document",
	Long: `Fetch a document by ID, given positionally or via --id. The default
output is the raw Markdown body, suitable for piping; --format json
emits the full document object.

Examples:
  inkwell-cli docs get doc_123 > runbook.md
  inkwell-cli docs get --id doc_123 --format json --json
  inkwell-cli docs get doc_123 --open`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		if getFormat != "markdown" && getFormat != "json" {
			return respond(cmd, nil, nil, started, &application.ValidationError{
				Field:   "format",
				Message: fmt.Sprintf("unknown format %q (want markdown or json)", getFormat),
			})
		}

		id := getID
		if id == "" {
			id = firstArg(args)
		}

		doc, err := commands.NewGetCommand(client, id).Execute(cmd.Context())
		if err != nil {
			return respond(cmd, nil, nil, started, err)
		}

		if getOpen && doc.URL != "" {
			if err := browser.NewOpener().Open(doc.URL); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "could not open browser: %v\n", err)
			}
		}

		if getFormat == "json" {
			return respond(cmd, doc, nil, started, nil)
		}
		return respond(cmd, doc.Text, nil, started, nil)
	},
}

func init() {
	getCmd.Flags().StringVar(&getID, "id", "", "document ID (alternative to the positional argument)")
	getCmd.Flags().StringVar(&getFormat, "format", "markdown", "output format: markdown or json")
	getCmd.Flags().BoolVar(&getOpen, "open", false, "also open the document in the browser")
	docsCmd.AddCommand(getCmd)
}
