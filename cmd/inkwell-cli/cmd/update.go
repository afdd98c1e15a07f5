package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"inkwell/internal/application/commands"
)

var (
	updateID     string
	updateTitle  string
	updateText   string
	updateFile   string
	updateStdin  bool
	updateAppend bool
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a document's title or body",
	Long: `Update a document, identified positionally or via --id. A given body
fully replaces the current one unless --append is set, which fetches
the current body and adds the new text after it.

Examples:
  inkwell-cli docs update doc_123 --title "Runbook (archived)"
  inkwell-cli docs update --id doc_123 --file runbook.md
  date | inkwell-cli docs update doc_123 --stdin --append`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		text, err := readBody(updateText, updateFile, updateStdin)
		if err != nil {
			return respond(cmd, nil, nil, started, err)
		}

		id := updateID
		if id == "" {
			id = firstArg(args)
		}

		update := commands.NewUpdateCommand(client, id)
		update.Title = updateTitle
		update.Text = text
		update.Append = updateAppend

		doc, err := update.Execute(cmd.Context())
		return respond(cmd, doc, nil, started, err)
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateID, "id", "", "document ID (alternative to the positional argument)")
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateText, "text", "", "new Markdown body")
	updateCmd.Flags().StringVar(&updateFile, "file", "", "read the new body from a file")
	updateCmd.Flags().BoolVar(&updateStdin, "stdin", false, "read the new body from standard input")
	updateCmd.Flags().BoolVar(&updateAppend, "append", false, "append to the current body instead of replacing it")
	docsCmd.AddCommand(updateCmd)
}
