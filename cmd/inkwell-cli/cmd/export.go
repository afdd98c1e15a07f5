package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"inkwell/internal/adapters/filesystem"
	"inkwell/internal/application/commands"
)

var (
	exportOutputDir string
	exportSubtree   bool
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export documents to Markdown files",
	Long: `Export a document to a local Markdown file named after its title.
With --subtree, child documents are exported too, mirroring the wiki's
nesting as directories.

Examples:
  inkwell-cli docs export doc_123 --output-dir ./backup
  inkwell-cli docs export doc_123 --subtree --output-dir ./backup`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		export := commands.NewExportCommand(client, filesystem.NewExporter(), firstArg(args), exportOutputDir)
		export.Subtree = exportSubtree

		result, err := export.Execute(cmd.Context())
		return respond(cmd, result, nil, started, err)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", ".", "directory to write files into")
	exportCmd.Flags().BoolVar(&exportSubtree, "subtree", false, "also export all nested child documents")
	docsCmd.AddCommand(exportCmd)
}
