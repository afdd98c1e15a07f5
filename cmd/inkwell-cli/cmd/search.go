package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"inkwell/internal/application/commands"
)

var (
	searchQuery           string
	searchCollectionID    string
	searchParentID        string
	searchLimit           int
	searchOffset          int
	searchIncludeArchived bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over documents",
	Long: `Search documents by keyword, given positionally or via --query.
Results carry the document ID, title, and a match snippet, ranked by
relevance.

Examples:
  inkwell-cli docs search "etcd runbook"
  inkwell-cli docs search --query postmortem --collection-id col_ops --limit 5
  inkwell-cli docs search deploy --json | jq '.data.results[].document.id'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		query := searchQuery
		if query == "" {
			query = firstArg(args)
		}

		search := commands.NewSearchCommand(client, query)
		search.CollectionID = searchCollectionID
		search.ParentID = searchParentID
		search.Limit = searchLimit
		search.Offset = searchOffset
		search.IncludeArchived = searchIncludeArchived

		page, err := search.Execute(cmd.Context())
		if err != nil {
			return respond(cmd, nil, nil, started, err)
		}
		return respond(cmd, page, page.Pagination, started, nil)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchQuery, "query", "", "search query (alternative to the positional argument)")
	searchCmd.Flags().StringVar(&searchCollectionID, "collection-id", "", "restrict the search to one collection")
	searchCmd.Flags().StringVar(&searchParentID, "parent-id", "", "restrict the search to children of a document")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum results per page (default 25, max 100)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "number of results to skip")
	searchCmd.Flags().BoolVar(&searchIncludeArchived, "include-archived", false, "include archived documents")
	docsCmd.AddCommand(searchCmd)
}
