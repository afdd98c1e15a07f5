package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"inkwell/internal/application/commands"
)

var (
	collectionsLimit  int
	collectionsOffset int
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Work with collections",
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections",
	Long: `List the collections the token can see. Collection IDs are needed to
create documents and to narrow searches.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		list := commands.NewListCollectionsCommand(client)
		list.Limit = collectionsLimit
		list.Offset = collectionsOffset

		page, err := list.Execute(cmd.Context())
		if err != nil {
			return respond(cmd, nil, nil, started, err)
		}
		return respond(cmd, page, page.Pagination, started, nil)
	},
}

func init() {
	collectionsListCmd.Flags().IntVar(&collectionsLimit, "limit", 0, "maximum results per page (default 25, max 100)")
	collectionsListCmd.Flags().IntVar(&collectionsOffset, "offset", 0, "number of results to skip")
	collectionsCmd.AddCommand(collectionsListCmd)
	rootCmd.AddCommand(collectionsCmd)
}
