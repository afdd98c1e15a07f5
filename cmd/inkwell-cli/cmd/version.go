package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version string `json:"version"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()
		return respond(cmd, &versionInfo{Version: version}, nil, started, nil)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
