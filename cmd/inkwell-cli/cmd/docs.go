package cmd

import (
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Work with wiki documents",
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
