package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden with -ldflags "-X github.com/abhisek/adjacent/cmd.version=...".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the adjacent version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "adjacent", version)
	},
}
