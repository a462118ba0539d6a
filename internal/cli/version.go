package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkboard/linkboard/internal/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "linkboard %s (commit: %s, built: %s, %s)\n",
			version.Version, version.Commit, version.BuildDate, version.GoVersion)
	},
}
