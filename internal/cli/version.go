package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/google-marketing-solutions/vast-validator/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vastcheck %s (commit %s, built %s)\n",
			build.Version, build.Commit, build.BuildDate)
	},
}

func init() {
	versionCmd.GroupID = GroupUtility
	rootCmd.AddCommand(versionCmd)
}
