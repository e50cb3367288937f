// Package cli provides the Cobra-based command surface for vastcheck: the
// check and batch validation commands plus the rules and version utilities.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupValidation = "validation"
	GroupUtility    = "utility"
)

var rootCmd = &cobra.Command{
	Use:   "vastcheck",
	Short: "Validate VAST ad-request parameters",
	Long: `vastcheck validates the query parameters of a VAST ad-request URL
against the parameter rules for a delivery context (web, app, ctv, audio
or doh), with an optional stricter programmatic profile.`,
	Example: `  # Validate a web request
  vastcheck check -i web "https://pubads.g.doubleclick.net/gampad/ads?env=vp&..."

  # Programmatic profile, URL-decoded values, JSON output
  vastcheck check -i ctv -p -d -j "https://..."

  # Validate a file of request URLs
  vastcheck batch -i app requests.txt

  # Inspect the rule set for a context
  vastcheck rules web`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports any error that has not already
// been surfaced by the command itself.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var ee *exitError
		if errors.As(err, &ee) && ee.err == nil {
			return err // the command already printed its findings
		}
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupValidation, Title: "Validation:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupUtility, Title: "Utilities:"})
	rootCmd.SetHelpCommandGroupID(GroupUtility)
	rootCmd.SetCompletionCommandGroupID(GroupUtility)

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a local config file (JSON)")
}
