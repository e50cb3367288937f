package cli

import (
	"github.com/spf13/cobra"

	"github.com/google-marketing-solutions/vast-validator/internal/report"
	"github.com/google-marketing-solutions/vast-validator/internal/validate"
)

var checkCmd = &cobra.Command{
	Use:     "check <request-url>",
	Aliases: []string{"validate"},
	Short:   "Validate one VAST request URL",
	Long: `Validate the query parameters of a single VAST request URL against the
rule set for the given implementation type.

Exit codes:
  0  request passed validation
  1  request failed validation (missing or invalid required parameters)
  2  usage error (bad implementation type, request has no query string)`,
	Example: `  # Basic validation for a web implementation
  vastcheck check -i web "https://pubads.g.doubleclick.net/gampad/ads?correlator=123&..."

  # Programmatic profile with URL-decoded values
  vastcheck check -i app -p -d "https://..."

  # JSON report for tooling
  vastcheck check -i ctv -j "https://..."`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.GroupID = GroupValidation
	addValidationFlags(checkCmd)
	checkCmd.Flags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.AddCommand(checkCmd)
}

// runCheck executes the check command: parse, validate, render, and map the
// outcome to an exit code.
func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := resolveRunOptions(cmd)
	if err != nil {
		return err
	}

	parsed, res, err := validate.Request(args[0], opts.implType, opts.programmatic, opts.decode)
	if err != nil {
		// Structurally unusable request: fatal before any result exists.
		return WrapExitError(ExitUsageError, err)
	}

	renderOpts := report.Options{JSON: opts.json, Quiet: opts.quiet, Plain: opts.plain}
	if err := report.Render(cmd.OutOrStdout(), res, parsed, opts.implType, renderOpts); err != nil {
		return err
	}

	if !res.Passed {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}
