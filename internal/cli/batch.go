package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/google-marketing-solutions/vast-validator/internal/batch"
	"github.com/google-marketing-solutions/vast-validator/internal/progress"
	"github.com/google-marketing-solutions/vast-validator/internal/report"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Validate many request URLs from a file or stdin",
	Long: `Validate every request URL in a file (or stdin when no file is given),
one URL per line. Blank lines and lines starting with # are skipped.

The command exits 0 when every request passes, 1 when any request fails,
and 2 when the input file cannot be read.`,
	Example: `  # Validate a file of CTV requests
  vastcheck batch -i ctv requests.txt

  # Pipe requests in, programmatic profile
  grep doubleclick access.log | vastcheck batch -i web -p`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.GroupID = GroupValidation
	addValidationFlags(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

// runBatch executes the batch command against a file or stdin.
func runBatch(cmd *cobra.Command, args []string) error {
	opts, err := resolveRunOptions(cmd)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return WrapExitError(ExitUsageError, fmt.Errorf("opening batch file: %w", err))
		}
		defer f.Close()
		in = f
		name = args[0]
	}

	spin := progress.New(cmd.ErrOrStderr(), !opts.plain && report.IsTerminal(os.Stderr))
	spin.Start(fmt.Sprintf("Validating requests from %s", name))
	summary, err := batch.Run(in, opts.implType, opts.programmatic, opts.decode, func(line int, _ string) {
		spin.Update(fmt.Sprintf("Validating line %d of %s", line, name))
	})
	spin.Stop()
	if err != nil {
		return WrapExitError(ExitUsageError, err)
	}

	printBatchSummary(cmd.OutOrStdout(), summary, opts)

	if summary.Failed > 0 {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// printBatchSummary writes per-line failures and the aggregate totals.
func printBatchSummary(w io.Writer, summary *batch.Summary, opts runOptions) {
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	if opts.plain {
		red = fmt.Sprint
		green = fmt.Sprint
	}

	for _, lr := range summary.Results {
		if !lr.Failed() {
			continue
		}
		if lr.Err != nil {
			fmt.Fprintf(w, "%s line %d: %v\n", red("✗"), lr.Line, lr.Err)
			continue
		}
		fmt.Fprintf(w, "%s line %d: %d error(s)\n", red("✗"), lr.Line, len(lr.Result.Errors))
		for _, f := range lr.Result.Errors {
			fmt.Fprintf(w, "    %s: %s\n", f.Parameter, f.Message)
		}
	}

	if opts.quiet && summary.Failed == 0 {
		return
	}
	if summary.Failed == 0 {
		fmt.Fprintf(w, "%s %d request(s) passed validation\n", green("✓"), summary.Passed)
		return
	}
	fmt.Fprintf(w, "\nChecked %d request(s): %d passed, %d failed\n",
		summary.Total, summary.Passed, summary.Failed)
}
