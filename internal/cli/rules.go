package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/google-marketing-solutions/vast-validator/internal/rules"
)

var rulesOutput string

var rulesCmd = &cobra.Command{
	Use:   "rules [context]",
	Short: "Show the parameter rule sets",
	Long: `Print the parameter rule sets the validator checks against, either for
one implementation type or for all five. The rule tables are compiled into
the tool; this command makes them inspectable.`,
	Example: `  # All contexts as text
  vastcheck rules

  # One context as YAML
  vastcheck rules ctv -o yaml

  # Machine-readable dump
  vastcheck rules -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRules,
}

func init() {
	rulesCmd.GroupID = GroupUtility
	rulesCmd.Flags().StringVarP(&rulesOutput, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	var sets []rules.ExportedRuleSet
	if len(args) == 1 {
		ctx, err := rules.ParseImplementationType(args[0])
		if err != nil {
			return WrapExitError(ExitUsageError, err)
		}
		sets = []rules.ExportedRuleSet{rules.Export(ctx)}
	} else {
		sets = rules.ExportAll()
	}

	w := cmd.OutOrStdout()
	switch rulesOutput {
	case "text":
		printRuleSets(w, sets)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sets)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(sets)
	default:
		return WrapExitError(ExitUsageError, fmt.Errorf("invalid output format %q (allowed: text, json, yaml)", rulesOutput))
	}
}

func printRuleSets(w io.Writer, sets []rules.ExportedRuleSet) {
	for i, rs := range sets {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", rs.Context)
		printParamSection(w, "required", rs.Required)
		printParamSection(w, "programmatic required", rs.ProgrammaticRequired)
		printParamSection(w, "programmatic recommended", rs.ProgrammaticRecommended)
	}
}

func printParamSection(w io.Writer, title string, params []rules.ExportedParameter) {
	fmt.Fprintf(w, "  %s:\n", title)
	for _, p := range params {
		if len(p.AllowedValues) > 0 {
			fmt.Fprintf(w, "    %-24s %s (%v)\n", p.Name, p.Type, p.AllowedValues)
			continue
		}
		fmt.Fprintf(w, "    %-24s %s\n", p.Name, p.Type)
	}
}
