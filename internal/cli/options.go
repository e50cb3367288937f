package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/google-marketing-solutions/vast-validator/internal/config"
	"github.com/google-marketing-solutions/vast-validator/internal/rules"
)

// runOptions are the effective settings for one validation run, merged from
// the config file and command-line flags. Flags win whenever they were
// explicitly set.
type runOptions struct {
	implType     rules.ImplementationType
	programmatic bool
	decode       bool
	json         bool
	quiet        bool
	plain        bool
}

// resolveRunOptions loads the layered configuration and overlays any flags
// the user set on this invocation. It returns a usage error when no valid
// implementation type is available from either source.
func resolveRunOptions(cmd *cobra.Command) (runOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return runOptions{}, WrapExitError(ExitUsageError, err)
	}

	applyColorMode(cfg.Color)

	opts := runOptions{
		programmatic: flagOr(cmd, "programmatic", cfg.Programmatic),
		decode:       flagOr(cmd, "decode", cfg.Decode),
		quiet:        flagOr(cmd, "quiet", cfg.Quiet),
	}
	if cmd.Flags().Lookup("json") != nil {
		opts.json = flagOr(cmd, "json", cfg.JSON)
	}
	if cmd.Flags().Lookup("plain") != nil {
		opts.plain, _ = cmd.Flags().GetBool("plain")
	}

	token, _ := cmd.Flags().GetString("implementation-type")
	if token == "" {
		token = cfg.ImplementationType
	}
	if token == "" {
		return runOptions{}, WrapExitError(ExitUsageError,
			fmt.Errorf("no implementation type given: pass -i/--implementation-type or set it in the config"))
	}
	implType, err := rules.ParseImplementationType(token)
	if err != nil {
		return runOptions{}, WrapExitError(ExitUsageError, err)
	}
	opts.implType = implType

	return opts, nil
}

// flagOr returns the flag value when it was set on the command line, and
// the config fallback otherwise.
func flagOr(cmd *cobra.Command, name string, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	return fallback
}

// applyColorMode maps the config color setting onto the global color state.
// "auto" leaves terminal detection alone.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

// addValidationFlags registers the flags shared by check and batch.
func addValidationFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("implementation-type", "i", "", "Delivery context: web, app, ctv, audio or doh")
	cmd.Flags().BoolP("programmatic", "p", false, "Validate against the stricter programmatic profile")
	cmd.Flags().BoolP("decode", "d", false, "URL-decode parameter values before validation")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress output except for errors")
	cmd.Flags().Bool("plain", false, "Plain output without colors")
}
