// Package report renders validation results for humans (colored or plain
// text) and machines (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/google-marketing-solutions/vast-validator/internal/request"
	"github.com/google-marketing-solutions/vast-validator/internal/rules"
	"github.com/google-marketing-solutions/vast-validator/internal/validate"
)

// Options controls how a result is rendered.
type Options struct {
	JSON  bool // emit a JSON document instead of text
	Quiet bool // text mode: suppress everything except errors
	Plain bool // text mode: no colors or symbols
}

// jsonReport is the machine-readable output contract.
type jsonReport struct {
	Passed            bool               `json:"passed"`
	Errors            []validate.Finding `json:"errors"`
	Warnings          []validate.Finding `json:"warnings"`
	PresentParameters map[string]string  `json:"present_parameters"`
}

// Render writes the validation result for one request to w.
func Render(w io.Writer, res validate.Result, parsed *request.ParsedRequest, ctx rules.ImplementationType, opts Options) error {
	if opts.JSON {
		return renderJSON(w, res, parsed)
	}
	renderText(w, res, parsed, ctx, opts)
	return nil
}

func renderJSON(w io.Writer, res validate.Result, parsed *request.ParsedRequest) error {
	rep := jsonReport{
		Passed:            res.Passed,
		Errors:            res.Errors,
		Warnings:          res.Warnings,
		PresentParameters: parsed.Params,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func renderText(w io.Writer, res validate.Result, parsed *request.ParsedRequest, ctx rules.ImplementationType, opts Options) {
	plain := opts.Plain || !IsTerminal(os.Stdout)

	if !opts.Quiet {
		fmt.Fprintf(w, "Implementation type: %s\n", ctx)
		fmt.Fprintf(w, "Present parameters:  %s\n", presentList(parsed))
	}

	if len(res.Errors) > 0 {
		fmt.Fprintln(w)
		for _, f := range res.Errors {
			fmt.Fprintf(w, "%s %s: %s\n", mark("✗", color.FgRed, plain), f.Parameter, f.Message)
		}
	}
	if len(res.Warnings) > 0 && !opts.Quiet {
		fmt.Fprintln(w)
		for _, f := range res.Warnings {
			fmt.Fprintf(w, "%s %s: %s\n", mark("⚠", color.FgYellow, plain), f.Parameter, f.Message)
		}
	}

	if opts.Quiet {
		return
	}
	fmt.Fprintln(w)
	if res.Passed {
		fmt.Fprintf(w, "%s request passed validation for %s\n", mark("✓", color.FgGreen, plain), ctx)
	} else {
		fmt.Fprintf(w, "%s request failed validation for %s (%d error(s), %d warning(s))\n",
			mark("✗", color.FgRed, plain), ctx, len(res.Errors), len(res.Warnings))
	}
}

// mark returns a result symbol, colored unless plain output is requested.
func mark(symbol string, attr color.Attribute, plain bool) string {
	if plain {
		return symbol
	}
	return color.New(attr).Sprint(symbol)
}

// presentList returns the present parameter names sorted for stable output.
func presentList(parsed *request.ParsedRequest) string {
	if len(parsed.Params) == 0 {
		return "none"
	}
	names := make([]string, 0, len(parsed.Params))
	for name := range parsed.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
