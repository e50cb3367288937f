// Package validate implements the validation engine: it reconciles a parsed
// request's parameters against the rule set for a delivery context and
// collects the findings into a single result.
package validate

import (
	"errors"

	"github.com/google-marketing-solutions/vast-validator/internal/request"
	"github.com/google-marketing-solutions/vast-validator/internal/rules"
	"github.com/google-marketing-solutions/vast-validator/internal/typecheck"
)

// Severity classifies a finding. Errors affect pass/fail; warnings are
// informational only.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one reported issue about one parameter.
type Finding struct {
	Severity  Severity `json:"-"`
	Parameter string   `json:"parameter"`
	Message   string   `json:"message"`
}

// Result is the structured outcome of one validation pass. Passed is true
// iff Errors is empty; Warnings never affect it.
type Result struct {
	Passed   bool      `json:"passed"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// Validate checks parsed against the rule set for ctx. Required parameters
// (plus programmatic-required when programmatic is set) produce errors when
// missing or type-invalid. Programmatic-recommended parameters produce
// warnings when missing or type-invalid, and are only considered in
// programmatic mode. Parameters outside the rule set are ignored.
//
// Findings come out in rule declaration order: required, then
// programmatic-required, then programmatic-recommended.
func Validate(parsed *request.ParsedRequest, ctx rules.ImplementationType, programmatic bool) Result {
	rs := rules.For(ctx)

	errs := make([]Finding, 0)
	warns := make([]Finding, 0)

	for _, spec := range rs.Required {
		if f := checkRequired(parsed, spec, "missing required parameter"); f != nil {
			errs = append(errs, *f)
		}
	}
	if programmatic {
		for _, spec := range rs.ProgrammaticRequired {
			if f := checkRequired(parsed, spec, "missing required programmatic parameter"); f != nil {
				errs = append(errs, *f)
			}
		}
		for _, spec := range rs.ProgrammaticRecommended {
			if f := checkRecommended(parsed, spec); f != nil {
				warns = append(warns, *f)
			}
		}
	}

	return Result{Passed: len(errs) == 0, Errors: errs, Warnings: warns}
}

// checkRequired reports an error finding when spec is absent or its value
// fails the type check.
func checkRequired(parsed *request.ParsedRequest, spec rules.ParameterSpec, missingMsg string) *Finding {
	value, ok := parsed.Params[spec.Name]
	if !ok {
		return &Finding{Severity: SeverityError, Parameter: spec.Name, Message: missingMsg}
	}
	if terr := typecheck.Check(spec, value); terr != nil {
		return &Finding{Severity: SeverityError, Parameter: spec.Name, Message: terr.Message}
	}
	return nil
}

// checkRecommended reports a warning finding when spec is absent or its
// value fails the type check. Kept separate from checkRequired so a
// recommended parameter can never surface above warning severity.
func checkRecommended(parsed *request.ParsedRequest, spec rules.ParameterSpec) *Finding {
	value, ok := parsed.Params[spec.Name]
	if !ok {
		return &Finding{Severity: SeverityWarning, Parameter: spec.Name, Message: "recommended programmatic parameter not found"}
	}
	if terr := typecheck.Check(spec, value); terr != nil {
		return &Finding{Severity: SeverityWarning, Parameter: spec.Name, Message: terr.Message}
	}
	return nil
}

// Request is the single-call invocation contract: parse raw and validate it
// for ctx in one pass. A request with no query string is fatal only when
// the active rule set requires at least one parameter; otherwise it
// validates as an empty parameter map.
func Request(raw string, ctx rules.ImplementationType, programmatic, decode bool) (*request.ParsedRequest, Result, error) {
	parsed, err := request.Parse(raw, decode)
	if err != nil {
		var perr *request.ParseError
		if errors.As(err, &perr) && perr.Kind == request.MissingQuery && !rules.For(ctx).HasRequired(programmatic) {
			parsed = request.Empty(raw)
		} else {
			return nil, Result{}, err
		}
	}
	return parsed, Validate(parsed, ctx, programmatic), nil
}
