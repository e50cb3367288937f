// Package rules defines the parameter catalog for Google Ad Manager VAST
// ad requests. The catalog is static data constructed at package init and
// never mutated; the validation engine consults it as the single source of
// truth for which parameters each delivery context requires.
package rules

import (
	"fmt"
	"strings"
)

// TypeTag identifies the value type a parameter must conform to.
type TypeTag int

const (
	Int TypeTag = iota
	Bool
	Str
	Enum
	URL
	Size
)

// String returns the lowercase name used in rule listings and messages.
func (t TypeTag) String() string {
	switch t {
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Str:
		return "str"
	case Enum:
		return "enum"
	case URL:
		return "url"
	case Size:
		return "size"
	default:
		return fmt.Sprintf("TypeTag(%d)", int(t))
	}
}

// ParameterSpec describes a single VAST request parameter: its name, the
// type its value must conform to, and (for Enum) the allowed value domain.
type ParameterSpec struct {
	Name          string
	Type          TypeTag
	AllowedValues []string
}

// ImplementationType is the delivery context a VAST request targets.
type ImplementationType string

const (
	Web   ImplementationType = "web"
	App   ImplementationType = "app"
	CTV   ImplementationType = "ctv"
	Audio ImplementationType = "audio"
	DOH   ImplementationType = "doh"
)

// ImplementationTypes returns all supported contexts in display order.
func ImplementationTypes() []ImplementationType {
	return []ImplementationType{Web, App, CTV, Audio, DOH}
}

// ParseImplementationType normalizes and validates a user-supplied context
// token. Matching is case-insensitive.
func ParseImplementationType(s string) (ImplementationType, error) {
	it := ImplementationType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ImplementationTypes() {
		if it == known {
			return it, nil
		}
	}
	return "", fmt.Errorf("invalid implementation type %q (allowed: web, app, ctv, audio, doh)", s)
}

// ContextRuleSet holds the three parameter lists for one delivery context.
// Required parameters are always checked; ProgrammaticRequired and
// ProgrammaticRecommended only apply when validating in programmatic mode.
type ContextRuleSet struct {
	Context                 ImplementationType
	Required                []ParameterSpec
	ProgrammaticRequired    []ParameterSpec
	ProgrammaticRecommended []ParameterSpec
}

// HasRequired reports whether the rule set demands any parameter at all
// under the given mode. A request with no query string can only pass
// validation when this is false.
func (rs ContextRuleSet) HasRequired(programmatic bool) bool {
	if len(rs.Required) > 0 {
		return true
	}
	return programmatic && len(rs.ProgrammaticRequired) > 0
}

// For returns the rule set for the given context. Lookup is total over the
// ImplementationType constants; calling it with anything else is a
// programming error.
func For(ctx ImplementationType) ContextRuleSet {
	rs, ok := catalog[ctx]
	if !ok {
		panic(fmt.Sprintf("rules: no rule set registered for implementation type %q", ctx))
	}
	return rs
}
