// Package typecheck decides whether a raw parameter value conforms to its
// declared type. Checks are pure: every call returns either nil or exactly
// one *TypeError describing the failure.
package typecheck

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google-marketing-solutions/vast-validator/internal/rules"
)

// Kind categorizes a type-check failure. One kind per TypeTag.
type Kind string

const (
	NotInteger  Kind = "not_integer"
	NotBoolean  Kind = "not_boolean"
	EmptyString Kind = "empty_string"
	NotInEnum   Kind = "not_in_enum"
	InvalidURL  Kind = "invalid_url"
	InvalidSize Kind = "invalid_size"
)

// TypeError reports a single value failing its declared type.
type TypeError struct {
	Kind    Kind
	Message string
}

func (e *TypeError) Error() string {
	return e.Message
}

var sizePattern = regexp.MustCompile(`^\d+x\d+$`)

// Check validates value against the type declared in spec. It returns nil
// when the value conforms, or a TypeError with the matching Kind otherwise.
func Check(spec rules.ParameterSpec, value string) *TypeError {
	switch spec.Type {
	case rules.Int:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return &TypeError{Kind: NotInteger, Message: fmt.Sprintf("expected integer, got %q", value)}
		}
	case rules.Bool:
		if value != "0" && value != "1" {
			return &TypeError{Kind: NotBoolean, Message: fmt.Sprintf("expected 0 or 1, got %q", value)}
		}
	case rules.Str:
		if strings.TrimSpace(value) == "" {
			return &TypeError{Kind: EmptyString, Message: "parameter value is empty"}
		}
	case rules.Enum:
		for _, allowed := range spec.AllowedValues {
			if value == allowed {
				return nil
			}
		}
		return &TypeError{
			Kind:    NotInEnum,
			Message: fmt.Sprintf("invalid value %q, allowed values: %s", value, strings.Join(spec.AllowedValues, ", ")),
		}
	case rules.URL:
		if !wellFormedURL(value) {
			return &TypeError{Kind: InvalidURL, Message: fmt.Sprintf("invalid URL: %q", value)}
		}
	case rules.Size:
		if !sizePattern.MatchString(value) {
			return &TypeError{Kind: InvalidSize, Message: fmt.Sprintf("expected WIDTHxHEIGHT (e.g. 640x480), got %q", value)}
		}
	default:
		panic(fmt.Sprintf("typecheck: unhandled type tag %v", spec.Type))
	}
	return nil
}

// wellFormedURL requires an absolute URL with a scheme and a host.
func wellFormedURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
