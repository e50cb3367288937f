// Package request parses raw VAST ad-request strings into a base URL and a
// parameter map ready for validation.
package request

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind categorizes a parse failure.
type Kind string

const (
	// MissingQuery means the request string contains no "?" and therefore
	// carries no parameters at all.
	MissingQuery Kind = "missing_query"
)

// ParseError reports a structurally unusable request string. It is fatal to
// the run: no validation result is produced after a ParseError.
type ParseError struct {
	Kind    Kind
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ParsedRequest is the immutable outcome of parsing one request string.
// Params holds the last occurrence of each key; insertion order is not
// preserved and does not matter to validation.
type ParsedRequest struct {
	BaseURL string
	Params  map[string]string
}

// Parse splits raw at the first "?" into a base URL and a query string,
// then splits the query on "&" and each pair on the first "=". A pair with
// no "=" becomes a key with an empty value. Duplicate keys keep the last
// occurrence. When decode is set, each value is URL-decoded (percent
// escapes and "+" as space); values that fail to decode are kept verbatim.
func Parse(raw string, decode bool) (*ParsedRequest, error) {
	base, query, found := strings.Cut(raw, "?")
	if !found {
		return nil, &ParseError{
			Kind:    MissingQuery,
			Message: fmt.Sprintf("request %q has no query string", raw),
		}
	}

	params := make(map[string]string)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if decode {
			if decoded, err := url.QueryUnescape(value); err == nil {
				value = decoded
			}
		}
		params[key] = value
	}

	return &ParsedRequest{BaseURL: base, Params: params}, nil
}

// Empty returns a ParsedRequest with no parameters for a request string
// that carried no query. Used when the active rule set requires nothing.
func Empty(raw string) *ParsedRequest {
	return &ParsedRequest{BaseURL: raw, Params: map[string]string{}}
}
