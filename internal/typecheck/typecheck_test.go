package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google-marketing-solutions/vast-validator/internal/rules"
)

func TestCheck(t *testing.T) {
	enumSpec := rules.ParameterSpec{
		Name:          "env",
		Type:          rules.Enum,
		AllowedValues: []string{"vp", "instream", "outstream"},
	}

	tests := map[string]struct {
		spec     rules.ParameterSpec
		value    string
		wantKind Kind // empty means the value must be accepted
	}{
		"int accepts digits":          {spec: rules.ParameterSpec{Type: rules.Int}, value: "1234567890"},
		"int accepts negative":        {spec: rules.ParameterSpec{Type: rules.Int}, value: "-42"},
		"int accepts explicit plus":   {spec: rules.ParameterSpec{Type: rules.Int}, value: "+7"},
		"int rejects letters":         {spec: rules.ParameterSpec{Type: rules.Int}, value: "abc", wantKind: NotInteger},
		"int rejects float":           {spec: rules.ParameterSpec{Type: rules.Int}, value: "1.5", wantKind: NotInteger},
		"int rejects empty":           {spec: rules.ParameterSpec{Type: rules.Int}, value: "", wantKind: NotInteger},
		"bool accepts zero":           {spec: rules.ParameterSpec{Type: rules.Bool}, value: "0"},
		"bool accepts one":            {spec: rules.ParameterSpec{Type: rules.Bool}, value: "1"},
		"bool rejects true":           {spec: rules.ParameterSpec{Type: rules.Bool}, value: "true", wantKind: NotBoolean},
		"bool rejects two":            {spec: rules.ParameterSpec{Type: rules.Bool}, value: "2", wantKind: NotBoolean},
		"str accepts text":            {spec: rules.ParameterSpec{Type: rules.Str}, value: "/1234/video"},
		"str rejects empty":           {spec: rules.ParameterSpec{Type: rules.Str}, value: "", wantKind: EmptyString},
		"str rejects whitespace only": {spec: rules.ParameterSpec{Type: rules.Str}, value: "   ", wantKind: EmptyString},
		"enum accepts member":         {spec: enumSpec, value: "instream"},
		"enum is case sensitive":      {spec: enumSpec, value: "VP", wantKind: NotInEnum},
		"enum rejects outsider":       {spec: enumSpec, value: "banner", wantKind: NotInEnum},
		"url accepts https":           {spec: rules.ParameterSpec{Type: rules.URL}, value: "https://example.com/video?id=1"},
		"url accepts http":            {spec: rules.ParameterSpec{Type: rules.URL}, value: "http://example.com"},
		"url rejects bare path":       {spec: rules.ParameterSpec{Type: rules.URL}, value: "/just/a/path", wantKind: InvalidURL},
		"url rejects hostless scheme": {spec: rules.ParameterSpec{Type: rules.URL}, value: "mailto:ads@example.com", wantKind: InvalidURL},
		"url rejects garbage":         {spec: rules.ParameterSpec{Type: rules.URL}, value: "not a url", wantKind: InvalidURL},
		"size accepts dimensions":     {spec: rules.ParameterSpec{Type: rules.Size}, value: "640x480"},
		"size rejects dash separator": {spec: rules.ParameterSpec{Type: rules.Size}, value: "640-480", wantKind: InvalidSize},
		"size rejects missing height": {spec: rules.ParameterSpec{Type: rules.Size}, value: "640x", wantKind: InvalidSize},
		"size rejects uppercase x":    {spec: rules.ParameterSpec{Type: rules.Size}, value: "640X480", wantKind: InvalidSize},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := Check(tc.spec, tc.value)
			if tc.wantKind == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tc.wantKind, err.Kind)
			assert.NotEmpty(t, err.Message)
		})
	}
}

// Every TypeTag must have at least one accepted and one rejected example
// above; this guards the switch in Check against new tags going unhandled.
func TestCheckCoversEveryTypeTag(t *testing.T) {
	tags := []rules.TypeTag{rules.Int, rules.Bool, rules.Str, rules.Enum, rules.URL, rules.Size}
	for _, tag := range tags {
		spec := rules.ParameterSpec{Type: tag, AllowedValues: []string{"vp"}}
		assert.NotPanics(t, func() { Check(spec, "vp") }, "tag %v", tag)
	}
}

func TestEnumErrorListsAllowedValues(t *testing.T) {
	spec := rules.ParameterSpec{
		Name:          "output",
		Type:          rules.Enum,
		AllowedValues: []string{"vast", "xml_vast4"},
	}
	err := Check(spec, "json")
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "vast, xml_vast4")
}
