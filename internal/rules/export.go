package rules

// ExportedParameter is the serializable view of a ParameterSpec used by the
// rules inspection command.
type ExportedParameter struct {
	Name          string   `json:"name" yaml:"name"`
	Type          string   `json:"type" yaml:"type"`
	AllowedValues []string `json:"allowed_values,omitempty" yaml:"allowed_values,omitempty"`
}

// ExportedRuleSet is the serializable view of a ContextRuleSet.
type ExportedRuleSet struct {
	Context                 string              `json:"context" yaml:"context"`
	Required                []ExportedParameter `json:"required" yaml:"required"`
	ProgrammaticRequired    []ExportedParameter `json:"programmatic_required" yaml:"programmatic_required"`
	ProgrammaticRecommended []ExportedParameter `json:"programmatic_recommended" yaml:"programmatic_recommended"`
}

func exportParams(specs []ParameterSpec) []ExportedParameter {
	out := make([]ExportedParameter, 0, len(specs))
	for _, s := range specs {
		out = append(out, ExportedParameter{
			Name:          s.Name,
			Type:          s.Type.String(),
			AllowedValues: s.AllowedValues,
		})
	}
	return out
}

// Export returns the rule set for one context in serializable form.
func Export(ctx ImplementationType) ExportedRuleSet {
	rs := For(ctx)
	return ExportedRuleSet{
		Context:                 string(rs.Context),
		Required:                exportParams(rs.Required),
		ProgrammaticRequired:    exportParams(rs.ProgrammaticRequired),
		ProgrammaticRecommended: exportParams(rs.ProgrammaticRecommended),
	}
}

// ExportAll returns every context's rule set in display order.
func ExportAll() []ExportedRuleSet {
	out := make([]ExportedRuleSet, 0, len(catalog))
	for _, ctx := range ImplementationTypes() {
		out = append(out, Export(ctx))
	}
	return out
}
