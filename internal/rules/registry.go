package rules

// Shared enum domains. The env and output domains are identical across all
// five contexts; vpos accepts both the named positions and their numeric
// aliases.
var (
	envValues    = []string{"vp", "instream", "outstream"}
	outputValues = []string{"vast", "xml_vast2", "xml_vast3", "xml_vast4"}
	vposValues   = []string{"preroll", "midroll", "postroll", "1", "2", "3", "0"}
)

func param(name string, t TypeTag) ParameterSpec {
	return ParameterSpec{Name: name, Type: t}
}

func enum(name string, allowed []string) ParameterSpec {
	return ParameterSpec{Name: name, Type: Enum, AllowedValues: allowed}
}

// catalog maps each delivery context to its curated parameter lists,
// following the current Ad Manager VAST tag specification. Lists are kept
// in declaration order so findings come out in a stable, reproducible
// order: required first, then programmatic-required, then
// programmatic-recommended.
var catalog = map[ImplementationType]ContextRuleSet{
	Web: {
		Context: Web,
		Required: []ParameterSpec{
			param("correlator", Int),
			param("description_url", URL),
			enum("env", envValues),
			param("gdfp_req", Int),
			param("iu", Str),
			enum("output", outputValues),
			param("sz", Size),
			param("unviewed_position_start", Int),
			param("url", URL),
			param("vpmute", Bool),
		},
		ProgrammaticRequired: []ParameterSpec{
			param("ott_placement", Int),
			param("plcmt", Int),
			param("vpa", Bool),
		},
		ProgrammaticRecommended: []ParameterSpec{
			param("aconp", Bool),
			param("dth", Int),
			param("givn", Str),
			param("hl", Str),
			param("omid_p", Str),
			param("vconp", Bool),
			param("vid_d", Int),
			enum("vpos", vposValues),
			param("wta", Int),
		},
	},
	App: {
		Context: App,
		Required: []ParameterSpec{
			param("correlator", Int),
			param("description_url", URL),
			enum("env", envValues),
			param("gdfp_req", Int),
			param("iu", Str),
			enum("output", outputValues),
			param("sz", Size),
			param("unviewed_position_start", Int),
			param("url", URL),
			param("vpmute", Bool),
		},
		ProgrammaticRequired: []ParameterSpec{
			param("idtype", Int),
			param("is_lat", Bool),
			param("ott_placement", Int),
			param("plcmt", Int),
			param("rdid", Str),
			param("vpa", Bool),
		},
		ProgrammaticRecommended: []ParameterSpec{
			param("aconp", Bool),
			param("an", Str),
			param("dth", Int),
			param("givn", Str),
			param("hl", Str),
			param("msid", Str),
			param("omid_p", Str),
			param("pvid", Str),
			param("sid", Str),
			param("vconp", Bool),
			param("vid_d", Int),
			enum("vpos", vposValues),
			param("wta", Int),
		},
	},
	CTV: {
		Context: CTV,
		Required: []ParameterSpec{
			param("correlator", Int),
			enum("env", envValues),
			param("gdfp_req", Int),
			param("iu", Str),
			enum("output", outputValues),
			param("sz", Size),
			param("url", URL),
		},
		ProgrammaticRequired: []ParameterSpec{
			param("idtype", Int),
			param("is_lat", Bool),
			param("ott_placement", Int),
			param("plcmt", Int),
			param("rdid", Str),
			param("vpa", Bool),
			param("vpmute", Bool),
		},
		ProgrammaticRecommended: []ParameterSpec{
			param("aconp", Bool),
			param("an", Str),
			param("dth", Int),
			param("givn", Str),
			param("hl", Str),
			param("msid", Str),
			param("omid_p", Str),
			param("sid", Str),
			param("vconp", Bool),
			param("vid_d", Int),
			enum("vpos", vposValues),
			param("wta", Int),
		},
	},
	Audio: {
		Context: Audio,
		Required: []ParameterSpec{
			param("ad_type", Str),
			param("correlator", Int),
			enum("env", envValues),
			param("gdfp_req", Int),
			param("iu", Str),
			enum("output", outputValues),
			param("url", URL),
		},
		ProgrammaticRequired: []ParameterSpec{
			param("idtype", Int),
			param("is_lat", Bool),
			param("plcmt", Int),
			param("rdid", Str),
			param("vpa", Bool),
			param("vpmute", Bool),
		},
		ProgrammaticRecommended: []ParameterSpec{
			param("aconp", Bool),
			param("an", Str),
			param("dth", Int),
			param("givn", Str),
			param("hl", Str),
			param("msid", Str),
			param("omid_p", Str),
			param("sid", Str),
			param("vconp", Bool),
			enum("vpos", vposValues),
			param("wta", Int),
		},
	},
	DOH: {
		Context: DOH,
		Required: []ParameterSpec{
			param("correlator", Int),
			enum("env", envValues),
			param("gdfp_req", Int),
			param("iu", Str),
			enum("output", outputValues),
			param("sz", Size),
			param("url", URL),
			param("vpmute", Bool),
		},
		ProgrammaticRequired: []ParameterSpec{
			param("idtype", Int),
			param("is_lat", Bool),
			param("plcmt", Int),
			param("rdid", Str),
			param("sid", Str),
			param("venuetype", Int),
		},
		ProgrammaticRecommended: []ParameterSpec{
			param("aconp", Bool),
			param("an", Str),
			param("dth", Int),
			param("givn", Str),
			param("hl", Str),
			param("msid", Str),
			param("omid_p", Str),
		},
	},
}
