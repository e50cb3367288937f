package config

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"implementation_type": "",
		"programmatic":        false,
		"decode":              false,
		"json":                false,
		"quiet":               false,
		"color":               "auto",
	}
}
