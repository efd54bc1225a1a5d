package normalize

import "strings"

// Boolean maps YAML 1.1 words like yes or off to "true" or "false".
//
// yaml.v3 keeps these words as strings. Other values are returned as is and
// left to the weakly typed decoder.
func Boolean(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	switch strings.ToLower(s) {
	case "y", "yes", "on":
		return "true"
	case "n", "no", "off":
		return "false"
	}
	return v
}
