package normalize

import (
	"fmt"
	"slices"
)

// Map checks for a YAML map.
func Map(yaml any) (map[string]any, error) {
	m, ok := yaml.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("bad value %v, must be a map", yaml)
	}
	return m, nil
}

// SpuriousKeys checks for unknown keys in a YAML map.
func SpuriousKeys(yaml map[string]any, knownKeys ...string) error {
	for key := range yaml {
		if !slices.Contains(knownKeys, key) {
			return fmt.Errorf("unknown key '%s'", key)
		}
	}
	return nil
}

// IsString checks for string type.
func IsString(yaml any) error {
	_, ok := yaml.(string)
	if !ok && yaml != nil {
		return fmt.Errorf("bad value %v, must be string", yaml)
	}
	return nil
}
