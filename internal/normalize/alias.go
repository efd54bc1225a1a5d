// Functions to canonicalize YAML input before decoding into data structure.
package normalize

import "fmt"

// Alias moves the value of alias under key, e.g. value to values.
//
// Both keys set is an error since one would silently win.
func Alias(yaml map[string]any, key, alias string) error {
	value, ok := yaml[alias]
	if !ok {
		return nil
	}
	if _, ok := yaml[key]; ok {
		return fmt.Errorf("%s and %s are aliases, use only %s", key, alias, key)
	}
	delete(yaml, alias)
	yaml[key] = value
	return nil
}
