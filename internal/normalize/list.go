package normalize

import (
	"fmt"
	"strconv"
)

// List ensure yaml is a list.
//
// Wraps scalar or map in a list. Returns list as is. nil gives an empty
// list.
func List(yaml any) (list []any) {
	switch v := yaml.(type) {
	case nil:
	case []any:
		list = v
	case []string:
		for _, s := range v {
			list = append(list, s)
		}
	default:
		list = append(list, yaml)
	}
	return
}

// Strings renders a scalar or a list of scalars as strings.
//
// Numbers are rendered as written in YAML, booleans as true or false.
// Nested lists and maps are refused.
func Strings(yaml any) (out []string, err error) {
	for i, item := range List(yaml) {
		s, err := Scalar(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, s)
	}
	return
}

// Scalar renders a YAML scalar as string.
func Scalar(yaml any) (string, error) {
	switch v := yaml.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("null value")
	default:
		return "", fmt.Errorf("bad value %v, must be a scalar", yaml)
	}
}
