package grid

import (
	"errors"
	"fmt"

	"github.com/dalibo/cartesian/internal/errorlist"
	"github.com/dalibo/cartesian/internal/normalize"
)

// NormalizeRoot checks and canonicalizes a YAML grid document.
//
// Range dimensions are expanded into values.
func NormalizeRoot(yaml any) (map[string]any, error) {
	root, err := normalize.Map(yaml)
	if err != nil {
		return nil, err
	}
	err = normalize.SpuriousKeys(root, "version", "format", "exclude", "dimensions")
	if err != nil {
		return nil, err
	}
	err = checkVersion(root["version"])
	if err != nil {
		return nil, err
	}
	err = normalize.IsString(root["format"])
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	exclude, err := normalize.Strings(root["exclude"])
	if err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}
	root["exclude"] = exclude

	raw := normalize.List(root["dimensions"])
	if len(raw) == 0 {
		return nil, errors.New("dimensions: at least one dimension required")
	}
	errs := errorlist.New("bad dimensions")
	var dimensions []any
	for i, item := range raw {
		dimension, err := NormalizeDimension(item)
		if err != nil {
			if !errs.Appendf("dimensions[%d]: %w", i, err) {
				break
			}
			continue
		}
		dimensions = append(dimensions, dimension)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	root["dimensions"] = dimensions
	return root, nil
}

func checkVersion(yaml any) error {
	if yaml == nil {
		return errors.New("missing version")
	}
	version, ok := yaml.(int)
	if !ok {
		return fmt.Errorf("version: bad value %v, must be an integer", yaml)
	}
	if version != 1 {
		return fmt.Errorf("unsupported grid version %d", version)
	}
	return nil
}

func NormalizeDimension(yaml any) (map[string]any, error) {
	dimension, err := normalize.Map(yaml)
	if err != nil {
		return nil, err
	}
	err = normalize.Alias(dimension, "values", "value")
	if err != nil {
		return nil, err
	}
	err = normalize.SpuriousKeys(dimension, "name", "values", "range", "unique")
	if err != nil {
		return nil, err
	}

	name, _ := dimension["name"].(string)
	if err := normalize.IsString(dimension["name"]); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	} else if name == "" {
		return nil, errors.New("missing name")
	}

	values, hasValues := dimension["values"]
	rng, hasRange := dimension["range"]
	switch {
	case hasValues && hasRange:
		return nil, fmt.Errorf("%s: values and range are mutually exclusive", name)
	case hasRange:
		dimension["values"], err = NormalizeRange(rng)
		delete(dimension, "range")
		if err != nil {
			return nil, fmt.Errorf("%s: range: %w", name, err)
		}
	case hasValues:
		dimension["values"], err = normalize.Strings(values)
		if err != nil {
			return nil, fmt.Errorf("%s: values: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%s: values or range required", name)
	}
	if len(dimension["values"].([]string)) == 0 {
		return nil, fmt.Errorf("%s: empty dimension", name)
	}

	if unique, ok := dimension["unique"]; ok {
		dimension["unique"] = normalize.Boolean(unique)
	}
	return dimension, nil
}

// NormalizeRange renders a range map as values.
//
// Range is integer if start, stop and step are all integers.
func NormalizeRange(yaml any) ([]string, error) {
	m, err := normalize.Map(yaml)
	if err != nil {
		return nil, err
	}
	err = normalize.SpuriousKeys(m, "start", "stop", "step")
	if err != nil {
		return nil, err
	}
	if _, ok := m["stop"]; !ok {
		return nil, errors.New("missing stop")
	}

	bounds := []any{0, m["stop"], 1}
	if v, ok := m["start"]; ok {
		bounds[0] = v
	}
	if v, ok := m["step"]; ok {
		bounds[2] = v
	}

	integers := true
	floats := make([]float64, len(bounds))
	for i, v := range bounds {
		switch v := v.(type) {
		case int:
			floats[i] = float64(v)
		case float64:
			integers = false
			floats[i] = v
		default:
			return nil, fmt.Errorf("bad value %v, must be a number", v)
		}
	}

	if integers {
		values, err := Range(bounds[0].(int), bounds[1].(int), bounds[2].(int))
		return FormatNumbers(values), err
	}
	values, err := Range(floats[0], floats[1], floats[2])
	return FormatNumbers(values), err
}
