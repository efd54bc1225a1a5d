package grid

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// MaxRange bounds the length of a range dimension.
var MaxRange = 1 << 20

type Number interface {
	constraints.Integer | constraints.Float
}

// Range returns start, start+step, ... up to stop excluded.
//
// Values are computed as start+i*step to avoid accumulating float errors.
func Range[N Number](start, stop, step N) ([]N, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %v", step)
	}
	var values []N
	for i := 0; ; i++ {
		v := start + N(i)*step
		if v >= stop || v < start { // v < start on integer overflow.
			break
		}
		if len(values) >= MaxRange {
			return nil, fmt.Errorf("range too long, more than %d values", MaxRange)
		}
		values = append(values, v)
	}
	return values, nil
}

// FormatNumbers renders numbers as in YAML, rounding float noise.
func FormatNumbers[N Number](values []N) []string {
	out := make([]string, len(values))
	for i, v := range values {
		switch v := any(v).(type) {
		case float32:
			out[i] = strconv.FormatFloat(float64(v), 'g', 7, 32)
		case float64:
			out[i] = strconv.FormatFloat(v, 'g', 15, 64)
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
