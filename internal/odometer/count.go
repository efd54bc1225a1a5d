package odometer

import (
	"math"
	"math/bits"
)

// Count returns the number of positions of an odometer with dials of the
// given lengths.
//
// Count is 0 without dials or if any length is 0. ok is false if the count
// does not fit in an int.
func Count(lengths ...int) (n int, ok bool) {
	if len(lengths) == 0 {
		return 0, true
	}
	total := uint64(1)
	for _, length := range lengths {
		if length == 0 {
			return 0, true
		}
	}
	for _, length := range lengths {
		hi, lo := bits.Mul64(total, uint64(length))
		if hi != 0 || lo > math.MaxInt {
			return 0, false
		}
		total = lo
	}
	return int(total), true
}
