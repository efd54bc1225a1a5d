package perf

import (
	"fmt"
	"time"
)

// StopWatch accumulates the duration of repeated operations.
type StopWatch struct {
	Count int
	Total time.Duration
}

func (t *StopWatch) TimeIt(fn func()) (duration time.Duration) {
	start := time.Now()
	t.Count++
	defer func() {
		duration = time.Since(start)
		t.Total += duration
	}()

	fn()
	return
}

// Rate formats the number of operations per second.
func (t StopWatch) Rate() string {
	if t.Total <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f/s", float64(t.Count)/t.Total.Seconds())
}
