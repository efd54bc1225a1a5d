// fnmatch pattern list
package lists

import (
	"fmt"
	"iter"
	"path/filepath"
)

// Blacklist holds fnmatch patterns rejecting rendered lines.
type Blacklist []string

// Check verify patterns are valid.
//
// Use it before using MatchString().
func (bl Blacklist) Check() error {
	for _, pattern := range bl {
		_, err := filepath.Match(pattern, "pouet")
		if err != nil {
			return fmt.Errorf("%s: %w", pattern, err)
		}
	}
	return nil
}

// MatchString returns the first pattern that matches the item.
//
// Use Check() before using MatchString().
// panics if pattern is invalid.
// returns empty string if no match.
func (bl Blacklist) MatchString(item string) string {
	for _, pattern := range bl {
		ok, err := filepath.Match(pattern, item)
		if err != nil {
			// Use Check() before using MatchString().
			panic(err)
		}
		if ok {
			return pattern
		}
	}
	return ""
}

// Filter yields items of seq matching no pattern.
//
// skipped is called for each rejected item, if not nil.
func (bl Blacklist) Filter(seq iter.Seq[string], skipped func(item, pattern string)) iter.Seq[string] {
	return func(yield func(string) bool) {
		for item := range seq {
			if pattern := bl.MatchString(item); pattern != "" {
				if skipped != nil {
					skipped(item, pattern)
				}
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}
