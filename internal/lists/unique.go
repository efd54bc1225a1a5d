package lists

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Unique returns items without duplicates, keeping first occurence order.
func Unique[T comparable](items []T) []T {
	seen := mapset.NewThreadUnsafeSetWithSize[T](len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if seen.Add(item) {
			out = append(out, item)
		}
	}
	return out
}

// Duplicates returns items appearing more than once, each reported once.
func Duplicates[T comparable](items []T) (out []T) {
	seen := mapset.NewThreadUnsafeSet[T]()
	reported := mapset.NewThreadUnsafeSet[T]()
	for _, item := range items {
		if !seen.Add(item) && reported.Add(item) {
			out = append(out, item)
		}
	}
	return
}
