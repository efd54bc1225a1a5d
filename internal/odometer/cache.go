package odometer

// Cache holds the materialized value of a cursor position.
//
// The value is built on first Load and kept until Clear. Cursors clear it
// on each advance so that Load returns the same pointer between two moves.
// The zero value is an empty cache.
type Cache[V any] struct {
	value *V
}

// Load returns the cached value, building it if needed.
func (c *Cache[V]) Load(build func() V) *V {
	if c.value == nil {
		v := build()
		c.value = &v
	}
	return c.value
}

// Loaded reports whether a value is cached.
func (c *Cache[V]) Loaded() bool {
	return c.value != nil
}

// Clear drops the cached value.
func (c *Cache[V]) Clear() {
	c.value = nil
}
