// Package setonce provides containers that may be written exactly once and
// read any number of times, without external locking.
package setonce

import (
	"fmt"
	"sync/atomic"
)

// Cell holds at most one value of type T. The first successful TrySet
// publishes the value; every later write fails with ErrAlreadySet.
//
// The zero value is an empty cell ready for use. A Cell must not be copied
// after first use.
type Cell[T any] struct {
	// nil until the single successful write. The CAS that installs the
	// pointer is also the publication of the value it points to.
	v atomic.Pointer[T]
}

// New creates an empty Cell.
func New[T any]() *Cell[T] {
	return &Cell[T]{}
}

// NewSet creates a Cell that already holds v.
// Any call to TrySet on it will fail with ErrAlreadySet.
func NewSet[T any](v T) *Cell[T] {
	c := &Cell[T]{}
	c.v.Store(&v)
	return c
}

// TrySet stores v if the cell is empty. It returns ErrAlreadySet, leaving the
// stored value untouched, if the cell has already been written.
// It never blocks.
func (c *Cell[T]) TrySet(v T) error {
	if c.v.CompareAndSwap(nil, &v) {
		return nil
	}
	return ErrAlreadySet
}

// MustSet is like TrySet but panics with ErrAlreadySet on failure.
func (c *Cell[T]) MustSet(v T) {
	if err := c.TrySet(v); err != nil {
		panic(err)
	}
}

// Get returns the stored value, or the zero value of T if nothing has been
// written yet.
func (c *Cell[T]) Get() T {
	v, _ := c.Load()
	return v
}

// Load returns the stored value and whether a write has succeeded.
func (c *Cell[T]) Load() (T, bool) {
	p := c.v.Load()
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// IsSet reports whether the cell has been written.
func (c *Cell[T]) IsSet() bool {
	return c.v.Load() != nil
}

// GetOrSet returns the stored value, initializing it with f if the cell is
// empty. The boolean is true if the value returned was produced by this call.
//
// f may run concurrently in several goroutines that all found the cell empty;
// only one of the results is stored and every caller gets that one back.
func (c *Cell[T]) GetOrSet(f func() T) (T, bool) {
	if v, ok := c.Load(); ok {
		return v, false
	}
	v := f()
	if c.TrySet(v) == nil {
		return v, true
	}
	return c.Get(), false
}

func (c *Cell[T]) String() string {
	v, ok := c.Load()
	if !ok {
		return "<unset>"
	}
	return fmt.Sprint(v)
}
