// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

// Cell is an interior-mutable holder of a single value.
// Get and Set work through a shared *Cell with no exclusivity requirement,
// which is what lets a reference count be mutated while every handle to its
// block is a shared one.
//
// Cell provides no synchronization and must never be used across
// goroutines. It is the deliberate, narrow exception to "shared means
// read-only": keep it on plain-data fields like counters, not on payloads.
type Cell[T any] struct {
	_ noCopy
	v T
}

// NewCell creates a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.v
}

// Set stores v, discarding the previous value.
func (c *Cell[T]) Set(v T) {
	c.v = v
}

// Replace stores v and returns the previous value.
func (c *Cell[T]) Replace(v T) T {
	old := c.v
	c.v = v
	return old
}

// Update applies f to the current value, stores the result, and returns it.
func (c *Cell[T]) Update(f func(T) T) T {
	c.v = f(c.v)
	return c.v
}

// noCopy flags value copies of marker-carrying types under `go vet -copylocks`.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
