// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

import "math"

// inner is the heap block behind a set of handles: the payload plus its
// reference count. The count equals the number of live handles at every
// moment; the block is retired exactly once, by whichever handle observes
// the count go from 1 to 0.
type inner[T any] struct {
	value    T
	refcount Cell[uint]
	pool     *Pool[T]
}

// Rc is a shared-ownership handle to one heap block.
// Many handles may alias the same block; cloning is a pointer copy, never a
// value copy. Handles are affine: each must be consumed exactly once via
// [Rc.Drop], [Rc.TryDrop], or [Rc.Forget], and any operation on a consumed
// handle panics.
//
// Handles are passed as *Rc and must not be copied by value; a value copy
// would duplicate the consumption guard and defeat double-drop detection.
// Single-threaded only.
type Rc[T any] struct {
	_     noCopy
	inner *inner[T]
}

// New allocates a block holding v with a reference count of 1 and returns
// the first handle to it.
func New[T any](v T) *Rc[T] {
	blk := &inner[T]{value: v}
	blk.refcount.Set(1)
	return &Rc[T]{inner: blk}
}

// Get returns a shared read view of the value.
// The returned pointer stays valid until the handle is consumed and must be
// treated as read-only; mutation goes through [Rc.GetMut].
// Panics if the handle has been consumed.
func (h *Rc[T]) Get() *T {
	blk := h.inner
	if blk == nil {
		panic("rc: use of dropped handle")
	}
	return &blk.value
}

// Clone increments the block's count and returns a new handle aliasing the
// same block. The two handles are interchangeable. Panics if the count has
// saturated, or if the handle has been consumed.
func (h *Rc[T]) Clone() *Rc[T] {
	blk := h.inner
	if blk == nil {
		panic("rc: use of dropped handle")
	}
	c := blk.refcount.Get()
	if c == math.MaxUint {
		panic("rc: refcount overflow")
	}
	blk.refcount.Set(c + 1)
	return &Rc[T]{inner: blk}
}

// Drop consumes the handle. If other handles remain the count is
// decremented and nothing else happens; if this was the last handle the
// value's teardown runs (see [Finalizer]) and the block is retired.
// Panics if the handle has already been consumed.
func (h *Rc[T]) Drop() {
	if !h.TryDrop() {
		panic("rc: handle dropped twice")
	}
}

// TryDrop is the non-panicking variant of [Rc.Drop].
// Returns false if the handle was already consumed.
func (h *Rc[T]) TryDrop() bool {
	blk := h.inner
	if blk == nil {
		return false
	}
	// Tombstone before touching the count so teardown that misuses a
	// smuggled handle fails loud instead of corrupting the block.
	h.inner = nil
	c := blk.refcount.Get()
	if c == 1 {
		blk.refcount.Set(0)
		finalizeValue(&blk.value)
		if blk.pool != nil {
			blk.pool.release(blk)
		}
		return true
	}
	blk.refcount.Set(c - 1)
	return true
}

// Forget consumes the handle without decrementing the count: an intentional
// leak. The value's teardown will never run through this handle, and if it
// was the last one the block stays allocated forever. No-op if the handle
// was already consumed.
func (h *Rc[T]) Forget() {
	h.inner = nil
}

// GetMut returns an exclusive mutable view of the value, but only while
// this handle is the sole owner (count == 1). Otherwise it returns
// (nil, false): granting mutation would alias other handles' shared reads.
// The view is invalidated by the next Clone of this handle.
// Panics if the handle has been consumed.
func (h *Rc[T]) GetMut() (*T, bool) {
	blk := h.inner
	if blk == nil {
		panic("rc: use of dropped handle")
	}
	if blk.refcount.Get() != 1 {
		return nil, false
	}
	return &blk.value, true
}

// RefCount reports the block's current count, i.e. the number of live
// handles aliasing it. Panics if the handle has been consumed.
func (h *Rc[T]) RefCount() uint {
	blk := h.inner
	if blk == nil {
		panic("rc: use of dropped handle")
	}
	return blk.refcount.Get()
}
