// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rc provides a single-threaded reference-counted shared-ownership
// pointer in Go.
//
// The core type [Rc] gives multiple logical owners shared, read-only access
// to one heap-allocated value and runs the value's teardown exactly once,
// when the last owner drops. No garbage-collection hooks and no atomic
// operations are involved: the count is a plain integer mutated through an
// interior-mutable [Cell], and correctness relies on all handles living on a
// single goroutine.
//
// # Design Contract
//
// rc provides:
//   - Explicit ownership: every handle must be consumed exactly once, by
//     [Rc.Drop], [Rc.TryDrop], or [Rc.Forget]
//   - Affine handles: consuming a handle twice panics; any use of a consumed
//     handle panics
//   - No synchronization: handles, cells, and pools must never be shared
//     across goroutines
//
// # Core Operations
//
//   - [New]: Allocate a block holding a value and a count of 1
//   - [Rc.Get]: Shared read view of the value
//   - [Rc.Clone]: New handle aliasing the same block (count + 1)
//   - [Rc.Drop]: Consume the handle (count − 1); the handle observing the
//     count reach zero finalizes the value and retires the block
//   - [Rc.GetMut]: Exclusive mutable view, granted only while count == 1
//
// Consumption variants, mirroring the one-shot trio convention:
//
//   - [Rc.Drop]: Panics on reuse
//   - [Rc.TryDrop]: Non-panicking variant
//   - [Rc.Forget]: Consume without decrementing — intentional leak, the
//     value's teardown never runs
//
// # Teardown
//
// A payload whose type (or pointer type) implements [Finalizer] has its
// Finalize method called exactly once, by whichever handle performs the
// final drop, before the block is retired. [With] brackets a handle's whole
// lifetime so the drop runs even if the body panics.
//
// # Block Pooling
//
// [Pool] keeps retired blocks on a freelist so allocation-heavy callers can
// recycle them: [Pool.New] hands out a handle over a reused block when one
// is idle, and the block returns to the pool at its final drop, after
// teardown, with the value field zeroed.
//
// # Example
//
//	a := rc.New(10)
//	if p, ok := a.GetMut(); ok {
//		*p = 99 // sole owner, mutation is safe
//	}
//	b := a.Clone() // count is now 2; GetMut refuses on either handle
//	b.Drop()       // count back to 1
//	a.Drop()       // finalizes the value, retires the block
package rc
