// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

// Finalizer is the teardown contract for payload values.
// If a block's payload type T (or *T) implements Finalizer, Finalize runs
// exactly once, by whichever handle performs the final drop, before the
// block is retired.
//
// Finalize must not touch the block it is being torn down from: by the time
// it runs the count is already 0 and the block is tombstoned, so any handle
// to the same block smuggled into the payload panics when used. Payloads
// holding handles to other blocks may drop those normally.
type Finalizer interface {
	Finalize()
}

// finalizeValue runs the payload's teardown, if it declares one.
// The *T check comes first: it covers both pointer-receiver and
// value-receiver Finalize on T. The second check covers payloads whose type
// is itself a pointer or interface carrying a Finalize method.
func finalizeValue[T any](v *T) {
	if f, ok := any(v).(Finalizer); ok {
		f.Finalize()
		return
	}
	if f, ok := any(*v).(Finalizer); ok {
		f.Finalize()
	}
}

// With brackets a handle's lifetime: it constructs a handle over v, runs
// use, and guarantees the handle is consumed afterwards even if use panics.
// use may consume the handle itself (e.g. Forget it to leak on purpose);
// the bracket only drops what is still live.
func With[T, R any](v T, use func(*Rc[T]) R) R {
	h := New(v)
	defer h.TryDrop()
	return use(h)
}
