// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

// Block pool for allocation-heavy callers.
// Retired blocks land on a freelist and are handed out again by Pool.New,
// zeroed. Pool-backed handles behave exactly like New-backed ones; only the
// block's origin and destination differ. Single-threaded, like everything
// else in this package: a plain slice, not sync.Pool, because the freelist
// must follow the same no-synchronization contract as the count itself.
//
// Finalizers may interact with the pool re-entrantly: a payload's Finalize
// that drops the last handle to a different block backed by the same pool
// returns that block to the freelist mid-retirement. That is fine — a block
// only reaches release after its own teardown has finished — but Finalize
// must still never touch the block being torn down (see [Finalizer]).

// Pool recycles retired blocks for one payload type.
type Pool[T any] struct {
	_    noCopy
	free []*inner[T]
	max  int // idle blocks retained; 0 means unbounded
}

// NewPool creates an unbounded block pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// NewPoolSize creates a pool retaining at most max idle blocks;
// blocks retired beyond that are left to the collector.
func NewPoolSize[T any](max int) *Pool[T] {
	return &Pool[T]{max: max}
}

// New returns a handle over a block holding v, reusing an idle block when
// one is available. The block returns to this pool at its final drop, after
// the value's teardown.
func (p *Pool[T]) New(v T) *Rc[T] {
	var blk *inner[T]
	if n := len(p.free); n > 0 {
		blk = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		blk = new(inner[T])
	}
	blk.value = v
	blk.refcount.Set(1)
	blk.pool = p
	return &Rc[T]{inner: blk}
}

// Len reports the number of idle blocks currently held.
func (p *Pool[T]) Len() int {
	return len(p.free)
}

// release returns a retired block to the freelist, zeroing the payload
// field. Called only at the 1→0 transition, after teardown.
func (p *Pool[T]) release(blk *inner[T]) {
	if p.max > 0 && len(p.free) >= p.max {
		blk.pool = nil
		return
	}
	var zero T
	blk.value = zero
	p.free = append(p.free, blk)
}
