// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/rc"
)

func TestPoolReusesRetiredBlock(t *testing.T) {
	p := rc.NewPool[int]()

	a := p.New(1)
	addr := a.Get()
	a.Drop()
	require.Equal(t, 1, p.Len())

	// The next handle from the pool sits on the recycled block.
	b := p.New(2)
	require.Equal(t, 0, p.Len())
	assert.Same(t, addr, b.Get())
	assert.Equal(t, 2, *b.Get())
	b.Drop()
}

func TestPoolBlockStaysOutWhileLive(t *testing.T) {
	p := rc.NewPool[int]()
	a := p.New(1)
	b := a.Clone()

	a.Drop()
	assert.Equal(t, 0, p.Len(), "block must not return while a handle is live")
	b.Drop()
	assert.Equal(t, 1, p.Len())
}

func TestPoolFinalizesBeforeRelease(t *testing.T) {
	drops := 0
	p := rc.NewPool[dropSpy]()

	h := p.New(dropSpy{drops: &drops, id: "pooled"})
	h.Drop()
	require.Equal(t, 1, drops)
	require.Equal(t, 1, p.Len())

	// Reuse still finalizes exactly once per lifetime.
	h = p.New(dropSpy{drops: &drops, id: "reused"})
	h.Drop()
	require.Equal(t, 2, drops)
}

func TestPoolZeroesValueOnRelease(t *testing.T) {
	p := rc.NewPool[[]byte]()
	h := p.New([]byte("secret"))
	h.Drop()

	// A reused block must not leak the previous payload.
	h = p.New(nil)
	assert.Nil(t, *h.Get())
	h.Drop()
}

func TestPoolSizeCapsIdleBlocks(t *testing.T) {
	p := rc.NewPoolSize[int](2)

	handles := make([]*rc.Rc[int], 0, 5)
	for i := range 5 {
		handles = append(handles, p.New(i))
	}
	for _, h := range handles {
		h.Drop()
	}
	assert.Equal(t, 2, p.Len())
}

func TestPoolForgetNeverReturnsBlock(t *testing.T) {
	p := rc.NewPool[int]()
	h := p.New(1)
	h.Forget()
	assert.Equal(t, 0, p.Len())
}

// chainSpy drops a handle to another block from its own teardown.
type chainSpy struct {
	next  *rc.Rc[chainSpy]
	drops *int
}

func (s *chainSpy) Finalize() {
	*s.drops++
	if s.next != nil {
		s.next.Drop()
	}
}

func TestPoolFinalizerMayReleaseIntoSamePool(t *testing.T) {
	drops := 0
	p := rc.NewPool[chainSpy]()

	inner := p.New(chainSpy{drops: &drops})
	outer := p.New(chainSpy{next: inner, drops: &drops})

	// Dropping outer tears it down, and its finalizer drops the last handle
	// to inner, whose block lands on the freelist mid-retirement of outer.
	outer.Drop()
	require.Equal(t, 2, drops)
	assert.Equal(t, 2, p.Len())

	// Both recycled blocks come back zeroed and usable.
	a, b := p.New(chainSpy{drops: &drops}), p.New(chainSpy{drops: &drops})
	require.Equal(t, 0, p.Len())
	assert.Nil(t, a.Get().next)
	assert.Nil(t, b.Get().next)
	a.Drop()
	b.Drop()
}

func TestPoolHandleBehavesLikePlainHandle(t *testing.T) {
	p := rc.NewPool[int]()
	a := p.New(10)

	ptr, ok := a.GetMut()
	require.True(t, ok)
	*ptr = 99
	assert.Equal(t, 99, *a.Get())

	b := a.Clone()
	_, ok = b.GetMut()
	assert.False(t, ok)

	b.Drop()
	a.Drop()
	assert.PanicsWithValue(t, "rc: handle dropped twice", func() { a.Drop() })
}
