package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postQueue struct{ fns []func() }

func (q *postQueue) post(fn func()) { q.fns = append(q.fns, fn) }

func (q *postQueue) drain() {
	fns := q.fns
	q.fns = nil
	for _, fn := range fns {
		fn()
	}
}

func TestCoalescer_BurstRunsLatestOnce(t *testing.T) {
	q := &postQueue{}
	c := NewCoalescer(q.post)

	var got []int
	assert.True(t, c.Post("view", func() { got = append(got, 1) }))
	for i := 2; i <= 5; i++ {
		v := i
		assert.False(t, c.Post("view", func() { got = append(got, v) }))
	}

	require.Len(t, q.fns, 1)
	q.drain()
	assert.Equal(t, []int{5}, got)

	// The key is free again after its run.
	assert.True(t, c.Post("view", func() { got = append(got, 6) }))
	q.drain()
	assert.Equal(t, []int{5, 6}, got)
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	q := &postQueue{}
	c := NewCoalescer(q.post)

	var ran []string
	c.Post("view", func() { ran = append(ran, "view") })
	c.Post("zones", func() { ran = append(ran, "zones") })

	assert.True(t, c.Pending("view"))
	assert.True(t, c.Pending("zones"))
	q.drain()
	assert.ElementsMatch(t, []string{"view", "zones"}, ran)
	assert.False(t, c.Pending("view"))
}

func TestCoalescer_CloseDropsQueuedWork(t *testing.T) {
	q := &postQueue{}
	c := NewCoalescer(q.post)

	ran := false
	c.Post("view", func() { ran = true })
	c.Close()
	q.drain()
	assert.False(t, ran)

	assert.False(t, c.Post("view", func() { ran = true }))
	assert.Empty(t, q.fns)
}

func TestCoalescer_IgnoresEmptyPosts(t *testing.T) {
	q := &postQueue{}
	c := NewCoalescer(q.post)

	assert.False(t, c.Post("", func() {}))
	assert.False(t, c.Post("view", nil))
	assert.Empty(t, q.fns)
}

func TestNewCoalescer_NilPostPanics(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}
