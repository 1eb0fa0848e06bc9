package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualQueue struct {
	tasks []func()
}

func (q *manualQueue) post(fn func()) { q.tasks = append(q.tasks, fn) }

func (q *manualQueue) drain() {
	tasks := q.tasks
	q.tasks = nil
	for _, fn := range tasks {
		fn()
	}
}

func TestCoalescer_BurstRunsLatestOnce(t *testing.T) {
	q := &manualQueue{}
	c := NewCoalescer(q.post)

	var runs []int
	for i := 1; i <= 5; i++ {
		c.Post("geometry", func() { runs = append(runs, i) })
	}
	require.Len(t, q.tasks, 1)

	q.drain()
	assert.Equal(t, []int{5}, runs)
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	q := &manualQueue{}
	c := NewCoalescer(q.post)

	var resized, moved bool
	c.Post("resize", func() { resized = true })
	c.Post("panel", func() { moved = true })
	require.Len(t, q.tasks, 2)

	q.drain()
	assert.True(t, resized)
	assert.True(t, moved)
}

func TestCoalescer_PostAfterRunSchedulesAgain(t *testing.T) {
	q := &manualQueue{}
	c := NewCoalescer(q.post)

	count := 0
	c.Post("geometry", func() { count++ })
	q.drain()
	c.Post("geometry", func() { count++ })
	require.Len(t, q.tasks, 1)
	q.drain()

	assert.Equal(t, 2, count)
}

func TestCoalescer_DestroyDropsWork(t *testing.T) {
	q := &manualQueue{}
	c := NewCoalescer(q.post)

	ran := false
	c.Post("panel", func() { ran = true })
	c.Destroy()
	q.drain()
	assert.False(t, ran)

	c.Post("panel", func() { ran = true })
	assert.Empty(t, q.tasks)
}

func TestCoalescer_IgnoresEmptyKeyAndNilFunc(t *testing.T) {
	q := &manualQueue{}
	c := NewCoalescer(q.post)

	c.Post("", func() {})
	c.Post("geometry", nil)
	assert.Empty(t, q.tasks)
}

func TestNewCoalescer_RequiresPost(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}
