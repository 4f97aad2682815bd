package mainloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimersRunInDeadlineOrder(t *testing.T) {
	tm := NewTimers()
	var order []string
	tm.PostAt("b", 20*time.Millisecond, func() { order = append(order, "b") })
	tm.PostAt("a", 10*time.Millisecond, func() { order = append(order, "a") })
	tm.PostAt("c", 30*time.Millisecond, func() { order = append(order, "c") })

	next, ok := tm.Next()
	assert.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, next)

	assert.Equal(t, 2, tm.RunDue(20*time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 1, tm.Len())
}

func TestTimersRepostReplaces(t *testing.T) {
	tm := NewTimers()
	fired := 0
	tm.PostAt("deferring-done", 10*time.Millisecond, func() { fired += 1 })
	tm.PostAt("deferring-done", 50*time.Millisecond, func() { fired += 10 })

	assert.Equal(t, 0, tm.RunDue(20*time.Millisecond))
	assert.Equal(t, 1, tm.RunDue(50*time.Millisecond))
	assert.Equal(t, 10, fired)
	assert.False(t, tm.Has("deferring-done"))
}

func TestTimersRemove(t *testing.T) {
	tm := NewTimers()
	tm.PostAt("x", 0, func() { t.Fatal("removed timer ran") })
	tm.Remove("x")
	tm.Remove("missing")
	assert.Equal(t, 0, tm.RunDue(time.Second))
}

func TestTimersCallbackMayPostDueTimer(t *testing.T) {
	tm := NewTimers()
	var order []string
	tm.PostAt("first", 0, func() {
		order = append(order, "first")
		tm.PostAt("second", 0, func() { order = append(order, "second") })
	})

	assert.Equal(t, 2, tm.RunDue(0))
	assert.Equal(t, []string{"first", "second"}, order)
}
