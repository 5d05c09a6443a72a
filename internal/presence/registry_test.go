package presence

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiTabPresence(t *testing.T) {
	r := NewRegistry()

	// First connection flips the user online.
	assert.True(t, r.Add("u1", "conn-a"))
	assert.True(t, r.IsOnline("u1"))

	// A second tab does not produce another online edge.
	assert.False(t, r.Add("u1", "conn-b"))
	assert.Equal(t, 2, r.ConnectionCount("u1"))

	// Closing one tab keeps the user online.
	assert.False(t, r.Remove("u1", "conn-a"))
	assert.True(t, r.IsOnline("u1"))

	// Closing the last tab is the offline edge.
	assert.True(t, r.Remove("u1", "conn-b"))
	assert.False(t, r.IsOnline("u1"))
	assert.Equal(t, 0, r.ConnectionCount("u1"))
}

func TestRemoveUnknownConnection(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Remove("ghost", "conn-a"))

	r.Add("u1", "conn-a")
	assert.False(t, r.Remove("u1", "conn-b"))
	assert.True(t, r.IsOnline("u1"))
}

func TestOnlineCount(t *testing.T) {
	r := NewRegistry()

	r.Add("u1", "a")
	r.Add("u1", "b")
	r.Add("u2", "c")
	assert.Equal(t, 2, r.OnlineCount())

	r.Remove("u1", "a")
	r.Remove("u1", "b")
	assert.Equal(t, 1, r.OnlineCount())
}

func TestConcurrentAddRemove(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			connID := fmt.Sprintf("conn-%d", n)
			r.Add("u1", connID)
			r.Remove("u1", connID)
		}(i)
	}
	wg.Wait()

	assert.False(t, r.IsOnline("u1"))
}
