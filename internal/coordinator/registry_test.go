package coordinator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellmindzone/telemed/internal/domain"
)

func TestRegistryRegisterAssignsUniqueIDs(t *testing.T) {
	reg := NewRegistry(4)

	c1 := reg.Register(nil)
	c2 := reg.Register(nil)
	assert.NotEqual(t, c1.ID, c2.ID)
	assert.Equal(t, 2, reg.Count())

	got, ok := reg.Get(c1.ID)
	require.True(t, ok)
	assert.Same(t, c1, got)
}

func TestRegistryRemoveIsIdempotent(t *testing.T) {
	reg := NewRegistry(4)
	c1 := reg.Register(nil)

	removed, ok := reg.Remove(c1.ID)
	require.True(t, ok)
	assert.Same(t, c1, removed)

	_, ok = reg.Remove(c1.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Count())
}

func TestRegistryLive(t *testing.T) {
	reg := NewRegistry(4)
	c1 := reg.Register(nil)

	assert.True(t, reg.Live(c1.ID))

	c1.Close()
	assert.False(t, reg.Live(c1.ID), "a closed connection is not live even while registered")

	assert.False(t, reg.Live("missing"))
}

func TestConnectionTrySendDropsWhenFullOrClosed(t *testing.T) {
	reg := NewRegistry(1)
	c1 := reg.Register(nil)

	assert.True(t, c1.TrySend(domain.Envelope{Type: "ping"}))
	assert.False(t, c1.TrySend(domain.Envelope{Type: "ping"}), "full buffer drops")

	c2 := reg.Register(nil)
	c2.Close()
	assert.False(t, c2.TrySend(domain.Envelope{Type: "ping"}), "closed connection drops")
}

func TestConnectionTouchAdvancesLastSeen(t *testing.T) {
	reg := NewRegistry(1)
	c1 := reg.Register(nil)

	before := c1.LastSeen()
	time.Sleep(5 * time.Millisecond)
	c1.Touch()

	assert.True(t, c1.LastSeen().After(before))
}

func TestConnectionCloseIsReentrant(t *testing.T) {
	reg := NewRegistry(1)
	c1 := reg.Register(nil)

	c1.Close()
	c1.Close()

	select {
	case <-c1.Done():
	default:
		t.Fatal("done channel must be closed")
	}
}
