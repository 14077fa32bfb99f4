package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceClaimAndLookup(t *testing.T) {
	p := NewPresence()

	evicted := p.Claim("a@x.com", "conn-1")
	assert.Empty(t, evicted)

	connID, ok := p.ConnectionOf("a@x.com")
	require.True(t, ok)
	assert.Equal(t, "conn-1", connID)

	identity, ok := p.IdentityOf("conn-1")
	require.True(t, ok)
	assert.Equal(t, "a@x.com", identity)
}

func TestPresenceClaimDisplacesOlderConnection(t *testing.T) {
	p := NewPresence()

	p.Claim("a@x.com", "conn-1")
	evicted := p.Claim("a@x.com", "conn-2")
	assert.Equal(t, "conn-1", evicted)

	connID, _ := p.ConnectionOf("a@x.com")
	assert.Equal(t, "conn-2", connID)

	_, ok := p.IdentityOf("conn-1")
	assert.False(t, ok, "displaced connection must not keep a reverse mapping")
}

func TestPresenceReclaimBySameConnection(t *testing.T) {
	p := NewPresence()

	p.Claim("a@x.com", "conn-1")
	evicted := p.Claim("a@x.com", "conn-1")
	assert.Empty(t, evicted)
}

func TestPresenceRelease(t *testing.T) {
	p := NewPresence()

	p.Claim("a@x.com", "conn-1")
	identity, ok := p.Release("conn-1")
	require.True(t, ok)
	assert.Equal(t, "a@x.com", identity)

	_, ok = p.ConnectionOf("a@x.com")
	assert.False(t, ok)

	_, ok = p.Release("conn-1")
	assert.False(t, ok)
}

func TestPresenceReleaseOfStaleConnectionKeepsNewMapping(t *testing.T) {
	p := NewPresence()

	p.Claim("a@x.com", "conn-1")
	p.Claim("a@x.com", "conn-2")

	// a late release from the displaced connection must not clobber the
	// identity's new owner
	_, ok := p.Release("conn-1")
	assert.False(t, ok)

	connID, ok := p.ConnectionOf("a@x.com")
	require.True(t, ok)
	assert.Equal(t, "conn-2", connID)
}
