package coordinator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStreamLimiterAllowsWithinLimit(t *testing.T) {
	rl := NewStreamLimiter(2, time.Minute)

	assert.True(t, rl.Allow("conn-1"))
	assert.True(t, rl.Allow("conn-1"))
	assert.False(t, rl.Allow("conn-1"))

	// other connections have their own window
	assert.True(t, rl.Allow("conn-2"))
}

func TestStreamLimiterWindowSlides(t *testing.T) {
	rl := NewStreamLimiter(2, 50*time.Millisecond)

	assert.True(t, rl.Allow("conn-1"))
	assert.True(t, rl.Allow("conn-1"))
	assert.False(t, rl.Allow("conn-1"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("conn-1"))
}

func TestStreamLimiterForget(t *testing.T) {
	rl := NewStreamLimiter(1, time.Minute)

	assert.True(t, rl.Allow("conn-1"))
	assert.False(t, rl.Allow("conn-1"))

	rl.Forget("conn-1")
	assert.True(t, rl.Allow("conn-1"))
}
