package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/breakthecode/server/internal/dependencies/mocks"
)

func TestAllowUpToMax(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	limiter := New(clk)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("conn-1", "createRoom", 5), "attempt %d", i+1)
	}
	assert.False(t, limiter.Allow("conn-1", "createRoom", 5))
}

func TestWindowExpiryFreesBudget(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	limiter := New(clk)

	for i := 0; i < 5; i++ {
		limiter.Allow("conn-1", "createRoom", 5)
	}
	assert.False(t, limiter.Allow("conn-1", "createRoom", 5))

	clk.Advance(Window + time.Second)
	assert.True(t, limiter.Allow("conn-1", "createRoom", 5))
}

func TestPartialExpiry(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	limiter := New(clk)

	// Three early actions, two late ones
	for i := 0; i < 3; i++ {
		limiter.Allow("conn-1", "makeGuess", 5)
	}
	clk.Advance(50 * time.Second)
	limiter.Allow("conn-1", "makeGuess", 5)
	limiter.Allow("conn-1", "makeGuess", 5)

	// Another 11s expires the first three, leaving room again
	clk.Advance(11 * time.Second)
	assert.True(t, limiter.Allow("conn-1", "makeGuess", 5))
}

func TestActionsAreIndependent(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	limiter := New(clk)

	for i := 0; i < 5; i++ {
		limiter.Allow("conn-1", "createRoom", 5)
	}
	assert.False(t, limiter.Allow("conn-1", "createRoom", 5))
	assert.True(t, limiter.Allow("conn-1", "joinRoom", 10))
}

func TestKeysAreIndependent(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	limiter := New(clk)

	for i := 0; i < 5; i++ {
		limiter.Allow("conn-1", "createRoom", 5)
	}
	assert.False(t, limiter.Allow("conn-1", "createRoom", 5))
	assert.True(t, limiter.Allow("conn-2", "createRoom", 5))
}

func TestForgetClearsAllActionsForKey(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	limiter := New(clk)

	for i := 0; i < 6; i++ {
		limiter.Allow("conn-1", "createRoom", 5)
		limiter.Allow("conn-1", "makeGuess", 5)
	}
	limiter.Allow("conn-2", "createRoom", 5)

	limiter.Forget("conn-1")

	assert.True(t, limiter.Allow("conn-1", "createRoom", 5))
	assert.True(t, limiter.Allow("conn-1", "makeGuess", 5))

	// Other keys keep their history
	for i := 0; i < 4; i++ {
		limiter.Allow("conn-2", "createRoom", 5)
	}
	assert.False(t, limiter.Allow("conn-2", "createRoom", 5))
}
