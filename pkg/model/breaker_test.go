package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewBreakerWithConfig(3, time.Hour)

	assert.True(t, b.Allow("p"))

	b.RecordFailure("p", ErrorClassTransient)
	b.RecordFailure("p", ErrorClassTransient)
	assert.True(t, b.Allow("p"), "below threshold stays closed")

	b.RecordFailure("p", ErrorClassTransient)
	assert.False(t, b.Allow("p"), "threshold reached opens circuit")
}

func TestBreaker_PermanentErrorsDoNotCount(t *testing.T) {
	b := NewBreakerWithConfig(2, time.Hour)

	for i := 0; i < 10; i++ {
		b.RecordFailure("p", ErrorClassPermanent)
	}
	assert.True(t, b.Allow("p"))
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	b := NewBreakerWithConfig(1, 10*time.Millisecond)

	b.RecordFailure("p", ErrorClassRateLimited)
	assert.False(t, b.Allow("p"))

	time.Sleep(20 * time.Millisecond)

	// Cooldown elapsed: one probe allowed, a second is not
	assert.True(t, b.Allow("p"))
	assert.False(t, b.Allow("p"))

	// Failed probe re-opens immediately
	b.RecordFailure("p", ErrorClassTransient)
	assert.False(t, b.Allow("p"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, b.Allow("p"))

	// Successful probe closes the circuit fully
	b.RecordSuccess("p")
	assert.True(t, b.Allow("p"))
	assert.True(t, b.Allow("p"))
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := NewBreakerWithConfig(3, time.Hour)

	b.RecordFailure("p", ErrorClassTransient)
	b.RecordFailure("p", ErrorClassTransient)
	b.RecordSuccess("p")
	b.RecordFailure("p", ErrorClassTransient)
	b.RecordFailure("p", ErrorClassTransient)

	assert.True(t, b.Allow("p"))
}

func TestBreaker_ProvidersAreIndependent(t *testing.T) {
	b := NewBreakerWithConfig(1, time.Hour)

	b.RecordFailure("a", ErrorClassTransient)
	assert.False(t, b.Allow("a"))
	assert.True(t, b.Allow("b"))
}
