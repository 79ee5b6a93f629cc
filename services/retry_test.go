package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicyDelayGrowsExponentially(t *testing.T) {
	policy := RetryPolicy{
		InitialDelay:  time.Second,
		MaxDelay:      time.Minute,
		BackoffFactor: 2,
	}

	assert.Equal(t, time.Second, policy.Delay(1))
	assert.Equal(t, 2*time.Second, policy.Delay(2))
	assert.Equal(t, 4*time.Second, policy.Delay(3))
	assert.Equal(t, 8*time.Second, policy.Delay(4))
}

func TestRetryPolicyDelayClampsToMax(t *testing.T) {
	policy := RetryPolicy{
		InitialDelay:  time.Second,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 3,
	}

	assert.Equal(t, 5*time.Second, policy.Delay(3))
	assert.Equal(t, 5*time.Second, policy.Delay(10))
}

func TestRetryPolicyDelayDefaultsOnZeroValues(t *testing.T) {
	var policy RetryPolicy
	assert.Equal(t, time.Second, policy.Delay(1))
	assert.Equal(t, time.Second, policy.Delay(0))
}
