package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryDelay(t *testing.T) {
	q := DefaultQueueConfig()

	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{"first attempt", 1, 2 * time.Second},
		{"second attempt doubles", 2, 4 * time.Second},
		{"third attempt doubles again", 3, 8 * time.Second},
		{"fourth attempt capped", 4, 10 * time.Second},
		{"far beyond cap", 10, 10 * time.Second},
		{"zero treated as first", 0, 2 * time.Second},
		{"negative treated as first", -3, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, q.RetryDelay(tt.attempt))
		})
	}
}

func TestRetryDelayCustomCap(t *testing.T) {
	q := &QueueConfig{
		RetryBackoffBase: 1 * time.Second,
		RetryBackoffCap:  3 * time.Second,
	}
	assert.Equal(t, 1*time.Second, q.RetryDelay(1))
	assert.Equal(t, 2*time.Second, q.RetryDelay(2))
	assert.Equal(t, 3*time.Second, q.RetryDelay(3))
	assert.Equal(t, 3*time.Second, q.RetryDelay(4))
}
