package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewResult(t *testing.T) {
	now := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	limit := Limit{Requests: 3, Window: time.Minute}

	r := NewResult(3, limit, now.Add(20*time.Second), now)
	assert.True(t, r.Allowed)
	assert.Equal(t, 0, r.Remaining)
	assert.Zero(t, r.RetryAfter)

	r = NewResult(4, limit, now.Add(20*time.Second), now)
	assert.False(t, r.Allowed)
	assert.Equal(t, 0, r.Remaining)
	assert.Equal(t, 20, r.RetryAfter)

	r = NewResult(9, limit, now.Add(100*time.Millisecond), now)
	assert.Equal(t, 1, r.RetryAfter)
}

func TestNewKey(t *testing.T) {
	assert.Equal(t, "ratelimit:track:203.0.113.9", NewKey(ClassTrack, "203.0.113.9"))
	assert.Equal(t, "ratelimit:login:2001_db8__1", NewKey(ClassLogin, "2001:db8::1"))
}

func TestEndpointClass(t *testing.T) {
	assert.True(t, ClassProfile.IsValid())
	assert.False(t, EndpointClass("admin").IsValid())
	assert.True(t, Limit{}.Disabled())
	assert.False(t, Limit{Requests: 1, Window: time.Second}.Disabled())
}
