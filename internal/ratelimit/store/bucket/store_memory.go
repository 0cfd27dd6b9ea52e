package bucket

import (
	"context"
	"sync"
	"time"
)

// InMemoryBucketStore counts requests per key in fixed windows. It is the
// single-process fallback for the Redis store.
type InMemoryBucketStore struct {
	mu      sync.Mutex
	buckets map[string]*window
	now     func() time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

type Option func(*InMemoryBucketStore)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *InMemoryBucketStore) {
		s.now = now
	}
}

func New(opts ...Option) *InMemoryBucketStore {
	s := &InMemoryBucketStore{
		buckets: make(map[string]*window),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Increment adds one hit to the key's current window, opening a new window
// when the previous one has expired. It returns the count including this hit
// and when the window resets.
func (s *InMemoryBucketStore) Increment(_ context.Context, key string, ttl time.Duration) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w := s.buckets[key]
	if w == nil || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(ttl)}
		s.buckets[key] = w
	}
	w.count++
	return w.count, w.resetAt, nil
}

// Reset clears the counter for a key.
func (s *InMemoryBucketStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

// Sweep drops expired windows and returns how many were removed.
func (s *InMemoryBucketStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for k, w := range s.buckets {
		if !now.Before(w.resetAt) {
			delete(s.buckets, k)
			removed++
		}
	}
	return removed
}

// StartCleanup sweeps expired windows until ctx is cancelled.
func (s *InMemoryBucketStore) StartCleanup(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Len returns the number of tracked keys.
func (s *InMemoryBucketStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}
