package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the key, starts its expiry on the first hit
// and returns the new count with the remaining window in milliseconds.
const fixedWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {current, ttl}
`

// Store keeps fixed-window counters in Redis so every instance shares them.
type Store struct {
	client redis.Scripter
	script *redis.Script
	now    func() time.Time
}

func New(client redis.Scripter) *Store {
	return &Store{
		client: client,
		script: redis.NewScript(fixedWindowScript),
		now:    time.Now,
	}
}

// Increment adds one hit to the key's current window and returns the count
// including this hit and when the window resets.
func (s *Store) Increment(ctx context.Context, key string, ttl time.Duration) (int, time.Time, error) {
	ms := ttl.Milliseconds()
	if ms <= 0 {
		ms = 1
	}
	res, err := s.script.Run(ctx, s.client, []string{key}, ms).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("rate limit script: %w", err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, fmt.Errorf("rate limit script: unexpected reply %v", res)
	}
	return int(res[0]), s.now().Add(time.Duration(res[1]) * time.Millisecond), nil
}
