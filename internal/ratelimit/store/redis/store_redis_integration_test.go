//go:build integration

package redis_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	ratelimitredis "maricheck/internal/ratelimit/store/redis"
	"maricheck/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *ratelimitredis.Store
	ctx   context.Context
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = ratelimitredis.New(s.redis.Client)
	s.ctx = context.Background()
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *RedisStoreSuite) TestIncrementCountsAndExpires() {
	start := time.Now()
	for i := 1; i <= 3; i++ {
		count, resetAt, err := s.store.Increment(s.ctx, "ratelimit:track:1.2.3.4", time.Minute)
		s.Require().NoError(err)
		s.Equal(i, count)
		s.WithinDuration(start.Add(time.Minute), resetAt, 2*time.Second)
	}

	ttl, err := s.redis.Client.PTTL(s.ctx, "ratelimit:track:1.2.3.4").Result()
	s.Require().NoError(err)
	s.Positive(ttl)
	s.LessOrEqual(ttl, time.Minute)
}

func (s *RedisStoreSuite) TestWindowRollsOver() {
	_, _, err := s.store.Increment(s.ctx, "ratelimit:login:1.2.3.4", 200*time.Millisecond)
	s.Require().NoError(err)

	s.Eventually(func() bool {
		n, err := s.redis.Client.Exists(s.ctx, "ratelimit:login:1.2.3.4").Result()
		return err == nil && n == 0
	}, 2*time.Second, 50*time.Millisecond)

	count, _, err := s.store.Increment(s.ctx, "ratelimit:login:1.2.3.4", 200*time.Millisecond)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *RedisStoreSuite) TestConcurrentIncrementsAreAtomic() {
	var wg sync.WaitGroup
	for range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.store.Increment(s.ctx, "ratelimit:register:9.9.9.9", time.Minute)
			s.NoError(err)
		}()
	}
	wg.Wait()

	count, _, err := s.store.Increment(s.ctx, "ratelimit:register:9.9.9.9", time.Minute)
	s.Require().NoError(err)
	s.Equal(41, count)
}

func (s *RedisStoreSuite) TestOneKeyPerClientAndClass() {
	for _, key := range []string{"ratelimit:track:1.1.1.1", "ratelimit:track:1.1.1.1", "ratelimit:profile:1.1.1.1"} {
		_, _, err := s.store.Increment(s.ctx, key, time.Minute)
		s.Require().NoError(err)
	}
	keys, err := s.redis.Keys(s.ctx, "ratelimit:*")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"ratelimit:track:1.1.1.1", "ratelimit:profile:1.1.1.1"}, keys)
}
