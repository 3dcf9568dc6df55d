package quota

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps counters in Redis, one key per client with a TTL equal
// to the window.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Increment runs INCR and PTTL in one round trip and sets the expiry only
// when the key has none, so later uses never extend a window.
func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	remaining := ttl.Val()
	if remaining < 0 {
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		remaining = window
	}
	return int(incr.Val()), resetAt(remaining), nil
}

// decrementScript drops the key instead of leaving a zero or negative
// counter, including one DECR would create after the key expired.
var decrementScript = redis.NewScript(`
local n = redis.call('DECR', KEYS[1])
if n <= 0 then
	redis.call('DEL', KEYS[1])
end
return n
`)

// Decrement runs DECR and the cleanup in one script so no INCR interleaves.
func (s *RedisStore) Decrement(ctx context.Context, key string) error {
	return decrementScript.Run(ctx, s.client, []string{key}).Err()
}

func resetAt(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(ttl)
}
