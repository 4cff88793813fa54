package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// nextScript increments the counter and lifts it past floor when it lags
// behind the orders table, in one atomic step.
var nextScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
local floor = tonumber(ARGV[1])
if n <= floor then
	n = floor + 1
	redis.call('SET', KEYS[1], n)
end
return n
`)

// RedisSequence hands out numbers with INCR. Floor reports the highest stored
// order number; the counter never returns a value at or below it.
type RedisSequence struct {
	client *redis.Client
	key    string
	floor  func(ctx context.Context) (int, error)
}

func NewRedisSequence(client *redis.Client, key string, floor func(ctx context.Context) (int, error)) *RedisSequence {
	return &RedisSequence{client: client, key: key, floor: floor}
}

// NewRedisClient dials lazily; Ping is left to the caller.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (s *RedisSequence) Next(ctx context.Context) (int, error) {
	floor := 0
	if s.floor != nil {
		max, err := s.floor(ctx)
		if err != nil {
			return 0, fmt.Errorf("floor %s: %w", s.key, err)
		}
		floor = max
	}
	n, err := nextScript.Run(ctx, s.client, []string{s.key}, floor).Int()
	if err != nil {
		return 0, fmt.Errorf("redis next %s: %w", s.key, err)
	}
	return n, nil
}
