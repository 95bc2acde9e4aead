package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen/carinsurance-service/internal/ports"
)

// DefaultRedisKey is the key sweep leases are stored under.
const DefaultRedisKey = "carinsurance:sweeper:lock"

// DefaultRedisTTL bounds how long a crashed holder can block other replicas.
const DefaultRedisTTL = 10 * time.Minute

// releaseScript deletes the key only if it still holds the caller's token, so
// a holder whose lease expired cannot release a lease taken by someone else.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lease-based lock shared by all replicas using the same server.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisOption configures a Redis lock.
type RedisOption func(*Redis)

// WithKey overrides the lease key.
func WithKey(key string) RedisOption {
	return func(r *Redis) {
		if key != "" {
			r.key = key
		}
	}
}

// WithTTL overrides the lease duration.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// NewRedis creates a lock on client.
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{client: client, key: DefaultRedisKey, ttl: DefaultRedisTTL}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// NewRedisFromURL parses url, verifies the server answers and returns a lock
// on it. The caller owns the returned client.
func NewRedisFromURL(ctx context.Context, url string, opts ...RedisOption) (*Redis, *redis.Client, error) {
	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(redisOpts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewRedis(client, opts...), client, nil
}

// TryAcquire implements ports.SweepLock.
func (r *Redis) TryAcquire(ctx context.Context) (ports.ReleaseFunc, bool, error) {
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, r.key, token, r.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("setnx %s: %w", r.key, err)
	}

	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		err := releaseScript.Run(ctx, r.client, []string{r.key}, token).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("releasing %s: %w", r.key, err)
		}

		return nil
	}

	return release, true, nil
}

// Name implements ports.HealthChecker.
func (r *Redis) Name() string {
	return "redis"
}

// Check implements ports.HealthChecker.
func (r *Redis) Check(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
