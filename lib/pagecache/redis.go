package pagecache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hltv:page:"

// Redis is a Cache shared between server replicas.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) Redis {
	return Redis{client: client}
}

// OpenRedis connects to a redis url (ex. redis://localhost:6379/0) and
// checks that it is reachable.
func OpenRedis(ctx context.Context, link string) (Redis, error) {
	opt, err := redis.ParseURL(link)
	if err != nil {
		return Redis{}, fmt.Errorf("pagecache: parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	err = client.Ping(ctx).Err()
	if err != nil {
		client.Close()
		return Redis{}, fmt.Errorf("pagecache: ping redis: %w", err)
	}
	return Redis{client: client}, nil
}

func (r Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return r.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

func (r Redis) Close() error {
	return r.client.Close()
}
