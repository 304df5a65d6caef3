package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
)

// DefaultCartKey is the fixed storage key the cart is serialized under.
const DefaultCartKey = "cart"

// RedisConfig holds the Redis connection parameters, filled from the
// environment by envconfig. URL is optional; when empty the service
// falls back to file storage.
type RedisConfig struct {
	URL          string
	ReadTimeout  int `split_words:"true" default:"3"`
	WriteTimeout int `split_words:"true" default:"3"`
	DialTimeout  int `split_words:"true" default:"5"`
}

// New builds and pings a Redis client from the config.
func (c *RedisConfig) New() (*redis.Client, error) {
	opts, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, err
	}

	opts.ReadTimeout = time.Duration(c.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(c.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(c.DialTimeout) * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// RedisCartRepo stores the whole cart as one JSON value under a fixed
// key.
type RedisCartRepo struct {
	client *redis.Client
	key    string
}

// NewRedisCartRepo constructs a RedisCartRepo. An empty key falls back
// to DefaultCartKey.
func NewRedisCartRepo(client *redis.Client, key string) *RedisCartRepo {
	if key == "" {
		key = DefaultCartKey
	}
	return &RedisCartRepo{client: client, key: key}
}

// Save replaces the stored cart with the given lines. The value has no
// expiry: the cart survives until checkout clears it.
func (r *RedisCartRepo) Save(ctx context.Context, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("write cart key: %w", err)
	}
	return nil
}

// Load reads the stored cart. A missing key yields an empty cart; a
// malformed value yields an error.
func (r *RedisCartRepo) Load(ctx context.Context) ([]domain.CartLine, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart key: %w", err)
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode cart value: %w", err)
	}
	return lines, nil
}
