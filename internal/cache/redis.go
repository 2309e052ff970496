package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultPrefix namespaces every key written by the tracker.
const DefaultPrefix = "portfolio:"

// generationKey holds the invalidation counter. It has no TTL.
const generationKey = "generation"

// RedisStore keeps JSON-encoded aggregates in Redis with a fixed TTL.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return client, nil
}

// NewRedisStore wraps client; an empty prefix uses DefaultPrefix.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

// entry is the stored form of a cached value.
type entry struct {
	Generation int64           `json:"generation"`
	Value      json.RawMessage `json:"value"`
}

// Generation implements Store. The counter starts at zero.
func (s *RedisStore) Generation(ctx context.Context) (int64, error) {
	gen, err := s.client.Get(ctx, s.key(generationKey)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get implements Store. A missing key is not an error.
func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	vals, err := s.client.MGet(ctx, s.key(generationKey), s.key(key)).Result()
	if err != nil {
		return false, err
	}
	gen, err := parseGeneration(vals[0])
	if err != nil {
		return false, err
	}
	raw, ok := vals[1].(string)
	if !ok {
		return false, nil
	}
	return decodeEntry(key, []byte(raw), gen, dest)
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key string, gen int64, value interface{}) error {
	data, err := encodeEntry(gen, value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(key), data, s.ttl).Err()
}

// Invalidate implements Store. The generation bump and the deletes are sent
// as one MULTI/EXEC.
func (s *RedisStore) Invalidate(ctx context.Context) error {
	keys := make([]string, len(Keys))
	for i, k := range Keys {
		keys[i] = s.key(k)
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, s.key(generationKey))
		pipe.Del(ctx, keys...)
		return nil
	})
	return err
}

func parseGeneration(v interface{}) (int64, error) {
	switch g := v.(type) {
	case nil:
		return 0, nil
	case string:
		gen, err := strconv.ParseInt(g, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("corrupt cache generation %q: %w", g, err)
		}
		return gen, nil
	default:
		return 0, fmt.Errorf("unexpected cache generation type %T", v)
	}
}

func encodeEntry(gen int64, value interface{}) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(entry{Generation: gen, Value: raw})
}

// decodeEntry unmarshals data into dest when it belongs to generation gen.
func decodeEntry(key string, data []byte, gen int64, dest interface{}) (bool, error) {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return false, fmt.Errorf("corrupt cache entry %q: %w", key, err)
	}
	if e.Generation != gen {
		return false, nil
	}
	if err := json.Unmarshal(e.Value, dest); err != nil {
		return false, fmt.Errorf("corrupt cache entry %q: %w", key, err)
	}
	return true, nil
}

// Open returns a Redis-backed Store when rawURL is set and a no-op Store
// otherwise. The returned close function releases the connection.
func Open(ctx context.Context, rawURL string, ttl time.Duration) (Store, func() error, error) {
	if rawURL == "" {
		return NewNoopStore(), func() error { return nil }, nil
	}

	client, err := Connect(ctx, rawURL)
	if err != nil {
		return nil, nil, err
	}
	return NewRedisStore(client, DefaultPrefix, ttl), client.Close, nil
}
