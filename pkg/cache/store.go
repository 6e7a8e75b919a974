package cache

import (
	"context"
	"errors"
	"github.com/clambin/go-common/cache"
	"github.com/redis/go-redis/v9"
	"time"
)

// A Store holds serialized responses until they expire.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}

var _ Store = &MemoryStore{}

// MemoryStore keeps responses in process memory.
type MemoryStore struct {
	cache *cache.Cache[string, []byte]
}

func NewMemoryStore(expiration, cleanup time.Duration) *MemoryStore {
	return &MemoryStore{cache: cache.New[string, []byte](expiration, cleanup)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, found := m.cache.Get(key)
	return value, found, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.cache.Add(key, value)
	return nil
}

func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Len returns the number of entries, excluding expired ones.
func (m *MemoryStore) Len() int {
	return m.cache.Len()
}

var _ Store = &RedisStore{}

// RedisStore keeps responses in Redis, so that replicas share the same responses.
type RedisStore struct {
	Namespace  string
	Client     RedisClient
	Expiration time.Duration
}

type RedisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

func NewRedisStore(client RedisClient, namespace string, expiration time.Duration) *RedisStore {
	return &RedisStore{
		Namespace:  namespace,
		Client:     client,
		Expiration: expiration,
	}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := r.Client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	return body, err == nil, err
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return r.Client.Set(ctx, r.key(key), value, r.Expiration).Err()
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *RedisStore) key(key string) string {
	return r.Namespace + "|" + key
}
