package rediscache

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"recruitads/internal/core/port"
)

// Cache keeps role embeddings and industry labels in Redis so they survive
// restarts and are shared between replicas. It implements port.VectorCache
// and port.LabelCache.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCache returns a cache writing keys under prefix. A zero ttl keeps
// entries until flushed.
func NewCache(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

func (c *Cache) vectorKey(key string) string { return c.prefix + "vec:" + key }

func (c *Cache) GetVector(ctx context.Context, key string) ([]float32, bool, error) {
	b, err := c.client.Get(ctx, c.vectorKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(b)%4 != 0 {
		return nil, false, fmt.Errorf("corrupt vector under %q: %d bytes", key, len(b))
	}
	vec := make([]float32, len(b)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, true, nil
}

func (c *Cache) SetVector(ctx context.Context, key string, vec []float32) error {
	b := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return c.client.Set(ctx, c.vectorKey(key), b, c.ttl).Err()
}

// Flush deletes every cached vector. Labels are kept.
func (c *Cache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.vectorKey("*"), 500).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 500 {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return c.client.Del(ctx, batch...).Err()
	}
	return nil
}

var (
	_ port.VectorCache = (*Cache)(nil)
	_ port.LabelCache  = (*Cache)(nil)
)
