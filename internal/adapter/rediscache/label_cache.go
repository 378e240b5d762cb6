package rediscache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

func (c *Cache) labelKey(key string) string { return c.prefix + "industry:" + key }

func (c *Cache) GetLabel(ctx context.Context, key string) (string, bool, error) {
	label, err := c.client.Get(ctx, c.labelKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return label, true, nil
}

func (c *Cache) SetLabel(ctx context.Context, key, label string) error {
	return c.client.Set(ctx, c.labelKey(key), label, c.ttl).Err()
}
