// internal/domain/cart/slot.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

// ErrSlotEmpty is returned by Slot.Get when nothing is stored
var ErrSlotEmpty = errors.New("cart slot is empty")

// Slot is a single durable key holding one serialized cart
type Slot interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
	Delete(ctx context.Context) error
}

// SlotKey builds the storage key for a session, e.g. weirdbites_cart:<session>
func SlotKey(prefix, sessionID string) string {
	return fmt.Sprintf("%s:%s", prefix, sessionID)
}

// RedisSlot stores the snapshot under one Redis key
type RedisSlot struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

// NewRedisSlot creates a slot for key. A zero ttl leaves the key without expiry.
func NewRedisSlot(client redis.Cmdable, key string, ttl time.Duration) *RedisSlot {
	return &RedisSlot{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (s *RedisSlot) Get(ctx context.Context) (string, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSlotEmpty
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", s.key)
	}
	return value, nil
}

func (s *RedisSlot) Set(ctx context.Context, value string) error {
	if err := s.client.Set(ctx, s.key, value, s.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write %s", s.key)
	}
	return nil
}

func (s *RedisSlot) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete %s", s.key)
	}
	return nil
}

// NopSlot never stores anything; carts built on it last for one request
type NopSlot struct{}

func (NopSlot) Get(context.Context) (string, error) { return "", ErrSlotEmpty }
func (NopSlot) Set(context.Context, string) error   { return nil }
func (NopSlot) Delete(context.Context) error        { return nil }
