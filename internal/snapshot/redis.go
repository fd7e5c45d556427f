package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
)

type redisStore struct {
	client *redis.Client
	key    string
}

// NewRedis stores the serialized cart under one namespaced key (DefaultKey if
// empty). A missing key loads as an empty cart; SET of the whole payload is
// atomic.
func NewRedis(client *redis.Client, key string) (port.SnapshotStore, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if key == "" {
		key = DefaultKey
	}

	return &redisStore{client: client, key: key}, nil
}

func (s *redisStore) Load(ctx context.Context) (domain.Cart, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("client.Get: %w", err)
	}

	cart, err := unmarshalCart(payload)
	if err != nil {
		// unreadable snapshot degrades to an empty cart
		return domain.Cart{}, nil
	}

	return cart, nil
}

func (s *redisStore) Save(ctx context.Context, cart domain.Cart) error {
	payload, err := marshalCart(cart)
	if err != nil {
		return fmt.Errorf("marshalCart: %w", err)
	}

	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}
