package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
)

// DefaultKey namespaces the single snapshot row so unrelated tools sharing the
// table cannot collide with it.
const DefaultKey = "shopcart:cart"

type postgresStore struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgres stores the snapshot as a single jsonb row in the cart_snapshots
// table, keyed by key (DefaultKey if empty). The row upsert is atomic, so a
// concurrent Load sees the old or the new payload, never a mix.
func NewPostgres(pool *pgxpool.Pool, key string) (port.SnapshotStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if key == "" {
		key = DefaultKey
	}

	return &postgresStore{pool: pool, key: key}, nil
}

func (s *postgresStore) Load(ctx context.Context) (domain.Cart, error) {
	var payload []byte

	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM cart_snapshots WHERE key = $1`, s.key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("pool.QueryRow: %w", err)
	}

	cart, err := unmarshalCart(payload)
	if err != nil {
		// unreadable snapshot degrades to an empty cart
		return domain.Cart{}, nil
	}

	return cart, nil
}

func (s *postgresStore) Save(ctx context.Context, cart domain.Cart) error {
	payload, err := marshalCart(cart)
	if err != nil {
		return fmt.Errorf("marshalCart: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO cart_snapshots (key, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		s.key, payload)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}
