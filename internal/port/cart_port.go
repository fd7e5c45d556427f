package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
)

// SnapshotStore persists the whole cart under a single namespaced key.
// Load returns an empty cart when no snapshot exists or the stored payload
// cannot be parsed; corruption is degraded, not raised. The only errors Load
// may return are transport-level. Save is atomic with respect to Load: a
// concurrent Load observes the fully-old or fully-new snapshot, never a
// partial write.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}

// StockSource answers how many units of a product are available right now.
type StockSource interface {
	GetStock(ctx context.Context, productID uuid.UUID) (domain.StockInfo, error)
}

// CatalogSource resolves a product's display attributes.
type CatalogSource interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
}

// CartStore is the consistency engine: three serialized mutations over one
// cart, each committed to the snapshot store before it is visible in memory.
type CartStore interface {
	Cart() domain.Cart
	AddOne(ctx context.Context, productID uuid.UUID) (domain.Cart, error)
	RemoveProduct(ctx context.Context, productID uuid.UUID) (domain.Cart, error)
	SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) (domain.Cart, bool, error)
}
