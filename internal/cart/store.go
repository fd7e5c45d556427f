package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
)

// Store is the cart consistency engine. It owns the in-memory cart and keeps
// it in lockstep with the durable snapshot: a mutation is committed only after
// the snapshot write succeeds, and a rejected or failed mutation leaves both
// representations untouched.
//
// Operations are serialized by the store's mutex, which is held across the
// stock/catalog fetches. Validation therefore always runs against the same
// cart the next state is computed from; a second operation can never observe
// or interleave with a half-finished one.
type Store struct {
	mu   sync.Mutex
	cart domain.Cart

	snapshots port.SnapshotStore
	stock     port.StockSource
	catalog   port.CatalogSource
}

// New loads the durable snapshot and returns a store seeded with it. A missing
// or unparsable snapshot seeds an empty cart; only a transport failure from
// the snapshot store is an error.
func New(ctx context.Context, snapshots port.SnapshotStore, stock port.StockSource, catalog port.CatalogSource) (*Store, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshots is nil")
	}
	if stock == nil {
		return nil, fmt.Errorf("stock is nil")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}

	loaded, err := snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshots.Load: %w", err)
	}

	return &Store{
		cart:      loaded,
		snapshots: snapshots,
		stock:     stock,
		catalog:   catalog,
	}, nil
}

// Cart returns a copy of the current cart for read-only use.
func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}

// Len returns the number of lines in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.cart.Lines)
}

// AddOne adds one unit of a product, merging into the existing line if the
// product is already in the cart. The candidate quantity is checked against
// the stock ceiling observed now; display attributes are fetched from the
// catalog only when a new line is created.
func (s *Store) AddOne(ctx context.Context, productID uuid.UUID) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, found := s.cart.Find(productID)

	candidate := 1
	if found {
		candidate = existing.Quantity + 1
	}

	stock, err := s.stock.GetStock(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%w: stock.GetStock(%s): %v", ErrFetch, productID, err)
	}

	if candidate > stock.Available {
		return domain.Cart{}, fmt.Errorf("%w: want %d of %s, available %d",
			ErrInsufficientStock, candidate, productID, stock.Available)
	}

	var next domain.Cart
	if found {
		next = s.cart.WithQuantity(productID, candidate)
	} else {
		product, err := s.catalog.GetProduct(ctx, productID)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("%w: catalog.GetProduct(%s): %v", ErrFetch, productID, err)
		}

		next = s.cart.WithLine(domain.CartLine{
			ProductID: product.ProductID,
			Title:     product.Title,
			Price:     product.Price,
			ImageRef:  product.ImageRef,
			Quantity:  1,
		})
	}

	return s.commit(ctx, next)
}

// RemoveProduct deletes the product's line from the cart.
func (s *Store) RemoveProduct(ctx context.Context, productID uuid.UUID) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.cart.Find(productID); !found {
		return domain.Cart{}, fmt.Errorf("%w: %s", ErrNotFound, productID)
	}

	return s.commit(ctx, s.cart.Without(productID))
}

// SetQuantity replaces a line's quantity with an absolute value. A quantity
// below 1 is a no-op: the current cart is returned with changed=false and the
// line is left alone, removal intent belongs to RemoveProduct.
func (s *Store) SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) (_ domain.Cart, changed bool, _ error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.cart.Find(productID); !found {
		return domain.Cart{}, false, fmt.Errorf("%w: %s", ErrNotFound, productID)
	}

	if quantity < 1 {
		return s.cart.Clone(), false, nil
	}

	stock, err := s.stock.GetStock(ctx, productID)
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("%w: stock.GetStock(%s): %v", ErrFetch, productID, err)
	}

	if quantity > stock.Available {
		return domain.Cart{}, false, fmt.Errorf("%w: want %d of %s, available %d",
			ErrInsufficientStock, quantity, productID, stock.Available)
	}

	next, err := s.commit(ctx, s.cart.WithQuantity(productID, quantity))
	if err != nil {
		return domain.Cart{}, false, err
	}

	return next, true, nil
}

// commit persists next and only then makes it the in-memory cart. Callers
// hold the mutex.
func (s *Store) commit(ctx context.Context, next domain.Cart) (domain.Cart, error) {
	if err := s.snapshots.Save(ctx, next); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: snapshots.Save: %v", ErrPersistence, err)
	}

	s.cart = next
	return next.Clone(), nil
}
