package domain

import (
	"github.com/google/uuid"
)

// Product is the catalog's view of a product: the display attributes a new
// cart line is built from. Fetched on demand, never persisted.
type Product struct {
	ProductID uuid.UUID
	Title     string
	Price     Money
	ImageRef  string
}

// StockInfo is the stock source's answer for one product. Available is the
// stock ceiling at the moment of the query; it is not persisted and lines in
// the cart are not re-validated against later observations.
type StockInfo struct {
	ProductID uuid.UUID
	Available int
}
