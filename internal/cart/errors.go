package cart

import "errors"

// Classified outcomes for rejected operations. Callers match with errors.Is
// and map each kind to a fixed user-facing message; the engine never produces
// message text of its own.
var (
	// ErrNotFound: the operation referenced a product absent from the cart.
	ErrNotFound = errors.New("product not in cart")

	// ErrInsufficientStock: the requested quantity exceeds the last-observed
	// remote availability.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrFetch: the remote stock or catalog query failed.
	ErrFetch = errors.New("remote fetch failed")

	// ErrPersistence: the snapshot write failed after validation passed.
	ErrPersistence = errors.New("snapshot save failed")
)
