package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidProduct indicates a product reference that does not resolve
	// in the catalog.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidQuantity indicates a quantity below 1. Setting a line to
	// zero is a caller error, not an implicit removal.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrNotOwner indicates a cart line that does not belong to the
	// requesting user's cart.
	ErrNotOwner = errors.New("cart line not owned by user")

	// ErrEmptyCart indicates a checkout attempt against a cart with no
	// lines. A concurrent checkout that already consumed the cart surfaces
	// the same way, which is what keeps a double submit from producing two
	// orders.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrStaleCartItem indicates a cart line whose product no longer
	// resolves in the catalog.
	ErrStaleCartItem = errors.New("cart item no longer available")

	// ErrCartChanged indicates the cart was mutated between the checkout
	// read and the commit; the caller should reload the cart and retry.
	ErrCartChanged = errors.New("cart changed during checkout")

	// ErrInvalidStatus indicates an order status outside the fixed
	// enumeration.
	ErrInvalidStatus = errors.New("invalid order status")
)
