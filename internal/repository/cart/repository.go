package cart

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	// AddItem gets-or-creates the user's cart and upserts the line,
	// incrementing quantity when the product is already present. Returns
	// the resulting quantity for that product.
	AddItem(ctx context.Context, userID, productID string, quantity int) (int, error)

	// UpdateQuantity replaces the stored quantity. The ownership check is
	// part of the statement: a line outside the user's cart (or absent
	// entirely) returns domain.ErrNotOwner.
	UpdateQuantity(ctx context.Context, userID, lineID string, quantity int) error

	// RemoveItem deletes the line. Removing an absent line is a no-op
	// success; a line owned by another user's cart returns domain.ErrNotOwner.
	RemoveItem(ctx context.Context, userID, lineID string) error

	// ListByUser returns the user's cart lines joined with current catalog
	// data, in insertion order. Lines whose product no longer resolves are
	// returned with Stale set.
	ListByUser(ctx context.Context, userID string) ([]domain.CartViewLine, error)
}
