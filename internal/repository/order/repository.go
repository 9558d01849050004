package order

import (
	"context"

	"storefront/internal/domain"
)

// CheckoutLine is the frozen per-line snapshot checkout captured before
// opening the transaction. Prices and names are never re-read after this
// point, even if the catalog changes mid-transaction.
type CheckoutLine struct {
	LineID         string
	ProductID      string
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

type Repository interface {
	// PlaceOrder atomically converts the user's cart into an order: it
	// re-reads the cart lines under lock and confirms they still match
	// snapshot (domain.ErrEmptyCart / domain.ErrCartChanged otherwise),
	// inserts the order header and lines, and deletes the cart lines.
	// Either everything commits or nothing does. Returns the new order id.
	PlaceOrder(ctx context.Context, userID string, snapshot []CheckoutLine, totalCents int64) (string, error)

	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
