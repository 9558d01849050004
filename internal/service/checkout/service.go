// Package checkout converts a user's mutable cart into an immutable order.
//
// The conversion runs in two phases. Outside any transaction the service
// loads the cart joined with current catalog prices and computes the total
// in integer cents. The order repository then commits everything as one
// unit of work: it re-reads the cart under lock, confirms it still matches
// the computed snapshot, writes the order header and its frozen lines, and
// deletes the cart lines. Because the delete rides in the same transaction,
// a second concurrent checkout for the same user finds an empty cart and
// fails with domain.ErrEmptyCart instead of producing a duplicate order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

type Service struct {
	carts  cartRepo
	orders orderRepo
	logger *log.Logger
}

type cartRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartViewLine, error)
}

type orderRepo interface {
	PlaceOrder(ctx context.Context, userID string, snapshot []orderrepo.CheckoutLine, totalCents int64) (string, error)
}

func New(carts cartRepo, orders orderRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{carts: carts, orders: orders, logger: logger}
}

// PlaceOrder commits the user's cart into a new order and returns its id.
//
// Failure modes: domain.ErrEmptyCart when there is nothing to buy (or a
// concurrent checkout got there first), domain.ErrStaleCartItem when a line's
// product no longer resolves, domain.ErrCartChanged when the cart was
// mutated between read and commit. All three leave the store untouched and
// are safe to retry against the refreshed cart. Anything else is a storage
// failure, already rolled back.
func (s *Service) PlaceOrder(ctx context.Context, userID string) (string, error) {
	lines, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Printf("checkout: load cart user_id=%s error=%v", userID, err)
		return "", fmt.Errorf("load cart: %w", err)
	}
	if len(lines) == 0 {
		return "", domain.ErrEmptyCart
	}

	snapshot := make([]orderrepo.CheckoutLine, 0, len(lines))
	var totalCents int64
	for _, line := range lines {
		if line.Stale {
			return "", domain.ErrStaleCartItem
		}
		totalCents += line.UnitPriceCents * int64(line.Quantity)
		snapshot = append(snapshot, orderrepo.CheckoutLine{
			LineID:         line.LineID,
			ProductID:      line.ProductID,
			ProductName:    line.ProductName,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
		})
	}

	orderID, err := s.orders.PlaceOrder(ctx, userID, snapshot, totalCents)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) || errors.Is(err, domain.ErrCartChanged) {
			return "", err
		}
		s.logger.Printf("checkout: place order user_id=%s error=%v", userID, err)
		return "", fmt.Errorf("place order: %w", err)
	}
	return orderID, nil
}
