package cart

import (
	"context"
	"errors"

	"storefront/internal/domain"
)

type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	AddItem(ctx context.Context, userID, productID string, quantity int) (int, error)
	UpdateQuantity(ctx context.Context, userID, lineID string, quantity int) error
	RemoveItem(ctx context.Context, userID, lineID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.CartViewLine, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

// AddItem puts quantity units of a product into the user's cart, creating
// the cart on first use. Returns the resulting quantity for that product.
func (s *Service) AddItem(ctx context.Context, userID, productID string, quantity int) (int, error) {
	if quantity < 1 {
		return 0, domain.ErrInvalidQuantity
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrInvalidProduct
		}
		return 0, err
	}
	return s.repo.AddItem(ctx, userID, productID, quantity)
}

// UpdateQuantity replaces a line's quantity. Zero or negative quantities
// are rejected; removal has its own operation so the intent stays explicit.
func (s *Service) UpdateQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	return s.repo.UpdateQuantity(ctx, userID, lineID, quantity)
}

// RemoveItem deletes a line from the user's cart. Removing a line that is
// already gone is a no-op success.
func (s *Service) RemoveItem(ctx context.Context, userID, lineID string) error {
	return s.repo.RemoveItem(ctx, userID, lineID)
}

// Get returns the cart joined with live catalog data. The subtotal uses
// current catalog prices and skips stale lines; it is not the frozen total
// an order stores.
func (s *Service) Get(ctx context.Context, userID string) (*domain.CartView, error) {
	lines, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &domain.CartView{UserID: userID, Lines: lines}
	for _, line := range lines {
		if line.Stale {
			continue
		}
		view.SubtotalCents += line.TotalCents
	}
	return view, nil
}
