package order

import (
	"context"

	"storefront/internal/domain"
)

type Service struct {
	repo orderRepo
}

type orderRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

func New(repo orderRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Detail(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus sets an order's status after checking membership in the
// fixed enumeration. No transition legality is enforced; admin tooling may
// move an order any direction across the five statuses.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !domain.ValidOrderStatus(status) {
		return domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}

// Delete purges an order and its lines. Admin-only; placed orders are
// otherwise append-only.
func (s *Service) Delete(ctx context.Context, orderID string) error {
	return s.repo.Delete(ctx, orderID)
}
