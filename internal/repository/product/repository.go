package product

import (
	"context"

	"storefront/internal/domain"
)

type UpsertInput struct {
	ID         string
	CategoryID *string
	Name       string
	PriceCents int64
	Currency   string
	ImageURL   string
}

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, in UpsertInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
