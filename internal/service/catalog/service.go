package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
)

// ErrValidation marks admin input rejected before reaching the store.
var ErrValidation = errors.New("invalid input")

type Service struct {
	products   productrepo.Repository
	categories categoryRepo
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	Upsert(ctx context.Context, name string) (*domain.Category, error)
}

func New(products productrepo.Repository, categories categoryRepo) *Service {
	return &Service{products: products, categories: categories}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

type ProductInput struct {
	ID         string  `json:"id,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
	Name       string  `json:"name"`
	PriceCents int64   `json:"priceCents"`
	Currency   string  `json:"currency,omitempty"`
	ImageURL   string  `json:"imageUrl,omitempty"`
}

func (s *Service) SaveProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if in.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price required", ErrValidation)
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	return s.products.Upsert(ctx, productrepo.UpsertInput{
		ID:         in.ID,
		CategoryID: in.CategoryID,
		Name:       strings.TrimSpace(in.Name),
		PriceCents: in.PriceCents,
		Currency:   currency,
		ImageURL:   strings.TrimSpace(in.ImageURL),
	})
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	return s.categories.Upsert(ctx, strings.TrimSpace(name))
}
