package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type productSeed struct {
	ID       string
	Category string
	Name     string
	Price    string
	ImageURL string
}

// Fixed ids keep reseeding idempotent via ON CONFLICT upserts.
var products = []productSeed{
	{
		ID:       "6f1b9bd4-9ad0-4a59-8636-1ed0ba2a3a01",
		Category: "Apparel",
		Name:     "Canvas Tote Bag",
		Price:    "19.99",
		ImageURL: "https://example.com/images/tote.png",
	},
	{
		ID:       "6f1b9bd4-9ad0-4a59-8636-1ed0ba2a3a02",
		Category: "Apparel",
		Name:     "Logo T-Shirt",
		Price:    "24.50",
		ImageURL: "https://example.com/images/tshirt.png",
	},
	{
		ID:       "6f1b9bd4-9ad0-4a59-8636-1ed0ba2a3a03",
		Category: "Kitchen",
		Name:     "Ceramic Mug",
		Price:    "12.00",
		ImageURL: "https://example.com/images/mug.png",
	},
	{
		ID:       "6f1b9bd4-9ad0-4a59-8636-1ed0ba2a3a04",
		Category: "Kitchen",
		Name:     "Pour-Over Kettle",
		Price:    "54.95",
		ImageURL: "https://example.com/images/kettle.png",
	},
}

// Apply inserts basic seed data for manual testing. It is idempotent via
// ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range products {
		categoryID, err := ensureCategory(ctx, pool, p.Category)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", p.Category, err)
		}

		priceCents, err := domain.ParseAmountCents(p.Price)
		if err != nil {
			return fmt.Errorf("parse price for %s: %w", p.Name, err)
		}

		const q = `
INSERT INTO products (id, category_id, name, price_cents, currency, image_url)
VALUES ($1, $2, $3, $4, 'USD', $5)
ON CONFLICT (id) DO UPDATE SET
	category_id = EXCLUDED.category_id,
	name = EXCLUDED.name,
	price_cents = EXCLUDED.price_cents,
	image_url = EXCLUDED.image_url
`
		if _, err := pool.Exec(ctx, q, p.ID, categoryID, p.Name, priceCents, p.ImageURL); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}
	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	const q = `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}
