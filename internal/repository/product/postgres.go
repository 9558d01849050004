package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id::text, category_id::text, name, price_cents, currency, COALESCE(image_url, ''), created_at
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.PriceCents, &p.Currency, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, category_id::text, name, price_cents, currency, COALESCE(image_url, ''), created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.CategoryID, &p.Name, &p.PriceCents, &p.Currency, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, in UpsertInput) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, category_id, name, price_cents, currency, image_url)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5, NULLIF($6, ''))
ON CONFLICT (id) DO UPDATE SET
	category_id = EXCLUDED.category_id,
	name = EXCLUDED.name,
	price_cents = EXCLUDED.price_cents,
	currency = EXCLUDED.currency,
	image_url = EXCLUDED.image_url
RETURNING id::text, category_id::text, name, price_cents, currency, COALESCE(image_url, ''), created_at
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, in.ID, in.CategoryID, in.Name, in.PriceCents, in.Currency, in.ImageURL).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.PriceCents, &p.Currency, &p.ImageURL, &p.CreatedAt,
	)
	if err != nil {
		r.logger.Printf("product repo: upsert name=%s error=%v", in.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: upsert id=%s name=%s", p.ID, p.Name)
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: delete id=%s", id)
	return nil
}
