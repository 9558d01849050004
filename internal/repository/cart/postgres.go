package cart

import (
	"context"
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

func (r *postgresRepo) AddItem(ctx context.Context, userID, productID string, quantity int) (int, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// Atomic get-or-create keeps the one-cart-per-user invariant under
	// concurrent first adds.
	var cartID string
	err = tx.QueryRow(ctx, `
INSERT INTO carts (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id::text
`, userID).Scan(&cartID)
	if err != nil {
		r.logger.Printf("cart repo: ensure cart user_id=%s error=%v", userID, err)
		return 0, err
	}

	// Single-statement upsert so two concurrent adds of the same product
	// both land instead of one overwriting the other.
	var newQty int
	err = tx.QueryRow(ctx, `
INSERT INTO cart_lines (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
RETURNING quantity
`, cartID, productID, quantity).Scan(&newQty)
	if err != nil {
		r.logger.Printf("cart repo: add item cart_id=%s product_id=%s error=%v", cartID, productID, err)
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newQty, nil
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	// Ownership is verified in the same statement via the carts join;
	// a client-supplied line id is never trusted on its own.
	cmd, err := r.pool.Exec(ctx, `
UPDATE cart_lines cl
SET quantity = $1
FROM carts c
WHERE cl.id = $2 AND cl.cart_id = c.id AND c.user_id = $3
`, quantity, lineID, userID)
	if err != nil {
		r.logger.Printf("cart repo: update quantity line_id=%s error=%v", lineID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotOwner
	}
	return nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, userID, lineID string) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM cart_lines cl
USING carts c
WHERE cl.id = $1 AND cl.cart_id = c.id AND c.user_id = $2
`, lineID, userID)
	if err != nil {
		r.logger.Printf("cart repo: remove item line_id=%s error=%v", lineID, err)
		return err
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	// Nothing deleted: distinguish an already-absent line (idempotent
	// success) from someone else's line (forbidden).
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cart_lines WHERE id = $1)`, lineID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return domain.ErrNotOwner
	}
	return nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartViewLine, error) {
	const q = `
SELECT cl.id::text, cl.product_id::text, cl.quantity,
       COALESCE(p.name, ''), COALESCE(p.price_cents, 0), COALESCE(p.image_url, ''),
       (p.id IS NULL) AS stale
FROM cart_lines cl
JOIN carts c ON cl.cart_id = c.id
LEFT JOIN products p ON cl.product_id = p.id
WHERE c.user_id = $1
ORDER BY cl.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("cart repo: list user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartViewLine
	for rows.Next() {
		var line domain.CartViewLine
		if err := rows.Scan(&line.LineID, &line.ProductID, &line.Quantity, &line.ProductName, &line.UnitPriceCents, &line.ImageURL, &line.Stale); err != nil {
			return nil, err
		}
		line.TotalCents = line.UnitPriceCents * int64(line.Quantity)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
