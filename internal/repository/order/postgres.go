package order

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

func (r *postgresRepo) PlaceOrder(ctx context.Context, userID string, snapshot []CheckoutLine, totalCents int64) (string, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	// Re-read the cart under lock. A concurrent checkout for the same user
	// blocks here until the first commits, then sees the emptied cart.
	current, err := lockCartLines(ctx, tx, userID)
	if err != nil {
		r.logger.Printf("order repo: lock cart user_id=%s error=%v", userID, err)
		return "", err
	}
	if len(current) == 0 {
		return "", domain.ErrEmptyCart
	}
	if !matchesSnapshot(current, snapshot) {
		return "", domain.ErrCartChanged
	}

	var orderID string
	err = tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_cents, status)
VALUES ($1, $2, $3)
RETURNING id::text
`, userID, totalCents, domain.OrderStatusPaid).Scan(&orderID)
	if err != nil {
		r.logger.Printf("order repo: insert order user_id=%s error=%v", userID, err)
		return "", err
	}

	for _, line := range snapshot {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_lines (order_id, product_id, product_name, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4, $5)
`, orderID, line.ProductID, line.ProductName, line.Quantity, line.UnitPriceCents); err != nil {
			r.logger.Printf("order repo: insert line order_id=%s product_id=%s error=%v", orderID, line.ProductID, err)
			return "", err
		}
	}

	// Clearing the cart inside the same transaction is the double-submit
	// guard; moving this outside would reopen the duplicate-order race.
	if _, err := tx.Exec(ctx, `
DELETE FROM cart_lines cl
USING carts c
WHERE cl.cart_id = c.id AND c.user_id = $1
`, userID); err != nil {
		r.logger.Printf("order repo: clear cart user_id=%s error=%v", userID, err)
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Printf("order repo: commit user_id=%s error=%v", userID, err)
		return "", err
	}
	r.logger.Printf("order repo: placed order_id=%s user_id=%s total_cents=%d lines=%d", orderID, userID, totalCents, len(snapshot))
	return orderID, nil
}

type lockedLine struct {
	LineID    string
	ProductID string
	Quantity  int
}

func lockCartLines(ctx context.Context, tx pgx.Tx, userID string) ([]lockedLine, error) {
	rows, err := tx.Query(ctx, `
SELECT cl.id::text, cl.product_id::text, cl.quantity
FROM cart_lines cl
JOIN carts c ON cl.cart_id = c.id
WHERE c.user_id = $1
ORDER BY cl.created_at ASC
FOR UPDATE OF cl
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []lockedLine
	for rows.Next() {
		var line lockedLine
		if err := rows.Scan(&line.LineID, &line.ProductID, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func matchesSnapshot(current []lockedLine, snapshot []CheckoutLine) bool {
	if len(current) != len(snapshot) {
		return false
	}
	for i, line := range current {
		if line.LineID != snapshot[i].LineID ||
			line.ProductID != snapshot[i].ProductID ||
			line.Quantity != snapshot[i].Quantity {
			return false
		}
	}
	return true
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, user_id, total_cents, status, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}

	const linesQ = `
SELECT id::text, order_id::text, product_id::text, product_name, quantity, unit_price_cents, created_at
FROM order_lines
WHERE order_id = $1
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, linesQ, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.ProductName, &line.Quantity, &line.UnitPriceCents, &line.CreatedAt); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id, total_cents, status, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("order repo: list user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("order repo: status id=%s -> %s", id, status)
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE order_id = $1`, id); err != nil {
		r.logger.Printf("order repo: delete lines order_id=%s error=%v", id, err)
		return err
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("order repo: delete order id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
