package domain

import "time"

// Order statuses. Status is the only order field ever mutated after
// creation; no transition legality is enforced beyond membership.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

var orderStatuses = map[string]struct{}{
	OrderStatusPending:   {},
	OrderStatusPaid:      {},
	OrderStatusShipped:   {},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ValidOrderStatus reports whether s is one of the five defined statuses.
func ValidOrderStatus(s string) bool {
	_, ok := orderStatuses[s]
	return ok
}

// Order is an immutable record of a completed purchase. TotalCents equals
// the sum of its lines' quantity × unit price as captured at checkout and
// never changes afterwards.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	TotalCents int64       `json:"totalCents"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	Lines      []OrderLine `json:"lines,omitempty"`
}

// OrderLine is a frozen snapshot of one purchased product. The name and
// unit price are copied at checkout time so later catalog edits or deletes
// never touch order history.
type OrderLine struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"orderId"`
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	CreatedAt      time.Time `json:"createdAt"`
}
