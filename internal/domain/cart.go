package domain

import "time"

type Cart struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartLine is one product entry within a cart. A (cart, product) pair is
// unique; adding an already-present product increments the quantity.
type CartLine struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cartId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartView is a cart line joined with live catalog data. Prices here are
// the catalog's current prices, not the frozen prices an order stores.
// Stale marks a line whose product no longer resolves.
type CartView struct {
	UserID        string         `json:"userId"`
	Lines         []CartViewLine `json:"lines"`
	SubtotalCents int64          `json:"subtotalCents"`
}

type CartViewLine struct {
	LineID         string `json:"lineId"`
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	ImageURL       string `json:"imageUrl,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	TotalCents     int64  `json:"totalCents"`
	Stale          bool   `json:"stale,omitempty"`
}
