package checkout

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

type stubCarts struct {
	lines []domain.CartViewLine
	err   error
}

func (s *stubCarts) ListByUser(_ context.Context, _ string) ([]domain.CartViewLine, error) {
	return s.lines, s.err
}

type stubOrders struct {
	orderID      string
	err          error
	calls        int
	lastUser     string
	lastSnapshot []orderrepo.CheckoutLine
	lastTotal    int64
}

func (s *stubOrders) PlaceOrder(_ context.Context, userID string, snapshot []orderrepo.CheckoutLine, totalCents int64) (string, error) {
	s.calls++
	s.lastUser = userID
	s.lastSnapshot = snapshot
	s.lastTotal = totalCents
	return s.orderID, s.err
}

func twoLineCart() []domain.CartViewLine {
	return []domain.CartViewLine{
		{LineID: "l1", ProductID: "pa", ProductName: "Product A", Quantity: 2, UnitPriceCents: 1000},
		{LineID: "l2", ProductID: "pb", ProductName: "Product B", Quantity: 1, UnitPriceCents: 550},
	}
}

func TestPlaceOrder_TotalAndSnapshot(t *testing.T) {
	orders := &stubOrders{orderID: "order-1"}
	svc := New(&stubCarts{lines: twoLineCart()}, orders, nil)

	orderID, err := svc.PlaceOrder(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if orderID != "order-1" {
		t.Fatalf("expected order-1, got %s", orderID)
	}
	// 2 x 10.00 + 1 x 5.50 = 25.50
	if orders.lastTotal != 2550 {
		t.Fatalf("expected total 2550 cents, got %d", orders.lastTotal)
	}
	if orders.lastUser != "user-1" {
		t.Fatalf("expected user-1, got %s", orders.lastUser)
	}
	want := []orderrepo.CheckoutLine{
		{LineID: "l1", ProductID: "pa", ProductName: "Product A", Quantity: 2, UnitPriceCents: 1000},
		{LineID: "l2", ProductID: "pb", ProductName: "Product B", Quantity: 1, UnitPriceCents: 550},
	}
	if len(orders.lastSnapshot) != len(want) {
		t.Fatalf("expected %d snapshot lines, got %d", len(want), len(orders.lastSnapshot))
	}
	for i, line := range want {
		if orders.lastSnapshot[i] != line {
			t.Fatalf("snapshot line %d: expected %+v, got %+v", i, line, orders.lastSnapshot[i])
		}
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	orders := &stubOrders{}
	svc := New(&stubCarts{}, orders, nil)

	_, err := svc.PlaceOrder(context.Background(), "user-1")
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if orders.calls != 0 {
		t.Fatalf("no transaction should be opened for an empty cart")
	}
}

func TestPlaceOrder_StaleCartItem(t *testing.T) {
	lines := twoLineCart()
	lines[1].Stale = true
	orders := &stubOrders{}
	svc := New(&stubCarts{lines: lines}, orders, nil)

	_, err := svc.PlaceOrder(context.Background(), "user-1")
	if !errors.Is(err, domain.ErrStaleCartItem) {
		t.Fatalf("expected ErrStaleCartItem, got %v", err)
	}
	if orders.calls != 0 {
		t.Fatalf("no transaction should be opened when a line is stale")
	}
}

// A concurrent checkout that emptied the cart first surfaces as ErrEmptyCart
// from the store re-check; the service must pass it through untouched so the
// caller sees the double-submit case, not a system fault.
func TestPlaceOrder_ConcurrentCheckoutConsumedCart(t *testing.T) {
	orders := &stubOrders{err: domain.ErrEmptyCart}
	svc := New(&stubCarts{lines: twoLineCart()}, orders, nil)

	_, err := svc.PlaceOrder(context.Background(), "user-1")
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPlaceOrder_CartChangedDuringCommit(t *testing.T) {
	orders := &stubOrders{err: domain.ErrCartChanged}
	svc := New(&stubCarts{lines: twoLineCart()}, orders, nil)

	_, err := svc.PlaceOrder(context.Background(), "user-1")
	if !errors.Is(err, domain.ErrCartChanged) {
		t.Fatalf("expected ErrCartChanged, got %v", err)
	}
}

func TestPlaceOrder_StorageFailureWrapped(t *testing.T) {
	storageErr := errors.New("deadlock detected")
	orders := &stubOrders{err: storageErr}
	svc := New(&stubCarts{lines: twoLineCart()}, orders, nil)

	_, err := svc.PlaceOrder(context.Background(), "user-1")
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
	if errors.Is(err, domain.ErrEmptyCart) || errors.Is(err, domain.ErrCartChanged) {
		t.Fatalf("storage failure must not masquerade as a consistency failure")
	}
}

func TestPlaceOrder_CartLoadFailure(t *testing.T) {
	loadErr := errors.New("connection refused")
	orders := &stubOrders{}
	svc := New(&stubCarts{err: loadErr}, orders, nil)

	_, err := svc.PlaceOrder(context.Background(), "user-1")
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
	if orders.calls != 0 {
		t.Fatalf("no order attempt should follow a failed cart read")
	}
}
