package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain"
	cartsvc "storefront/internal/service/cart"
)

type stubCartRepo struct {
	addQty     int
	addErr     error
	lastAddQty int
	updateErr  error
	removeErr  error
	lines      []domain.CartViewLine
}

func (s *stubCartRepo) AddItem(_ context.Context, _, _ string, quantity int) (int, error) {
	s.lastAddQty = quantity
	return s.addQty, s.addErr
}

func (s *stubCartRepo) UpdateQuantity(_ context.Context, _, _ string, _ int) error {
	return s.updateErr
}

func (s *stubCartRepo) RemoveItem(_ context.Context, _, _ string) error {
	return s.removeErr
}

func (s *stubCartRepo) ListByUser(_ context.Context, _ string) ([]domain.CartViewLine, error) {
	return s.lines, nil
}

type stubProductRepo struct {
	product *domain.Product
	err     error
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func cartDeps(repo *stubCartRepo, products *stubProductRepo) Deps {
	return Deps{CartSvc: cartsvc.New(repo, products)}
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error.Code
}

func TestAddCartItem_DefaultsQuantityToOne(t *testing.T) {
	repo := &stubCartRepo{addQty: 1}
	router := newTestRouter(t, cartDeps(repo, &stubProductRepo{product: &domain.Product{ID: "p1"}}))

	req := httptest.NewRequest(http.MethodPost, "/api/users/user-1/cart/items", strings.NewReader(`{"productId":"p1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if repo.lastAddQty != 1 {
		t.Fatalf("expected default quantity 1, got %d", repo.lastAddQty)
	}
}

func TestAddCartItem_UnknownProduct(t *testing.T) {
	router := newTestRouter(t, cartDeps(&stubCartRepo{}, &stubProductRepo{err: domain.ErrNotFound}))

	req := httptest.NewRequest(http.MethodPost, "/api/users/user-1/cart/items", strings.NewReader(`{"productId":"missing"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "invalid_product" {
		t.Fatalf("expected code invalid_product, got %s", code)
	}
}

func TestAddCartItem_MissingProductID(t *testing.T) {
	router := newTestRouter(t, cartDeps(&stubCartRepo{}, &stubProductRepo{}))

	req := httptest.NewRequest(http.MethodPost, "/api/users/user-1/cart/items", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUpdateCartLine_NotOwner(t *testing.T) {
	router := newTestRouter(t, cartDeps(&stubCartRepo{updateErr: domain.ErrNotOwner}, &stubProductRepo{}))

	req := httptest.NewRequest(http.MethodPut, "/api/users/user-1/cart/items/line-other", strings.NewReader(`{"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "not_owner" {
		t.Fatalf("expected code not_owner, got %s", code)
	}
}

func TestUpdateCartLine_ZeroQuantity(t *testing.T) {
	router := newTestRouter(t, cartDeps(&stubCartRepo{}, &stubProductRepo{}))

	// quantity 0 fails binding; -1 reaches the service's own check. Both 400.
	for _, body := range []string{`{"quantity":0}`, `{"quantity":-1}`} {
		req := httptest.NewRequest(http.MethodPut, "/api/users/user-1/cart/items/line-1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected status 400, got %d", body, rec.Code)
		}
	}
}

func TestRemoveCartLine_Idempotent(t *testing.T) {
	router := newTestRouter(t, cartDeps(&stubCartRepo{}, &stubProductRepo{}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/api/users/user-1/cart/items/line-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("call %d: expected status 200, got %d", i+1, rec.Code)
		}
	}
}

func TestGetCart_Summary(t *testing.T) {
	repo := &stubCartRepo{lines: []domain.CartViewLine{
		{LineID: "l1", ProductID: "pa", ProductName: "Product A", Quantity: 2, UnitPriceCents: 1000, TotalCents: 2000},
		{LineID: "l2", ProductID: "pb", ProductName: "Product B", Quantity: 1, UnitPriceCents: 550, TotalCents: 550},
	}}
	router := newTestRouter(t, cartDeps(repo, &stubProductRepo{}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.SubtotalCents != 2550 || body.Subtotal != "25.50" {
		t.Fatalf("expected subtotal 2550 / 25.50, got %d / %s", body.SubtotalCents, body.Subtotal)
	}
	if len(body.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(body.Lines))
	}
}

func TestGetCart_EmptyCartRendersEmptyList(t *testing.T) {
	router := newTestRouter(t, cartDeps(&stubCartRepo{}, &stubProductRepo{}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"lines":[]`) {
		t.Fatalf("expected empty lines array, got %s", rec.Body.String())
	}
}
