package product

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"storefront/internal/domain"
)

func testRedis(ctx context.Context, t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not available: %v", err)
	}
	return client
}

type countingRepo struct {
	product *domain.Product
	getErr  error
	gets    int
}

func (c *countingRepo) List(_ context.Context) ([]domain.Product, error) { return nil, nil }

func (c *countingRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.product, nil
}

func (c *countingRepo) Upsert(_ context.Context, in UpsertInput) (*domain.Product, error) {
	c.product = &domain.Product{ID: in.ID, Name: in.Name, PriceCents: in.PriceCents, Currency: in.Currency}
	return c.product, nil
}

func (c *countingRepo) Delete(_ context.Context, _ string) error { return nil }

func TestCached_ReadThrough(t *testing.T) {
	ctx := context.Background()
	client := testRedis(ctx, t)
	defer client.Close()

	id := uuid.NewString()
	next := &countingRepo{product: &domain.Product{ID: id, Name: "Mug", PriceCents: 1200, Currency: "USD"}}
	repo := NewCached(next, client, time.Minute, nil)

	for i := 0; i < 3; i++ {
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("GetByID call %d: %v", i+1, err)
		}
		if p.Name != "Mug" || p.PriceCents != 1200 {
			t.Fatalf("unexpected product %+v", p)
		}
	}
	if next.gets != 1 {
		t.Fatalf("expected a single store read, got %d", next.gets)
	}
}

func TestCached_NegativeEntry(t *testing.T) {
	ctx := context.Background()
	client := testRedis(ctx, t)
	defer client.Close()

	id := uuid.NewString()
	next := &countingRepo{getErr: domain.ErrNotFound}
	repo := NewCached(next, client, time.Minute, nil)

	for i := 0; i < 2; i++ {
		if _, err := repo.GetByID(ctx, id); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("call %d: expected ErrNotFound, got %v", i+1, err)
		}
	}
	if next.gets != 1 {
		t.Fatalf("expected one store read for repeated misses, got %d", next.gets)
	}
}

func TestCached_UpsertInvalidates(t *testing.T) {
	ctx := context.Background()
	client := testRedis(ctx, t)
	defer client.Close()

	id := uuid.NewString()
	next := &countingRepo{product: &domain.Product{ID: id, Name: "Mug", PriceCents: 1200, Currency: "USD"}}
	repo := NewCached(next, client, time.Minute, nil)

	if _, err := repo.GetByID(ctx, id); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	if _, err := repo.Upsert(ctx, UpsertInput{ID: id, Name: "Mug", PriceCents: 1350, Currency: "USD"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID after upsert: %v", err)
	}
	if p.PriceCents != 1350 {
		t.Fatalf("stale price served after invalidation: %d", p.PriceCents)
	}
	if next.gets != 2 {
		t.Fatalf("expected a fresh store read after invalidation, got %d", next.gets)
	}
}
