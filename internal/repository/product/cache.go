package product

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/domain"
)

// negativeEntry marks a cached "product does not exist" lookup so repeated
// checkouts against a stale cart line don't hammer the database.
const negativeEntry = "__missing__"

type cachedRepo struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

// NewCached wraps next with a redis read-through cache on GetByID. Writes
// pass through and invalidate the affected key. List is not cached; it is
// an admin/browse path with no correctness stake.
func NewCached(next Repository, client *redis.Client, ttl time.Duration, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &cachedRepo{next: next, client: client, ttl: ttl, logger: logger}
}

func cacheKey(id string) string {
	return "product:" + id
}

func (r *cachedRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.next.List(ctx)
}

func (r *cachedRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	raw, err := r.client.Get(ctx, cacheKey(id)).Result()
	switch {
	case err == nil:
		if raw == negativeEntry {
			return nil, domain.ErrNotFound
		}
		var p domain.Product
		if err := json.Unmarshal([]byte(raw), &p); err == nil {
			return &p, nil
		}
		// Undecodable entry: fall through to the store.
	case !errors.Is(err, redis.Nil):
		r.logger.Printf("product cache: get id=%s error=%v", id, err)
	}

	p, err := r.next.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.set(ctx, id, negativeEntry)
		}
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		r.set(ctx, id, string(data))
	}
	return p, nil
}

func (r *cachedRepo) Upsert(ctx context.Context, in UpsertInput) (*domain.Product, error) {
	p, err := r.next.Upsert(ctx, in)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, p.ID)
	return p, nil
}

func (r *cachedRepo) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *cachedRepo) set(ctx context.Context, id, value string) {
	if err := r.client.Set(ctx, cacheKey(id), value, r.ttl).Err(); err != nil {
		r.logger.Printf("product cache: set id=%s error=%v", id, err)
	}
}

func (r *cachedRepo) invalidate(ctx context.Context, id string) {
	if err := r.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		r.logger.Printf("product cache: invalidate id=%s error=%v", id, err)
	}
}
