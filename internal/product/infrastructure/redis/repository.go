package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/product/application"
	"github.com/yasir-khalid/payments-inventory-microservices/internal/product/domain"
)

const keyPrefix = "product:"

// Repository stores one Redis hash per product.
type Repository struct {
	log *slog.Logger
	rdb *redis.Client
}

func NewRepository(log *slog.Logger, rdb *redis.Client) *Repository {
	return &Repository{log: log, rdb: rdb}
}

func (r *Repository) Save(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	err := r.rdb.HSet(ctx, keyPrefix+p.ID, map[string]any{
		"name":     p.Name,
		"price":    p.Price,
		"quantity": p.Quantity,
	}).Err()
	if err != nil {
		return domain.Product{}, fmt.Errorf("save product %s: %w", p.ID, err)
	}
	return p, nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Product, error) {
	fields, err := r.rdb.HGetAll(ctx, keyPrefix+id).Result()
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	if len(fields) == 0 {
		return domain.Product{}, fmt.Errorf("%w: %s", application.ErrNotFound, id)
	}

	price, err := strconv.ParseFloat(fields["price"], 64)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s has bad price %q: %w", id, fields["price"], err)
	}
	quantity, err := strconv.Atoi(fields["quantity"])
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s has bad quantity %q: %w", id, fields["quantity"], err)
	}

	return domain.Product{
		ID:       id,
		Name:     fields["name"],
		Price:    price,
		Quantity: quantity,
	}, nil
}

func (r *Repository) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	iter := r.rdb.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return ids, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	deleted, err := r.rdb.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: %s", application.ErrNotFound, id)
	}
	return nil
}
