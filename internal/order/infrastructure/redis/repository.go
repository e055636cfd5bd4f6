package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/order/domain"
)

const keyPrefix = "order:"

// Repository persists orders as Redis hashes, one hash per order.
type Repository struct {
	log *slog.Logger
	rdb *redis.Client
}

func NewRepository(log *slog.Logger, rdb *redis.Client) *Repository {
	return &Repository{log: log, rdb: rdb}
}

func (r *Repository) Save(ctx context.Context, o domain.Order) (domain.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	err := r.rdb.HSet(ctx, keyPrefix+o.ID, map[string]any{
		"product_id": o.ProductID,
		"price":      o.Price,
		"fee":        o.Fee,
		"total":      o.Total,
		"quantity":   o.Quantity,
		"status":     string(o.Status),
	}).Err()
	if err != nil {
		return domain.Order{}, fmt.Errorf("save order %s: %w", o.ID, err)
	}
	return o, nil
}

func (r *Repository) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	iter := r.rdb.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	return ids, nil
}
