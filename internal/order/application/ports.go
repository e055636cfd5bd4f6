package application

import (
	"context"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/order/domain"
)

// ProductInfo is the snapshot of a product resolved across the service
// boundary at order-creation time.
type ProductInfo struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

type OrderRepository interface {
	// Save persists the order and assigns its identifier.
	Save(ctx context.Context, o domain.Order) (domain.Order, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type ProductLookup interface {
	Fetch(ctx context.Context, productID string) (ProductInfo, error)
}

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, o domain.Order) error
}
