package application

import (
	"context"
	"errors"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/product/domain"
)

// ErrNotFound is returned by repositories for unknown product keys.
var ErrNotFound = errors.New("product not found")

type ProductRepository interface {
	// Save persists the product and assigns its identifier.
	Save(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	ListIDs(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}
