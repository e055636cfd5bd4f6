package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/order/domain"
)

var (
	ErrInvalidRequest     = errors.New("invalid order request")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product service unavailable")
	ErrMalformedProduct   = errors.New("malformed product response")
	ErrStoreUnavailable   = errors.New("order store unavailable")
)

type CreateOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type Service struct {
	log      *slog.Logger
	repo     OrderRepository
	products ProductLookup
	events   EventPublisher
}

// NewService wires the order workflow. events may be nil when no broker is
// configured; publishing is then skipped.
func NewService(log *slog.Logger, repo OrderRepository, products ProductLookup, events EventPublisher) *Service {
	return &Service{log: log, repo: repo, products: products, events: events}
}

// CreateOrder resolves the product's current price, derives the fee and
// total, and persists the order. The lookup is a single attempt; any
// failure before the save leaves the store untouched. Product inventory is
// not decremented here, the directory owns it.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.Order, error) {
	if req.ProductID == "" {
		return domain.Order{}, fmt.Errorf("%w: product_id is required", ErrInvalidRequest)
	}
	if req.Quantity <= 0 {
		return domain.Order{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidRequest)
	}

	info, err := s.products.Fetch(ctx, req.ProductID)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.NewOrder(req.ProductID, info.Price, req.Quantity)
	if err := ctx.Err(); err != nil {
		// A cancelled request must not commit.
		return domain.Order{}, err
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if s.events != nil {
		if err := s.events.PublishOrderCreated(ctx, saved); err != nil {
			// Best effort: the order is already committed.
			s.log.Error("order event publish failed", "order_id", saved.ID, "err", err)
		}
	}

	s.log.Info("order created",
		"order_id", saved.ID,
		"product_id", saved.ProductID,
		"quantity", saved.Quantity,
		"total", saved.Total)
	return saved, nil
}

func (s *Service) ListOrderIDs(ctx context.Context) ([]string, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return ids, nil
}
