package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/product/domain"
)

var ErrInvalidProduct = errors.New("invalid product")

type CreateProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Service struct {
	log  *slog.Logger
	repo ProductRepository
}

func NewService(log *slog.Logger, repo ProductRepository) *Service {
	return &Service{log: log, repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (domain.Product, error) {
	if req.Name == "" {
		return domain.Product{}, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if req.Price < 0 {
		return domain.Product{}, fmt.Errorf("%w: price must be non-negative", ErrInvalidProduct)
	}
	if req.Quantity < 0 {
		return domain.Product{}, fmt.Errorf("%w: quantity must be non-negative", ErrInvalidProduct)
	}

	saved, err := s.repo.Save(ctx, domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return domain.Product{}, err
	}
	s.log.Info("product created", "product_id", saved.ID, "name", saved.Name)
	return saved, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Product, error) {
	return s.repo.Get(ctx, id)
}

// List resolves every key in the directory to its full record. Keys that
// vanish between the scan and the read are skipped.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("product deleted", "product_id", id)
	return nil
}
