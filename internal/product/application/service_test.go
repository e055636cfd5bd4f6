package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/product/domain"
	"github.com/yasir-khalid/payments-inventory-microservices/pkg/logging"
)

type fakeRepo struct {
	products map[string]domain.Product
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[string]domain.Product{}}
}

func (r *fakeRepo) Save(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		r.nextID++
		p.ID = fmt.Sprintf("prod-%d", r.nextID)
	}
	r.products[p.ID] = p
	return p, nil
}

func (r *fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

func (r *fakeRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(r.products, id)
	return nil
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(logging.New("test"), repo)

	p, err := svc.Create(context.Background(), CreateProductRequest{Name: "Widget", Price: 10.0, Quantity: 50})

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Widget", p.Name)
	assert.Len(t, repo.products, 1)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(logging.New("test"), newFakeRepo())

	cases := []CreateProductRequest{
		{Name: "", Price: 1, Quantity: 1},
		{Name: "Widget", Price: -0.01, Quantity: 1},
		{Name: "Widget", Price: 1, Quantity: -1},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidProduct, "%+v", req)
	}
}

func TestGet_Unknown(t *testing.T) {
	svc := NewService(logging.New("test"), newFakeRepo())

	_, err := svc.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(logging.New("test"), repo)

	for _, name := range []string{"Widget", "Gadget", "Sprocket"} {
		_, err := svc.Create(context.Background(), CreateProductRequest{Name: name, Price: 5, Quantity: 1})
		require.NoError(t, err)
	}

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(logging.New("test"), repo)

	p, err := svc.Create(context.Background(), CreateProductRequest{Name: "Widget", Price: 5, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), p.ID), ErrNotFound)
}
