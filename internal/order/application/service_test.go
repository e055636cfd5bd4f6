package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/order/domain"
	"github.com/yasir-khalid/payments-inventory-microservices/pkg/logging"
)

type fakeRepo struct {
	orders  map[string]domain.Order
	nextID  int
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: map[string]domain.Order{}}
}

func (r *fakeRepo) Save(ctx context.Context, o domain.Order) (domain.Order, error) {
	if r.saveErr != nil {
		return domain.Order{}, r.saveErr
	}
	r.nextID++
	o.ID = fmt.Sprintf("order-%d", r.nextID)
	r.orders[o.ID] = o
	return o, nil
}

func (r *fakeRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeLookup struct {
	info  ProductInfo
	err   error
	calls int
}

func (l *fakeLookup) Fetch(ctx context.Context, productID string) (ProductInfo, error) {
	l.calls++
	if l.err != nil {
		return ProductInfo{}, l.err
	}
	return l.info, nil
}

type fakePublisher struct {
	published []domain.Order
	err       error
}

func (p *fakePublisher) PublishOrderCreated(ctx context.Context, o domain.Order) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, o)
	return nil
}

func widgetLookup() *fakeLookup {
	return &fakeLookup{info: ProductInfo{ID: "p1", Name: "Widget", Price: 10.0, Quantity: 50}}
}

func TestCreateOrder_Success(t *testing.T) {
	repo := newFakeRepo()
	lookup := widgetLookup()
	pub := &fakePublisher{}
	svc := NewService(logging.New("test"), repo, lookup, pub)

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, "p1", order.ProductID)
	assert.Equal(t, 10.0, order.Price)
	assert.Equal(t, 0.10, order.Fee)
	assert.InDelta(t, 22.0, order.Total, 1e-9)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, domain.StatusCompleted, order.Status)
	assert.NotEmpty(t, order.ID)
	assert.Len(t, repo.orders, 1)
	assert.Len(t, pub.published, 1)
}

func TestCreateOrder_InvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -1, -100} {
		repo := newFakeRepo()
		lookup := widgetLookup()
		svc := NewService(logging.New("test"), repo, lookup, nil)

		_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{ProductID: "p1", Quantity: quantity})

		assert.ErrorIs(t, err, ErrInvalidRequest, "quantity %d", quantity)
		assert.Empty(t, repo.orders)
		assert.Zero(t, lookup.calls, "lookup must not run for invalid input")
	}
}

func TestCreateOrder_MissingProductID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(logging.New("test"), repo, widgetLookup(), nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{Quantity: 1})

	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Empty(t, repo.orders)
}

func TestCreateOrder_ProductNotFound(t *testing.T) {
	repo := newFakeRepo()
	lookup := &fakeLookup{err: fmt.Errorf("%w: p404", ErrProductNotFound)}
	svc := NewService(logging.New("test"), repo, lookup, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{ProductID: "p404", Quantity: 1})

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, repo.orders)
}

func TestCreateOrder_ProductServiceDown(t *testing.T) {
	repo := newFakeRepo()
	lookup := &fakeLookup{err: fmt.Errorf("%w: connection refused", ErrProductUnavailable)}
	svc := NewService(logging.New("test"), repo, lookup, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{ProductID: "p1", Quantity: 1})

	assert.ErrorIs(t, err, ErrProductUnavailable)
	assert.Empty(t, repo.orders)
	assert.Equal(t, 1, lookup.calls, "a single attempt, no retry")
}

func TestCreateOrder_StoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("connection reset")
	pub := &fakePublisher{}
	svc := NewService(logging.New("test"), repo, widgetLookup(), pub)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{ProductID: "p1", Quantity: 1})

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, pub.published, "no event for an unpersisted order")
}

func TestCreateOrder_PublishFailureDoesNotFailRequest(t *testing.T) {
	repo := newFakeRepo()
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewService(logging.New("test"), repo, widgetLookup(), pub)

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{ProductID: "p1", Quantity: 3})

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Len(t, repo.orders, 1)
}

func TestCreateOrder_CancelledBeforeSave(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(logging.New("test"), repo, widgetLookup(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateOrder(ctx, CreateOrderRequest{ProductID: "p1", Quantity: 2})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.orders, "cancelled requests must not persist an order")
}

func TestCreateOrder_NoDeduplication(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(logging.New("test"), repo, widgetLookup(), nil)
	req := CreateOrderRequest{ProductID: "p1", Quantity: 2}

	first, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.orders, 2)
}

func TestListOrderIDs(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(logging.New("test"), repo, widgetLookup(), nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	ids, err := svc.ListOrderIDs(context.Background())
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}
