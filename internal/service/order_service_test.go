package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/craftside/marketplace/internal/domain"
	"github.com/craftside/marketplace/internal/service"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) Get(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	args := m.Called(ctx, userID)
	if items := args.Get(0); items != nil {
		return items.([]domain.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepo) SetItem(ctx context.Context, userID int64, item domain.CartItem) error {
	return m.Called(ctx, userID, item).Error(0)
}

func (m *mockCartRepo) RemoveItem(ctx context.Context, userID, productID int64) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *mockCartRepo) Clear(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	args := m.Called(ctx, slug)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) CreateWithItems(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if o := args.Get(0); o != nil {
		return o.([]domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	carts := new(mockCartRepo)
	products := new(mockProductRepo)
	orders := new(mockOrderRepo)
	svc := service.NewOrderService(orders, carts, products, nil)

	carts.On("Get", mock.Anything, int64(42)).Return([]domain.CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, nil)
	products.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Product{ID: 1, Name: "Walnut bowl", PriceCents: 4500}, nil)
	products.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Product{ID: 2, Name: "Linen scarf", PriceCents: 3200}, nil)
	orders.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Order).ID = 77
		}).Return(nil)
	carts.On("Clear", mock.Anything, int64(42)).Return(nil)

	order, err := svc.PlaceOrder(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(77), order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, int64(2*4500+3200), order.TotalCents)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Walnut bowl", order.Items[0].ProductName)
	assert.Equal(t, int64(4500), order.Items[0].UnitPriceCents)

	carts.AssertCalled(t, "Clear", mock.Anything, int64(42))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	carts := new(mockCartRepo)
	orders := new(mockOrderRepo)
	svc := service.NewOrderService(orders, carts, new(mockProductRepo), nil)

	carts.On("Get", mock.Anything, int64(42)).Return([]domain.CartItem{}, nil)

	_, err := svc.PlaceOrder(context.Background(), 42)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	orders.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
}

func TestGetOrderHidesForeignOrders(t *testing.T) {
	orders := new(mockOrderRepo)
	svc := service.NewOrderService(orders, new(mockCartRepo), new(mockProductRepo), nil)

	orders.On("GetByID", mock.Anything, int64(9)).
		Return(&domain.Order{ID: 9, UserID: 1}, nil)

	_, err := svc.GetOrder(context.Background(), 2, 9)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
