package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/craftside/marketplace/internal/domain"
	"github.com/craftside/marketplace/internal/service"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

func TestCartGetDropsDelistedProducts(t *testing.T) {
	carts := new(mockCartRepo)
	products := new(mockProductRepo)
	svc := service.NewCartService(carts, products)

	carts.On("Get", mock.Anything, int64(42)).Return([]domain.CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, nil)
	products.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Product{ID: 1, Name: "Walnut bowl", PriceCents: 4500}, nil)
	products.On("GetByID", mock.Anything, int64(2)).Return(nil, pgx.ErrNoRows)
	carts.On("RemoveItem", mock.Anything, int64(42), int64(2)).Return(nil)

	lines, err := svc.Get(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Product.ID)
	assert.Equal(t, int32(2), lines[0].Quantity)

	carts.AssertCalled(t, "RemoveItem", mock.Anything, int64(42), int64(2))
}

func TestCartSetItemZeroQuantityRemoves(t *testing.T) {
	carts := new(mockCartRepo)
	products := new(mockProductRepo)
	svc := service.NewCartService(carts, products)

	carts.On("SetItem", mock.Anything, int64(42),
		domain.CartItem{ProductID: 7, Quantity: 0}).Return(nil)

	err := svc.SetItem(context.Background(), 42, 7, 0)
	require.NoError(t, err)

	carts.AssertCalled(t, "SetItem", mock.Anything, int64(42),
		domain.CartItem{ProductID: 7, Quantity: 0})
	products.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCartSetItemNegativeQuantity(t *testing.T) {
	carts := new(mockCartRepo)
	svc := service.NewCartService(carts, new(mockProductRepo))

	err := svc.SetItem(context.Background(), 42, 7, -1)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	carts.AssertNotCalled(t, "SetItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartSetItemUnknownProduct(t *testing.T) {
	carts := new(mockCartRepo)
	products := new(mockProductRepo)
	svc := service.NewCartService(carts, products)

	products.On("GetByID", mock.Anything, int64(99)).Return(nil, pgx.ErrNoRows)

	err := svc.SetItem(context.Background(), 42, 99, 3)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)

	carts.AssertNotCalled(t, "SetItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartSetItemChecksProduct(t *testing.T) {
	carts := new(mockCartRepo)
	products := new(mockProductRepo)
	svc := service.NewCartService(carts, products)

	products.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Product{ID: 7, PriceCents: 3200}, nil)
	carts.On("SetItem", mock.Anything, int64(42),
		domain.CartItem{ProductID: 7, Quantity: 3}).Return(nil)

	err := svc.SetItem(context.Background(), 42, 7, 3)
	require.NoError(t, err)

	carts.AssertExpectations(t)
}

func TestCartClear(t *testing.T) {
	carts := new(mockCartRepo)
	svc := service.NewCartService(carts, new(mockProductRepo))

	carts.On("Clear", mock.Anything, int64(42)).Return(nil)

	require.NoError(t, svc.Clear(context.Background(), 42))
	carts.AssertCalled(t, "Clear", mock.Anything, int64(42))
}
