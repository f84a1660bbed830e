package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-admin/internal/apperr"
)

func TestNewProductRejectsNonPositiveStock(t *testing.T) {
	sellerID := uuid.New()

	for _, quantity := range []int{0, -1, -100} {
		product, err := NewProduct(sellerID, "chair", "a chair", "chair.png", 100, quantity)

		require.Error(t, err)
		assert.Nil(t, product)

		var argErr *apperr.InvalidArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "stockQuantity", argErr.Field)
	}
}

func TestNewProductAssignsFields(t *testing.T) {
	sellerID := uuid.New()

	product, err := NewProduct(sellerID, "chair", "a chair", "chair.png", 100, 5)
	require.NoError(t, err)

	assert.Equal(t, sellerID, product.SellerID)
	assert.Equal(t, "chair", product.Title)
	assert.Equal(t, "a chair", product.Description)
	assert.Equal(t, "chair.png", product.Image)
	assert.Equal(t, 100, product.Price)
	assert.Equal(t, 5, product.StockQuantity)
	assert.False(t, product.Deleted)
}

func TestDecreaseQuantity(t *testing.T) {
	product, err := NewProduct(uuid.New(), "chair", "a chair", "", 100, 5)
	require.NoError(t, err)

	require.NoError(t, product.DecreaseQuantity(3))
	assert.Equal(t, 2, product.StockQuantity)

	require.NoError(t, product.DecreaseQuantity(2))
	assert.Equal(t, 0, product.StockQuantity)
}

func TestDecreaseQuantityBelowZeroLeavesStockUntouched(t *testing.T) {
	product, err := NewProduct(uuid.New(), "chair", "a chair", "", 100, 5)
	require.NoError(t, err)

	err = product.DecreaseQuantity(6)

	var stockErr *apperr.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.Available)
	assert.Equal(t, 6, stockErr.Requested)
	assert.Equal(t, 5, product.StockQuantity)
}

func TestMarkDeleted(t *testing.T) {
	customer := NewCustomer("A", "B")
	assert.False(t, customer.Deleted)

	customer.MarkDeleted()
	assert.True(t, customer.Deleted)
}
