package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartItemCount(t *testing.T) {
	tests := []struct {
		name string
		cart *Cart
		want int
	}{
		{"nil cart", nil, 0},
		{"empty cart", &Cart{ID: "c1"}, 0},
		{"single line", &Cart{Items: []CartItem{{Quantity: 3}}}, 3},
		{"sums across lines", &Cart{Items: []CartItem{{Quantity: 2}, {Quantity: 5}}}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cart.ItemCount())
		})
	}
}

func TestProductInStock(t *testing.T) {
	assert.True(t, (&Product{StockQuantity: 1}).InStock())
	assert.False(t, (&Product{StockQuantity: 0}).InStock())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestAPIError(t *testing.T) {
	t.Run("unauthorized only on 401", func(t *testing.T) {
		assert.True(t, (&APIError{Status: 401}).Unauthorized())
		assert.False(t, (&APIError{Status: 403}).Unauthorized())
		assert.False(t, (&APIError{Status: 0}).Unauthorized())
	})

	t.Run("unwraps through wrapping", func(t *testing.T) {
		orig := &APIError{Status: 404, Message: "order not found"}
		wrapped := fmt.Errorf("loading order: %w", orig)

		apiErr, ok := AsAPIError(wrapped)
		assert.True(t, ok)
		assert.Equal(t, 404, apiErr.Status)
	})

	t.Run("plain errors do not match", func(t *testing.T) {
		_, ok := AsAPIError(errors.New("boom"))
		assert.False(t, ok)
	})
}
