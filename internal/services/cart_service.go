package services

import (
	"context"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/api"
)

// CartServiceImpl implements domain.CartService over the backend API client.
// Every mutation returns the server's full updated cart; totals are never
// computed here.
type CartServiceImpl struct {
	client *api.Client
}

// NewCartService creates the cart endpoint mapper.
func NewCartService(client *api.Client) domain.CartService {
	return &CartServiceImpl{client: client}
}

// Get fetches the current cart.
func (s *CartServiceImpl) Get(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := s.client.Get(ctx, "/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem adds {product_id, quantity} to the cart.
func (s *CartServiceImpl) AddItem(ctx context.Context, productID string, quantity int) (*domain.Cart, error) {
	body := map[string]any{"product_id": productID, "quantity": quantity}
	var cart domain.Cart
	if err := s.client.Post(ctx, "/cart/items", body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateItem sets a line item's quantity. Callers route quantities below 1 to
// RemoveItem; the backend rejects non-positive quantities.
func (s *CartServiceImpl) UpdateItem(ctx context.Context, itemID string, quantity int) (*domain.Cart, error) {
	body := map[string]any{"quantity": quantity}
	var cart domain.Cart
	if err := s.client.Put(ctx, "/cart/items/"+itemID, body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveItem deletes a line item.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, itemID string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := s.client.Delete(ctx, "/cart/items/"+itemID, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Clear empties the server cart.
func (s *CartServiceImpl) Clear(ctx context.Context) error {
	return s.client.Delete(ctx, "/cart", nil)
}

var _ domain.CartService = (*CartServiceImpl)(nil)
