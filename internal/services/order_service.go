package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/api"
)

// OrderServiceImpl implements domain.OrderService over the backend API
// client.
type OrderServiceImpl struct {
	client *api.Client
}

// NewOrderService creates the order endpoint mapper.
func NewOrderService(client *api.Client) domain.OrderService {
	return &OrderServiceImpl{client: client}
}

// Create places an order from the current server-side cart.
func (s *OrderServiceImpl) Create(ctx context.Context, payload domain.CreateOrderPayload) (*domain.Order, error) {
	var order domain.Order
	if err := s.client.Post(ctx, "/orders", payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List fetches the paginated order history.
func (s *OrderServiceImpl) List(ctx context.Context, page, limit int) (*domain.OrderPage, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var result domain.OrderPage
	if err := s.client.Get(ctx, "/orders", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByID fetches a single order.
func (s *OrderServiceImpl) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := s.client.Get(ctx, "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

var _ domain.OrderService = (*OrderServiceImpl)(nil)
