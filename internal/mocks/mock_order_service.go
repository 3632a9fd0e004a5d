package mocks

import (
	"context"

	"github.com/MBahyeldin/online-shoping/domain"
)

// MockOrderService implements domain.OrderService for testing
type MockOrderService struct {
	CreateFunc  func(ctx context.Context, payload domain.CreateOrderPayload) (*domain.Order, error)
	ListFunc    func(ctx context.Context, page, limit int) (*domain.OrderPage, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Order, error)

	CreateCalls []domain.CreateOrderPayload
}

// NewMockOrderService creates a new MockOrderService with default behaviors
func NewMockOrderService() *MockOrderService {
	return &MockOrderService{}
}

func (m *MockOrderService) Create(ctx context.Context, payload domain.CreateOrderPayload) (*domain.Order, error) {
	m.CreateCalls = append(m.CreateCalls, payload)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payload)
	}
	return &domain.Order{ID: "order-1", Status: domain.OrderStatusPending}, nil
}

func (m *MockOrderService) List(ctx context.Context, page, limit int) (*domain.OrderPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, limit)
	}
	return &domain.OrderPage{Page: page, Limit: limit}, nil
}

func (m *MockOrderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &domain.Order{ID: id, Status: domain.OrderStatusPending}, nil
}

// Compile-time interface compliance verification
var _ domain.OrderService = (*MockOrderService)(nil)
