package mocks

import (
	"context"

	"github.com/MBahyeldin/online-shoping/domain"
)

// MockCartService implements domain.CartService for testing
type MockCartService struct {
	GetFunc        func(ctx context.Context) (*domain.Cart, error)
	AddItemFunc    func(ctx context.Context, productID string, quantity int) (*domain.Cart, error)
	UpdateItemFunc func(ctx context.Context, itemID string, quantity int) (*domain.Cart, error)
	RemoveItemFunc func(ctx context.Context, itemID string) (*domain.Cart, error)
	ClearFunc      func(ctx context.Context) error

	AddItemCalls    int
	UpdateItemCalls int
	RemoveItemCalls int
	ClearCalls      int
}

// NewMockCartService creates a new MockCartService with default behaviors
func NewMockCartService() *MockCartService {
	return &MockCartService{}
}

func (m *MockCartService) Get(ctx context.Context) (*domain.Cart, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return &domain.Cart{ID: "cart-1"}, nil
}

func (m *MockCartService) AddItem(ctx context.Context, productID string, quantity int) (*domain.Cart, error) {
	m.AddItemCalls++
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, productID, quantity)
	}
	return &domain.Cart{ID: "cart-1"}, nil
}

func (m *MockCartService) UpdateItem(ctx context.Context, itemID string, quantity int) (*domain.Cart, error) {
	m.UpdateItemCalls++
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, itemID, quantity)
	}
	return &domain.Cart{ID: "cart-1"}, nil
}

func (m *MockCartService) RemoveItem(ctx context.Context, itemID string) (*domain.Cart, error) {
	m.RemoveItemCalls++
	if m.RemoveItemFunc != nil {
		return m.RemoveItemFunc(ctx, itemID)
	}
	return &domain.Cart{ID: "cart-1"}, nil
}

func (m *MockCartService) Clear(ctx context.Context) error {
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.CartService = (*MockCartService)(nil)
