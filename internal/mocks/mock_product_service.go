package mocks

import (
	"context"

	"github.com/MBahyeldin/online-shoping/domain"
)

// MockProductService implements domain.ProductService for testing
type MockProductService struct {
	ListFunc           func(ctx context.Context, params domain.ListProductsParams) (*domain.ProductPage, error)
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Product, error)
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)
}

// NewMockProductService creates a new MockProductService with default behaviors
func NewMockProductService() *MockProductService {
	return &MockProductService{}
}

func (m *MockProductService) List(ctx context.Context, params domain.ListProductsParams) (*domain.ProductPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return &domain.ProductPage{Page: 1, Limit: 12}, nil
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &domain.Product{ID: id, Name: "Chocolate Cake", Price: 25, StockQuantity: 5, IsActive: true}, nil
}

func (m *MockProductService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return []domain.Category{}, nil
}

// Compile-time interface compliance verification
var _ domain.ProductService = (*MockProductService)(nil)
