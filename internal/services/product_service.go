package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/api"
)

// ProductServiceImpl implements domain.ProductService over the backend API
// client.
type ProductServiceImpl struct {
	client *api.Client
}

// NewProductService creates the catalog endpoint mapper.
func NewProductService(client *api.Client) domain.ProductService {
	return &ProductServiceImpl{client: client}
}

// List fetches a paginated, filterable, sortable product page.
func (s *ProductServiceImpl) List(ctx context.Context, params domain.ListProductsParams) (*domain.ProductPage, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.CategoryID != "" {
		query.Set("category_id", params.CategoryID)
	}
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}

	var page domain.ProductPage
	if err := s.client.Get(ctx, "/products", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID fetches a single product.
func (s *ProductServiceImpl) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := s.client.Get(ctx, "/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCategories fetches the flat category list.
func (s *ProductServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.client.Get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

var _ domain.ProductService = (*ProductServiceImpl)(nil)
