package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/mocks"
)

func newCatalogRouter(products domain.ProductService) *gin.Engine {
	h := NewCatalogHandlers(products)
	r := gin.New()
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/categories", h.ListCategories)
	return r
}

func TestListProducts(t *testing.T) {
	t.Run("defaults and filters reach the backend", func(t *testing.T) {
		tests := []struct {
			name  string
			query string
			want  domain.ListProductsParams
		}{
			{"defaults", "", domain.ListProductsParams{Page: 1, Limit: 12}},
			{"explicit paging", "?page=3&limit=24", domain.ListProductsParams{Page: 3, Limit: 24}},
			{"category and sort", "?category_id=cat-9&sort=price_desc", domain.ListProductsParams{Page: 1, Limit: 12, CategoryID: "cat-9", Sort: "price_desc"}},
			{"garbage paging falls back", "?page=zero&limit=-4", domain.ListProductsParams{Page: 1, Limit: 12}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				products := mocks.NewMockProductService()
				var got domain.ListProductsParams
				products.ListFunc = func(ctx context.Context, params domain.ListProductsParams) (*domain.ProductPage, error) {
					got = params
					return &domain.ProductPage{Page: params.Page, Limit: params.Limit}, nil
				}
				router := newCatalogRouter(products)

				w := performJSON(router, http.MethodGet, "/products"+tt.query, nil)

				require.Equal(t, http.StatusOK, w.Code)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("backend failure is normalized", func(t *testing.T) {
		products := mocks.NewMockProductService()
		products.ListFunc = func(ctx context.Context, params domain.ListProductsParams) (*domain.ProductPage, error) {
			return nil, &domain.APIError{Status: 0, Message: domain.GenericErrorMessage}
		}
		router := newCatalogRouter(products)

		w := performJSON(router, http.MethodGet, "/products", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), domain.GenericErrorMessage)
	})
}

func TestGetProduct(t *testing.T) {
	products := mocks.NewMockProductService()
	products.GetByIDFunc = func(ctx context.Context, id string) (*domain.Product, error) {
		if id != "p1" {
			return nil, &domain.APIError{Status: http.StatusNotFound, Message: "product not found"}
		}
		return &domain.Product{ID: "p1", Name: "Carrot Cake", Price: 22, StockQuantity: 5}, nil
	}
	router := newCatalogRouter(products)

	t.Run("found", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/products/p1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Carrot Cake", dataField(t, w)["name"])
	})

	t.Run("missing passes the backend status through", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/products/p404", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListCategories(t *testing.T) {
	products := mocks.NewMockProductService()
	products.ListCategoriesFunc = func(ctx context.Context) ([]domain.Category, error) {
		return []domain.Category{{ID: "c1", Name: "Birthday", Slug: "birthday"}}, nil
	}
	router := newCatalogRouter(products)

	w := performJSON(router, http.MethodGet, "/categories", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	categories, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, categories, 1)
	assert.Equal(t, "birthday", categories[0].(map[string]any)["slug"])
}
