package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MBahyeldin/online-shoping/domain"
)

// CatalogHandlers serves the product browsing surface.
type CatalogHandlers struct {
	products domain.ProductService
}

// NewCatalogHandlers creates new catalog handlers.
func NewCatalogHandlers(products domain.ProductService) *CatalogHandlers {
	return &CatalogHandlers{products: products}
}

// ListProducts lists the catalog, paginated and filterable by category_id,
// sortable by price_asc/price_desc.
func (h *CatalogHandlers) ListProducts(c *gin.Context) {
	params := domain.ListProductsParams{
		Page:       intQuery(c, "page", 1),
		Limit:      intQuery(c, "limit", 12),
		CategoryID: c.Query("category_id"),
		Sort:       c.Query("sort"),
	}

	page, err := h.products.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

// GetProduct fetches a single product.
func (h *CatalogHandlers) GetProduct(c *gin.Context) {
	product, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, product)
}

// ListCategories serves the flat category list.
func (h *CatalogHandlers) ListCategories(c *gin.Context) {
	categories, err := h.products.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, categories)
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
