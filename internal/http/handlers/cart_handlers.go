package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/store"
)

// CartHandlers dispatches cart mutations to the cart store. State changes
// happen only through the store's confirmed round-trips; these handlers never
// touch cart data directly.
type CartHandlers struct {
	cart     *store.CartStore
	sessions *store.SessionStore
	products domain.ProductService
}

// NewCartHandlers creates new cart handlers.
func NewCartHandlers(cart *store.CartStore, sessions *store.SessionStore, products domain.ProductService) *CartHandlers {
	return &CartHandlers{cart: cart, sessions: sessions, products: products}
}

// GetCart refreshes the snapshot from the backend and returns it.
func (h *CartHandlers) GetCart(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}
	if err := h.cart.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"cart":       h.cart.Snapshot(),
		"item_count": h.cart.ItemCount(),
		"is_open":    h.cart.IsOpen(),
	})
}

// AddItemRequest adds a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// AddItem gates on stock, then dispatches the mutation. Unauthenticated
// requests get a redirect to registration instead of a backend call.
func (h *CartHandlers) AddItem(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	// stock_quantity == 0 is the sole client-side out-of-stock signal.
	product, err := h.products.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !product.InStock() {
		respondError(c, domain.ErrOutOfStock)
		return
	}

	if err := h.cart.AddItem(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"cart":       h.cart.Snapshot(),
		"item_count": h.cart.ItemCount(),
		"is_open":    h.cart.IsOpen(),
	})
}

// UpdateItemRequest sets a line item's quantity. Zero and below delete the
// line item.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateItem updates a line item's quantity through the store's policy fork.
func (h *CartHandlers) UpdateItem(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.cart.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"cart":       h.cart.Snapshot(),
		"item_count": h.cart.ItemCount(),
	})
}

// RemoveItem deletes a line item.
func (h *CartHandlers) RemoveItem(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	if err := h.cart.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"cart":       h.cart.Snapshot(),
		"item_count": h.cart.ItemCount(),
	})
}

// ClearCart empties the server cart and drops the snapshot.
func (h *CartHandlers) ClearCart(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	if err := h.cart.ClearServer(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "cart cleared"})
}

// ToggleCart flips the drawer visibility flag. Pure UI state, no data fetch.
func (h *CartHandlers) ToggleCart(c *gin.Context) {
	h.cart.ToggleCart()
	respondData(c, http.StatusOK, gin.H{"is_open": h.cart.IsOpen()})
}
