package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/flow"
	"github.com/MBahyeldin/online-shoping/internal/store"
)

// OrderHandlers drives checkout and order history.
type OrderHandlers struct {
	checkout *flow.CheckoutFlow
	orders   domain.OrderService
	sessions *store.SessionStore
}

// NewOrderHandlers creates new order handlers.
func NewOrderHandlers(checkout *flow.CheckoutFlow, orders domain.OrderService, sessions *store.SessionStore) *OrderHandlers {
	return &OrderHandlers{checkout: checkout, orders: orders, sessions: sessions}
}

// Checkout submits the delivery form. An empty cart or a validation failure
// blocks submission without a backend call.
func (h *OrderHandlers) Checkout(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	var form flow.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	order, err := h.checkout.Submit(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"order_id": order.ID,
		"status":   order.Status,
		"message":  "order placed",
	})
}

// ListOrders serves the paginated order history.
func (h *OrderHandlers) ListOrders(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	page, err := h.orders.List(c.Request.Context(), intQuery(c, "page", 1), intQuery(c, "limit", 10))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

// GetOrder fetches a single order.
func (h *OrderHandlers) GetOrder(c *gin.Context) {
	if !h.sessions.IsAuthenticated() {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}
