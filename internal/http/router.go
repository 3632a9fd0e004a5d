package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MBahyeldin/online-shoping/internal/http/handlers"
	"github.com/MBahyeldin/online-shoping/internal/http/middleware"
)

// BuildRouter assembles the storefront surface.
func BuildRouter(ah *handlers.AuthHandlers, ch *handlers.CatalogHandlers, crh *handlers.CartHandlers, oh *handlers.OrderHandlers, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/register", ah.Register)
	r.POST("/verify-otp", ah.VerifyOTP)
	r.POST("/resend-otp", ah.ResendOTP)
	r.POST("/logout", ah.Logout)
	r.GET("/me", ah.Me)

	r.GET("/products", ch.ListProducts)
	r.GET("/products/:id", ch.GetProduct)
	r.GET("/categories", ch.ListCategories)

	cart := r.Group("/cart")
	cart.GET("", crh.GetCart)
	cart.DELETE("", crh.ClearCart)
	cart.POST("/items", crh.AddItem)
	cart.PUT("/items/:id", crh.UpdateItem)
	cart.DELETE("/items/:id", crh.RemoveItem)
	cart.POST("/toggle", crh.ToggleCart)

	r.POST("/checkout", oh.Checkout)
	r.GET("/orders", oh.ListOrders)
	r.GET("/orders/:id", oh.GetOrder)

	return r
}
