package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/validation"
)

// registerPath is the auth entry point browsers get redirected to when the
// session is torn down.
const registerPath = "/register"

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError maps every error the lower layers can produce onto the
// storefront's response surface. Authorization failures carry a redirect hint
// unless the request is already at the registration entry point (loop
// prevention).
func respondError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error":   fieldErrs.Error(),
			"fields":  fieldErrs,
		})
		return
	}

	if apiErr, ok := domain.AsAPIError(err); ok {
		body := gin.H{"success": false, "error": apiErr.Message}
		status := apiErr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		if apiErr.Unauthorized() && !strings.HasPrefix(c.Request.URL.Path, registerPath) {
			body["redirect"] = registerPath
		}
		c.JSON(status, body)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		body := gin.H{"success": false, "error": err.Error()}
		if !strings.HasPrefix(c.Request.URL.Path, registerPath) {
			body["redirect"] = registerPath
		}
		c.JSON(http.StatusUnauthorized, body)
	case errors.Is(err, domain.ErrItemBusy), errors.Is(err, domain.ErrCheckoutPending):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrOutOfStock):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrResendThrottled):
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}
