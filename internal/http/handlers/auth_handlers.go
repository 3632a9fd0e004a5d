package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/flow"
	"github.com/MBahyeldin/online-shoping/internal/store"
	"github.com/MBahyeldin/online-shoping/internal/validation"
)

// AuthHandlers drives registration, OTP verification and logout.
type AuthHandlers struct {
	authSvc  domain.AuthService
	otpFlow  *flow.OTPFlow
	sessions *store.SessionStore
}

// NewAuthHandlers creates new auth handlers.
func NewAuthHandlers(authSvc domain.AuthService, otpFlow *flow.OTPFlow, sessions *store.SessionStore) *AuthHandlers {
	return &AuthHandlers{
		authSvc:  authSvc,
		otpFlow:  otpFlow,
		sessions: sessions,
	}
}

// Register submits a registration. On success the response carries the email
// so the OTP view can prefill it.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req domain.RegisterPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := validation.Struct(req); err != nil {
		respondError(c, err)
		return
	}

	if err := h.authSvc.Register(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"message": "registered, check your email for the verification code",
		"email":   req.Email,
		"next":    "/verify-otp",
	})
}

// VerifyOTPRequest is the OTP verification form.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyOTP exchanges the code for a session and routes to the catalog.
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.otpFlow.Verify(c.Request.Context(), req.Email, req.OTP); err != nil {
		respondError(c, err)
		return
	}

	user, _ := h.sessions.User()
	respondData(c, http.StatusOK, gin.H{
		"user":     user,
		"redirect": "/products",
	})
}

// ResendOTPRequest is the resend form.
type ResendOTPRequest struct {
	Email string `json:"email"`
}

// ResendOTP re-triggers the OTP email, subject to the cooldown.
func (h *AuthHandlers) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.otpFlow.Resend(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"message":          "a new code has been sent to your email",
		"cooldown_seconds": h.otpFlow.CooldownRemaining(),
	})
}

// Logout clears the session.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if err := h.sessions.ClearAuth(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the signed-in user's profile.
func (h *AuthHandlers) Me(c *gin.Context) {
	user, ok := h.sessions.User()
	if !ok {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}
	respondData(c, http.StatusOK, user)
}
