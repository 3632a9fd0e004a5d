package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/flow"
	"github.com/MBahyeldin/online-shoping/internal/mocks"
	"github.com/MBahyeldin/online-shoping/internal/store"
)

func newAuthRouter(authSvc domain.AuthService, sessions *store.SessionStore) *gin.Engine {
	otpFlow := flow.NewOTPFlow(authSvc, sessions, 60*time.Second, testLogger())
	h := NewAuthHandlers(authSvc, otpFlow, sessions)

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/verify-otp", h.VerifyOTP)
	r.POST("/resend-otp", h.ResendOTP)
	r.POST("/logout", h.Logout)
	r.GET("/me", h.Me)
	return r
}

func TestRegister(t *testing.T) {
	t.Run("success carries email prefill and next route", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		router := newAuthRouter(authSvc, anonSessions(t))

		w := performJSON(router, http.MethodPost, "/register", gin.H{
			"first_name":   "Jane",
			"last_name":    "Doe",
			"email":        "jane@x.com",
			"phone_number": "+12025551234",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		data := dataField(t, w)
		assert.Equal(t, "jane@x.com", data["email"])
		assert.Equal(t, "/verify-otp", data["next"])

		require.Len(t, authSvc.RegisterCalls, 1)
		assert.Equal(t, "+12025551234", authSvc.RegisterCalls[0].PhoneNumber)
	})

	t.Run("validation failure blocks the request", func(t *testing.T) {
		tests := []struct {
			name  string
			body  gin.H
			field string
		}{
			{
				name:  "bad email",
				body:  gin.H{"first_name": "Jane", "last_name": "Doe", "email": "not-an-email", "phone_number": "+12025551234"},
				field: "email",
			},
			{
				name:  "phone without plus prefix",
				body:  gin.H{"first_name": "Jane", "last_name": "Doe", "email": "jane@x.com", "phone_number": "12025551234"},
				field: "phone_number",
			},
			{
				name:  "missing first name",
				body:  gin.H{"last_name": "Doe", "email": "jane@x.com", "phone_number": "+12025551234"},
				field: "first_name",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				authSvc := mocks.NewMockAuthService()
				router := newAuthRouter(authSvc, anonSessions(t))

				w := performJSON(router, http.MethodPost, "/register", tt.body)

				assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
				assert.Contains(t, w.Body.String(), tt.field)
				assert.Empty(t, authSvc.RegisterCalls, "invalid form must not reach the backend")
			})
		}
	})

	t.Run("backend rejection surfaces its message and status", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RegisterFunc = func(ctx context.Context, payload domain.RegisterPayload) error {
			return &domain.APIError{Status: http.StatusConflict, Message: "email already registered"}
		}
		router := newAuthRouter(authSvc, anonSessions(t))

		w := performJSON(router, http.MethodPost, "/register", gin.H{
			"first_name": "Jane", "last_name": "Doe",
			"email": "jane@x.com", "phone_number": "+12025551234",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "email already registered")
	})
}

func TestVerifyOTP(t *testing.T) {
	t.Run("success returns the user and routes to the catalog", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.VerifyOTPFunc = func(ctx context.Context, payload domain.VerifyOTPPayload) (*domain.AuthResult, error) {
			return &domain.AuthResult{
				Token: "token-1",
				User:  domain.User{ID: "u1", Email: payload.Email, FirstName: "Jane"},
			}, nil
		}
		sessions := anonSessions(t)
		router := newAuthRouter(authSvc, sessions)

		w := performJSON(router, http.MethodPost, "/verify-otp", gin.H{
			"email": "jane@x.com",
			"otp":   "123456",
		})

		require.Equal(t, http.StatusOK, w.Code)
		data := dataField(t, w)
		assert.Equal(t, "/products", data["redirect"])
		user, ok := data["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "jane@x.com", user["email"])

		assert.True(t, sessions.IsAuthenticated())
		assert.Equal(t, "token-1", sessions.Token())
	})

	t.Run("wrong code surfaces the backend message", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.VerifyOTPFunc = func(ctx context.Context, payload domain.VerifyOTPPayload) (*domain.AuthResult, error) {
			return nil, &domain.APIError{Status: http.StatusBadRequest, Message: "invalid or expired OTP"}
		}
		sessions := anonSessions(t)
		router := newAuthRouter(authSvc, sessions)

		w := performJSON(router, http.MethodPost, "/verify-otp", gin.H{
			"email": "jane@x.com",
			"otp":   "654321",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired OTP")
		assert.False(t, sessions.IsAuthenticated())
	})

	t.Run("malformed code never reaches the backend", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		router := newAuthRouter(authSvc, anonSessions(t))

		w := performJSON(router, http.MethodPost, "/verify-otp", gin.H{
			"email": "jane@x.com",
			"otp":   "12ab",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Empty(t, authSvc.VerifyOTPCalls)
	})
}

func TestResendOTP(t *testing.T) {
	t.Run("success reports the cooldown", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		router := newAuthRouter(authSvc, anonSessions(t))

		w := performJSON(router, http.MethodPost, "/resend-otp", gin.H{"email": "jane@x.com"})

		require.Equal(t, http.StatusOK, w.Code)
		data := dataField(t, w)
		assert.Greater(t, data["cooldown_seconds"].(float64), float64(0))
		assert.Equal(t, []string{"jane@x.com"}, authSvc.ResendOTPCalls)
	})

	t.Run("second resend inside the cooldown is throttled", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		router := newAuthRouter(authSvc, anonSessions(t))

		first := performJSON(router, http.MethodPost, "/resend-otp", gin.H{"email": "jane@x.com"})
		require.Equal(t, http.StatusOK, first.Code)

		second := performJSON(router, http.MethodPost, "/resend-otp", gin.H{"email": "jane@x.com"})
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Len(t, authSvc.ResendOTPCalls, 1, "throttled resend must not reach the backend")
	})
}

func TestLogoutAndMe(t *testing.T) {
	t.Run("me returns the signed-in profile", func(t *testing.T) {
		router := newAuthRouter(mocks.NewMockAuthService(), authedSessions(t))

		w := performJSON(router, http.MethodGet, "/me", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := dataField(t, w)
		assert.Equal(t, "jane@x.com", data["email"])
	})

	t.Run("me signed out redirects to registration", func(t *testing.T) {
		router := newAuthRouter(mocks.NewMockAuthService(), anonSessions(t))

		w := performJSON(router, http.MethodGet, "/me", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "/register", body["redirect"])
	})

	t.Run("logout clears the session", func(t *testing.T) {
		sessions := authedSessions(t)
		router := newAuthRouter(mocks.NewMockAuthService(), sessions)

		w := performJSON(router, http.MethodPost, "/logout", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, sessions.IsAuthenticated())
	})
}

func TestRespondErrorRedirectHints(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		fail := func(c *gin.Context) {
			respondError(c, &domain.APIError{Status: http.StatusUnauthorized, Message: "session expired"})
		}
		r.GET("/products", fail)
		r.GET("/register", fail)
		r.GET("/register/confirm", fail)
		return r
	}

	t.Run("unauthorized elsewhere carries a redirect hint", func(t *testing.T) {
		w := performJSON(newRouter(), http.MethodGet, "/products", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "/register", decodeBody(t, w)["redirect"])
	})

	t.Run("already at registration gets no redirect", func(t *testing.T) {
		for _, path := range []string{"/register", "/register/confirm"} {
			w := performJSON(newRouter(), http.MethodGet, path, nil)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.NotContains(t, decodeBody(t, w), "redirect", "path %s must not redirect onto itself", path)
		}
	})

	t.Run("unknown errors map to 500 without a redirect", func(t *testing.T) {
		r := gin.New()
		r.GET("/boom", func(c *gin.Context) { respondError(c, errors.New("disk on fire")) })
		w := performJSON(r, http.MethodGet, "/boom", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, decodeBody(t, w), "redirect")
	})
}
