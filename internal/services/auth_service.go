package services

import (
	"context"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/api"
)

// AuthServiceImpl implements domain.AuthService over the backend API client.
// One function per endpoint, no business logic.
type AuthServiceImpl struct {
	client *api.Client
}

// NewAuthService creates the auth endpoint mapper.
func NewAuthService(client *api.Client) domain.AuthService {
	return &AuthServiceImpl{client: client}
}

// Register submits a registration; the backend dispatches the OTP email.
func (s *AuthServiceImpl) Register(ctx context.Context, payload domain.RegisterPayload) error {
	return s.client.Post(ctx, "/auth/register", payload, nil)
}

// VerifyOTP exchanges {email, otp} for {token, user}.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, payload domain.VerifyOTPPayload) (*domain.AuthResult, error) {
	var result domain.AuthResult
	if err := s.client.Post(ctx, "/auth/verify-otp", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResendOTP re-triggers the OTP email.
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, email string) error {
	return s.client.Post(ctx, "/auth/resend-otp", map[string]string{"email": email}, nil)
}

var _ domain.AuthService = (*AuthServiceImpl)(nil)
