package mocks

import (
	"context"

	"github.com/MBahyeldin/online-shoping/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc  func(ctx context.Context, payload domain.RegisterPayload) error
	VerifyOTPFunc func(ctx context.Context, payload domain.VerifyOTPPayload) (*domain.AuthResult, error)
	ResendOTPFunc func(ctx context.Context, email string) error

	RegisterCalls  []domain.RegisterPayload
	VerifyOTPCalls []domain.VerifyOTPPayload
	ResendOTPCalls []string
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, payload domain.RegisterPayload) error {
	m.RegisterCalls = append(m.RegisterCalls, payload)
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, payload)
	}
	return nil
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, payload domain.VerifyOTPPayload) (*domain.AuthResult, error) {
	m.VerifyOTPCalls = append(m.VerifyOTPCalls, payload)
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, payload)
	}
	return &domain.AuthResult{Token: "test-token", User: domain.User{ID: "u1", Email: payload.Email}}, nil
}

func (m *MockAuthService) ResendOTP(ctx context.Context, email string) error {
	m.ResendOTPCalls = append(m.ResendOTPCalls, email)
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
