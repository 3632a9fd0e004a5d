package mocks

import (
	"context"
	"sync"

	"github.com/MBahyeldin/online-shoping/domain"
)

// MockCredentialStore implements domain.CredentialStore in memory for testing
type MockCredentialStore struct {
	mu    sync.Mutex
	token string
	user  *domain.User

	SaveFunc  func(ctx context.Context, token string, user *domain.User) error
	LoadFunc  func(ctx context.Context) (string, *domain.User, error)
	ClearFunc func(ctx context.Context) error

	SaveCalls  int
	ClearCalls int
}

// NewMockCredentialStore creates a new MockCredentialStore with default behaviors
func NewMockCredentialStore() *MockCredentialStore {
	return &MockCredentialStore{}
}

// Seed pre-populates the store, as if a previous process had persisted a session.
func (m *MockCredentialStore) Seed(token string, user domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = &user
}

func (m *MockCredentialStore) Save(ctx context.Context, token string, user *domain.User) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, token, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	u := *user
	m.user = &u
	return nil
}

func (m *MockCredentialStore) Load(ctx context.Context) (string, *domain.User, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" || m.user == nil {
		return "", nil, domain.ErrSessionNotFound
	}
	u := *m.user
	return m.token, &u, nil
}

func (m *MockCredentialStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.ClearCalls++
	m.mu.Unlock()
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}

// Compile-time interface compliance verification
var _ domain.CredentialStore = (*MockCredentialStore)(nil)
