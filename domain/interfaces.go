package domain

import "context"

// AuthService maps the backend's auth endpoints.
type AuthService interface {
	Register(ctx context.Context, payload RegisterPayload) error
	VerifyOTP(ctx context.Context, payload VerifyOTPPayload) (*AuthResult, error)
	ResendOTP(ctx context.Context, email string) error
}

// ProductService maps the backend's catalog endpoints.
type ProductService interface {
	List(ctx context.Context, params ListProductsParams) (*ProductPage, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
}

// CartService maps the backend's cart endpoints. Every mutation returns the
// full updated cart.
type CartService interface {
	Get(ctx context.Context) (*Cart, error)
	AddItem(ctx context.Context, productID string, quantity int) (*Cart, error)
	UpdateItem(ctx context.Context, itemID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, itemID string) (*Cart, error)
	Clear(ctx context.Context) error
}

// OrderService maps the backend's order endpoints.
type OrderService interface {
	Create(ctx context.Context, payload CreateOrderPayload) (*Order, error)
	List(ctx context.Context, page, limit int) (*OrderPage, error)
	GetByID(ctx context.Context, id string) (*Order, error)
}

// CredentialStore is the durable local store for the session token and the
// cached user (the localStorage of this client). Load returns
// ErrSessionNotFound when nothing is persisted.
type CredentialStore interface {
	Save(ctx context.Context, token string, user *User) error
	Load(ctx context.Context) (string, *User, error)
	Clear(ctx context.Context) error
}
