package domain

import "time"

// User is the signed-in customer's profile as returned by the backend.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// AuthResult is the payload returned by a successful OTP verification.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Session pairs the bearer token with the signed-in user. Token and user are
// always set or cleared together.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterPayload is the registration request body. The backend triggers an
// OTP email on success.
type RegisterPayload struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	Email       string `json:"email" validate:"required,email"`
}

// VerifyOTPPayload exchanges an emailed code for a session.
type VerifyOTPPayload struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// Category is a catalog category.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a catalog entity. StockQuantity == 0 is the sole client-side
// out-of-stock signal.
type Product struct {
	ID            string  `json:"id"`
	CategoryID    *string `json:"category_id"`
	CategoryName  *string `json:"category_name"`
	CategorySlug  *string `json:"category_slug"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Price         float64 `json:"price"`
	ImageURL      *string `json:"image_url"`
	StockQuantity int     `json:"stock_quantity"`
	IsActive      bool    `json:"is_active"`
}

// InStock reports whether the product can be added to a cart.
func (p *Product) InStock() bool { return p.StockQuantity > 0 }

// ListProductsParams filters and pages the catalog listing.
type ListProductsParams struct {
	Page       int
	Limit      int
	CategoryID string
	Sort       string // "price_asc" or "price_desc"
}

// ProductPage is a paginated catalog listing.
type ProductPage struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}

// CartItem is a single cart line. Price and Subtotal are server-computed and
// never recomputed client-side.
type CartItem struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ProductImageURL *string `json:"product_image_url"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
}

// Cart is the authoritative cart object as last returned by the backend.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// ItemCount sums item quantities. Always derived from the snapshot, never
// cached separately.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// OrderStatus is advanced only by the backend.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one the backend can emit.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is an order line frozen at checkout time.
type OrderItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	ImageURL    *string `json:"image_url"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// Order is immutable from the client's perspective after creation.
type Order struct {
	ID              string      `json:"id"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryDate    time.Time   `json:"delivery_date"`
	Notes           *string     `json:"notes"`
	PaymentMethod   string      `json:"payment_method"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
}

// CreateOrderPayload creates an order from the current server-side cart.
// DeliveryDate is RFC3339.
type CreateOrderPayload struct {
	DeliveryAddress string `json:"delivery_address"`
	DeliveryDate    string `json:"delivery_date"`
	Notes           string `json:"notes,omitempty"`
	PaymentMethod   string `json:"payment_method"`
}

// PaymentMethodCashOnDelivery is the only supported payment method.
const PaymentMethodCashOnDelivery = "cash_on_delivery"

// OrderPage is a paginated order history listing.
type OrderPage struct {
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}
