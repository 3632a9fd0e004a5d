package domain

import "errors"

// Session errors
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionNotFound  = errors.New("no persisted session")
)

// Cart errors
var (
	ErrItemBusy  = errors.New("another mutation for this item is still in flight")
	ErrEmptyCart = errors.New("cart is empty")
)

// Checkout errors
var (
	ErrCheckoutPending = errors.New("an order submission is already in flight")
)

// Catalog errors
var (
	ErrOutOfStock = errors.New("product is out of stock")
)

// OTP flow errors
var (
	ErrResendThrottled = errors.New("resend not allowed yet")
)

// ErrGenericAPI is the last-resort message when neither the backend envelope
// nor the transport yields one.
const GenericErrorMessage = "an unexpected error occurred"

// APIError is the single error shape every backend failure is normalized to
// at the API client boundary. Downstream callers never see anything else for
// a failed request.
type APIError struct {
	Status  int    // HTTP status, 0 for transport failures
	Message string // human-readable, from envelope -> transport -> generic
}

func (e *APIError) Error() string { return e.Message }

// Unauthorized reports whether the failure was an authorization failure.
func (e *APIError) Unauthorized() bool { return e.Status == 401 }

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
