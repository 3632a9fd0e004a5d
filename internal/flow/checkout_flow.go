package flow

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/store"
	"github.com/MBahyeldin/online-shoping/internal/validation"
)

// CheckoutState is the submission state of the checkout form.
type CheckoutState int

const (
	CheckoutIdle CheckoutState = iota
	CheckoutSubmitting
	CheckoutSucceeded
)

func (s CheckoutState) String() string {
	switch s {
	case CheckoutIdle:
		return "idle"
	case CheckoutSubmitting:
		return "submitting"
	case CheckoutSucceeded:
		return "succeeded"
	}
	return "unknown"
}

// deliveryDateLayout is the browser datetime-local format the form submits.
const deliveryDateLayout = "2006-01-02T15:04"

// CheckoutForm is the delivery form. DeliveryDate is local datetime-local
// text; it is converted to RFC3339 UTC before transmission.
type CheckoutForm struct {
	DeliveryAddress string `json:"delivery_address" validate:"required,min=10"`
	DeliveryDate    string `json:"delivery_date" validate:"required"`
	Notes           string `json:"notes"`
	PaymentMethod   string `json:"payment_method" validate:"required,eq=cash_on_delivery"`
}

// CheckoutFlow drives checkout: Idle -> Submitting -> Succeeded. A failed
// submission records the error message and returns to Idle so the form can
// be resubmitted; Succeeded clears the cart store and records the new order
// id for the confirmation view.
type CheckoutFlow struct {
	mu sync.Mutex

	state     CheckoutState
	orderID   string
	lastError string

	orders domain.OrderService
	cart   *store.CartStore
	now    func() time.Time
	log    *logrus.Entry
}

// NewCheckoutFlow creates the flow. The delivery-date floor is a UX
// convenience only; the backend revalidates.
func NewCheckoutFlow(orders domain.OrderService, cart *store.CartStore, logger *logrus.Logger) *CheckoutFlow {
	return &CheckoutFlow{
		state:  CheckoutIdle,
		orders: orders,
		cart:   cart,
		now:    time.Now,
		log:    logger.WithField("component", "checkout_flow"),
	}
}

// MinDeliveryDate is tomorrow at 09:00 in local time, relative to now.
func MinDeliveryDate(now time.Time) time.Time {
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 9, 0, 0, 0, now.Location())
}

// MinDelivery returns the current delivery-date floor. Derived from the
// clock on every call so the floor tracks the current day in a long-running
// process, never a value frozen at construction.
func (f *CheckoutFlow) MinDelivery() time.Time { return MinDeliveryDate(f.now()) }

// Submit validates the form and places the order. With an empty cart it is a
// no-op: no request is sent. Validation failures block submission locally.
func (f *CheckoutFlow) Submit(ctx context.Context, form CheckoutForm) (*domain.Order, error) {
	if f.cart.ItemCount() == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := validation.Struct(form); err != nil {
		return nil, err
	}

	deliveryAt, err := time.ParseInLocation(deliveryDateLayout, form.DeliveryDate, f.now().Location())
	if err != nil {
		return nil, validation.Errors{{Field: "delivery_date", Message: "enter a valid delivery date"}}
	}
	if deliveryAt.Before(MinDeliveryDate(f.now())) {
		return nil, validation.Errors{{Field: "delivery_date", Message: "delivery must be scheduled for tomorrow 9:00 AM or later"}}
	}

	f.mu.Lock()
	if f.state == CheckoutSubmitting {
		f.mu.Unlock()
		return nil, domain.ErrCheckoutPending
	}
	f.state = CheckoutSubmitting
	f.lastError = ""
	f.mu.Unlock()

	payload := domain.CreateOrderPayload{
		DeliveryAddress: form.DeliveryAddress,
		DeliveryDate:    deliveryAt.UTC().Format(time.RFC3339),
		Notes:           form.Notes,
		PaymentMethod:   form.PaymentMethod,
	}

	order, err := f.orders.Create(ctx, payload)
	if err != nil {
		f.mu.Lock()
		f.state = CheckoutIdle
		f.lastError = err.Error()
		f.mu.Unlock()
		return nil, err
	}

	f.cart.Reset()
	f.mu.Lock()
	f.state = CheckoutSucceeded
	f.orderID = order.ID
	f.mu.Unlock()
	f.log.WithField("order_id", order.ID).Info("order placed")
	return order, nil
}

// State returns the current submission state.
func (f *CheckoutFlow) State() CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// OrderID is the id of the order placed by the last successful submission.
func (f *CheckoutFlow) OrderID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderID
}

// LastError returns the message from the most recent failed submission.
func (f *CheckoutFlow) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}
