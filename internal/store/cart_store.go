package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/MBahyeldin/online-shoping/domain"
)

// CartStore maintains exactly one authoritative cart snapshot, replaced
// wholesale with the server's cart on every confirmed mutation. There is no
// optimistic local mutation: a failed round-trip leaves the snapshot
// untouched. The visibility flag is independent of data state.
//
// Concurrency: at most one mutation per cart line may be in flight. A second
// mutation on a busy line fails fast with domain.ErrItemBusy instead of
// racing into a lost update.
type CartStore struct {
	mu      sync.Mutex
	cart    *domain.Cart
	isOpen  bool
	pending map[string]struct{}

	svc      domain.CartService
	sessions *SessionStore
	log      *logrus.Entry
}

// NewCartStore creates an empty cart store.
func NewCartStore(svc domain.CartService, sessions *SessionStore, logger *logrus.Logger) *CartStore {
	return &CartStore{
		pending:  make(map[string]struct{}),
		svc:      svc,
		sessions: sessions,
		log:      logger.WithField("component", "cart_store"),
	}
}

// begin claims the in-flight slot for key, failing if it is already taken.
func (s *CartStore) begin(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.pending[key]; busy {
		return domain.ErrItemBusy
	}
	s.pending[key] = struct{}{}
	return nil
}

func (s *CartStore) end(key string) {
	s.mu.Lock()
	delete(s.pending, key)
	s.mu.Unlock()
}

func (s *CartStore) replace(cart *domain.Cart) {
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
}

// Refresh fetches the server cart and replaces the snapshot.
func (s *CartStore) Refresh(ctx context.Context) error {
	cart, err := s.svc.Get(ctx)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

// AddItem adds a product to the server cart and mirrors the returned cart.
// Requires authentication; unauthenticated callers get ErrNotAuthenticated
// and should redirect to registration instead. Opens the cart view on
// success.
func (s *CartStore) AddItem(ctx context.Context, productID string, quantity int) error {
	if !s.sessions.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}
	key := "product:" + productID
	if err := s.begin(key); err != nil {
		return err
	}
	defer s.end(key)

	cart, err := s.svc.AddItem(ctx, productID, quantity)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cart = cart
	s.isOpen = true
	s.mu.Unlock()
	return nil
}

// UpdateQuantity sets a cart line's quantity. Quantities below 1 route to
// removal: the backend does not accept non-positive quantities.
func (s *CartStore) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	key := "item:" + itemID
	if err := s.begin(key); err != nil {
		return err
	}
	defer s.end(key)

	var (
		cart *domain.Cart
		err  error
	)
	if quantity < 1 {
		cart, err = s.svc.RemoveItem(ctx, itemID)
	} else {
		cart, err = s.svc.UpdateItem(ctx, itemID, quantity)
	}
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

// RemoveItem deletes a cart line server-side and mirrors the returned cart.
func (s *CartStore) RemoveItem(ctx context.Context, itemID string) error {
	key := "item:" + itemID
	if err := s.begin(key); err != nil {
		return err
	}
	defer s.end(key)

	cart, err := s.svc.RemoveItem(ctx, itemID)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

// ClearServer empties the server cart, then drops the local snapshot.
func (s *CartStore) ClearServer(ctx context.Context) error {
	if err := s.svc.Clear(ctx); err != nil {
		return err
	}
	s.Reset()
	return nil
}

// Reset drops the local snapshot only. Used after a successful checkout,
// when the backend has already consumed the cart.
func (s *CartStore) Reset() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
}

// Snapshot returns a copy of the current cart, nil when none was fetched yet.
func (s *CartStore) Snapshot() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return nil
	}
	cp := *s.cart
	cp.Items = make([]domain.CartItem, len(s.cart.Items))
	copy(cp.Items, s.cart.Items)
	return &cp
}

// ItemCount is the sum of quantities in the current snapshot, recomputed on
// every read.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// ItemBusy reports whether a mutation for the given cart line is in flight.
func (s *CartStore) ItemBusy(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.pending["item:"+itemID]
	return busy
}

// OpenCart, CloseCart and ToggleCart flip the visibility flag only. No data
// side effects.
func (s *CartStore) OpenCart() {
	s.mu.Lock()
	s.isOpen = true
	s.mu.Unlock()
}

func (s *CartStore) CloseCart() {
	s.mu.Lock()
	s.isOpen = false
	s.mu.Unlock()
}

func (s *CartStore) ToggleCart() {
	s.mu.Lock()
	s.isOpen = !s.isOpen
	s.mu.Unlock()
}

// IsOpen reports the visibility flag.
func (s *CartStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}
