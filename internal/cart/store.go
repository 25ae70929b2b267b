package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xomerch/storefront/internal/kvstore"
	"github.com/xomerch/storefront/internal/models"
)

const DefaultNoticeTTL = 3 * time.Second

// Store holds the authoritative in-session line items. Items keep insertion
// order; there is at most one line item per product id. Every mutation
// serializes the full collection to the key-value store under the session's
// key. Persistence failures are logged, never surfaced: the in-memory state
// stays the source of truth for the session.
type Store struct {
	items     []models.LineItem
	kv        kvstore.Store
	key       string
	noticeTTL time.Duration
	notice    string
	noticeAt  time.Time
	now       func() time.Time
}

type Option func(*Store)

func WithNoticeTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.noticeTTL = ttl
	}
}

// WithNow overrides the clock used for notification expiry.
func WithNow(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore restores the cart persisted under key, falling back to an empty
// cart when nothing is stored or the stored payload does not parse.
func NewStore(ctx context.Context, kv kvstore.Store, key string, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		key:       key,
		noticeTTL: DefaultNoticeTTL,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		slog.Warn("Failed to read persisted cart, starting empty",
			slog.String("key", key),
			slog.String("error", err.Error()))

		return s
	}

	if !ok {
		return s
	}

	var items []models.LineItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		slog.Warn("Persisted cart is corrupt, starting empty",
			slog.String("key", key),
			slog.String("error", err.Error()))

		return s
	}

	s.items = items

	return s
}

// AddItem inserts a line item with quantity 1 for an unseen product, or
// increments the existing line item's quantity. It always succeeds and
// raises the transient "added to cart" notification.
func (s *Store) AddItem(ctx context.Context, product *models.Product) {

	found := false

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity++
			found = true

			break
		}
	}

	if !found {
		s.items = append(s.items, models.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  1,
		})
	}

	s.notice = fmt.Sprintf("%s has been added to your cart!", product.Name)
	s.noticeAt = s.now()

	s.persist(ctx)
}

// RemoveItem deletes the line item for productID. Absent products are a
// no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) {

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)

			break
		}
	}

	s.persist(ctx)
}

// SetQuantity overwrites the line item's quantity, clamped to a floor of 1.
// Removal is only ever explicit via RemoveItem. Absent products are a no-op.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) {

	if quantity < 1 {
		quantity = 1
	}

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity

			break
		}
	}

	s.persist(ctx)
}

// Clear empties the cart unconditionally. Clearing an empty cart is fine.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil

	s.persist(ctx)
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []models.LineItem {
	items := make([]models.LineItem, len(s.items))
	copy(items, s.items)

	return items
}

// Subtotal recomputes price × quantity across all line items on every call.
func (s *Store) Subtotal() float64 {

	var subtotal float64

	for _, item := range s.items {
		subtotal += item.Price * float64(item.Quantity)
	}

	return subtotal
}

// ItemCount recomputes the summed quantity across all line items.
func (s *Store) ItemCount() int {

	var count int

	for _, item := range s.items {
		count += item.Quantity
	}

	return count
}

// Notification returns the current "added to cart" message, or false once it
// has auto-expired.
func (s *Store) Notification() (string, bool) {
	if s.notice == "" {
		return "", false
	}

	if s.now().Sub(s.noticeAt) >= s.noticeTTL {
		s.notice = ""

		return "", false
	}

	return s.notice, true
}

// View assembles the API representation with fresh derived values.
func (s *Store) View() *models.CartView {
	view := &models.CartView{
		Items:     s.Items(),
		Subtotal:  s.Subtotal(),
		ItemCount: s.ItemCount(),
	}

	if notice, ok := s.Notification(); ok {
		view.Notification = notice
	}

	return view
}

func (s *Store) persist(ctx context.Context) {

	items := s.items
	if items == nil {
		items = []models.LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		slog.Error("Failed to serialize cart", slog.String("error", err.Error()))

		return
	}

	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		slog.Warn("Failed to persist cart",
			slog.String("key", s.key),
			slog.String("error", err.Error()))
	}
}
