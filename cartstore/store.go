package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/diyahomestylist/poppyandteal/logger"
	"github.com/diyahomestylist/poppyandteal/models"
)

// KeyPrefix is prepended to the profile id to form the storage key of a cart.
const KeyPrefix = "macrame_cart:"

func KeyFor(profileID string) string {
	return KeyPrefix + profileID
}

// Store owns the persisted cart under a single storage key. Every call reads the cart from
// storage, so several stores (in this or other processes) can share one key; the last write
// wins. Storage failures never reach the caller: unreadable carts are treated as empty and
// failed writes are logged.
type Store struct {
	id      string
	key     string
	storage Storage
	log     *logger.Logger

	mu        sync.Mutex
	listeners *listeners
}

type Option func(*Store)

func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func New(storage Storage, key string, opts ...Option) *Store {
	s := &Store{
		id:      uuid.NewString(),
		key:     key,
		storage: storage,
		log:     logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("cart_key", key)
	s.listeners = newListeners(s.log)
	return s
}

// ID identifies this store as the origin of its writes.
func (s *Store) ID() string { return s.id }

func (s *Store) Key() string { return s.key }

// Items returns the current line items in insertion order. The slice is a copy.
func (s *Store) Items(ctx context.Context) []models.CartItem {
	return s.load(ctx)
}

// Add increments the quantity of the product's line item, or appends a new line item with
// quantity 1 holding a snapshot of the product's name, category, image and price.
func (s *Store) Add(ctx context.Context, product models.Product) []models.CartItem {
	return s.mutate(ctx, func(items []models.CartItem) []models.CartItem {
		if i := indexOf(items, product.ID); i >= 0 {
			items[i].Quantity++
			return items
		}
		return append(items, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
			Image:     product.Image,
			Price:     product.Price,
			Quantity:  1,
		})
	})
}

// Remove drops the product's line item. Removing an absent product is a no-op.
func (s *Store) Remove(ctx context.Context, productID models.ProductID) []models.CartItem {
	return s.mutate(ctx, func(items []models.CartItem) []models.CartItem {
		return removeAt(items, indexOf(items, productID))
	})
}

// UpdateQuantity sets the product's quantity. A quantity of zero or less removes the line
// item so that no persisted item ever has a non-positive quantity.
func (s *Store) UpdateQuantity(ctx context.Context, productID models.ProductID, quantity int) []models.CartItem {
	return s.mutate(ctx, func(items []models.CartItem) []models.CartItem {
		i := indexOf(items, productID)
		if i < 0 {
			return items
		}
		if quantity <= 0 {
			return removeAt(items, i)
		}
		items[i].Quantity = quantity
		return items
	})
}

// Deduct subtracts the quantities of ordered from the matching line items and drops those
// that reach zero. Items added after ordered was read are left alone.
func (s *Store) Deduct(ctx context.Context, ordered []models.CartItem) []models.CartItem {
	return s.mutate(ctx, func(items []models.CartItem) []models.CartItem {
		for _, o := range ordered {
			i := indexOf(items, o.ProductID)
			if i < 0 {
				continue
			}
			items[i].Quantity -= o.Quantity
			if items[i].Quantity <= 0 {
				items = removeAt(items, i)
			}
		}
		return items
	})
}

// Clear removes the persisted cart entirely.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	if err := s.storage.Remove(WithOrigin(ctx, s.id), s.key); err != nil {
		s.log.Warn("failed to clear cart", "error", err)
	}
	s.mu.Unlock()

	s.notify(Event{Key: s.key})
}

func (s *Store) Total(ctx context.Context) decimal.Decimal {
	return Total(s.load(ctx))
}

func (s *Store) Count(ctx context.Context) int {
	return Count(s.load(ctx))
}

func (s *Store) Summary(ctx context.Context) models.CartSummary {
	items := s.load(ctx)
	return models.CartSummary{Items: items, Total: Total(items), Count: Count(items)}
}

// Subscribe registers fn to be called after every change to this cart. The returned
// function unsubscribes; it is safe to call more than once.
func (s *Store) Subscribe(fn Listener) func() {
	return s.listeners.add(fn)
}

// Subscribers reports how many listeners are currently registered.
func (s *Store) Subscribers() int {
	return s.listeners.len()
}

func (s *Store) notify(ev Event) {
	s.listeners.broadcast(ev)
}

func (s *Store) mutate(ctx context.Context, fn func([]models.CartItem) []models.CartItem) []models.CartItem {
	s.mu.Lock()
	items := fn(s.load(ctx))
	s.save(ctx, items)
	s.mu.Unlock()

	s.notify(Event{Key: s.key})
	return items
}

func (s *Store) load(ctx context.Context) []models.CartItem {
	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("failed to read cart, treating as empty", "error", err)
		}
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("stored cart is not parseable, treating as empty", "error", err)
		return []models.CartItem{}
	}

	valid := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Quantity > 0 {
			valid = append(valid, item)
		}
	}
	return valid
}

func (s *Store) save(ctx context.Context, items []models.CartItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Error("failed to encode cart", "error", err)
		return
	}
	if err := s.storage.Set(WithOrigin(ctx, s.id), s.key, string(raw)); err != nil {
		s.log.Warn("failed to persist cart", "error", err)
	}
}

func Total(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func Count(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func indexOf(items []models.CartItem, id models.ProductID) int {
	for i, item := range items {
		if item.ProductID == id {
			return i
		}
	}
	return -1
}

func removeAt(items []models.CartItem, i int) []models.CartItem {
	if i < 0 {
		return items
	}
	return append(items[:i], items[i+1:]...)
}
