package services

import (
	"context"
	"sync"

	"github.com/diyahomestylist/poppyandteal/cartstore"
	"github.com/diyahomestylist/poppyandteal/logger"
	"github.com/diyahomestylist/poppyandteal/models"
)

type OrderSubmitter interface {
	CreateOrder(ctx context.Context, token string, req models.OrderCreate) (*models.Order, error)
}

// CartService works on one cartstore.Store per request. A profile's store is kept, and
// attached to Sync, only while it has subscribers, so changes written by another instance
// still reach them.
type CartService struct {
	storage  cartstore.Storage
	cartSync *cartstore.Sync
	catalog  *CatalogService
	sessions *SessionStore
	orders   OrderSubmitter
	log      *logger.Logger

	mu      sync.Mutex
	watched map[string]*watchedStore
}

type watchedStore struct {
	store  *cartstore.Store
	detach func()
}

// NewCartService builds the service. orders may be nil, in which case checkout only
// produces a demo receipt.
func NewCartService(storage cartstore.Storage, cartSync *cartstore.Sync, catalog *CatalogService, sessions *SessionStore, orders OrderSubmitter, log *logger.Logger) *CartService {
	if log == nil {
		log = logger.NewNop()
	}
	return &CartService{
		storage:  storage,
		cartSync: cartSync,
		catalog:  catalog,
		sessions: sessions,
		orders:   orders,
		log:      log.With("service", "cart"),
		watched:  make(map[string]*watchedStore),
	}
}

// store returns the watched store of the profile so its subscribers hear the change
// directly, or a fresh store that is dropped after the request.
func (s *CartService) store(profileID string) *cartstore.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.watched[profileID]; ok {
		return w.store
	}
	return s.newStore(profileID)
}

func (s *CartService) newStore(profileID string) *cartstore.Store {
	return cartstore.New(s.storage, cartstore.KeyFor(profileID), cartstore.WithLogger(s.log))
}

// Subscribe registers fn on the profile's store and keeps that store attached to Sync
// until the last subscriber leaves. The returned function unsubscribes and is safe to call
// more than once.
func (s *CartService) Subscribe(profileID string, fn cartstore.Listener) (*cartstore.Store, func()) {
	s.mu.Lock()
	w, ok := s.watched[profileID]
	if !ok {
		w = &watchedStore{store: s.newStore(profileID), detach: func() {}}
		if s.cartSync != nil {
			w.detach = s.cartSync.Attach(w.store)
		}
		s.watched[profileID] = w
	}
	unsubscribe := w.store.Subscribe(fn)
	s.mu.Unlock()

	var once sync.Once
	return w.store, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			unsubscribe()
			if w.store.Subscribers() == 0 && s.watched[profileID] == w {
				delete(s.watched, profileID)
				w.detach()
			}
		})
	}
}

// Watched reports how many profiles currently hold a store with subscribers.
func (s *CartService) Watched() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watched)
}

func (s *CartService) Summary(ctx context.Context, profileID string) models.CartSummary {
	return s.store(profileID).Summary(ctx)
}

// Add looks the product up in the catalog so the line item snapshots current details.
func (s *CartService) Add(ctx context.Context, profileID string, productID models.ProductID) (models.CartSummary, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return models.CartSummary{}, err
	}
	if !product.InStock {
		return models.CartSummary{}, ErrOutOfStock
	}
	st := s.store(profileID)
	return summarize(st.Add(ctx, *product)), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, profileID string, productID models.ProductID, quantity int) models.CartSummary {
	return summarize(s.store(profileID).UpdateQuantity(ctx, productID, quantity))
}

func (s *CartService) Remove(ctx context.Context, profileID string, productID models.ProductID) models.CartSummary {
	return summarize(s.store(profileID).Remove(ctx, productID))
}

func (s *CartService) Clear(ctx context.Context, profileID string) {
	s.store(profileID).Clear(ctx)
}

// Checkout submits the cart as an order and, once the backend has accepted it, takes the
// ordered quantities out of the cart. Anything added while the order was in flight stays.
// On any error the cart is left as it was.
func (s *CartService) Checkout(ctx context.Context, profileID string, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	st := s.store(profileID)
	items := st.Items(ctx)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	result := &models.CheckoutResult{Items: items, Total: cartstore.Total(items)}

	if s.orders == nil {
		s.log.Info("no shop backend configured, issuing demo receipt", "profile_id", profileID)
		st.Deduct(ctx, items)
		result.Demo = true
		return result, nil
	}

	create := models.OrderCreate{ShippingAddress: req.ShippingAddress}
	if req.Notes != "" {
		notes := req.Notes
		create.Notes = &notes
	}
	for _, item := range items {
		create.Items = append(create.Items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		})
	}

	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		order, err := s.orders.CreateOrder(ctx, token, create)
		if err != nil {
			return err
		}
		result.Order = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	st.Deduct(ctx, items)
	s.log.Info("order placed", "profile_id", profileID, "order_id", result.Order.ID, "total", result.Total.String())
	return result, nil
}

func summarize(items []models.CartItem) models.CartSummary {
	return models.CartSummary{Items: items, Total: cartstore.Total(items), Count: cartstore.Count(items)}
}
