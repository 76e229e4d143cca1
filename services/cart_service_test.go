package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/diyahomestylist/poppyandteal/backend"
	"github.com/diyahomestylist/poppyandteal/cartstore"
	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/storage"
)

type fakeOrders struct {
	got      *models.OrderCreate
	token    string
	err      error
	inFlight func()
}

func (f *fakeOrders) CreateOrder(_ context.Context, token string, req models.OrderCreate) (*models.Order, error) {
	if f.inFlight != nil {
		f.inFlight()
	}
	if f.err != nil {
		return nil, f.err
	}
	f.got, f.token = &req, token
	return &models.Order{ID: "order-1", Items: req.Items, Status: "pending"}, nil
}

func newCartService(t *testing.T, orders OrderSubmitter) (*CartService, *SessionStore) {
	t.Helper()
	mem := storage.NewMemory()
	sessions := NewSessionStore(mem, nil)
	return NewCartService(mem, cartstore.NewSync(mem, nil), newSeedCatalog(t), sessions, orders, nil), sessions
}

func login(t *testing.T, sessions *SessionStore, profileID string) {
	t.Helper()
	err := sessions.Save(context.Background(), profileID, &models.TokenResponse{
		AccessToken: "tok-" + profileID,
		TokenType:   "bearer",
		User:        models.User{ID: "u-" + profileID, Email: "asha@example.com", Role: "customer"},
	})
	if err != nil {
		t.Fatalf("Save() = %v", err)
	}
}

var address = models.Address{Street: "12 MG Road", City: "Chennai", State: "TN", PostalCode: "600001", Country: "India"}

func TestCartAddUsesCatalogSnapshot(t *testing.T) {
	svc, _ := newCartService(t, nil)
	ctx := context.Background()

	summary, err := svc.Add(ctx, "p1", "1")
	if err != nil {
		t.Fatalf("Add() = %v", err)
	}
	want := []models.CartItem{{
		ProductID: "1",
		Name:      "Bohemian Wall Hanging",
		Category:  "Wall Art",
		Image:     "/images/IMG_3122.JPG",
		Price:     decimal.RequireFromString("89.99"),
		Quantity:  1,
	}}
	if diff := cmp.Diff(want, summary.Items, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
	if summary.Count != 1 || !summary.Total.Equal(decimal.RequireFromString("89.99")) {
		t.Errorf("summary = %+v", summary)
	}
}

func TestCartAddRejectsUnknownAndOutOfStock(t *testing.T) {
	svc, _ := newCartService(t, nil)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "p1", "404"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Add(404) err = %v, want ErrProductNotFound", err)
	}
	if _, err := svc.Add(ctx, "p1", "5"); !errors.Is(err, ErrOutOfStock) {
		t.Errorf("Add(5) err = %v, want ErrOutOfStock", err)
	}
	if got := svc.Summary(ctx, "p1").Count; got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
}

func TestCartsAreScopedByProfile(t *testing.T) {
	svc, _ := newCartService(t, nil)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "p1", "1"); err != nil {
		t.Fatal(err)
	}
	if got := svc.Summary(ctx, "p2").Count; got != 0 {
		t.Errorf("other profile Count = %d, want 0", got)
	}
	if got := svc.Summary(ctx, "p1").Count; got != 1 {
		t.Errorf("p1 Count = %d, want 1", got)
	}
}

func TestCartStoresAreOnlyKeptWhileWatched(t *testing.T) {
	svc, _ := newCartService(t, nil)
	ctx := context.Background()

	for i := 0; i < 10000; i++ {
		svc.Summary(ctx, fmt.Sprintf("visitor-%d", i))
	}
	if got := svc.Watched(); got != 0 {
		t.Fatalf("Watched() after plain reads = %d, want 0", got)
	}

	var events []cartstore.Event
	st, unsubscribe := svc.Subscribe("p1", func(ev cartstore.Event) { events = append(events, ev) })
	_, unsubscribe2 := svc.Subscribe("p1", func(cartstore.Event) {})
	if got := svc.Watched(); got != 1 {
		t.Fatalf("Watched() while subscribed = %d, want 1", got)
	}
	if st.Key() != cartstore.KeyFor("p1") {
		t.Errorf("Key() = %q", st.Key())
	}

	if _, err := svc.Add(ctx, "p1", "1"); err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Remote {
		t.Errorf("events = %+v, want one local event", events)
	}

	unsubscribe()
	unsubscribe()
	if got := svc.Watched(); got != 1 {
		t.Errorf("Watched() with one subscriber left = %d, want 1", got)
	}
	unsubscribe2()
	if got := svc.Watched(); got != 0 {
		t.Errorf("Watched() after unsubscribing = %d, want 0", got)
	}
	if got := svc.Summary(ctx, "p1").Count; got != 1 {
		t.Errorf("Count after unsubscribing = %d, want 1", got)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _ := newCartService(t, &fakeOrders{})
	if _, err := svc.Checkout(context.Background(), "p1", models.CheckoutRequest{ShippingAddress: address}); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("Checkout() err = %v, want ErrEmptyCart", err)
	}
}

func TestCheckoutDemoClearsCart(t *testing.T) {
	svc, _ := newCartService(t, nil)
	ctx := context.Background()
	svc.Add(ctx, "p1", "2")
	svc.Add(ctx, "p1", "2")

	result, err := svc.Checkout(ctx, "p1", models.CheckoutRequest{ShippingAddress: address})
	if err != nil {
		t.Fatalf("Checkout() = %v", err)
	}
	if !result.Demo || result.Order != nil {
		t.Errorf("result = %+v, want demo receipt", result)
	}
	if !result.Total.Equal(decimal.RequireFromString("91")) {
		t.Errorf("Total = %s, want 91", result.Total)
	}
	if got := svc.Summary(ctx, "p1").Count; got != 0 {
		t.Errorf("Count after checkout = %d, want 0", got)
	}
}

func TestCheckoutSubmitsOrderThenClears(t *testing.T) {
	orders := &fakeOrders{}
	svc, sessions := newCartService(t, orders)
	ctx := context.Background()
	login(t, sessions, "p1")
	svc.Add(ctx, "p1", "1")
	svc.UpdateQuantity(ctx, "p1", "1", 2)

	result, err := svc.Checkout(ctx, "p1", models.CheckoutRequest{ShippingAddress: address, Notes: "gift wrap"})
	if err != nil {
		t.Fatalf("Checkout() = %v", err)
	}
	if result.Order == nil || result.Order.ID != "order-1" || result.Demo {
		t.Errorf("result = %+v", result)
	}
	if orders.token != "tok-p1" {
		t.Errorf("token = %q, want tok-p1", orders.token)
	}
	if orders.got.Notes == nil || *orders.got.Notes != "gift wrap" {
		t.Errorf("notes = %v", orders.got.Notes)
	}
	if len(orders.got.Items) != 1 || orders.got.Items[0].Quantity != 2 ||
		!orders.got.Items[0].Subtotal.Equal(decimal.RequireFromString("179.98")) {
		t.Errorf("order items = %+v", orders.got.Items)
	}
	if got := svc.Summary(ctx, "p1").Count; got != 0 {
		t.Errorf("Count after checkout = %d, want 0", got)
	}
}

func TestCheckoutKeepsItemsAddedInFlight(t *testing.T) {
	orders := &fakeOrders{}
	svc, sessions := newCartService(t, orders)
	ctx := context.Background()
	login(t, sessions, "p1")
	svc.Add(ctx, "p1", "1")
	orders.inFlight = func() {
		svc.Add(ctx, "p1", "1")
		svc.Add(ctx, "p1", "3")
	}

	if _, err := svc.Checkout(ctx, "p1", models.CheckoutRequest{ShippingAddress: address}); err != nil {
		t.Fatalf("Checkout() = %v", err)
	}
	if len(orders.got.Items) != 1 || orders.got.Items[0].Quantity != 1 {
		t.Errorf("order items = %+v", orders.got.Items)
	}

	var got []string
	for _, it := range svc.Summary(ctx, "p1").Items {
		got = append(got, fmt.Sprintf("%s x%d", it.ProductID, it.Quantity))
	}
	if diff := cmp.Diff([]string{"1 x1", "3 x1"}, got); diff != "" {
		t.Errorf("cart after checkout mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	tests := []struct {
		name     string
		loggedIn bool
		err      error
		want     error
	}{
		{name: "not logged in", want: ErrLoginRequired},
		{name: "backend rejects", loggedIn: true, err: &backend.APIError{Status: 400, Detail: "out of stock"}},
		{name: "token expired", loggedIn: true, err: &backend.APIError{Status: 401}, want: ErrLoginRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sessions := newCartService(t, &fakeOrders{err: tt.err})
			ctx := context.Background()
			if tt.loggedIn {
				login(t, sessions, "p1")
			}
			svc.Add(ctx, "p1", "3")

			_, err := svc.Checkout(ctx, "p1", models.CheckoutRequest{ShippingAddress: address})
			if err == nil {
				t.Fatal("Checkout() succeeded, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Checkout() err = %v, want %v", err, tt.want)
			}
			if got := svc.Summary(ctx, "p1").Count; got != 1 {
				t.Errorf("Count after failed checkout = %d, want 1", got)
			}
		})
	}
}

func TestExpiredTokenClearsSession(t *testing.T) {
	svc, sessions := newCartService(t, &fakeOrders{err: &backend.APIError{Status: 401}})
	ctx := context.Background()
	login(t, sessions, "p1")
	svc.Add(ctx, "p1", "3")

	svc.Checkout(ctx, "p1", models.CheckoutRequest{ShippingAddress: address})

	if _, err := sessions.Token(ctx, "p1"); !errors.Is(err, ErrLoginRequired) {
		t.Errorf("Token() err = %v, want ErrLoginRequired", err)
	}
	if _, err := sessions.User(ctx, "p1"); !errors.Is(err, ErrLoginRequired) {
		t.Errorf("User() err = %v, want ErrLoginRequired", err)
	}
}

func TestLogoutClearsSessionAndCart(t *testing.T) {
	svc, sessions := newCartService(t, nil)
	auth := NewAuthService(nil, sessions, svc, nil)
	ctx := context.Background()
	login(t, sessions, "p1")
	svc.Add(ctx, "p1", "1")

	user, err := auth.CurrentUser(ctx, "p1")
	if err != nil || user.ID != "u-p1" {
		t.Fatalf("CurrentUser() = %+v, %v", user, err)
	}

	auth.Logout(ctx, "p1")

	if _, err := auth.CurrentUser(ctx, "p1"); !errors.Is(err, ErrLoginRequired) {
		t.Errorf("CurrentUser() after logout err = %v, want ErrLoginRequired", err)
	}
	if got := svc.Summary(ctx, "p1").Count; got != 0 {
		t.Errorf("Count after logout = %d, want 0", got)
	}
}
