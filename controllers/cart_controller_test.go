package controllers

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diyahomestylist/poppyandteal/cartstore"
	"github.com/diyahomestylist/poppyandteal/config"
	"github.com/diyahomestylist/poppyandteal/middleware"
	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/services"
	"github.com/diyahomestylist/poppyandteal/storage"
)

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{ProfileCookie: "pt_profile", ProfileSecret: "test-secret", ProfileTTL: time.Hour}
	mem := storage.NewMemory()
	catalog, err := services.NewCatalogService(nil, nil, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	sessions := services.NewSessionStore(mem, nil)
	carts := services.NewCartService(mem, cartstore.NewSync(mem, nil), catalog, sessions, nil, nil)
	ctrl := &CartController{Carts: carts}

	r := gin.New()
	g := r.Group("/", middleware.ProfileMiddleware(cfg))
	g.GET("/cart", ctrl.GetCart)
	g.DELETE("/cart", ctrl.ClearCart)
	g.GET("/cart/events", ctrl.Events)
	g.POST("/cart/items", ctrl.AddItem)
	g.PATCH("/cart/items/:id", ctrl.UpdateItem)
	g.DELETE("/cart/items/:id", ctrl.RemoveItem)
	g.POST("/cart/checkout", ctrl.Checkout)
	return r
}

type cartResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    models.CartSummary `json:"data"`
}

func do(t *testing.T, r http.Handler, cookie *http.Cookie, method, path, body string) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == "pt_profile" {
			return w, c
		}
	}
	return w, cookie
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return resp
}

func TestCartFlow(t *testing.T) {
	r := newCartRouter(t)

	w, cookie := do(t, r, nil, http.MethodPost, "/cart/items", `{"product_id":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("add status = %d, body %s", w.Code, w.Body.String())
	}
	if cookie == nil {
		t.Fatal("no profile cookie issued")
	}

	do(t, r, cookie, http.MethodPost, "/cart/items", `{"product_id":"2"}`)
	do(t, r, cookie, http.MethodPost, "/cart/items", `{"product_id":"2"}`)

	w, _ = do(t, r, cookie, http.MethodGet, "/cart", "")
	resp := decodeCart(t, w)
	if resp.Data.Count != 3 || len(resp.Data.Items) != 2 {
		t.Fatalf("cart = %+v", resp.Data)
	}
	if got := resp.Data.Total.String(); got != "180.99" {
		t.Errorf("total = %s, want 180.99", got)
	}

	w, _ = do(t, r, cookie, http.MethodPatch, "/cart/items/2", `{"quantity":0}`)
	resp = decodeCart(t, w)
	if len(resp.Data.Items) != 1 || resp.Data.Items[0].ProductID != "1" {
		t.Errorf("after zero quantity = %+v", resp.Data.Items)
	}

	w, _ = do(t, r, cookie, http.MethodDelete, "/cart/items/1", "")
	if resp = decodeCart(t, w); resp.Data.Count != 0 {
		t.Errorf("after remove = %+v", resp.Data)
	}

	w, _ = do(t, r, nil, http.MethodGet, "/cart", "")
	if resp = decodeCart(t, w); resp.Data.Count != 0 {
		t.Errorf("new profile sees %+v", resp.Data)
	}
}

func TestCartErrors(t *testing.T) {
	r := newCartRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "unknown product", method: http.MethodPost, path: "/cart/items", body: `{"product_id":"404"}`, want: http.StatusNotFound},
		{name: "out of stock", method: http.MethodPost, path: "/cart/items", body: `{"product_id":5}`, want: http.StatusConflict},
		{name: "missing product id", method: http.MethodPost, path: "/cart/items", body: `{}`, want: http.StatusBadRequest},
		{name: "missing quantity", method: http.MethodPatch, path: "/cart/items/1", body: `{}`, want: http.StatusBadRequest},
		{name: "checkout empty cart", method: http.MethodPost, path: "/cart/checkout", body: `{"shipping_address":{"street":"1","city":"c","state":"s","postal_code":"p","country":"IN"}}`, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := do(t, r, nil, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
			var resp models.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Success {
				t.Errorf("body = %s, want error envelope", w.Body.String())
			}
		})
	}
}

func TestDemoCheckout(t *testing.T) {
	r := newCartRouter(t)
	_, cookie := do(t, r, nil, http.MethodPost, "/cart/items", `{"product_id":"3"}`)

	w, _ := do(t, r, cookie, http.MethodPost, "/cart/checkout", `{"shipping_address":{"street":"1","city":"c","state":"s","postal_code":"p","country":"IN"}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data models.CheckoutResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Data.Demo || len(resp.Data.Items) != 1 {
		t.Errorf("result = %+v", resp.Data)
	}

	w, _ = do(t, r, cookie, http.MethodGet, "/cart", "")
	if got := decodeCart(t, w).Data.Count; got != 0 {
		t.Errorf("count after checkout = %d, want 0", got)
	}
}

func TestCartEvents(t *testing.T) {
	r := newCartRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, cookie := do(t, r, nil, http.MethodGet, "/cart", "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/cart/events", nil)
	req.AddCookie(cookie)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /cart/events: %v", err)
	}
	defer resp.Body.Close()

	lines := bufio.NewScanner(resp.Body)
	nextData := func() string {
		for lines.Scan() {
			if line := lines.Text(); strings.HasPrefix(line, "data:") {
				return strings.TrimPrefix(line, "data:")
			}
		}
		t.Fatalf("stream ended: %v", lines.Err())
		return ""
	}

	if got := nextData(); !strings.Contains(got, `"count":0`) {
		t.Errorf("initial event = %s", got)
	}

	if w, _ := do(t, r, cookie, http.MethodPost, "/cart/items", `{"product_id":"1"}`); w.Code != http.StatusOK {
		t.Fatalf("add status = %d", w.Code)
	}
	got := nextData()
	if !strings.Contains(got, `"count":1`) || !strings.Contains(got, `"total":"89.99"`) {
		t.Errorf("event after add = %s", got)
	}
}
