package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diyahomestylist/poppyandteal/cartstore"
	"github.com/diyahomestylist/poppyandteal/middleware"
	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/services"
)

type CartController struct {
	Carts *services.CartService
}

// @Summary Get cart
// @Description Get the line items, total and item count of the current profile's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	summary := ctrl.Carts.Summary(c.Request.Context(), middleware.ProfileID(c))
	ok(c, http.StatusOK, "Cart retrieved", summary)
}

// @Summary Add to cart
// @Description Add one unit of a product to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	summary, err := ctrl.Carts.Add(c.Request.Context(), middleware.ProfileID(c), req.ProductID)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Added to cart", summary)
}

// @Summary Update quantity
// @Description Set the quantity of a line item; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	id := models.ProductID(c.Param("id"))
	summary := ctrl.Carts.UpdateQuantity(c.Request.Context(), middleware.ProfileID(c), id, *req.Quantity)
	ok(c, http.StatusOK, "Cart updated", summary)
}

// @Summary Remove from cart
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id := models.ProductID(c.Param("id"))
	summary := ctrl.Carts.Remove(c.Request.Context(), middleware.ProfileID(c), id)
	ok(c, http.StatusOK, "Removed from cart", summary)
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.Carts.Clear(c.Request.Context(), middleware.ProfileID(c))
	ok(c, http.StatusOK, "Cart cleared", nil)
}

// @Summary Checkout
// @Description Place an order for the cart. The cart is cleared only once the order is accepted.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Shipping details"
// @Success 201 {object} models.Response{data=models.CheckoutResult}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	result, err := ctrl.Carts.Checkout(c.Request.Context(), middleware.ProfileID(c), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	message := "Order placed"
	if result.Demo {
		message = "Thank you for your order! This is a demo checkout."
	}
	ok(c, http.StatusCreated, message, result)
}

type cartUpdate struct {
	Count  int    `json:"count"`
	Total  string `json:"total"`
	Remote bool   `json:"remote"`
}

// @Summary Cart events
// @Description Server-sent "cartUpdated" events carrying the item count and total after every change
// @Tags Cart
// @Produce text/event-stream
// @Success 200 {string} string
// @Router /cart/events [get]
func (ctrl *CartController) Events(c *gin.Context) {
	ctx := c.Request.Context()
	updates := make(chan cartstore.Event, 8)
	st, unsubscribe := ctrl.Carts.Subscribe(middleware.ProfileID(c), func(ev cartstore.Event) {
		select {
		case updates <- ev:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	send := func(ev cartstore.Event) {
		items := st.Items(ctx)
		c.SSEvent("cartUpdated", cartUpdate{
			Count:  cartstore.Count(items),
			Total:  cartstore.Total(items).StringFixed(2),
			Remote: ev.Remote,
		})
	}
	send(cartstore.Event{Key: st.Key()})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev := <-updates:
			send(ev)
			return true
		}
	})
}
