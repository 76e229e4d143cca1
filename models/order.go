package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type OrderItem struct {
	ProductID ProductID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	ShippingAddress Address         `json:"shipping_address"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderCreate struct {
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shipping_address"`
	Notes           *string     `json:"notes,omitempty"`
}

type OrderStatusUpdate struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}

type CheckoutRequest struct {
	ShippingAddress Address `json:"shipping_address" binding:"required"`
	Notes           string  `json:"notes"`
}

// CheckoutResult is returned after a checkout. Demo is set when no shop backend is
// configured and the order was not submitted anywhere.
type CheckoutResult struct {
	Order *Order          `json:"order,omitempty"`
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
	Demo  bool            `json:"demo"`
}
