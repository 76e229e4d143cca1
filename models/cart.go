package models

import "github.com/shopspring/decimal"

// CartItem is one line of a cart. Name, category, image and price are copied from the
// catalog when the product is first added and are not refreshed afterwards.
type CartItem struct {
	ProductID ProductID       `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CartSummary struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type AddCartItemRequest struct {
	ProductID ProductID `json:"product_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
