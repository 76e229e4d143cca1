package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductID identifies a catalog product. The shop backend uses uuid strings while the
// seed catalog uses small integers, so both JSON forms are accepted.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("product id must be a string or a number")
	}
	*id = ProductID(n.String())
	return nil
}

func (id ProductID) String() string {
	return string(id)
}

type ProductMetadata struct {
	Materials        []string `json:"materials,omitempty"`
	Dimensions       string   `json:"dimensions,omitempty"`
	CareInstructions string   `json:"care_instructions,omitempty"`
}

type Product struct {
	ID            ProductID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	Category      string           `json:"category"`
	Image         string           `json:"image"`
	Images        []string         `json:"images,omitempty"`
	InStock       bool             `json:"in_stock"`
	StockQuantity int              `json:"stock_quantity"`
	Featured      bool             `json:"featured"`
	Metadata      *ProductMetadata `json:"metadata,omitempty"`
	CreatedAt     *time.Time       `json:"created_at,omitempty"`
	UpdatedAt     *time.Time       `json:"updated_at,omitempty"`
}

type ProductFilter struct {
	Category string `form:"category"`
	Featured *bool  `form:"featured"`
	InStock  *bool  `form:"in_stock"`
	Limit    int    `form:"limit"`
	Skip     int    `form:"skip"`
}

type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required"`
	Description   string           `json:"description" binding:"required"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	Category      string           `json:"category" binding:"required"`
	Image         string           `json:"image" binding:"required"`
	Images        []string         `json:"images"`
	InStock       bool             `json:"in_stock"`
	StockQuantity int              `json:"stock_quantity"`
	Featured      bool             `json:"featured"`
	Metadata      *ProductMetadata `json:"metadata,omitempty"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Image         *string          `json:"image,omitempty"`
	Images        []string         `json:"images,omitempty"`
	InStock       *bool            `json:"in_stock,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty"`
	Featured      *bool            `json:"featured,omitempty"`
	Metadata      *ProductMetadata `json:"metadata,omitempty"`
}
