package services

import "errors"

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrLoginRequired   = errors.New("login required")
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrUnknownLinkKind = errors.New("unknown whatsapp link kind")
	ErrAdminRequired   = errors.New("admin role required")
)
