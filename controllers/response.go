package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diyahomestylist/poppyandteal/backend"
	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/services"
)

func ok(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{Success: true, Message: message, Data: data})
}

func fail(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

// failFrom maps service and backend errors onto HTTP statuses.
func failFrom(c *gin.Context, err error) {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, services.ErrLoginRequired):
		fail(c, http.StatusUnauthorized, "Please log in to continue", nil)
	case errors.Is(err, services.ErrProductNotFound):
		fail(c, http.StatusNotFound, "Product not found", nil)
	case errors.Is(err, services.ErrOutOfStock):
		fail(c, http.StatusConflict, "Product is out of stock", nil)
	case errors.Is(err, services.ErrEmptyCart):
		fail(c, http.StatusBadRequest, "Your cart is empty", nil)
	case errors.Is(err, services.ErrUnknownLinkKind):
		fail(c, http.StatusBadRequest, "Unknown enquiry kind", nil)
	case errors.Is(err, backend.ErrNotConfigured):
		fail(c, http.StatusServiceUnavailable, "Shop backend is not available", nil)
	case errors.As(err, &apiErr):
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		fail(c, status, apiErr.Detail, nil)
	default:
		fail(c, http.StatusBadGateway, "Shop backend request failed", err)
	}
}
