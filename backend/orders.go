package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diyahomestylist/poppyandteal/models"
)

func pageQuery(p models.PageParams) url.Values {
	q := url.Values{}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	return q
}

func (c *Client) CreateOrder(ctx context.Context, token string, req models.OrderCreate) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Orders(ctx context.Context, token string, p models.PageParams) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", token, pageQuery(p), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Order(ctx context.Context, token, id string) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, id, status string) (*models.Order, error) {
	var out models.Order
	body := models.OrderStatusUpdate{Status: status}
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/status", token, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AllOrders(ctx context.Context, token string, p models.PageParams) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders", token, pageQuery(p), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
