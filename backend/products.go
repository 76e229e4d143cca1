package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diyahomestylist/poppyandteal/models"
)

func (c *Client) Products(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Featured != nil {
		q.Set("featured", strconv.FormatBool(*f.Featured))
	}
	if f.InStock != nil {
		q.Set("in_stock", strconv.FormatBool(*f.InStock))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}

	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", "", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products/featured", "", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id models.ProductID) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id.String()), "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/categories", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products/search/"+url.PathEscape(query), "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, req models.CreateProductRequest) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPost, "/products", token, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id models.ProductID, req models.UpdateProductRequest) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id.String()), token, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id models.ProductID) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id.String()), token, nil, nil, nil)
}
