package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diyahomestylist/poppyandteal/models"
)

func (c *Client) Dashboard(ctx context.Context, token string) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Users(ctx context.Context, token string, p models.PageParams) ([]models.User, error) {
	var out []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", token, pageQuery(p), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, req models.UpdateUserRequest) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id), token, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleUserStatus(ctx context.Context, token, id string) (*Message, error) {
	var out Message
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id)+"/toggle-status", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
