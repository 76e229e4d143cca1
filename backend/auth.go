package backend

import (
	"context"
	"net/http"

	"github.com/diyahomestylist/poppyandteal/models"
)

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error) {
	var out models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	var out models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req models.UpdateProfileRequest) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPut, "/auth/profile", token, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*Message, error) {
	var out Message
	body := models.ForgotPasswordRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", "", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*Message, error) {
	var out Message
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", "", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
