package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diyahomestylist/poppyandteal/models"
)

func (c *Client) SubmitContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	var out models.Contact
	if err := c.do(ctx, http.MethodPost, "/contact", "", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Contacts(ctx context.Context, token string, p models.PageParams) ([]models.Contact, error) {
	var out []models.Contact
	if err := c.do(ctx, http.MethodGet, "/admin/contacts", token, pageQuery(p), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateContactStatus(ctx context.Context, token, id, status string) (*models.Contact, error) {
	var out models.Contact
	body := models.ContactStatusUpdate{Status: status}
	if err := c.do(ctx, http.MethodPut, "/admin/contacts/"+url.PathEscape(id)+"/status", token, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
