package services

import (
	"context"

	"github.com/diyahomestylist/poppyandteal/backend"
	"github.com/diyahomestylist/poppyandteal/models"
)

type OrderService struct {
	client   *backend.Client
	sessions *SessionStore
}

func NewOrderService(client *backend.Client, sessions *SessionStore) *OrderService {
	return &OrderService{client: client, sessions: sessions}
}

func (s *OrderService) List(ctx context.Context, profileID string, p models.PageParams) ([]models.Order, error) {
	var orders []models.Order
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		orders, err = s.client.Orders(ctx, token, p)
		return err
	})
	return orders, err
}

func (s *OrderService) Get(ctx context.Context, profileID, orderID string) (*models.Order, error) {
	var order *models.Order
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		order, err = s.client.Order(ctx, token, orderID)
		return err
	})
	return order, err
}
