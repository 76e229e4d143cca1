package services

import (
	"context"

	"github.com/diyahomestylist/poppyandteal/backend"
	"github.com/diyahomestylist/poppyandteal/logger"
	"github.com/diyahomestylist/poppyandteal/models"
)

// AdminService proxies the backend's admin API with the token stored for the profile.
// Role checks happen in middleware; the backend enforces them again.
type AdminService struct {
	client   *backend.Client
	sessions *SessionStore
	catalog  *CatalogService
	log      *logger.Logger
}

func NewAdminService(client *backend.Client, sessions *SessionStore, catalog *CatalogService, log *logger.Logger) *AdminService {
	if log == nil {
		log = logger.NewNop()
	}
	return &AdminService{client: client, sessions: sessions, catalog: catalog, log: log.With("service", "admin")}
}

func (s *AdminService) Dashboard(ctx context.Context, profileID string) (*models.DashboardStats, error) {
	var stats *models.DashboardStats
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		stats, err = s.client.Dashboard(ctx, token)
		return err
	})
	return stats, err
}

func (s *AdminService) Users(ctx context.Context, profileID string, p models.PageParams) ([]models.User, error) {
	var users []models.User
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		users, err = s.client.Users(ctx, token, p)
		return err
	})
	return users, err
}

func (s *AdminService) UpdateUser(ctx context.Context, profileID, userID string, req models.UpdateUserRequest) (*models.User, error) {
	var user *models.User
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		user, err = s.client.UpdateUser(ctx, token, userID, req)
		return err
	})
	return user, err
}

func (s *AdminService) ToggleUserStatus(ctx context.Context, profileID, userID string) (*backend.Message, error) {
	var msg *backend.Message
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		msg, err = s.client.ToggleUserStatus(ctx, token, userID)
		return err
	})
	return msg, err
}

func (s *AdminService) Orders(ctx context.Context, profileID string, p models.PageParams) ([]models.Order, error) {
	var orders []models.Order
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		orders, err = s.client.AllOrders(ctx, token, p)
		return err
	})
	return orders, err
}

func (s *AdminService) UpdateOrderStatus(ctx context.Context, profileID, orderID, status string) (*models.Order, error) {
	var order *models.Order
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		order, err = s.client.UpdateOrderStatus(ctx, token, orderID, status)
		return err
	})
	if err == nil {
		s.log.Info("order status updated", "order_id", orderID, "status", status)
	}
	return order, err
}

func (s *AdminService) Contacts(ctx context.Context, profileID string, p models.PageParams) ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		contacts, err = s.client.Contacts(ctx, token, p)
		return err
	})
	return contacts, err
}

func (s *AdminService) UpdateContactStatus(ctx context.Context, profileID, contactID, status string) (*models.Contact, error) {
	var contact *models.Contact
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		contact, err = s.client.UpdateContactStatus(ctx, token, contactID, status)
		return err
	})
	return contact, err
}

func (s *AdminService) CreateProduct(ctx context.Context, profileID string, req models.CreateProductRequest) (*models.Product, error) {
	var product *models.Product
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		product, err = s.client.CreateProduct(ctx, token, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.catalog.InvalidateCache(ctx)
	return product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, profileID string, id models.ProductID, req models.UpdateProductRequest) (*models.Product, error) {
	var product *models.Product
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		product, err = s.client.UpdateProduct(ctx, token, id, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.catalog.InvalidateCache(ctx)
	return product, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, profileID string, id models.ProductID) error {
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		return s.client.DeleteProduct(ctx, token, id)
	})
	if err != nil {
		return err
	}
	s.catalog.InvalidateCache(ctx)
	s.log.Info("product deleted", "product_id", id.String())
	return nil
}
