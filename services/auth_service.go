package services

import (
	"context"

	"github.com/diyahomestylist/poppyandteal/backend"
	"github.com/diyahomestylist/poppyandteal/logger"
	"github.com/diyahomestylist/poppyandteal/models"
)

// AuthService proxies account operations to the shop backend and remembers the issued
// token per profile. Passwords never pass through anything but the request to the backend.
type AuthService struct {
	client   *backend.Client
	sessions *SessionStore
	carts    *CartService
	log      *logger.Logger
}

func NewAuthService(client *backend.Client, sessions *SessionStore, carts *CartService, log *logger.Logger) *AuthService {
	if log == nil {
		log = logger.NewNop()
	}
	return &AuthService{client: client, sessions: sessions, carts: carts, log: log.With("service", "auth")}
}

func (s *AuthService) Register(ctx context.Context, profileID string, req models.RegisterRequest) (*models.TokenResponse, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, profileID, resp); err != nil {
		return nil, err
	}
	s.log.Info("user registered", "profile_id", profileID, "user_id", resp.User.ID)
	return resp, nil
}

func (s *AuthService) Login(ctx context.Context, profileID string, req models.LoginRequest) (*models.TokenResponse, error) {
	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, profileID, resp); err != nil {
		return nil, err
	}
	s.log.Info("user logged in", "profile_id", profileID, "user_id", resp.User.ID)
	return resp, nil
}

// Logout forgets the token and user and empties the profile's cart.
func (s *AuthService) Logout(ctx context.Context, profileID string) {
	s.sessions.Clear(ctx, profileID)
	s.carts.Clear(ctx, profileID)
}

// Me fetches the current user from the backend and refreshes the stored copy.
func (s *AuthService) Me(ctx context.Context, profileID string) (*models.User, error) {
	var user *models.User
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		user, err = s.client.Me(ctx, token)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveUser(ctx, profileID, user); err != nil {
		s.log.Warn("failed to store user", "profile_id", profileID, "error", err)
	}
	return user, nil
}

// CurrentUser returns the stored user without asking the backend.
func (s *AuthService) CurrentUser(ctx context.Context, profileID string) (*models.User, error) {
	return s.sessions.User(ctx, profileID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, profileID string, req models.UpdateProfileRequest) (*models.User, error) {
	var user *models.User
	err := s.sessions.WithToken(ctx, profileID, func(token string) error {
		var err error
		user, err = s.client.UpdateProfile(ctx, token, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveUser(ctx, profileID, user); err != nil {
		s.log.Warn("failed to store user", "profile_id", profileID, "error", err)
	}
	return user, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*backend.Message, error) {
	return s.client.ForgotPassword(ctx, email)
}

func (s *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*backend.Message, error) {
	return s.client.ResetPassword(ctx, req)
}
