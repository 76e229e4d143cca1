package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/diyahomestylist/poppyandteal/backend"
	"github.com/diyahomestylist/poppyandteal/cartstore"
	"github.com/diyahomestylist/poppyandteal/logger"
	"github.com/diyahomestylist/poppyandteal/models"
)

// SessionStore keeps the backend access token and user of each profile in the same
// storage as the carts. It holds no auth logic of its own.
type SessionStore struct {
	storage cartstore.Storage
	log     *logger.Logger
}

func NewSessionStore(storage cartstore.Storage, log *logger.Logger) *SessionStore {
	return &SessionStore{storage: storage, log: log}
}

func tokenKey(profileID string) string { return "access_token:" + profileID }
func userKey(profileID string) string  { return "user:" + profileID }

func (s *SessionStore) Save(ctx context.Context, profileID string, resp *models.TokenResponse) error {
	user, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, tokenKey(profileID), resp.AccessToken); err != nil {
		return err
	}
	return s.storage.Set(ctx, userKey(profileID), string(user))
}

func (s *SessionStore) SaveUser(ctx context.Context, profileID string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, userKey(profileID), string(raw))
}

// Token returns the stored access token, or ErrLoginRequired when there is none.
func (s *SessionStore) Token(ctx context.Context, profileID string) (string, error) {
	token, err := s.storage.Get(ctx, tokenKey(profileID))
	if errors.Is(err, cartstore.ErrNotFound) || (err == nil && token == "") {
		return "", ErrLoginRequired
	}
	return token, err
}

func (s *SessionStore) User(ctx context.Context, profileID string) (*models.User, error) {
	raw, err := s.storage.Get(ctx, userKey(profileID))
	if errors.Is(err, cartstore.ErrNotFound) {
		return nil, ErrLoginRequired
	}
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn("stored user is not parseable", "profile_id", profileID, "error", err)
		return nil, ErrLoginRequired
	}
	return &user, nil
}

func (s *SessionStore) Clear(ctx context.Context, profileID string) {
	for _, key := range []string{tokenKey(profileID), userKey(profileID)} {
		if err := s.storage.Remove(ctx, key); err != nil {
			s.log.Warn("failed to clear session key", "key", key, "error", err)
		}
	}
}

// WithToken runs fn with the profile's access token. A 401 from the backend drops the
// stored session and is reported as ErrLoginRequired.
func (s *SessionStore) WithToken(ctx context.Context, profileID string, fn func(token string) error) error {
	token, err := s.Token(ctx, profileID)
	if err != nil {
		return err
	}
	if err := fn(token); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			s.Clear(ctx, profileID)
			return ErrLoginRequired
		}
		return err
	}
	return nil
}
