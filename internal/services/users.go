package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dropspot/dropspot/internal/model"
	"github.com/dropspot/dropspot/internal/store"
)

// UserService handles user-related operations.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

func (s *UserService) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	if u.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", model.ErrValidation)
	}
	u.CreatedAt = time.Now().UTC()
	out, err := s.store.Users().Insert(ctx, u)
	if err != nil {
		log.Warn().Err(err).Str("user_id", u.UserID).Msg("CreateUser failed")
		return nil, err
	}
	return out, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", model.ErrValidation)
	}
	return s.store.Users().Get(ctx, userID)
}
