package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropspot/dropspot/internal/model"
)

// Read accessors. Each is a two-step read: fetch the owning aggregate's ID
// set, then fetch the matching documents. A missing owner or an empty set
// yields an empty sequence, never an error.

func (s *SocialService) GetPin(ctx context.Context, postID string) (*model.Pin, error) {
	if postID == "" {
		return nil, fmt.Errorf("%w: post_id is required", model.ErrValidation)
	}
	return s.store.Pins().Get(ctx, postID)
}

// GetPostTags returns the tags of a pin, or an empty list when the pin
// does not exist.
func (s *SocialService) GetPostTags(ctx context.Context, postID string) ([]string, error) {
	p, err := s.store.Pins().Get(ctx, postID)
	if errors.Is(err, model.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if p.Tags == nil {
		return []string{}, nil
	}
	return p.Tags, nil
}

func (s *SocialService) GetUserSavedPins(ctx context.Context, userID string) ([]*model.Pin, error) {
	return s.pinsFromUserSet(ctx, userID, func(u *model.User) []string { return u.SavedPosts })
}

func (s *SocialService) GetUserLikedPosts(ctx context.Context, userID string) ([]*model.Pin, error) {
	return s.pinsFromUserSet(ctx, userID, func(u *model.User) []string { return u.LikedPosts })
}

func (s *SocialService) pinsFromUserSet(ctx context.Context, userID string, set func(*model.User) []string) ([]*model.Pin, error) {
	u, err := s.store.Users().Get(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return []*model.Pin{}, nil
	}
	if err != nil {
		return nil, err
	}
	ids := set(u)
	if len(ids) == 0 {
		return []*model.Pin{}, nil
	}
	pins, err := s.store.Pins().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if pins == nil {
		pins = []*model.Pin{}
	}
	return pins, nil
}

func (s *SocialService) GetPinsInCollection(ctx context.Context, collectionID string) ([]*model.Pin, error) {
	c, err := s.store.Collections().Get(ctx, collectionID)
	if errors.Is(err, model.ErrNotFound) {
		return []*model.Pin{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(c.PinIDs) == 0 {
		return []*model.Pin{}, nil
	}
	pins, err := s.store.Pins().FindByIDs(ctx, c.PinIDs)
	if err != nil {
		return nil, err
	}
	if pins == nil {
		pins = []*model.Pin{}
	}
	return pins, nil
}

func (s *SocialService) GetUserCollections(ctx context.Context, userID string) ([]*model.Collection, error) {
	colls, err := s.store.Collections().ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if colls == nil {
		colls = []*model.Collection{}
	}
	return colls, nil
}

func (s *SocialService) GetPinsByOwner(ctx context.Context, userID string) ([]*model.Pin, error) {
	pins, err := s.store.Pins().FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pins == nil {
		pins = []*model.Pin{}
	}
	return pins, nil
}

func (s *SocialService) GetPinsByLocation(ctx context.Context, location string) ([]*model.Pin, error) {
	pins, err := s.store.Pins().FindByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	if pins == nil {
		pins = []*model.Pin{}
	}
	return pins, nil
}
