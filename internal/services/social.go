// Package services holds the only cross-store logic in the system. Every
// mutating social action is a fixed, ordered sequence of idempotent
// single-document updates; no action spans documents atomically, and no
// action reads back its own writes. A failed later step leaves an
// inconsistency that re-issuing the identical action repairs, because
// every set update absorbs repeats.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dropspot/dropspot/internal/model"
	"github.com/dropspot/dropspot/internal/store"
)

// SocialService keeps the denormalized back-references between users,
// pins and collections symmetric under like/save/delete actions.
type SocialService struct {
	store store.Store
}

func NewSocialService(s store.Store) *SocialService { return &SocialService{store: s} }

func requireIDs(pairs ...[2]string) error {
	for _, p := range pairs {
		if p[1] == "" {
			return fmt.Errorf("%w: %s is required", model.ErrValidation, p[0])
		}
	}
	return nil
}

// CreatePin inserts the pin and then records it in the owner's
// created_pins set. The pin is visible as soon as the insert commits; the
// owner back-reference is best-effort and self-heals on retry.
func (s *SocialService) CreatePin(ctx context.Context, p *model.Pin) (*model.Pin, error) {
	if err := requireIDs([2]string{"post_id", p.PostID}, [2]string{"user_id", p.UserID}); err != nil {
		return nil, err
	}
	p.CreatedAt = time.Now().UTC()
	out, err := s.store.Pins().Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.store.Users().AddToSet(ctx, p.UserID, store.UserCreatedPins, p.PostID); err != nil {
		log.Error().Err(err).Str("user_id", p.UserID).Str("post_id", p.PostID).
			Msg("pin inserted but owner back-reference failed")
		return nil, fmt.Errorf("update owner created_pins: %w", err)
	}
	return out, nil
}

// CreatePins inserts a batch of pins and records each in its owner's
// created_pins set.
func (s *SocialService) CreatePins(ctx context.Context, pins []*model.Pin) error {
	now := time.Now().UTC()
	for _, p := range pins {
		if err := requireIDs([2]string{"post_id", p.PostID}, [2]string{"user_id", p.UserID}); err != nil {
			return err
		}
		p.CreatedAt = now
	}
	if err := s.store.Pins().InsertMany(ctx, pins); err != nil {
		return err
	}
	for _, p := range pins {
		if err := s.store.Users().AddToSet(ctx, p.UserID, store.UserCreatedPins, p.PostID); err != nil {
			log.Error().Err(err).Str("user_id", p.UserID).Str("post_id", p.PostID).
				Msg("pin inserted but owner back-reference failed")
			return fmt.Errorf("update owner created_pins: %w", err)
		}
	}
	return nil
}

// Like records the like on both sides of the relation. Repeated calls are
// no-ops after the first.
func (s *SocialService) Like(ctx context.Context, userID, postID string) error {
	if err := requireIDs([2]string{"user_id", userID}, [2]string{"post_id", postID}); err != nil {
		return err
	}
	if err := s.store.Pins().AddToSet(ctx, postID, store.PinLikes, userID); err != nil {
		return fmt.Errorf("update pin likes: %w", err)
	}
	if err := s.store.Users().AddToSet(ctx, userID, store.UserLikedPosts, postID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("post_id", postID).
			Msg("pin like recorded but user back-reference failed")
		return fmt.Errorf("update user liked_posts: %w", err)
	}
	return nil
}

// Unlike retracts the like from both sides.
func (s *SocialService) Unlike(ctx context.Context, userID, postID string) error {
	if err := requireIDs([2]string{"user_id", userID}, [2]string{"post_id", postID}); err != nil {
		return err
	}
	if err := s.store.Pins().RemoveFromSet(ctx, postID, store.PinLikes, userID); err != nil {
		return fmt.Errorf("update pin likes: %w", err)
	}
	if err := s.store.Users().RemoveFromSet(ctx, userID, store.UserLikedPosts, postID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("post_id", postID).
			Msg("pin unlike recorded but user back-reference failed")
		return fmt.Errorf("update user liked_posts: %w", err)
	}
	return nil
}

// Save marks the pin saved by the user and optionally files it into the
// given collections. The user/pin symmetric update runs first so a pin can
// never enter a collection before it is in the owner's saved set. A
// collection ID owned by a different user is rejected outright.
func (s *SocialService) Save(ctx context.Context, userID, postID string, collectionIDs []string) error {
	if err := requireIDs([2]string{"user_id", userID}, [2]string{"post_id", postID}); err != nil {
		return err
	}
	for _, cid := range collectionIDs {
		c, err := s.store.Collections().Get(ctx, cid)
		if err != nil {
			return fmt.Errorf("collection %s: %w", cid, err)
		}
		if c.UserID != userID {
			return fmt.Errorf("%w: collection %s is not owned by %s", model.ErrValidation, cid, userID)
		}
	}
	if err := s.store.Users().AddToSet(ctx, userID, store.UserSavedPosts, postID); err != nil {
		return fmt.Errorf("update user saved_posts: %w", err)
	}
	if err := s.store.Pins().AddToSet(ctx, postID, store.PinSavedBy, userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("post_id", postID).
			Msg("save recorded on user but pin back-reference failed")
		return fmt.Errorf("update pin saved_by: %w", err)
	}
	for _, cid := range collectionIDs {
		if err := s.store.Collections().AddPin(ctx, cid, postID); err != nil {
			log.Error().Err(err).Str("user_id", userID).Str("post_id", postID).Str("collection_id", cid).
				Msg("save recorded but collection membership failed")
			return fmt.Errorf("update collection %s: %w", cid, err)
		}
	}
	return nil
}

// Unsave retracts the save from both sides and pulls the pin out of every
// collection the user owns, not just the ones it was filed into.
func (s *SocialService) Unsave(ctx context.Context, userID, postID string) error {
	if err := requireIDs([2]string{"user_id", userID}, [2]string{"post_id", postID}); err != nil {
		return err
	}
	if err := s.store.Users().RemoveFromSet(ctx, userID, store.UserSavedPosts, postID); err != nil {
		return fmt.Errorf("update user saved_posts: %w", err)
	}
	if err := s.store.Pins().RemoveFromSet(ctx, postID, store.PinSavedBy, userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("post_id", postID).
			Msg("unsave recorded on user but pin back-reference failed")
		return fmt.Errorf("update pin saved_by: %w", err)
	}
	if _, err := s.store.Collections().RemovePinByOwner(ctx, userID, postID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("post_id", postID).
			Msg("unsave recorded but collection retraction failed")
		return fmt.Errorf("retract from collections: %w", err)
	}
	return nil
}

// DeletePost removes the pin document and retracts every reference to it:
// the owner's created_pins and saved_posts, and pin_ids of every
// collection in the store, regardless of owner. No orphaned references
// survive a completed delete.
func (s *SocialService) DeletePost(ctx context.Context, userID, postID string) error {
	if err := requireIDs([2]string{"user_id", userID}, [2]string{"post_id", postID}); err != nil {
		return err
	}
	if err := s.store.Pins().Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete pin: %w", err)
	}
	if err := s.store.Users().RemoveFromSet(ctx, userID, store.UserCreatedPins, postID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("post_id", postID).
			Msg("pin deleted but created_pins retraction failed")
		return fmt.Errorf("retract created_pins: %w", err)
	}
	if err := s.store.Users().RemoveFromSet(ctx, userID, store.UserSavedPosts, postID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("post_id", postID).
			Msg("pin deleted but saved_posts retraction failed")
		return fmt.Errorf("retract saved_posts: %w", err)
	}
	if n, err := s.store.Collections().RemovePinEverywhere(ctx, postID); err != nil {
		log.Error().Err(err).Str("post_id", postID).
			Msg("pin deleted but collection cascade failed")
		return fmt.Errorf("retract from collections: %w", err)
	} else if n > 0 {
		log.Info().Str("post_id", postID).Int64("collections", n).Msg("pin retracted from collections")
	}
	return nil
}

// CreateCollection inserts the collection and records it in the owner's
// collections set.
func (s *SocialService) CreateCollection(ctx context.Context, c *model.Collection) (*model.Collection, error) {
	if err := requireIDs([2]string{"collection_id", c.CollectionID}, [2]string{"user_id", c.UserID}); err != nil {
		return nil, err
	}
	c.CreatedAt = time.Now().UTC()
	out, err := s.store.Collections().Insert(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := s.store.Users().AddToSet(ctx, c.UserID, store.UserCollections, c.CollectionID); err != nil {
		log.Error().Err(err).Str("user_id", c.UserID).Str("collection_id", c.CollectionID).
			Msg("collection inserted but owner back-reference failed")
		return nil, fmt.Errorf("update owner collections: %w", err)
	}
	return out, nil
}

// DeleteCollection removes the collection document and the owner's
// back-reference. Save-state is untouched: pins stay in the owner's
// saved_posts even when their only containing collection disappears.
func (s *SocialService) DeleteCollection(ctx context.Context, userID, collectionID string) error {
	if err := requireIDs([2]string{"user_id", userID}, [2]string{"collection_id", collectionID}); err != nil {
		return err
	}
	if err := s.store.Collections().Delete(ctx, collectionID); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	if err := s.store.Users().RemoveFromSet(ctx, userID, store.UserCollections, collectionID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("collection_id", collectionID).
			Msg("collection deleted but owner back-reference retraction failed")
		return fmt.Errorf("retract owner collections: %w", err)
	}
	return nil
}
