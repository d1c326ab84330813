package store

import (
	"context"

	"github.com/dropspot/dropspot/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (e.g., mongo,
// memstore). Every set mutation is atomic at the single-document level and
// idempotent: re-adding a present member or removing an absent one is a
// no-op, never an error. Cross-document consistency is the services
// layer's job, not the store's.
type Store interface {
	Users() Users
	Pins() Pins
	Collections() Collections
}

// UserSetField names a set-valued field on a User document.
type UserSetField string

const (
	UserCreatedPins UserSetField = "created_pins"
	UserLikedPosts  UserSetField = "liked_posts"
	UserSavedPosts  UserSetField = "saved_posts"
	UserCollections UserSetField = "collections"
)

// PinSetField names a set-valued field on a Pin document.
type PinSetField string

const (
	PinLikes   PinSetField = "likes"
	PinSavedBy PinSetField = "saved_by"
)

type Users interface {
	Insert(ctx context.Context, u *model.User) (*model.User, error)
	// Get returns model.ErrNotFound when no user has the ID; a missing
	// user is a normal result, not a fault.
	Get(ctx context.Context, userID string) (*model.User, error)
	AddToSet(ctx context.Context, userID string, field UserSetField, value string) error
	RemoveFromSet(ctx context.Context, userID string, field UserSetField, value string) error
}

type Pins interface {
	Insert(ctx context.Context, p *model.Pin) (*model.Pin, error)
	InsertMany(ctx context.Context, pins []*model.Pin) error
	Get(ctx context.Context, postID string) (*model.Pin, error)
	FindByIDs(ctx context.Context, postIDs []string) ([]*model.Pin, error)
	FindByOwner(ctx context.Context, userID string) ([]*model.Pin, error)
	FindByLocation(ctx context.Context, location string) ([]*model.Pin, error)
	AddToSet(ctx context.Context, postID string, field PinSetField, value string) error
	RemoveFromSet(ctx context.Context, postID string, field PinSetField, value string) error
	// Delete removes the pin document. Deleting a missing pin is a no-op
	// so that cascade retries stay safe.
	Delete(ctx context.Context, postID string) error
}

type Collections interface {
	Insert(ctx context.Context, c *model.Collection) (*model.Collection, error)
	Get(ctx context.Context, collectionID string) (*model.Collection, error)
	ListByOwner(ctx context.Context, userID string) ([]*model.Collection, error)
	AddPin(ctx context.Context, collectionID, postID string) error
	RemovePin(ctx context.Context, collectionID, postID string) error
	// RemovePinByOwner pulls postID from pin_ids of every collection owned
	// by userID and reports how many documents were updated.
	RemovePinByOwner(ctx context.Context, userID, postID string) (int64, error)
	// RemovePinEverywhere pulls postID from pin_ids of every collection in
	// the store, regardless of owner.
	RemovePinEverywhere(ctx context.Context, postID string) (int64, error)
	Delete(ctx context.Context, collectionID string) error
}

// HealthPinger is implemented by stores that can probe their backing
// connection.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}
