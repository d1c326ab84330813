package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dropspot/dropspot/internal/model"
	"github.com/dropspot/dropspot/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	userID := "u-" + uuid.New().String()
	postID := "p-" + uuid.New().String()
	collID := "c-" + uuid.New().String()
	now := time.Now().UTC()

	// Users
	u := &model.User{UserID: userID, Username: "tester", CreatedAt: now}
	if _, err := s.Users().Insert(ctx, u); err != nil {
		t.Fatalf("InsertUser: %v", err)
	}
	if _, err := s.Users().Insert(ctx, u); !errors.Is(err, model.ErrDuplicate) {
		t.Fatalf("InsertUser duplicate: want ErrDuplicate, got %v", err)
	}
	if got, err := s.Users().Get(ctx, userID); err != nil || got.UserID != userID {
		t.Fatalf("GetUser: got=%v err=%v", got, err)
	}
	if _, err := s.Users().Get(ctx, "no-such-user"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetUser missing: want ErrNotFound, got %v", err)
	}

	// Pins
	p := &model.Pin{PostID: postID, UserID: userID, Location: "vancouver", Caption: "hi", CreatedAt: now}
	if _, err := s.Pins().Insert(ctx, p); err != nil {
		t.Fatalf("InsertPin: %v", err)
	}
	if _, err := s.Pins().Insert(ctx, p); !errors.Is(err, model.ErrDuplicate) {
		t.Fatalf("InsertPin duplicate: want ErrDuplicate, got %v", err)
	}
	if got, err := s.Pins().Get(ctx, postID); err != nil || got.Caption != "hi" {
		t.Fatalf("GetPin: got=%v err=%v", got, err)
	}
	if lst, err := s.Pins().FindByOwner(ctx, userID); err != nil || len(lst) != 1 {
		t.Fatalf("FindByOwner: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.Pins().FindByLocation(ctx, "vancouver"); err != nil || len(lst) != 1 {
		t.Fatalf("FindByLocation: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.Pins().FindByIDs(ctx, []string{postID, "missing"}); err != nil || len(lst) != 1 {
		t.Fatalf("FindByIDs: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.Pins().FindByIDs(ctx, nil); err != nil || len(lst) != 0 {
		t.Fatalf("FindByIDs empty: n=%d err=%v", len(lst), err)
	}

	// Set operations are idempotent
	for i := 0; i < 2; i++ {
		if err := s.Pins().AddToSet(ctx, postID, store.PinLikes, userID); err != nil {
			t.Fatalf("Pins.AddToSet: %v", err)
		}
		if err := s.Users().AddToSet(ctx, userID, store.UserLikedPosts, postID); err != nil {
			t.Fatalf("Users.AddToSet: %v", err)
		}
	}
	if got, _ := s.Pins().Get(ctx, postID); len(got.Likes) != 1 || got.Likes[0] != userID {
		t.Fatalf("likes after double add: %v", got.Likes)
	}
	if got, _ := s.Users().Get(ctx, userID); len(got.LikedPosts) != 1 {
		t.Fatalf("liked_posts after double add: %v", got.LikedPosts)
	}

	// Removing an absent member is a no-op, not an error
	if err := s.Pins().RemoveFromSet(ctx, postID, store.PinSavedBy, "nobody"); err != nil {
		t.Fatalf("Pins.RemoveFromSet absent: %v", err)
	}
	if err := s.Pins().RemoveFromSet(ctx, postID, store.PinLikes, userID); err != nil {
		t.Fatalf("Pins.RemoveFromSet: %v", err)
	}
	if got, _ := s.Pins().Get(ctx, postID); len(got.Likes) != 0 {
		t.Fatalf("likes after remove: %v", got.Likes)
	}

	// Updates on missing documents are no-ops
	if err := s.Users().AddToSet(ctx, "no-such-user", store.UserLikedPosts, postID); err != nil {
		t.Fatalf("Users.AddToSet missing doc: %v", err)
	}

	// Collections
	c := &model.Collection{CollectionID: collID, UserID: userID, CollectionName: "spots", CreatedAt: now}
	if _, err := s.Collections().Insert(ctx, c); err != nil {
		t.Fatalf("InsertCollection: %v", err)
	}
	if _, err := s.Collections().Insert(ctx, c); !errors.Is(err, model.ErrDuplicate) {
		t.Fatalf("InsertCollection duplicate: want ErrDuplicate, got %v", err)
	}
	if err := s.Collections().AddPin(ctx, collID, postID); err != nil {
		t.Fatalf("AddPin: %v", err)
	}
	if err := s.Collections().AddPin(ctx, collID, postID); err != nil {
		t.Fatalf("AddPin repeat: %v", err)
	}
	if got, err := s.Collections().Get(ctx, collID); err != nil || len(got.PinIDs) != 1 {
		t.Fatalf("GetCollection: got=%v err=%v", got, err)
	}
	if lst, err := s.Collections().ListByOwner(ctx, userID); err != nil || len(lst) != 1 {
		t.Fatalf("ListByOwner: n=%d err=%v", len(lst), err)
	}

	// RemovePinByOwner touches only the owner's collections
	otherColl := &model.Collection{CollectionID: "c-" + uuid.New().String(), UserID: "someone-else", CollectionName: "theirs", PinIDs: []string{postID}, CreatedAt: now}
	if _, err := s.Collections().Insert(ctx, otherColl); err != nil {
		t.Fatalf("InsertCollection other: %v", err)
	}
	if n, err := s.Collections().RemovePinByOwner(ctx, userID, postID); err != nil || n != 1 {
		t.Fatalf("RemovePinByOwner: n=%d err=%v", n, err)
	}
	if got, _ := s.Collections().Get(ctx, otherColl.CollectionID); len(got.PinIDs) != 1 {
		t.Fatalf("RemovePinByOwner crossed owners: %v", got.PinIDs)
	}

	// RemovePinEverywhere touches all collections
	if err := s.Collections().AddPin(ctx, collID, postID); err != nil {
		t.Fatalf("AddPin again: %v", err)
	}
	if n, err := s.Collections().RemovePinEverywhere(ctx, postID); err != nil || n != 2 {
		t.Fatalf("RemovePinEverywhere: n=%d err=%v", n, err)
	}

	// Batch insert
	batch := []*model.Pin{
		{PostID: "p-" + uuid.New().String(), UserID: userID, CreatedAt: now},
		{PostID: "p-" + uuid.New().String(), UserID: userID, CreatedAt: now},
	}
	if err := s.Pins().InsertMany(ctx, batch); err != nil {
		t.Fatalf("InsertMany: %v", err)
	}
	if lst, err := s.Pins().FindByOwner(ctx, userID); err != nil || len(lst) != 3 {
		t.Fatalf("FindByOwner after batch: n=%d err=%v", len(lst), err)
	}

	// Deletes are no-ops when repeated
	if err := s.Pins().Delete(ctx, postID); err != nil {
		t.Fatalf("DeletePin: %v", err)
	}
	if err := s.Pins().Delete(ctx, postID); err != nil {
		t.Fatalf("DeletePin repeat: %v", err)
	}
	if _, err := s.Pins().Get(ctx, postID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetPin after delete: want ErrNotFound, got %v", err)
	}
	if err := s.Collections().Delete(ctx, collID); err != nil {
		t.Fatalf("DeleteCollection: %v", err)
	}
	if err := s.Collections().Delete(ctx, collID); err != nil {
		t.Fatalf("DeleteCollection repeat: %v", err)
	}
}
