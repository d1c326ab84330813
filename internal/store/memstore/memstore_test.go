package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/dropspot/dropspot/internal/model"
	"github.com/dropspot/dropspot/internal/store"
	"github.com/dropspot/dropspot/internal/store/storetest"
)

func TestCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return New() })
}

// Concurrent adds of the same member must collapse to a single membership.
func TestConcurrentAddToSet(t *testing.T) {
	s := New()
	ctx := context.Background()
	if _, err := s.Pins().Insert(ctx, &model.Pin{PostID: "p1", UserID: "alice"}); err != nil {
		t.Fatalf("InsertPin: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Pins().AddToSet(ctx, "p1", store.PinLikes, "bob")
		}()
	}
	wg.Wait()

	p, err := s.Pins().Get(ctx, "p1")
	if err != nil {
		t.Fatalf("GetPin: %v", err)
	}
	if len(p.Likes) != 1 || p.Likes[0] != "bob" {
		t.Fatalf("likes after concurrent add: %v", p.Likes)
	}
}

// Returned entities are copies; mutating them must not leak into the store.
func TestCopyOnRead(t *testing.T) {
	s := New()
	ctx := context.Background()
	if _, err := s.Users().Insert(ctx, &model.User{UserID: "u1", SavedPosts: []string{"p1"}}); err != nil {
		t.Fatalf("InsertUser: %v", err)
	}
	u, _ := s.Users().Get(ctx, "u1")
	u.SavedPosts[0] = "mutated"
	again, _ := s.Users().Get(ctx, "u1")
	if again.SavedPosts[0] != "p1" {
		t.Fatalf("store leaked internal slice: %v", again.SavedPosts)
	}
}
