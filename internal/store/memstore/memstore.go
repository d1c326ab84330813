// Package memstore provides an in-memory store.Store. Data is lost on
// restart. Safe for concurrent use; every operation takes the store lock,
// so each document mutation is atomic exactly like a single-document
// update in a real document store.
package memstore

import (
	"context"
	"sync"

	"github.com/dropspot/dropspot/internal/model"
	"github.com/dropspot/dropspot/internal/store"
)

type memStore struct {
	mu          sync.RWMutex
	users       map[string]*model.User
	pins        map[string]*model.Pin
	collections map[string]*model.Collection
}

// New returns an empty in-memory store.
func New() store.Store {
	return &memStore{
		users:       make(map[string]*model.User),
		pins:        make(map[string]*model.Pin),
		collections: make(map[string]*model.Collection),
	}
}

func (s *memStore) Users() store.Users             { return &users{s} }
func (s *memStore) Pins() store.Pins               { return &pins{s} }
func (s *memStore) Collections() store.Collections { return &colls{s} }

// HealthPing implements store.HealthPinger.
func (s *memStore) HealthPing(ctx context.Context) error { return nil }

// set helpers; all callers hold the write lock.

func addToSet(set []string, v string) []string {
	for _, m := range set {
		if m == v {
			return set
		}
	}
	return append(set, v)
}

func removeFromSet(set []string, v string) ([]string, bool) {
	for i, m := range set {
		if m == v {
			return append(set[:i:i], set[i+1:]...), true
		}
	}
	return set, false
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func copyUser(u *model.User) *model.User {
	c := *u
	c.CreatedPins = copyStrings(u.CreatedPins)
	c.LikedPosts = copyStrings(u.LikedPosts)
	c.SavedPosts = copyStrings(u.SavedPosts)
	c.Collections = copyStrings(u.Collections)
	return &c
}

func copyPin(p *model.Pin) *model.Pin {
	c := *p
	c.Images = copyStrings(p.Images)
	c.Tags = copyStrings(p.Tags)
	c.Likes = copyStrings(p.Likes)
	c.SavedBy = copyStrings(p.SavedBy)
	return &c
}

func copyCollection(col *model.Collection) *model.Collection {
	c := *col
	c.PinIDs = copyStrings(col.PinIDs)
	return &c
}

// --- Users ---

type users struct{ s *memStore }

func (u *users) Insert(ctx context.Context, m *model.User) (*model.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[m.UserID]; ok {
		return nil, model.ErrDuplicate
	}
	u.s.users[m.UserID] = copyUser(m)
	return m, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	m, ok := u.s.users[userID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return copyUser(m), nil
}

func (u *users) AddToSet(ctx context.Context, userID string, field store.UserSetField, value string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	m, ok := u.s.users[userID]
	if !ok {
		return nil
	}
	switch field {
	case store.UserCreatedPins:
		m.CreatedPins = addToSet(m.CreatedPins, value)
	case store.UserLikedPosts:
		m.LikedPosts = addToSet(m.LikedPosts, value)
	case store.UserSavedPosts:
		m.SavedPosts = addToSet(m.SavedPosts, value)
	case store.UserCollections:
		m.Collections = addToSet(m.Collections, value)
	}
	return nil
}

func (u *users) RemoveFromSet(ctx context.Context, userID string, field store.UserSetField, value string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	m, ok := u.s.users[userID]
	if !ok {
		return nil
	}
	switch field {
	case store.UserCreatedPins:
		m.CreatedPins, _ = removeFromSet(m.CreatedPins, value)
	case store.UserLikedPosts:
		m.LikedPosts, _ = removeFromSet(m.LikedPosts, value)
	case store.UserSavedPosts:
		m.SavedPosts, _ = removeFromSet(m.SavedPosts, value)
	case store.UserCollections:
		m.Collections, _ = removeFromSet(m.Collections, value)
	}
	return nil
}

// --- Pins ---

type pins struct{ s *memStore }

func (p *pins) Insert(ctx context.Context, m *model.Pin) (*model.Pin, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.pins[m.PostID]; ok {
		return nil, model.ErrDuplicate
	}
	p.s.pins[m.PostID] = copyPin(m)
	return m, nil
}

func (p *pins) InsertMany(ctx context.Context, ms []*model.Pin) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for _, m := range ms {
		if _, ok := p.s.pins[m.PostID]; ok {
			return model.ErrDuplicate
		}
	}
	for _, m := range ms {
		p.s.pins[m.PostID] = copyPin(m)
	}
	return nil
}

func (p *pins) Get(ctx context.Context, postID string) (*model.Pin, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	m, ok := p.s.pins[postID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return copyPin(m), nil
}

func (p *pins) FindByIDs(ctx context.Context, postIDs []string) ([]*model.Pin, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	var res []*model.Pin
	for _, id := range postIDs {
		if m, ok := p.s.pins[id]; ok {
			res = append(res, copyPin(m))
		}
	}
	return res, nil
}

func (p *pins) FindByOwner(ctx context.Context, userID string) ([]*model.Pin, error) {
	return p.findWhere(func(m *model.Pin) bool { return m.UserID == userID })
}

func (p *pins) FindByLocation(ctx context.Context, location string) ([]*model.Pin, error) {
	return p.findWhere(func(m *model.Pin) bool { return m.Location == location })
}

func (p *pins) findWhere(match func(*model.Pin) bool) ([]*model.Pin, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	var res []*model.Pin
	for _, m := range p.s.pins {
		if match(m) {
			res = append(res, copyPin(m))
		}
	}
	return res, nil
}

func (p *pins) AddToSet(ctx context.Context, postID string, field store.PinSetField, value string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	m, ok := p.s.pins[postID]
	if !ok {
		return nil
	}
	switch field {
	case store.PinLikes:
		m.Likes = addToSet(m.Likes, value)
	case store.PinSavedBy:
		m.SavedBy = addToSet(m.SavedBy, value)
	}
	return nil
}

func (p *pins) RemoveFromSet(ctx context.Context, postID string, field store.PinSetField, value string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	m, ok := p.s.pins[postID]
	if !ok {
		return nil
	}
	switch field {
	case store.PinLikes:
		m.Likes, _ = removeFromSet(m.Likes, value)
	case store.PinSavedBy:
		m.SavedBy, _ = removeFromSet(m.SavedBy, value)
	}
	return nil
}

func (p *pins) Delete(ctx context.Context, postID string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	delete(p.s.pins, postID)
	return nil
}

// --- Collections ---

type colls struct{ s *memStore }

func (c *colls) Insert(ctx context.Context, m *model.Collection) (*model.Collection, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.collections[m.CollectionID]; ok {
		return nil, model.ErrDuplicate
	}
	c.s.collections[m.CollectionID] = copyCollection(m)
	return m, nil
}

func (c *colls) Get(ctx context.Context, collectionID string) (*model.Collection, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	m, ok := c.s.collections[collectionID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return copyCollection(m), nil
}

func (c *colls) ListByOwner(ctx context.Context, userID string) ([]*model.Collection, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	var res []*model.Collection
	for _, m := range c.s.collections {
		if m.UserID == userID {
			res = append(res, copyCollection(m))
		}
	}
	return res, nil
}

func (c *colls) AddPin(ctx context.Context, collectionID, postID string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if m, ok := c.s.collections[collectionID]; ok {
		m.PinIDs = addToSet(m.PinIDs, postID)
	}
	return nil
}

func (c *colls) RemovePin(ctx context.Context, collectionID, postID string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if m, ok := c.s.collections[collectionID]; ok {
		m.PinIDs, _ = removeFromSet(m.PinIDs, postID)
	}
	return nil
}

func (c *colls) RemovePinByOwner(ctx context.Context, userID, postID string) (int64, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	var n int64
	for _, m := range c.s.collections {
		if m.UserID != userID {
			continue
		}
		var removed bool
		if m.PinIDs, removed = removeFromSet(m.PinIDs, postID); removed {
			n++
		}
	}
	return n, nil
}

func (c *colls) RemovePinEverywhere(ctx context.Context, postID string) (int64, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	var n int64
	for _, m := range c.s.collections {
		var removed bool
		if m.PinIDs, removed = removeFromSet(m.PinIDs, postID); removed {
			n++
		}
	}
	return n, nil
}

func (c *colls) Delete(ctx context.Context, collectionID string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	delete(c.s.collections, collectionID)
	return nil
}
