package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dropspot/dropspot/internal/model"
	"github.com/dropspot/dropspot/internal/store"
)

// Open connects to MongoDB and verifies connectivity with a ping.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI is empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique key indexes the adapter relies on for
// duplicate detection. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(coll, field string) error {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		return err
	}
	if err := unique("users", "user_id"); err != nil {
		return err
	}
	if err := unique("pins", "post_id"); err != nil {
		return err
	}
	return unique("collections", "collection_id")
}

// NewWithDatabase constructs a Mongo-backed store over the given database.
func NewWithDatabase(db *mongo.Database) store.Store { return &mongoStore{db: db} }

type mongoStore struct{ db *mongo.Database }

func (s *mongoStore) Users() store.Users             { return &users{c: s.db.Collection("users")} }
func (s *mongoStore) Pins() store.Pins               { return &pins{c: s.db.Collection("pins")} }
func (s *mongoStore) Collections() store.Collections { return &colls{c: s.db.Collection("collections")} }

// HealthPing implements store.HealthPinger.
func (s *mongoStore) HealthPing(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// noID strips the storage-internal identity so callers only ever see
// domain fields.
var noID = bson.M{"_id": 0}

// Set fields must be stored as arrays, never BSON null, or $addToSet
// refuses the update. Normalize at the insert boundary.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func normalizeUser(m *model.User) *model.User {
	c := *m
	c.CreatedPins = nonNil(m.CreatedPins)
	c.LikedPosts = nonNil(m.LikedPosts)
	c.SavedPosts = nonNil(m.SavedPosts)
	c.Collections = nonNil(m.Collections)
	return &c
}

func normalizePin(m *model.Pin) *model.Pin {
	c := *m
	c.Images = nonNil(m.Images)
	c.Tags = nonNil(m.Tags)
	c.Likes = nonNil(m.Likes)
	c.SavedBy = nonNil(m.SavedBy)
	return &c
}

func normalizeCollection(m *model.Collection) *model.Collection {
	c := *m
	c.PinIDs = nonNil(m.PinIDs)
	return &c
}

func mapInsertErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert: %w", model.ErrDuplicate)
	}
	return err
}

func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.ErrNotFound
	}
	return err
}

// --- Users ---

type users struct{ c *mongo.Collection }

func (u *users) Insert(ctx context.Context, m *model.User) (*model.User, error) {
	doc := normalizeUser(m)
	if _, err := u.c.InsertOne(ctx, doc); err != nil {
		return nil, mapInsertErr(err)
	}
	return doc, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	var out model.User
	err := u.c.FindOne(ctx, bson.M{"user_id": userID}, options.FindOne().SetProjection(noID)).Decode(&out)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &out, nil
}

func (u *users) AddToSet(ctx context.Context, userID string, field store.UserSetField, value string) error {
	_, err := u.c.UpdateOne(ctx, bson.M{"user_id": userID},
		bson.M{"$addToSet": bson.M{string(field): value}})
	return err
}

func (u *users) RemoveFromSet(ctx context.Context, userID string, field store.UserSetField, value string) error {
	_, err := u.c.UpdateOne(ctx, bson.M{"user_id": userID},
		bson.M{"$pull": bson.M{string(field): value}})
	return err
}

// --- Pins ---

type pins struct{ c *mongo.Collection }

func (p *pins) Insert(ctx context.Context, m *model.Pin) (*model.Pin, error) {
	doc := normalizePin(m)
	if _, err := p.c.InsertOne(ctx, doc); err != nil {
		return nil, mapInsertErr(err)
	}
	return doc, nil
}

func (p *pins) InsertMany(ctx context.Context, ms []*model.Pin) error {
	if len(ms) == 0 {
		return nil
	}
	docs := make([]interface{}, len(ms))
	for i, m := range ms {
		docs[i] = normalizePin(m)
	}
	if _, err := p.c.InsertMany(ctx, docs); err != nil {
		return mapInsertErr(err)
	}
	return nil
}

func (p *pins) Get(ctx context.Context, postID string) (*model.Pin, error) {
	var out model.Pin
	err := p.c.FindOne(ctx, bson.M{"post_id": postID}, options.FindOne().SetProjection(noID)).Decode(&out)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &out, nil
}

func (p *pins) FindByIDs(ctx context.Context, postIDs []string) ([]*model.Pin, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	return p.find(ctx, bson.M{"post_id": bson.M{"$in": postIDs}})
}

func (p *pins) FindByOwner(ctx context.Context, userID string) ([]*model.Pin, error) {
	return p.find(ctx, bson.M{"user_id": userID})
}

func (p *pins) FindByLocation(ctx context.Context, location string) ([]*model.Pin, error) {
	return p.find(ctx, bson.M{"location": location})
}

func (p *pins) find(ctx context.Context, filter bson.M) ([]*model.Pin, error) {
	cur, err := p.c.Find(ctx, filter, options.Find().SetProjection(noID))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	var res []*model.Pin
	if err := cur.All(ctx, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *pins) AddToSet(ctx context.Context, postID string, field store.PinSetField, value string) error {
	_, err := p.c.UpdateOne(ctx, bson.M{"post_id": postID},
		bson.M{"$addToSet": bson.M{string(field): value}})
	return err
}

func (p *pins) RemoveFromSet(ctx context.Context, postID string, field store.PinSetField, value string) error {
	_, err := p.c.UpdateOne(ctx, bson.M{"post_id": postID},
		bson.M{"$pull": bson.M{string(field): value}})
	return err
}

func (p *pins) Delete(ctx context.Context, postID string) error {
	_, err := p.c.DeleteOne(ctx, bson.M{"post_id": postID})
	return err
}

// --- Collections ---

type colls struct{ c *mongo.Collection }

func (cl *colls) Insert(ctx context.Context, m *model.Collection) (*model.Collection, error) {
	doc := normalizeCollection(m)
	if _, err := cl.c.InsertOne(ctx, doc); err != nil {
		return nil, mapInsertErr(err)
	}
	return doc, nil
}

func (cl *colls) Get(ctx context.Context, collectionID string) (*model.Collection, error) {
	var out model.Collection
	err := cl.c.FindOne(ctx, bson.M{"collection_id": collectionID}, options.FindOne().SetProjection(noID)).Decode(&out)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &out, nil
}

func (cl *colls) ListByOwner(ctx context.Context, userID string) ([]*model.Collection, error) {
	cur, err := cl.c.Find(ctx, bson.M{"user_id": userID}, options.Find().SetProjection(noID))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	var res []*model.Collection
	if err := cur.All(ctx, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (cl *colls) AddPin(ctx context.Context, collectionID, postID string) error {
	_, err := cl.c.UpdateOne(ctx, bson.M{"collection_id": collectionID},
		bson.M{"$addToSet": bson.M{"pin_ids": postID}})
	return err
}

func (cl *colls) RemovePin(ctx context.Context, collectionID, postID string) error {
	_, err := cl.c.UpdateOne(ctx, bson.M{"collection_id": collectionID},
		bson.M{"$pull": bson.M{"pin_ids": postID}})
	return err
}

func (cl *colls) RemovePinByOwner(ctx context.Context, userID, postID string) (int64, error) {
	res, err := cl.c.UpdateMany(ctx, bson.M{"user_id": userID},
		bson.M{"$pull": bson.M{"pin_ids": postID}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (cl *colls) RemovePinEverywhere(ctx context.Context, postID string) (int64, error) {
	res, err := cl.c.UpdateMany(ctx, bson.M{},
		bson.M{"$pull": bson.M{"pin_ids": postID}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (cl *colls) Delete(ctx context.Context, collectionID string) error {
	_, err := cl.c.DeleteOne(ctx, bson.M{"collection_id": collectionID})
	return err
}
