package model

import "time"

// User aggregates references to content the user authored or acted on.
// The membership fields are sets: duplicates never appear and ordering is
// not significant.
type User struct {
	UserID            string                 `json:"userId" bson:"user_id"`
	Username          string                 `json:"username" bson:"username"`
	ProfilePictureURL string                 `json:"profilePictureUrl,omitempty" bson:"profile_picture_url,omitempty"`
	Location          string                 `json:"location,omitempty" bson:"location,omitempty"`
	LocationGeometry  map[string]interface{} `json:"locationGeometry,omitempty" bson:"location_geometry,omitempty"`
	CreatedPins       []string               `json:"createdPins" bson:"created_pins"`
	LikedPosts        []string               `json:"likedPosts" bson:"liked_posts"`
	SavedPosts        []string               `json:"savedPosts" bson:"saved_posts"`
	Collections       []string               `json:"collections" bson:"collections"`
	CreatedAt         time.Time              `json:"createdAt" bson:"created_at"`
}

// Pin is a user-authored post anchored to a location. Likes and SavedBy
// hold user IDs as back-references for query convenience; the pin does not
// own those users.
type Pin struct {
	PostID           string                 `json:"postId" bson:"post_id"`
	UserID           string                 `json:"userId" bson:"user_id"`
	Location         string                 `json:"location,omitempty" bson:"location,omitempty"`
	LocationGeometry map[string]interface{} `json:"locationGeometry,omitempty" bson:"location_geometry,omitempty"`
	Caption          string                 `json:"caption,omitempty" bson:"caption,omitempty"`
	Images           []string               `json:"images" bson:"images"`
	Tags             []string               `json:"tags" bson:"tags"`
	Likes            []string               `json:"likes" bson:"likes"`
	SavedBy          []string               `json:"savedBy" bson:"saved_by"`
	CreatedAt        time.Time              `json:"createdAt" bson:"created_at"`
}

// Collection is a user-owned, named grouping of pins. A pin ID may only
// appear here while the owner also has it in SavedPosts.
type Collection struct {
	CollectionID   string    `json:"collectionId" bson:"collection_id"`
	UserID         string    `json:"userId" bson:"user_id"`
	CollectionName string    `json:"collectionName" bson:"collection_name"`
	PinIDs         []string  `json:"pinIds" bson:"pin_ids"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
}
