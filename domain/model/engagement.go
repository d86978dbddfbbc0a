package model

import "time"

// Like is a directed relation from a user to a video. For any
// (userId, videoId) pair at most one of Like/Dislike exists at a time;
// the engagement usecase enforces this, not the storage layer.
type Like struct {
	UserID    string    `json:"userId" bson:"userId"`
	VideoID   string    `json:"videoId" bson:"videoId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type Dislike struct {
	UserID    string    `json:"userId" bson:"userId"`
	VideoID   string    `json:"videoId" bson:"videoId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Follow records that FollowerID follows UserID. Self-loops are rejected
// before this record is ever created.
type Follow struct {
	FollowerID string    `json:"followerId" bson:"followerId"`
	UserID     string    `json:"userId" bson:"userId"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}
