package repository

import (
	"context"

	"clipstream/domain/model"
)

// IEngagement defines persistence for the Like, Dislike and Follow edges.
// Find methods return (nil, nil) when no edge exists. List methods return
// newest edge first; limit <= 0 means no limit.
type IEngagement interface {
	FindLike(ctx context.Context, userID, videoID string) (*model.Like, error)
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userID, videoID string) error
	ListLikesByUser(ctx context.Context, userID string, limit int64) ([]model.Like, error)

	FindDislike(ctx context.Context, userID, videoID string) (*model.Dislike, error)
	CreateDislike(ctx context.Context, dislike *model.Dislike) error
	DeleteDislike(ctx context.Context, userID, videoID string) error
	ListDislikesByUser(ctx context.Context, userID string, limit int64) ([]model.Dislike, error)

	FindFollow(ctx context.Context, followerID, userID string) (*model.Follow, error)
	CreateFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, followerID, userID string) error
	// ListFollowers returns edges pointing at userID (who follows userID).
	ListFollowers(ctx context.Context, userID string, limit int64) ([]model.Follow, error)
	// ListFollowing returns edges originating from followerID.
	ListFollowing(ctx context.Context, followerID string, limit int64) ([]model.Follow, error)
}
