package repository

import (
	"context"

	"clipstream/domain/model"
)

// IProfile defines persistence for user profiles. The follower/following
// counters are written independently of each other; the engagement usecase
// owns their values.
type IProfile interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByUsername(ctx context.Context, username string) (*model.Profile, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Profile, error)
	SetFollowerCount(ctx context.Context, id string, followers uint64) error
	SetFollowingCount(ctx context.Context, id string, following uint64) error
}
