package repository

import (
	"context"

	"clipstream/domain/model"
)

type IComment interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	// ListByVideo returns comments oldest first.
	ListByVideo(ctx context.Context, videoID string, limit int64) ([]model.Comment, error)
	Delete(ctx context.Context, id string) error
}
