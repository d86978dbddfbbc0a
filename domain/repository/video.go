package repository

import (
	"context"

	"clipstream/domain/model"
)

// IVideo defines the interface for video registry persistence. All writes
// are single-document operations; no cross-document transaction is assumed.
type IVideo interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id string) (*model.Video, error)
	List(ctx context.Context, limit int64) ([]model.Video, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]model.Video, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Video, error)

	// SetAssetByUploadID records the asset discovered for an upload and moves
	// the video to processing. Re-applying the same fact is a no-op.
	SetAssetByUploadID(ctx context.Context, uploadID, assetID string) error
	// SetPlaybackByAssetID records the playback id for an asset and moves the
	// video to ready. Re-applying the same fact is a no-op.
	SetPlaybackByAssetID(ctx context.Context, assetID, playbackID string) error

	UpdateCounters(ctx context.Context, id string, likes, dislikes uint64) error
	Delete(ctx context.Context, id string) error
}
