package repository

import (
	"context"

	"clipstream/domain/model"
)

// IStreamingProvider is the outbound interface to the video transcoding and
// streaming provider. Every call is bounded by the client's configured
// timeout; failures are transient and leave no local state behind.
type IStreamingProvider interface {
	// CreateDirectUpload opens a direct upload slot and returns its id and URL.
	CreateDirectUpload(ctx context.Context) (*model.UploadSession, error)
	// GetUploadAssetID returns the asset created from an upload, or "" while
	// the provider has not produced one yet.
	GetUploadAssetID(ctx context.Context, uploadID string) (string, error)
	// GetAssetPlaybackID returns the first playback id of an asset, or ""
	// while the asset is not ready.
	GetAssetPlaybackID(ctx context.Context, assetID string) (string, error)
	// GetVideoViews returns the 7-day view count for an asset or playback id.
	GetVideoViews(ctx context.Context, assetID, playbackID string) (int64, error)
	DeleteAsset(ctx context.Context, assetID string) error
	DeleteUpload(ctx context.Context, uploadID string) error
}
