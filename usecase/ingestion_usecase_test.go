package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipstream/domain/apperrors"
	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/usecase"
)

func seedVideo(t *testing.T, repo *fakeVideoRepo, video model.Video) {
	t.Helper()
	if video.Status == "" {
		video.Status = model.VideoStatusPreparing
	}
	video.CreatedAt = time.Now()
	require.NoError(t, repo.Create(context.Background(), &video))
}

func TestIngestionUsecase_WebhookSequence(t *testing.T) {
	ctx := context.Background()
	videoRepo := newFakeVideoRepo()
	seedVideo(t, videoRepo, model.Video{ID: "v1", UserID: "u1", UploadID: "up1"})

	ingestion := usecase.NewIngestionUsecase(videoRepo, new(MockStreamingProvider))

	err := ingestion.HandleWebhookEvent(ctx, dto.MuxWebhookEvent{
		Type: "video.upload.asset_created",
		Data: dto.MuxWebhookData{ID: "asset1", UploadID: "up1"},
	})
	require.NoError(t, err)

	video, err := videoRepo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "asset1", video.AssetID)
	assert.Equal(t, model.VideoStatusProcessing, video.Status)

	err = ingestion.HandleWebhookEvent(ctx, dto.MuxWebhookEvent{
		Type: "video.asset.ready",
		Data: dto.MuxWebhookData{ID: "asset1", PlaybackIDs: []dto.MuxPlaybackID{{ID: "pb1"}}},
	})
	require.NoError(t, err)

	video, err = videoRepo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "pb1", video.PlaybackID)
	assert.Equal(t, model.VideoStatusReady, video.Status)
}

func TestIngestionUsecase_WebhookUnprefixedTypes(t *testing.T) {
	ctx := context.Background()
	videoRepo := newFakeVideoRepo()
	seedVideo(t, videoRepo, model.Video{ID: "v1", UserID: "u1", UploadID: "up1"})

	ingestion := usecase.NewIngestionUsecase(videoRepo, new(MockStreamingProvider))

	err := ingestion.HandleWebhookEvent(ctx, dto.MuxWebhookEvent{
		Type: "upload.asset_created",
		Data: dto.MuxWebhookData{ID: "asset1", UploadID: "up1"},
	})
	require.NoError(t, err)

	err = ingestion.HandleWebhookEvent(ctx, dto.MuxWebhookEvent{
		Type: "asset.ready",
		Data: dto.MuxWebhookData{ID: "asset1", PlaybackIDs: []dto.MuxPlaybackID{{ID: "pb1"}}},
	})
	require.NoError(t, err)

	video, err := videoRepo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, model.VideoStatusReady, video.Status)
	assert.Equal(t, "pb1", video.PlaybackID)
}

func TestIngestionUsecase_WebhookDuplicateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	videoRepo := newFakeVideoRepo()
	seedVideo(t, videoRepo, model.Video{ID: "v1", UserID: "u1", UploadID: "up1", AssetID: "asset1"})

	ingestion := usecase.NewIngestionUsecase(videoRepo, new(MockStreamingProvider))

	ready := dto.MuxWebhookEvent{
		Type: "video.asset.ready",
		Data: dto.MuxWebhookData{ID: "asset1", PlaybackIDs: []dto.MuxPlaybackID{{ID: "pb1"}}},
	}
	require.NoError(t, ingestion.HandleWebhookEvent(ctx, ready))
	require.NoError(t, ingestion.HandleWebhookEvent(ctx, ready))

	video, err := videoRepo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "pb1", video.PlaybackID)
	assert.Equal(t, model.VideoStatusReady, video.Status)
}

func TestIngestionUsecase_WebhookIgnoresUnknownAndPartial(t *testing.T) {
	ctx := context.Background()
	videoRepo := newFakeVideoRepo()
	seedVideo(t, videoRepo, model.Video{ID: "v1", UserID: "u1", UploadID: "up1"})

	ingestion := usecase.NewIngestionUsecase(videoRepo, new(MockStreamingProvider))

	assert.NoError(t, ingestion.HandleWebhookEvent(ctx, dto.MuxWebhookEvent{Type: "video.asset.deleted"}))
	assert.NoError(t, ingestion.HandleWebhookEvent(ctx, dto.MuxWebhookEvent{
		Type: "video.upload.asset_created",
		Data: dto.MuxWebhookData{UploadID: "up1"},
	}))
	assert.NoError(t, ingestion.HandleWebhookEvent(ctx, dto.MuxWebhookEvent{
		Type: "video.asset.ready",
		Data: dto.MuxWebhookData{ID: "asset1"},
	}))

	video, err := videoRepo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, model.VideoStatusPreparing, video.Status)
	assert.Empty(t, video.AssetID)
}

func TestIngestionUsecase_ResolveSkipsProviderWhenReady(t *testing.T) {
	ctx := context.Background()
	videoRepo := newFakeVideoRepo()
	seedVideo(t, videoRepo, model.Video{
		ID: "v1", UserID: "u1", UploadID: "up1", AssetID: "asset1",
		PlaybackID: "pb1", Status: model.VideoStatusReady,
	})

	provider := new(MockStreamingProvider)
	ingestion := usecase.NewIngestionUsecase(videoRepo, provider)

	video, err := ingestion.Resolve(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "pb1", video.PlaybackID)

	provider.AssertNotCalled(t, "GetUploadAssetID", ctx, "up1")
	provider.AssertNotCalled(t, "GetAssetPlaybackID", ctx, "asset1")
}

func TestIngestionUsecase_ResolvePollsProvider(t *testing.T) {
	ctx := context.Background()
	videoRepo := newFakeVideoRepo()
	seedVideo(t, videoRepo, model.Video{ID: "v1", UserID: "u1", UploadID: "up1"})

	provider := new(MockStreamingProvider)
	provider.On("GetUploadAssetID", ctx, "up1").Return("asset1", nil).Once()
	provider.On("GetAssetPlaybackID", ctx, "asset1").Return("pb1", nil).Once()

	ingestion := usecase.NewIngestionUsecase(videoRepo, provider)

	video, err := ingestion.Resolve(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "asset1", video.AssetID)
	assert.Equal(t, "pb1", video.PlaybackID)
	assert.Equal(t, model.VideoStatusReady, video.Status)
	provider.AssertExpectations(t)
}

func TestIngestionUsecase_ResolveKeepsAssetWhenPlaybackFetchFails(t *testing.T) {
	ctx := context.Background()
	videoRepo := newFakeVideoRepo()
	seedVideo(t, videoRepo, model.Video{ID: "v1", UserID: "u1", UploadID: "up1"})

	provider := new(MockStreamingProvider)
	provider.On("GetUploadAssetID", ctx, "up1").Return("asset1", nil).Once()
	provider.On("GetAssetPlaybackID", ctx, "asset1").Return("", assert.AnError).Once()

	ingestion := usecase.NewIngestionUsecase(videoRepo, provider)

	_, err := ingestion.Resolve(ctx, "v1")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTransientProvider))

	// The asset id learned before the failure must survive for the retry.
	video, getErr := videoRepo.GetByID(ctx, "v1")
	require.NoError(t, getErr)
	assert.Equal(t, "asset1", video.AssetID)
	assert.Equal(t, model.VideoStatusProcessing, video.Status)
	provider.AssertExpectations(t)
}

func TestIngestionUsecase_ResolveUnknownVideo(t *testing.T) {
	ingestion := usecase.NewIngestionUsecase(newFakeVideoRepo(), new(MockStreamingProvider))

	_, err := ingestion.Resolve(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestIngestionUsecase_DeleteForbiddenForNonOwner(t *testing.T) {
	ctx := context.Background()
	videoRepo := newFakeVideoRepo()
	seedVideo(t, videoRepo, model.Video{ID: "v1", UserID: "owner", UploadID: "up1"})

	ingestion := usecase.NewIngestionUsecase(videoRepo, new(MockStreamingProvider))

	err := ingestion.Delete(ctx, "v1", "intruder")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeForbidden))

	video, getErr := videoRepo.GetByID(ctx, "v1")
	require.NoError(t, getErr)
	assert.NotNil(t, video)
}

func TestIngestionUsecase_DeleteSurvivesUpstreamFailure(t *testing.T) {
	ctx := context.Background()
	videoRepo := newFakeVideoRepo()
	seedVideo(t, videoRepo, model.Video{ID: "v1", UserID: "owner", UploadID: "up1", AssetID: "asset1"})

	provider := new(MockStreamingProvider)
	provider.On("DeleteAsset", ctx, "asset1").Return(assert.AnError).Once()

	ingestion := usecase.NewIngestionUsecase(videoRepo, provider)

	require.NoError(t, ingestion.Delete(ctx, "v1", "owner"))

	video, err := videoRepo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.Nil(t, video)
	provider.AssertExpectations(t)
}

func TestIngestionUsecase_DeleteWithoutAssetDeletesUpload(t *testing.T) {
	ctx := context.Background()
	videoRepo := newFakeVideoRepo()
	seedVideo(t, videoRepo, model.Video{ID: "v1", UserID: "owner", UploadID: "up1"})

	provider := new(MockStreamingProvider)
	provider.On("DeleteUpload", ctx, "up1").Return(nil).Once()

	ingestion := usecase.NewIngestionUsecase(videoRepo, provider)

	require.NoError(t, ingestion.Delete(ctx, "v1", "owner"))
	provider.AssertExpectations(t)
}
