package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"clipstream/domain/apperrors"
	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/logger"
	"clipstream/infrastructure/pubsub"
)

// IIngestionUsecase converges the video registry with the streaming
// provider. Webhook events and on-demand polling both funnel through the
// same idempotent fact application, so whichever path observes a fact first
// wins and the other becomes a no-op.
type IIngestionUsecase interface {
	HandleWebhookEvent(ctx context.Context, event dto.MuxWebhookEvent) error
	Resolve(ctx context.Context, videoID string) (*model.Video, error)
	Delete(ctx context.Context, videoID, userID string) error
}

type IngestionUsecase struct {
	videoRepo  repository.IVideo
	provider   repository.IStreamingProvider
	events     pubsub.IPublisher // optional
	eventTopic string
}

func NewIngestionUsecase(videoRepo repository.IVideo, provider repository.IStreamingProvider) *IngestionUsecase {
	return &IngestionUsecase{videoRepo: videoRepo, provider: provider}
}

// WithEvents enables best-effort publishing of ready events (fluent).
func (u *IngestionUsecase) WithEvents(events pubsub.IPublisher, topic string) *IngestionUsecase {
	u.events = events
	u.eventTopic = topic
	return u
}

// ingestFacts are immutable truths learned from the provider. An empty
// field means the fact is not known by the caller.
type ingestFacts struct {
	uploadID   string
	assetID    string
	playbackID string
}

// applyFacts persists whatever the caller learned. Each write is keyed by
// the correlation id the fact arrived with, so applying the same facts
// twice rewrites the same values into the same document.
func (u *IngestionUsecase) applyFacts(ctx context.Context, facts ingestFacts) error {
	if facts.assetID != "" && facts.uploadID != "" {
		if err := u.videoRepo.SetAssetByUploadID(ctx, facts.uploadID, facts.assetID); err != nil {
			return err
		}
	}
	if facts.playbackID != "" && facts.assetID != "" {
		if err := u.videoRepo.SetPlaybackByAssetID(ctx, facts.assetID, facts.playbackID); err != nil {
			return err
		}
		u.publishReady(ctx, facts.assetID, facts.playbackID)
	}
	return nil
}

// HandleWebhookEvent applies the facts carried by a provider webhook.
// Unknown event types and events missing their correlation key are
// acknowledged without effect.
func (u *IngestionUsecase) HandleWebhookEvent(ctx context.Context, event dto.MuxWebhookEvent) error {
	switch strings.TrimPrefix(event.Type, "video.") {
	case "upload.asset_created":
		if event.Data.ID == "" || event.Data.UploadID == "" {
			return nil
		}
		return u.applyFacts(ctx, ingestFacts{uploadID: event.Data.UploadID, assetID: event.Data.ID})
	case "asset.ready":
		playbackID := event.Data.FirstPlaybackID()
		if event.Data.ID == "" || playbackID == "" {
			return nil
		}
		return u.applyFacts(ctx, ingestFacts{assetID: event.Data.ID, playbackID: playbackID})
	default:
		return nil
	}
}

// Resolve reconciles a single video on demand. When the playback id is
// already known it returns without any provider call. Otherwise it polls
// the provider, persisting each confirmed fact as soon as it is learned:
// an asset id survives even when the subsequent playback fetch fails.
func (u *IngestionUsecase) Resolve(ctx context.Context, videoID string) (*model.Video, error) {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperrors.NewNotFound("Video not found.")
	}
	if video.PlaybackID != "" {
		return video, nil
	}

	assetID := video.AssetID
	if assetID == "" && video.UploadID != "" {
		assetID, err = u.provider.GetUploadAssetID(ctx, video.UploadID)
		if err != nil {
			return nil, apperrors.NewTransientProvider("Resolve error.", err)
		}
		if assetID != "" {
			if err := u.applyFacts(ctx, ingestFacts{uploadID: video.UploadID, assetID: assetID}); err != nil {
				return nil, err
			}
		}
	}

	if assetID != "" {
		playbackID, err := u.provider.GetAssetPlaybackID(ctx, assetID)
		if err != nil {
			// The asset id above is already persisted; only the ready
			// transition is missing and a retry will pick it up.
			return nil, apperrors.NewTransientProvider("Resolve error.", err)
		}
		if playbackID != "" {
			if err := u.applyFacts(ctx, ingestFacts{assetID: assetID, playbackID: playbackID}); err != nil {
				return nil, err
			}
		}
	}

	resolved, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		// Raced a concurrent deletion; report the record as gone.
		return nil, apperrors.NewNotFound("Video not found.")
	}
	return resolved, nil
}

// Delete removes a video. The upstream asset or upload is deleted best
// effort first; an upstream failure is logged and swallowed, never blocking
// the local deletion.
func (u *IngestionUsecase) Delete(ctx context.Context, videoID, userID string) error {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return apperrors.NewNotFound("Video not found.")
	}
	if video.UserID != userID {
		return apperrors.NewForbidden("Forbidden.")
	}

	if video.AssetID != "" {
		if err := u.provider.DeleteAsset(ctx, video.AssetID); err != nil {
			logger.GetLogger().WithField("assetId", video.AssetID).WithField("error", err).Warn("Upstream asset deletion failed")
		}
	} else if video.UploadID != "" {
		if err := u.provider.DeleteUpload(ctx, video.UploadID); err != nil {
			logger.GetLogger().WithField("uploadId", video.UploadID).WithField("error", err).Warn("Upstream upload deletion failed")
		}
	}

	return u.videoRepo.Delete(ctx, videoID)
}

func (u *IngestionUsecase) publishReady(ctx context.Context, assetID, playbackID string) {
	if u.events == nil {
		return
	}
	payload, err := json.Marshal(map[string]string{
		"event":       "video.ready",
		"asset_id":    assetID,
		"playback_id": playbackID,
	})
	if err != nil {
		return
	}
	if _, err := u.events.Publish(ctx, u.eventTopic, payload); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while publishing ready event")
	}
}
