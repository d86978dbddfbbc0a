package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"clipstream/domain/apperrors"
	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/cache"
)

const (
	feedListLimit = 50
	userListLimit = 100
)

// IVideoUsecase covers the video registry: registering uploads, feed and
// per-user listings, and opening direct upload slots at the provider.
type IVideoUsecase interface {
	CreateUploadURL(ctx context.Context) (*model.UploadSession, error)
	Create(ctx context.Context, userID string, req dto.CreateVideoRequest) (*model.Video, error)
	List(ctx context.Context) ([]dto.VideoResponse, error)
	ListByUser(ctx context.Context, userID string) ([]dto.VideoResponse, error)
}

type VideoUsecase struct {
	videoRepo   repository.IVideo
	profileRepo repository.IProfile
	provider    repository.IStreamingProvider
	views       *viewsEnricher
}

func NewVideoUsecase(
	videoRepo repository.IVideo,
	profileRepo repository.IProfile,
	provider repository.IStreamingProvider,
	viewsCache cache.IViewsCache,
) IVideoUsecase {
	return &VideoUsecase{
		videoRepo:   videoRepo,
		profileRepo: profileRepo,
		provider:    provider,
		views:       &viewsEnricher{provider: provider, cache: viewsCache},
	}
}

func (u *VideoUsecase) CreateUploadURL(ctx context.Context) (*model.UploadSession, error) {
	session, err := u.provider.CreateDirectUpload(ctx)
	if err != nil {
		return nil, apperrors.NewTransientProvider("Upload session error.", err)
	}
	return session, nil
}

// Create registers an upload session as a video record in preparing state.
// The ingestion layer is the only writer of the status from here on.
func (u *VideoUsecase) Create(ctx context.Context, userID string, req dto.CreateVideoRequest) (*model.Video, error) {
	if req.UploadID == "" {
		return nil, apperrors.NewValidation("Upload id is required.")
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidation("Title is required.")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidation("Description is required.")
	}

	now := time.Now().UTC()
	video := &model.Video{
		ID:          uuid.NewString(),
		UserID:      userID,
		UploadID:    req.UploadID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Status:      model.VideoStatusPreparing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// List returns the newest videos for the feed, each annotated with its
// owner's username via a single batched profile fetch.
func (u *VideoUsecase) List(ctx context.Context) ([]dto.VideoResponse, error) {
	videos, err := u.videoRepo.List(ctx, feedListLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(videos))
	ids := make([]string, 0, len(videos))
	for _, video := range videos {
		if _, ok := seen[video.UserID]; ok || video.UserID == "" {
			continue
		}
		seen[video.UserID] = struct{}{}
		ids = append(ids, video.UserID)
	}
	profiles, err := u.profileRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	usernameByID := make(map[string]string, len(profiles))
	for _, profile := range profiles {
		usernameByID[profile.ID] = profile.Username
	}

	out := make([]dto.VideoResponse, 0, len(videos))
	for _, video := range videos {
		out = append(out, dto.VideoResponse{Video: video, Username: usernameByID[video.UserID]})
	}
	return out, nil
}

// ListByUser returns a user's newest videos annotated with username and
// provider view counts.
func (u *VideoUsecase) ListByUser(ctx context.Context, userID string) ([]dto.VideoResponse, error) {
	if userID == "" {
		return nil, apperrors.NewValidation("User id is required.")
	}
	videos, err := u.videoRepo.ListByUser(ctx, userID, userListLimit)
	if err != nil {
		return nil, err
	}

	username := ""
	if profile, err := u.profileRepo.GetByID(ctx, userID); err == nil && profile != nil {
		username = profile.Username
	}

	out := u.views.enrich(ctx, videos)
	for i := range out {
		out[i].Username = username
	}
	return out, nil
}
