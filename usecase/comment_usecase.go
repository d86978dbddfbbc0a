package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"clipstream/domain/apperrors"
	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/moderation"
)

const (
	commentMaxLength = 300
	commentListLimit = 500
)

type ICommentUsecase interface {
	Create(ctx context.Context, videoID, userID, text string) (*dto.CommentResponse, error)
	ListByVideo(ctx context.Context, videoID string) ([]dto.CommentResponse, error)
	Delete(ctx context.Context, commentID, userID string) error
}

type CommentUsecase struct {
	commentRepo repository.IComment
	profileRepo repository.IProfile
	filter      *moderation.Filter
}

func NewCommentUsecase(commentRepo repository.IComment, profileRepo repository.IProfile, filter *moderation.Filter) ICommentUsecase {
	return &CommentUsecase{commentRepo: commentRepo, profileRepo: profileRepo, filter: filter}
}

// Create trims the text and rejects, in order: empty text, text over the
// length cap, text containing a deny-listed word. Each rejection carries
// its own reason.
func (u *CommentUsecase) Create(ctx context.Context, videoID, userID, text string) (*dto.CommentResponse, error) {
	if videoID == "" {
		return nil, apperrors.NewValidation("Video id is required.")
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.NewValidation("Text is required.")
	}
	if utf8.RuneCountInString(trimmed) > commentMaxLength {
		return nil, apperrors.NewValidation("Text must be at most 300 characters long.")
	}
	if u.filter.HasBadWords(trimmed) {
		return nil, apperrors.NewValidation("Text includes a blacklisted word.")
	}

	comment := &model.Comment{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		UserID:    userID,
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	out := &dto.CommentResponse{Comment: *comment}
	if profile, err := u.profileRepo.GetByID(ctx, userID); err == nil && profile != nil {
		out.Username = profile.Username
		out.Name = profile.Name
		out.Avatar = profile.Avatar
	}
	return out, nil
}

// ListByVideo returns a video's comments oldest first, annotated with the
// authors' public identity through one batched profile fetch.
func (u *CommentUsecase) ListByVideo(ctx context.Context, videoID string) ([]dto.CommentResponse, error) {
	if videoID == "" {
		return nil, apperrors.NewValidation("Video id is required.")
	}
	comments, err := u.commentRepo.ListByVideo(ctx, videoID, commentListLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(comments))
	ids := make([]string, 0, len(comments))
	for _, comment := range comments {
		if _, ok := seen[comment.UserID]; ok || comment.UserID == "" {
			continue
		}
		seen[comment.UserID] = struct{}{}
		ids = append(ids, comment.UserID)
	}
	profiles, err := u.profileRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Profile, len(profiles))
	for _, profile := range profiles {
		byID[profile.ID] = profile
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		response := dto.CommentResponse{Comment: comment}
		if profile, ok := byID[comment.UserID]; ok {
			response.Username = profile.Username
			response.Name = profile.Name
			response.Avatar = profile.Avatar
		}
		out = append(out, response)
	}
	return out, nil
}

// Delete removes a comment, permitted only to its author.
func (u *CommentUsecase) Delete(ctx context.Context, commentID, userID string) error {
	if commentID == "" {
		return apperrors.NewValidation("Comment id is required.")
	}
	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return apperrors.NewNotFound("Comment not found.")
	}
	if comment.UserID != userID {
		return apperrors.NewForbidden("Forbidden.")
	}
	return u.commentRepo.Delete(ctx, commentID)
}
