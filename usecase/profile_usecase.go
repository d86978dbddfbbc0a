package usecase

import (
	"context"
	"strings"

	"clipstream/domain/apperrors"
	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/moderation"
)

type IProfileUsecase interface {
	GetMe(ctx context.Context, userID string) (*model.Profile, error)
	Create(ctx context.Context, userID string, req dto.CreateProfileRequest) (*model.Profile, error)
}

type ProfileUsecase struct {
	profileRepo repository.IProfile
	filter      *moderation.Filter
}

func NewProfileUsecase(profileRepo repository.IProfile, filter *moderation.Filter) IProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo, filter: filter}
}

func (u *ProfileUsecase) GetMe(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NewNotFound("Onboarding not completed.")
	}
	return profile, nil
}

// Create completes onboarding. The moderation filter runs against the
// username and the display name at creation time only; neither is ever
// re-checked on later reads.
func (u *ProfileUsecase) Create(ctx context.Context, userID string, req dto.CreateProfileRequest) (*model.Profile, error) {
	username := strings.TrimSpace(req.Username)
	name := strings.TrimSpace(req.Name)
	if username == "" {
		return nil, apperrors.NewValidation("Username is required.")
	}
	if u.filter.HasBadWords(username) {
		return nil, apperrors.NewValidation("Username includes a blacklisted word.")
	}
	if name != "" && u.filter.HasBadWords(name) {
		return nil, apperrors.NewValidation("Name includes a blacklisted word.")
	}

	existing, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidation("Onboarding already completed.")
	}
	taken, err := u.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, apperrors.NewValidation("Username is already taken.")
	}

	profile := &model.Profile{
		ID:       userID,
		Username: username,
		Name:     name,
		Bio:      strings.TrimSpace(req.Bio),
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
