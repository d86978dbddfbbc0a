package usecase

import (
	"context"
	"time"

	"clipstream/domain/apperrors"
	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/cache"
)

const (
	followListLimit = 200
	likedListLimit  = 100
)

// IEngagementUsecase owns the Like, Dislike and Follow edges and the
// denormalized counters derived from them. Operations are request scoped
// with no in-process locking; the storage layer only guarantees
// per-document atomicity, so racing toggles on the same pair can drift a
// counter away from the true edge cardinality. That drift is accepted;
// counters stay non-negative by construction.
type IEngagementUsecase interface {
	ToggleLike(ctx context.Context, userID, videoID string) (*dto.ToggleLikeResult, error)
	ToggleDislike(ctx context.Context, userID, videoID string) (*dto.ToggleDislikeResult, error)
	ToggleFollow(ctx context.Context, followerID, targetID string) (*dto.ToggleFollowResult, error)
	Relationship(ctx context.Context, userID, otherID string) (*dto.Relationship, error)
	ListFollowers(ctx context.Context, userID, viewerID string) ([]dto.ProfileWithFollowState, error)
	ListFollowing(ctx context.Context, userID, viewerID string) ([]dto.ProfileWithFollowState, error)
	ListLikedVideos(ctx context.Context, userID string) ([]dto.VideoResponse, error)
	ListDislikedVideos(ctx context.Context, userID string) ([]dto.VideoResponse, error)
}

type EngagementUsecase struct {
	videoRepo      repository.IVideo
	engagementRepo repository.IEngagement
	profileRepo    repository.IProfile
	views          *viewsEnricher
}

func NewEngagementUsecase(
	videoRepo repository.IVideo,
	engagementRepo repository.IEngagement,
	profileRepo repository.IProfile,
	provider repository.IStreamingProvider,
	viewsCache cache.IViewsCache,
) IEngagementUsecase {
	return &EngagementUsecase{
		videoRepo:      videoRepo,
		engagementRepo: engagementRepo,
		profileRepo:    profileRepo,
		views:          &viewsEnricher{provider: provider, cache: viewsCache},
	}
}

func saturatingDec(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return n - 1
}

// ToggleLike deletes an existing like edge, or creates one and clears any
// dislike edge for the same pair so the two stay mutually exclusive.
func (u *EngagementUsecase) ToggleLike(ctx context.Context, userID, videoID string) (*dto.ToggleLikeResult, error) {
	if videoID == "" {
		return nil, apperrors.NewValidation("Video id is required.")
	}
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperrors.NewNotFound("Video not found.")
	}

	existing, err := u.engagementRepo.FindLike(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := u.engagementRepo.DeleteLike(ctx, userID, videoID); err != nil {
			return nil, err
		}
		video.Likes = saturatingDec(video.Likes)
		if err := u.videoRepo.UpdateCounters(ctx, videoID, video.Likes, video.Dislikes); err != nil {
			return nil, err
		}
		return &dto.ToggleLikeResult{Liked: false, Likes: video.Likes}, nil
	}

	if err := u.engagementRepo.CreateLike(ctx, &model.Like{UserID: userID, VideoID: videoID, CreatedAt: time.Now().UTC()}); err != nil {
		return nil, err
	}
	dislike, err := u.engagementRepo.FindDislike(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if dislike != nil {
		if err := u.engagementRepo.DeleteDislike(ctx, userID, videoID); err != nil {
			return nil, err
		}
		video.Dislikes = saturatingDec(video.Dislikes)
	}
	video.Likes++
	if err := u.videoRepo.UpdateCounters(ctx, videoID, video.Likes, video.Dislikes); err != nil {
		return nil, err
	}
	return &dto.ToggleLikeResult{Liked: true, Likes: video.Likes}, nil
}

// ToggleDislike mirrors ToggleLike with the edge roles swapped.
func (u *EngagementUsecase) ToggleDislike(ctx context.Context, userID, videoID string) (*dto.ToggleDislikeResult, error) {
	if videoID == "" {
		return nil, apperrors.NewValidation("Video id is required.")
	}
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperrors.NewNotFound("Video not found.")
	}

	existing, err := u.engagementRepo.FindDislike(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := u.engagementRepo.DeleteDislike(ctx, userID, videoID); err != nil {
			return nil, err
		}
		video.Dislikes = saturatingDec(video.Dislikes)
		if err := u.videoRepo.UpdateCounters(ctx, videoID, video.Likes, video.Dislikes); err != nil {
			return nil, err
		}
		return &dto.ToggleDislikeResult{Disliked: false, Dislikes: video.Dislikes}, nil
	}

	if err := u.engagementRepo.CreateDislike(ctx, &model.Dislike{UserID: userID, VideoID: videoID, CreatedAt: time.Now().UTC()}); err != nil {
		return nil, err
	}
	like, err := u.engagementRepo.FindLike(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if like != nil {
		if err := u.engagementRepo.DeleteLike(ctx, userID, videoID); err != nil {
			return nil, err
		}
		video.Likes = saturatingDec(video.Likes)
	}
	video.Dislikes++
	if err := u.videoRepo.UpdateCounters(ctx, videoID, video.Likes, video.Dislikes); err != nil {
		return nil, err
	}
	return &dto.ToggleDislikeResult{Disliked: true, Dislikes: video.Dislikes}, nil
}

// ToggleFollow creates or removes the follower->target edge. The two
// profile counters are written as two independent operations, each
// saturating at zero on its own; they are not one atomic unit.
func (u *EngagementUsecase) ToggleFollow(ctx context.Context, followerID, targetID string) (*dto.ToggleFollowResult, error) {
	if targetID == "" {
		return nil, apperrors.NewValidation("User id is required.")
	}
	if targetID == followerID {
		return nil, apperrors.NewValidation("Cannot follow yourself.")
	}

	existing, err := u.engagementRepo.FindFollow(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := u.engagementRepo.DeleteFollow(ctx, followerID, targetID); err != nil {
			return nil, err
		}
		if err := u.adjustFollowCounters(ctx, followerID, targetID, false); err != nil {
			return nil, err
		}
		return &dto.ToggleFollowResult{Following: false}, nil
	}

	if err := u.engagementRepo.CreateFollow(ctx, &model.Follow{FollowerID: followerID, UserID: targetID, CreatedAt: time.Now().UTC()}); err != nil {
		return nil, err
	}
	if err := u.adjustFollowCounters(ctx, followerID, targetID, true); err != nil {
		return nil, err
	}
	return &dto.ToggleFollowResult{Following: true}, nil
}

func (u *EngagementUsecase) adjustFollowCounters(ctx context.Context, followerID, targetID string, inc bool) error {
	me, err := u.profileRepo.GetByID(ctx, followerID)
	if err != nil {
		return err
	}
	if me != nil {
		if inc {
			me.Following++
		} else {
			me.Following = saturatingDec(me.Following)
		}
		if err := u.profileRepo.SetFollowingCount(ctx, me.ID, me.Following); err != nil {
			return err
		}
	}

	you, err := u.profileRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if you != nil {
		if inc {
			you.Followers++
		} else {
			you.Followers = saturatingDec(you.Followers)
		}
		if err := u.profileRepo.SetFollowerCount(ctx, you.ID, you.Followers); err != nil {
			return err
		}
	}
	return nil
}

// Relationship is a pure read of both edge directions. For a==b it reports
// neither direction without touching storage.
func (u *EngagementUsecase) Relationship(ctx context.Context, userID, otherID string) (*dto.Relationship, error) {
	if otherID == "" {
		return nil, apperrors.NewValidation("User id is required.")
	}
	if otherID == userID {
		return &dto.Relationship{}, nil
	}

	iFollow, err := u.engagementRepo.FindFollow(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	followsMe, err := u.engagementRepo.FindFollow(ctx, otherID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.Relationship{IFollow: iFollow != nil, FollowsMe: followsMe != nil}, nil
}

func (u *EngagementUsecase) ListFollowers(ctx context.Context, userID, viewerID string) ([]dto.ProfileWithFollowState, error) {
	if userID == "" {
		return nil, apperrors.NewValidation("User id is required.")
	}
	edges, err := u.engagementRepo.ListFollowers(ctx, userID, followListLimit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.FollowerID)
	}
	return u.annotateProfiles(ctx, ids, viewerID)
}

func (u *EngagementUsecase) ListFollowing(ctx context.Context, userID, viewerID string) ([]dto.ProfileWithFollowState, error) {
	if userID == "" {
		return nil, apperrors.NewValidation("User id is required.")
	}
	edges, err := u.engagementRepo.ListFollowing(ctx, userID, followListLimit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.UserID)
	}
	return u.annotateProfiles(ctx, ids, viewerID)
}

// annotateProfiles loads the listed profiles in edge order and marks which
// ones the viewer follows, computed from one pass over the viewer's full
// following set instead of a lookup per row.
func (u *EngagementUsecase) annotateProfiles(ctx context.Context, ids []string, viewerID string) ([]dto.ProfileWithFollowState, error) {
	profiles, err := u.profileRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	viewerFollowing, err := u.engagementRepo.ListFollowing(ctx, viewerID, 0)
	if err != nil {
		return nil, err
	}
	followingSet := make(map[string]struct{}, len(viewerFollowing))
	for _, edge := range viewerFollowing {
		followingSet[edge.UserID] = struct{}{}
	}

	out := make([]dto.ProfileWithFollowState, 0, len(ids))
	for _, id := range ids {
		profile, ok := byID[id]
		if !ok {
			continue
		}
		_, isFollowing := followingSet[profile.ID]
		out = append(out, dto.ProfileWithFollowState{Profile: profile, IsFollowing: isFollowing})
	}
	return out, nil
}

// ListLikedVideos returns the videos a user has liked, newest like first,
// annotated with view counts.
func (u *EngagementUsecase) ListLikedVideos(ctx context.Context, userID string) ([]dto.VideoResponse, error) {
	if userID == "" {
		return nil, apperrors.NewValidation("User id is required.")
	}
	likes, err := u.engagementRepo.ListLikesByUser(ctx, userID, likedListLimit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(likes))
	for _, like := range likes {
		ids = append(ids, like.VideoID)
	}
	videos, err := u.videosInOrder(ctx, ids)
	if err != nil {
		return nil, err
	}
	return u.views.enrich(ctx, videos), nil
}

// ListDislikedVideos returns the videos a user has disliked, skipping any
// the user currently likes.
func (u *EngagementUsecase) ListDislikedVideos(ctx context.Context, userID string) ([]dto.VideoResponse, error) {
	if userID == "" {
		return nil, apperrors.NewValidation("User id is required.")
	}
	dislikes, err := u.engagementRepo.ListDislikesByUser(ctx, userID, likedListLimit)
	if err != nil {
		return nil, err
	}
	likes, err := u.engagementRepo.ListLikesByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	likedIDs := make(map[string]struct{}, len(likes))
	for _, like := range likes {
		likedIDs[like.VideoID] = struct{}{}
	}

	ids := make([]string, 0, len(dislikes))
	for _, dislike := range dislikes {
		if _, liked := likedIDs[dislike.VideoID]; liked {
			continue
		}
		ids = append(ids, dislike.VideoID)
	}
	videos, err := u.videosInOrder(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.VideoResponse, 0, len(videos))
	for _, video := range videos {
		out = append(out, dto.VideoResponse{Video: video})
	}
	return out, nil
}

func (u *EngagementUsecase) videosInOrder(ctx context.Context, ids []string) ([]model.Video, error) {
	videos, err := u.videoRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Video, len(videos))
	for _, video := range videos {
		byID[video.ID] = video
	}
	out := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if video, ok := byID[id]; ok {
			out = append(out, video)
		}
	}
	return out, nil
}
