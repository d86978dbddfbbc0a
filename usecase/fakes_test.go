package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"

	"clipstream/domain/model"
)

// In-memory repositories backing the usecase tests. They mirror the
// document-store contract: single-document operations, no transactions.

type fakeVideoRepo struct {
	mu     sync.Mutex
	videos map[string]*model.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: make(map[string]*model.Video)}
}

func (r *fakeVideoRepo) Create(_ context.Context, video *model.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *video
	r.videos[video.ID] = &copied
	return nil
}

func (r *fakeVideoRepo) GetByID(_ context.Context, id string) (*model.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	video, ok := r.videos[id]
	if !ok {
		return nil, nil
	}
	copied := *video
	return &copied, nil
}

func (r *fakeVideoRepo) List(_ context.Context, limit int64) ([]model.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Video, 0, len(r.videos))
	for _, video := range r.videos {
		out = append(out, *video)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeVideoRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]model.Video, error) {
	all, _ := r.List(ctx, 0)
	out := make([]model.Video, 0, len(all))
	for _, video := range all {
		if video.UserID == userID {
			out = append(out, video)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeVideoRepo) ListByIDs(_ context.Context, ids []string) ([]model.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if video, ok := r.videos[id]; ok {
			out = append(out, *video)
		}
	}
	return out, nil
}

func (r *fakeVideoRepo) SetAssetByUploadID(_ context.Context, uploadID, assetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, video := range r.videos {
		if video.UploadID == uploadID {
			video.AssetID = assetID
			video.Status = model.VideoStatusProcessing
			return nil
		}
	}
	return nil
}

func (r *fakeVideoRepo) SetPlaybackByAssetID(_ context.Context, assetID, playbackID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, video := range r.videos {
		if video.AssetID == assetID {
			video.PlaybackID = playbackID
			video.Status = model.VideoStatusReady
			return nil
		}
	}
	return nil
}

func (r *fakeVideoRepo) UpdateCounters(_ context.Context, id string, likes, dislikes uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if video, ok := r.videos[id]; ok {
		video.Likes = likes
		video.Dislikes = dislikes
	}
	return nil
}

func (r *fakeVideoRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.videos, id)
	return nil
}

type fakeEngagementRepo struct {
	mu       sync.Mutex
	likes    []model.Like
	dislikes []model.Dislike
	follows  []model.Follow
}

func newFakeEngagementRepo() *fakeEngagementRepo { return &fakeEngagementRepo{} }

func (r *fakeEngagementRepo) FindLike(_ context.Context, userID, videoID string) (*model.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, like := range r.likes {
		if like.UserID == userID && like.VideoID == videoID {
			copied := like
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEngagementRepo) CreateLike(_ context.Context, like *model.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Prepend to keep newest-first list order.
	r.likes = append([]model.Like{*like}, r.likes...)
	return nil
}

func (r *fakeEngagementRepo) DeleteLike(_ context.Context, userID, videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.likes[:0]
	for _, like := range r.likes {
		if like.UserID == userID && like.VideoID == videoID {
			continue
		}
		kept = append(kept, like)
	}
	r.likes = kept
	return nil
}

func (r *fakeEngagementRepo) ListLikesByUser(_ context.Context, userID string, limit int64) ([]model.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Like, 0, len(r.likes))
	for _, like := range r.likes {
		if like.UserID == userID {
			out = append(out, like)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeEngagementRepo) FindDislike(_ context.Context, userID, videoID string) (*model.Dislike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, dislike := range r.dislikes {
		if dislike.UserID == userID && dislike.VideoID == videoID {
			copied := dislike
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEngagementRepo) CreateDislike(_ context.Context, dislike *model.Dislike) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dislikes = append([]model.Dislike{*dislike}, r.dislikes...)
	return nil
}

func (r *fakeEngagementRepo) DeleteDislike(_ context.Context, userID, videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.dislikes[:0]
	for _, dislike := range r.dislikes {
		if dislike.UserID == userID && dislike.VideoID == videoID {
			continue
		}
		kept = append(kept, dislike)
	}
	r.dislikes = kept
	return nil
}

func (r *fakeEngagementRepo) ListDislikesByUser(_ context.Context, userID string, limit int64) ([]model.Dislike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Dislike, 0, len(r.dislikes))
	for _, dislike := range r.dislikes {
		if dislike.UserID == userID {
			out = append(out, dislike)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeEngagementRepo) FindFollow(_ context.Context, followerID, userID string) (*model.Follow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, follow := range r.follows {
		if follow.FollowerID == followerID && follow.UserID == userID {
			copied := follow
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEngagementRepo) CreateFollow(_ context.Context, follow *model.Follow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.follows = append([]model.Follow{*follow}, r.follows...)
	return nil
}

func (r *fakeEngagementRepo) DeleteFollow(_ context.Context, followerID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.follows[:0]
	for _, follow := range r.follows {
		if follow.FollowerID == followerID && follow.UserID == userID {
			continue
		}
		kept = append(kept, follow)
	}
	r.follows = kept
	return nil
}

func (r *fakeEngagementRepo) ListFollowers(_ context.Context, userID string, limit int64) ([]model.Follow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Follow, 0, len(r.follows))
	for _, follow := range r.follows {
		if follow.UserID == userID {
			out = append(out, follow)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeEngagementRepo) ListFollowing(_ context.Context, followerID string, limit int64) ([]model.Follow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Follow, 0, len(r.follows))
	for _, follow := range r.follows {
		if follow.FollowerID == followerID {
			out = append(out, follow)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*model.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) GetByUsername(_ context.Context, username string) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, profile := range r.profiles {
		if profile.Username == username {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) ListByIDs(_ context.Context, ids []string) ([]model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Profile, 0, len(ids))
	for _, id := range ids {
		if profile, ok := r.profiles[id]; ok {
			out = append(out, *profile)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) SetFollowerCount(_ context.Context, id string, followers uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile, ok := r.profiles[id]; ok {
		profile.Followers = followers
	}
	return nil
}

func (r *fakeProfileRepo) SetFollowingCount(_ context.Context, id string, following uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile, ok := r.profiles[id]; ok {
		profile.Following = following
	}
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo { return &fakeCommentRepo{} }

func (r *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, comment := range r.comments {
		if comment.ID == id {
			copied := comment
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCommentRepo) ListByVideo(_ context.Context, videoID string, limit int64) ([]model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Comment, 0, len(r.comments))
	for _, comment := range r.comments {
		if comment.VideoID == videoID {
			out = append(out, comment)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.comments[:0]
	for _, comment := range r.comments {
		if comment.ID == id {
			continue
		}
		kept = append(kept, comment)
	}
	r.comments = kept
	return nil
}

// MockStreamingProvider counts and stubs provider calls.
type MockStreamingProvider struct {
	mock.Mock
}

func (m *MockStreamingProvider) CreateDirectUpload(ctx context.Context) (*model.UploadSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadSession), args.Error(1)
}

func (m *MockStreamingProvider) GetUploadAssetID(ctx context.Context, uploadID string) (string, error) {
	args := m.Called(ctx, uploadID)
	return args.String(0), args.Error(1)
}

func (m *MockStreamingProvider) GetAssetPlaybackID(ctx context.Context, assetID string) (string, error) {
	args := m.Called(ctx, assetID)
	return args.String(0), args.Error(1)
}

func (m *MockStreamingProvider) GetVideoViews(ctx context.Context, assetID, playbackID string) (int64, error) {
	args := m.Called(ctx, assetID, playbackID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStreamingProvider) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockStreamingProvider) DeleteUpload(ctx context.Context, uploadID string) error {
	args := m.Called(ctx, uploadID)
	return args.Error(0)
}
