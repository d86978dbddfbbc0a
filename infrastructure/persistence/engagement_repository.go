package persistence

import (
	"context"
	"errors"

	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EngagementRepository implements repository.IEngagement on the likes,
// dislikes and follows collections. Every operation touches a single
// document; the usecase layer owns cross-edge invariants.
type EngagementRepository struct {
	likes    *mongo.Collection
	dislikes *mongo.Collection
	follows  *mongo.Collection
}

func NewEngagementRepository(db *mongo.Database) repository.IEngagement {
	return &EngagementRepository{
		likes:    db.Collection("likes"),
		dislikes: db.Collection("dislikes"),
		follows:  db.Collection("follows"),
	}
}

func pairFilter(userID, videoID string) bson.D {
	return bson.D{{Key: "userId", Value: userID}, {Key: "videoId", Value: videoID}}
}

func (r *EngagementRepository) FindLike(ctx context.Context, userID, videoID string) (*model.Like, error) {
	var like model.Like
	err := r.likes.FindOne(ctx, pairFilter(userID, videoID)).Decode(&like)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *EngagementRepository) CreateLike(ctx context.Context, like *model.Like) error {
	_, err := r.likes.InsertOne(ctx, like)
	return err
}

func (r *EngagementRepository) DeleteLike(ctx context.Context, userID, videoID string) error {
	_, err := r.likes.DeleteOne(ctx, pairFilter(userID, videoID))
	return err
}

func (r *EngagementRepository) ListLikesByUser(ctx context.Context, userID string, limit int64) ([]model.Like, error) {
	cursor, err := r.likes.Find(ctx, bson.D{{Key: "userId", Value: userID}}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	var likes []model.Like
	if err := drain(ctx, cursor, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *EngagementRepository) FindDislike(ctx context.Context, userID, videoID string) (*model.Dislike, error) {
	var dislike model.Dislike
	err := r.dislikes.FindOne(ctx, pairFilter(userID, videoID)).Decode(&dislike)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dislike, nil
}

func (r *EngagementRepository) CreateDislike(ctx context.Context, dislike *model.Dislike) error {
	_, err := r.dislikes.InsertOne(ctx, dislike)
	return err
}

func (r *EngagementRepository) DeleteDislike(ctx context.Context, userID, videoID string) error {
	_, err := r.dislikes.DeleteOne(ctx, pairFilter(userID, videoID))
	return err
}

func (r *EngagementRepository) ListDislikesByUser(ctx context.Context, userID string, limit int64) ([]model.Dislike, error) {
	cursor, err := r.dislikes.Find(ctx, bson.D{{Key: "userId", Value: userID}}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	var dislikes []model.Dislike
	if err := drain(ctx, cursor, &dislikes); err != nil {
		return nil, err
	}
	return dislikes, nil
}

func followFilter(followerID, userID string) bson.D {
	return bson.D{{Key: "followerId", Value: followerID}, {Key: "userId", Value: userID}}
}

func (r *EngagementRepository) FindFollow(ctx context.Context, followerID, userID string) (*model.Follow, error) {
	var follow model.Follow
	err := r.follows.FindOne(ctx, followFilter(followerID, userID)).Decode(&follow)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *EngagementRepository) CreateFollow(ctx context.Context, follow *model.Follow) error {
	_, err := r.follows.InsertOne(ctx, follow)
	return err
}

func (r *EngagementRepository) DeleteFollow(ctx context.Context, followerID, userID string) error {
	_, err := r.follows.DeleteOne(ctx, followFilter(followerID, userID))
	return err
}

func (r *EngagementRepository) ListFollowers(ctx context.Context, userID string, limit int64) ([]model.Follow, error) {
	cursor, err := r.follows.Find(ctx, bson.D{{Key: "userId", Value: userID}}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	var follows []model.Follow
	if err := drain(ctx, cursor, &follows); err != nil {
		return nil, err
	}
	return follows, nil
}

func (r *EngagementRepository) ListFollowing(ctx context.Context, followerID string, limit int64) ([]model.Follow, error) {
	cursor, err := r.follows.Find(ctx, bson.D{{Key: "followerId", Value: followerID}}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	var follows []model.Follow
	if err := drain(ctx, cursor, &follows); err != nil {
		return nil, err
	}
	return follows, nil
}

func newestFirst(limit int64) *options.FindOptionsBuilder {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return opts
}

func drain(ctx context.Context, cursor *mongo.Cursor, out interface{}) error {
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()
	return cursor.All(ctx, out)
}
