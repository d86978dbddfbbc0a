package persistence

import (
	"context"
	"errors"
	"time"

	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// VideoRepository implements repository.IVideo on the videos collection.
type VideoRepository struct {
	collection *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{collection: db.Collection("videos")}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	_, err := r.collection.InsertOne(ctx, video)
	return err
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	var video model.Video
	err := r.collection.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) List(ctx context.Context, limit int64) ([]model.Video, error) {
	return r.find(ctx, bson.D{}, limit)
}

func (r *VideoRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]model.Video, error) {
	return r.find(ctx, bson.D{{Key: "userId", Value: userID}}, limit)
}

func (r *VideoRepository) ListByIDs(ctx context.Context, ids []string) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.D{{Key: "id", Value: bson.D{{Key: "$in", Value: ids}}}}, 0)
}

func (r *VideoRepository) find(ctx context.Context, filter bson.D, limit int64) ([]model.Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var videos []model.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// SetAssetByUploadID is keyed by upload_id so the webhook and poll paths can
// both apply the same fact; a repeated apply matches the same document and
// writes the same values.
func (r *VideoRepository) SetAssetByUploadID(ctx context.Context, uploadID, assetID string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "upload_id", Value: uploadID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "asset_id", Value: assetID},
			{Key: "status", Value: model.VideoStatusProcessing},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
	)
	return err
}

func (r *VideoRepository) SetPlaybackByAssetID(ctx context.Context, assetID, playbackID string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "asset_id", Value: assetID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "playback_id", Value: playbackID},
			{Key: "status", Value: model.VideoStatusReady},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
	)
	return err
}

func (r *VideoRepository) UpdateCounters(ctx context.Context, id string, likes, dislikes uint64) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "likes", Value: int64(likes)},
			{Key: "dislikes", Value: int64(dislikes)},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
	)
	return err
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	return err
}
