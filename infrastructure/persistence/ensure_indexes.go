package persistence

import (
	"context"

	"clipstream/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the lookup and uniqueness indexes the repositories
// rely on. The follow pair index is unique; the like/dislike pair uniqueness
// is enforced by the engagement usecase, so those only get lookup indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{"videos", mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{"videos", mongo.IndexModel{Keys: bson.D{{Key: "upload_id", Value: 1}}}},
		{"videos", mongo.IndexModel{Keys: bson.D{{Key: "asset_id", Value: 1}}}},
		{"videos", mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}}},
		{"likes", mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "videoId", Value: 1}}}},
		{"dislikes", mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "videoId", Value: 1}}}},
		{"follows", mongo.IndexModel{Keys: bson.D{{Key: "followerId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{"follows", mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}}},
		{"profiles", mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{"profiles", mongo.IndexModel{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{"comments", mongo.IndexModel{Keys: bson.D{{Key: "videoId", Value: 1}, {Key: "createdAt", Value: 1}}}},
	}

	for _, idx := range indexes {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			logger.GetLogger().WithField("collection", idx.collection).WithField("error", err).Error("Error while creating index")
			return err
		}
	}
	return nil
}
