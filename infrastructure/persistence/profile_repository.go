package persistence

import (
	"context"
	"errors"

	"clipstream/domain/model"
	"clipstream/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ProfileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) repository.IProfile {
	return &ProfileRepository{collection: db.Collection("profiles")}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	return r.findOne(ctx, bson.D{{Key: "id", Value: id}})
}

func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*model.Profile, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *ProfileRepository) findOne(ctx context.Context, filter bson.D) (*model.Profile, error) {
	var profile model.Profile
	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) ListByIDs(ctx context.Context, ids []string) ([]model.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.D{{Key: "id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, err
	}
	var profiles []model.Profile
	if err := drain(ctx, cursor, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// SetFollowerCount and SetFollowingCount are deliberately separate writes;
// toggleFollow updates the two sides of the relation independently.
func (r *ProfileRepository) SetFollowerCount(ctx context.Context, id string, followers uint64) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "followers", Value: int64(followers)}}}},
	)
	return err
}

func (r *ProfileRepository) SetFollowingCount(ctx context.Context, id string, following uint64) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "following", Value: int64(following)}}}},
	)
	return err
}
