package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	artworkserrors "gallery/internal/artworks/errors"
	"gallery/pkg/config"
	mongotx "gallery/pkg/db/mongo"
	"gallery/pkg/model"
)

const (
	CollectionName = "Artworks"
)

type ArtworkRepository interface {
	Create(ctx context.Context, a *model.Artwork) error
	FindByID(ctx context.Context, id string) (*model.Artwork, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Artwork, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, a *model.Artwork) error
	Delete(ctx context.Context, id string) error
}

type mongoArtworkRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoArtworkRepository(cfg *config.Config) ArtworkRepository {
	return &mongoArtworkRepository{
		cfg:        cfg,
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName),
	}
}

func (r *mongoArtworkRepository) Create(ctx context.Context, a *model.Artwork) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	a.ID = ""
	a.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to create artwork: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid.Hex()
	}
	return nil
}

func (r *mongoArtworkRepository) FindByID(ctx context.Context, id string) (*model.Artwork, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", artworkserrors.ErrInvalidID, id)
	}

	var a model.Artwork
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", artworkserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find artwork: %w", err)
	}
	return &a, nil
}

// FindAll lists artworks newest first.
func (r *mongoArtworkRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Artwork, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query artworks: %w", err)
	}
	defer cursor.Close(ctx)

	artworks := []*model.Artwork{}
	if err = cursor.All(ctx, &artworks); err != nil {
		return nil, fmt.Errorf("failed to decode artworks: %w", err)
	}
	return artworks, nil
}

func (r *mongoArtworkRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count artworks: %w", err)
	}
	return count, nil
}

func (r *mongoArtworkRepository) Update(ctx context.Context, id string, a *model.Artwork) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", artworkserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"title":       a.Title,
			"artist":      a.Artist,
			"description": a.Description,
			"price":       a.Price,
			"image_url":   a.ImageURL,
			"dimensions":  a.Dimensions,
			"medium":      a.Medium,
			"year":        a.Year,
			"status":      a.Status,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update artwork: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", artworkserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoArtworkRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", artworkserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete artwork: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", artworkserrors.ErrNotFound, id)
	}
	return nil
}
