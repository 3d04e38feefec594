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

	exhibitionserrors "gallery/internal/exhibitions/errors"
	"gallery/pkg/config"
	mongotx "gallery/pkg/db/mongo"
	"gallery/pkg/model"
)

const (
	CollectionName = "Exhibitions"
)

type ExhibitionRepository interface {
	Create(ctx context.Context, e *model.Exhibition) error
	FindByID(ctx context.Context, id string) (*model.Exhibition, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Exhibition, error)
	Count(ctx context.Context) (int64, error)
	// Update writes every editable field except available_slots, which only
	// moves by slotsDelta so concurrent reservations are never overwritten.
	Update(ctx context.Context, id string, e *model.Exhibition, slotsDelta int) error
	Delete(ctx context.Context, id string) error
}

type mongoExhibitionRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoExhibitionRepository(cfg *config.Config) ExhibitionRepository {
	return &mongoExhibitionRepository{
		cfg:        cfg,
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName),
	}
}

func (r *mongoExhibitionRepository) Create(ctx context.Context, e *model.Exhibition) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	e.ID = ""
	e.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("failed to create exhibition: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid.Hex()
	}
	return nil
}

func (r *mongoExhibitionRepository) FindByID(ctx context.Context, id string) (*model.Exhibition, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", exhibitionserrors.ErrInvalidID, id)
	}

	var e model.Exhibition
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", exhibitionserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find exhibition: %w", err)
	}
	return &e, nil
}

// FindAll lists exhibitions by start date, soonest first. YYYY-MM-DD strings
// sort chronologically.
func (r *mongoExhibitionRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Exhibition, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(offset).
		SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query exhibitions: %w", err)
	}
	defer cursor.Close(ctx)

	exhibitions := []*model.Exhibition{}
	if err = cursor.All(ctx, &exhibitions); err != nil {
		return nil, fmt.Errorf("failed to decode exhibitions: %w", err)
	}
	return exhibitions, nil
}

func (r *mongoExhibitionRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count exhibitions: %w", err)
	}
	return count, nil
}

func (r *mongoExhibitionRepository) Update(ctx context.Context, id string, e *model.Exhibition, slotsDelta int) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", exhibitionserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{
		"$set": bson.M{
			"title":        e.Title,
			"description":  e.Description,
			"location":     e.Location,
			"start_date":   e.StartDate,
			"end_date":     e.EndDate,
			"ticket_price": e.TicketPrice,
			"image_url":    e.ImageURL,
			"total_slots":  e.TotalSlots,
			"status":       e.Status,
		},
	}
	if slotsDelta != 0 {
		update["$inc"] = bson.M{"available_slots": slotsDelta}
	}
	if slotsDelta < 0 {
		filter["available_slots"] = bson.M{"$gte": -slotsDelta}
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update exhibition: %w", err)
	}
	if result.MatchedCount == 0 {
		if slotsDelta < 0 {
			n, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": objectID})
			if countErr == nil && n > 0 {
				return fmt.Errorf("%w: %s", exhibitionserrors.ErrSlotsChanged, id)
			}
		}
		return fmt.Errorf("%w: %s", exhibitionserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoExhibitionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", exhibitionserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete exhibition: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", exhibitionserrors.ErrNotFound, id)
	}
	return nil
}
