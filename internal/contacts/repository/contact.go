package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	contactserrors "gallery/internal/contacts/errors"
	"gallery/pkg/config"
	mongotx "gallery/pkg/db/mongo"
	"gallery/pkg/model"
)

const (
	CollectionName = "Contact_messages"
)

type ContactRepository interface {
	Create(ctx context.Context, m *model.ContactMessage) error
	FindAll(ctx context.Context, status string, limit int, offset int64) ([]*model.ContactMessage, error)
	Count(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoContactRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoContactRepository(cfg *config.Config) ContactRepository {
	return &mongoContactRepository{
		cfg:        cfg,
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName),
	}
}

func (r *mongoContactRepository) Create(ctx context.Context, m *model.ContactMessage) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	m.ID = ""
	m.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		m.ID = oid.Hex()
	}
	return nil
}

func statusFilter(status string) bson.M {
	if status == "" {
		return bson.M{}
	}
	return bson.M{"status": status}
}

// FindAll lists messages newest first, optionally only those with status.
func (r *mongoContactRepository) FindAll(ctx context.Context, status string, limit int, offset int64) ([]*model.ContactMessage, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, statusFilter(status), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []*model.ContactMessage{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	return messages, nil
}

func (r *mongoContactRepository) Count(ctx context.Context, status string) (int64, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, statusFilter(status))
	if err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}

func (r *mongoContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", contactserrors.ErrInvalidID, id)
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update contact message: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", contactserrors.ErrNotFound, id)
	}
	return nil
}
