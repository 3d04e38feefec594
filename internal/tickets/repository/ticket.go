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

	exhibitionsrepo "gallery/internal/exhibitions/repository"
	ticketserrors "gallery/internal/tickets/errors"
	"gallery/pkg/config"
	mongotx "gallery/pkg/db/mongo"
	"gallery/pkg/model"
)

const (
	CollectionName = "Tickets"
)

type TicketRepository interface {
	FindExhibition(ctx context.Context, exhibitionID string) (*model.Exhibition, error)
	// TakeSlots atomically lowers the open slots of an exhibition by quantity,
	// failing with ErrInsufficientSlots when fewer remain.
	TakeSlots(ctx context.Context, exhibitionID string, quantity int) error
	Create(ctx context.Context, t *model.Ticket) error
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Ticket, error)
	Count(ctx context.Context) (int64, error)

	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoTicketRepository struct {
	cfg         *config.Config
	tickets     *mongo.Collection
	exhibitions *mongo.Collection
	txManager   mongotx.TransactionManager
}

func NewMongoTicketRepository(cfg *config.Config) TicketRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTicketRepository{
		cfg:         cfg,
		tickets:     db.Collection(CollectionName),
		exhibitions: db.Collection(exhibitionsrepo.CollectionName),
		txManager:   mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

func (r *mongoTicketRepository) FindExhibition(ctx context.Context, exhibitionID string) (*model.Exhibition, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(exhibitionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ticketserrors.ErrInvalidID, exhibitionID)
	}

	var e model.Exhibition
	if err := r.exhibitions.FindOne(ctx, bson.M{"_id": objectID}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ticketserrors.ErrExhibitionNotFound, exhibitionID)
		}
		return nil, fmt.Errorf("failed to find exhibition: %w", err)
	}
	return &e, nil
}

func (r *mongoTicketRepository) TakeSlots(ctx context.Context, exhibitionID string, quantity int) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(exhibitionID)
	if err != nil {
		return fmt.Errorf("%w: %s", ticketserrors.ErrInvalidID, exhibitionID)
	}

	filter := bson.M{
		"_id":             objectID,
		"available_slots": bson.M{"$gte": quantity},
	}
	update := bson.M{"$inc": bson.M{"available_slots": -quantity}}

	result, err := r.exhibitions.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve slots: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: exhibition %s, requested %d", ticketserrors.ErrInsufficientSlots, exhibitionID, quantity)
	}
	return nil
}

func (r *mongoTicketRepository) Create(ctx context.Context, t *model.Ticket) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	t.ID = ""
	t.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.tickets.InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid.Hex()
	}
	return nil
}

func (r *mongoTicketRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Ticket, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.tickets.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer cursor.Close(ctx)

	tickets := []*model.Ticket{}
	if err = cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}
	return tickets, nil
}

func (r *mongoTicketRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.tickets.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

func (r *mongoTicketRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
