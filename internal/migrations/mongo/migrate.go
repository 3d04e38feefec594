package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	artworksrepo "gallery/internal/artworks/repository"
	authrepo "gallery/internal/auth/repository"
	contactsrepo "gallery/internal/contacts/repository"
	exhibitionsrepo "gallery/internal/exhibitions/repository"
	"gallery/internal/migrations/mongo/validators"
	ticketsrepo "gallery/internal/tickets/repository"
	"gallery/pkg/logger"
)

var (
	ArtworksIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	ExhibitionsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	TicketsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "exhibition_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	ContactMessagesIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	AccountIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
	}
)

type CollectionDef struct {
	Indexes   []mongo.IndexModel
	Validator bson.M
}

func Collections() map[string]CollectionDef {
	return map[string]CollectionDef{
		artworksrepo.CollectionName: {
			Indexes:   ArtworksIndexes,
			Validator: validators.ArtworkValidator,
		},
		exhibitionsrepo.CollectionName: {
			Indexes:   ExhibitionsIndexes,
			Validator: validators.ExhibitionValidator,
		},
		ticketsrepo.CollectionName: {
			Indexes:   TicketsIndexes,
			Validator: validators.TicketValidator,
		},
		contactsrepo.CollectionName: {
			Indexes:   ContactMessagesIndexes,
			Validator: validators.ContactMessageValidator,
		},
		authrepo.UsersCollection: {
			Indexes:   AccountIndexes,
			Validator: validators.UserValidator,
		},
		authrepo.AdminsCollection: {
			Indexes:   AccountIndexes,
			Validator: validators.UserValidator,
		},
	}
}

func RunMigration(ctx context.Context, client *mongo.Client, dbName string, log *logger.Logger) error {
	db := client.Database(dbName)
	log.Info("Running gallery Mongo migrations", "database", dbName)

	for name, def := range Collections() {
		if err := ensureCollection(ctx, db, name, def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
		if err := ensureIndexes(ctx, db, name, def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
		}
	}

	log.Info("All migrations applied successfully")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	log.Info("Collection exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
		return err
	}
	log.Info("Ensured indexes", "collection", name, "count", len(models))
	return nil
}
