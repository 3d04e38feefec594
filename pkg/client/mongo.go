package client

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gallery/pkg/logger"
)

var reMongoCredentials = regexp.MustCompile(`(mongodb(\+srv)?://)[^:/@]+:[^@]+@`)

func (c *Client) SetMongo(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(mongoURI).
		SetAppName("gallery").
		SetServerSelectionTimeout(mongoConnTimeout))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB",
			"error", err,
			"uri", reMongoCredentials.ReplaceAllString(mongoURI, "${1}***:***@"),
		)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("Failed to ping MongoDB", "error", err)
	}

	log.Info("Successfully connected to MongoDB")
	c.Mongo = client
}

// PingMongo reports whether the primary answers within ctx.
func (c *Client) PingMongo(ctx context.Context) error {
	if c.Mongo == nil {
		return mongo.ErrClientDisconnected
	}
	return c.Mongo.Ping(ctx, readpref.Primary())
}
