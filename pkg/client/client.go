package client

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"gallery/pkg/kafka"
	"gallery/pkg/logger"
)

// Client holds the long-lived connections a service opens at startup.
type Client struct {
	Mongo    *mongo.Client
	Producer *kafka.Producer
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetProducer(p *kafka.Producer) {
	c.Producer = p
}

// GracefulShutdown flushes the producer before dropping the database so
// events for already committed writes still go out.
func (c *Client) GracefulShutdown(log *logger.Logger, timeout time.Duration) {
	if c.Producer != nil {
		if err := c.Producer.Close(); err != nil {
			log.Error("Failed to close Kafka producer", "error", err)
		} else {
			log.Info("Kafka producer closed")
		}
	}

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := c.Mongo.Disconnect(ctx); err != nil {
			log.Error("Failed to disconnect from MongoDB", "error", err)
		} else {
			log.Info("Disconnected from MongoDB")
		}
	}
}
