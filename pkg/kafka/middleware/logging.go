package kafka_middleware

import (
	"context"
	"log/slog"
	"time"

	"gallery/pkg/kafka"
)

func LoggingProducerMiddleware(log *slog.Logger) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)

		attrs := []any{
			"topic", msg.Topic,
			"key", msg.Key,
			"event_id", msg.GetEventID(),
			"event_type", msg.GetEventType(),
			"correlation_id", msg.GetCorrelationID(),
			"duration", time.Since(start),
		}
		if err != nil {
			log.Error("failed to publish event", append(attrs, "error", err)...)
			return err
		}
		log.Debug("event published", attrs...)
		return nil
	}
}

func LoggingConsumerMiddleware(log *slog.Logger) kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)

		attrs := []any{
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"event_id", msg.GetEventID(),
			"event_type", msg.GetEventType(),
			"duration", time.Since(start),
		}
		if err != nil {
			log.Error("failed to process event", append(attrs, "error", err)...)
			return err
		}
		log.Debug("event processed", attrs...)
		return nil
	}
}
