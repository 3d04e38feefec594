package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"gallery/internal/notifier"
	"gallery/pkg/config"
	"gallery/pkg/kafka"
	kafka_config "gallery/pkg/kafka/config"
	kafkamw "gallery/pkg/kafka/middleware"
)

const ServiceName = "notifier"

func main() {
	cfg := config.Load(ServiceName)

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	n := notifier.New(cfg.Log)
	consumer, err := kafka.NewConsumer(kafkaCfg, cfg.EventsTopic, cfg.EventsDLQ, n.Handle, cfg.Log.Logger)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	metrics := kafkamw.NewMetrics()
	consumer.Use(kafkamw.LoggingConsumerMiddleware(cfg.Log.Logger))
	consumer.Use(metrics.ConsumerMiddleware())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Notifier started", "topic", cfg.EventsTopic, "group", kafkaCfg.ConsumerGroupID)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	s := metrics.Snapshot()
	cfg.Log.Info("Notifier stopped", "consumed", s.Consumed, "failed", s.ConsumeFailed)
}
