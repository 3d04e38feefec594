package main

import (
	artworkshandler "gallery/internal/artworks/handler"
	artworksrepo "gallery/internal/artworks/repository"
	artworksservice "gallery/internal/artworks/service"
	artworksvalidator "gallery/internal/artworks/validator"
	authhandler "gallery/internal/auth/handler"
	authrepo "gallery/internal/auth/repository"
	authservice "gallery/internal/auth/service"
	authvalidator "gallery/internal/auth/validator"
	contactshandler "gallery/internal/contacts/handler"
	contactsrepo "gallery/internal/contacts/repository"
	contactsservice "gallery/internal/contacts/service"
	contactsvalidator "gallery/internal/contacts/validator"
	exhibitionshandler "gallery/internal/exhibitions/handler"
	exhibitionsrepo "gallery/internal/exhibitions/repository"
	exhibitionsservice "gallery/internal/exhibitions/service"
	exhibitionsvalidator "gallery/internal/exhibitions/validator"
	ticketshandler "gallery/internal/tickets/handler"
	ticketsrepo "gallery/internal/tickets/repository"
	ticketsservice "gallery/internal/tickets/service"
	ticketsvalidator "gallery/internal/tickets/validator"
	"gallery/internal/uploads"
	"gallery/pkg/app"
	"gallery/pkg/auth"
	"gallery/pkg/config"
	"gallery/pkg/contracts"
	"gallery/pkg/events"
	"gallery/pkg/kafka"
	kafka_config "gallery/pkg/kafka/config"
	kafkamw "gallery/pkg/kafka/middleware"
)

const ServiceName = "gallery"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	publisher, metrics := initEvents(cfg)
	handlers := initHandlers(cfg, publisher)

	cfg.Log.Info("Starting gallery service", "database", cfg.MongoDatabaseName, "base_url", cfg.Images.BaseURL())
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(metrics, handlers...)
	serverApp.Run()
}

// initEvents falls back to a no-op publisher when events are disabled or the
// Kafka configuration is unusable; the API never depends on the broker.
func initEvents(cfg *config.Config) (events.Publisher, *kafkamw.Metrics) {
	if !cfg.EventsEnabled {
		cfg.Log.Info("Event publishing disabled")
		return events.NoopPublisher{}, nil
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Error("Invalid Kafka configuration, event publishing disabled", "error", err)
		return events.NoopPublisher{}, nil
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.EventsTopic, cfg.EventsDLQ, cfg.Log.Logger)
	if err != nil {
		cfg.Log.Error("Failed to create Kafka producer, event publishing disabled", "error", err)
		return events.NoopPublisher{}, nil
	}

	metrics := kafkamw.NewMetrics()
	producer.Use(kafkamw.LoggingProducerMiddleware(cfg.Log.Logger))
	producer.Use(metrics.ProducerMiddleware())
	cfg.Client.SetProducer(producer)

	cfg.Log.Info("Event publishing enabled", "topic", cfg.EventsTopic)
	return events.NewKafkaPublisher(producer, ServiceName), metrics
}

func initHandlers(cfg *config.Config, publisher events.Publisher) []contracts.Handler {
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	images := uploads.NewStoreFromConfig(cfg)

	artworkService := artworksservice.NewArtworkService(
		artworksrepo.NewMongoArtworkRepository(cfg),
		artworksvalidator.NewArtworkValidator(cfg.Log),
		images,
		publisher,
		cfg,
	)
	exhibitionService := exhibitionsservice.NewExhibitionService(
		exhibitionsrepo.NewMongoExhibitionRepository(cfg),
		exhibitionsvalidator.NewExhibitionValidator(cfg.Log),
		images,
		publisher,
		cfg,
	)
	ticketService := ticketsservice.NewTicketService(
		ticketsrepo.NewMongoTicketRepository(cfg),
		ticketsvalidator.NewTicketValidator(cfg.MaxTicketsPerReservation, cfg.Log),
		publisher,
		cfg,
	)
	contactService := contactsservice.NewContactService(
		contactsrepo.NewMongoContactRepository(cfg),
		contactsvalidator.NewContactValidator(cfg.Log),
		publisher,
		cfg,
	)
	authService := authservice.NewAuthService(
		authrepo.NewMongoUserRepository(cfg),
		authvalidator.NewUserValidator(cfg.Log),
		tokens,
		publisher,
		cfg,
	)

	cfg.Log.Info("Gallery services initialized")
	return []contracts.Handler{
		artworkshandler.NewArtworkHandler(artworkService, tokens, cfg.Log),
		exhibitionshandler.NewExhibitionHandler(exhibitionService, tokens, cfg.Log),
		ticketshandler.NewTicketHandler(ticketService, tokens, cfg.Log),
		contactshandler.NewContactHandler(contactService, tokens, cfg.Log),
		authhandler.NewAuthHandler(authService, cfg.Log),
		uploads.NewStaticHandler(cfg.StaticDir, cfg.Images, cfg.Log),
	}
}
