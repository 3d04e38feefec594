package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "gallery"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8000"
	DefaultLogLevel = "info"

	DefaultServerBaseURL  = "http://localhost:8000"
	DefaultStaticDir      = "static"
	DefaultUploadDir      = "static/uploads"
	DefaultPlaceholderURL = "/placeholder.svg"
	DefaultMaxImageSize   = 5_000_000

	DefaultJWTSecret = "gallery-dev-secret-change-me"
	DefaultTokenTTL  = 24 * time.Hour

	DefaultRateLimitRequests = 5
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	// Base64 inflates a 5 MB image to roughly 6.7 MB.
	DefaultMaxRequestSize = 8 * 1024 * 1024

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultEventsEnabled = false
	DefaultEventsTopic   = "gallery.events"
	DefaultEventsDLQ     = "gallery.events.dlq"

	DefaultMaxTicketsPerReservation = 10

	DefaultPaginationLimit = 100
	MinPaginationLimit     = 10
)

var (
	DefaultAllowedOrigins = []string{
		"http://localhost:5173",
		"http://localhost:8080",
		"http://127.0.0.1:5173",
	}

	AcceptedImageTypes = []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/webp",
	}
)
