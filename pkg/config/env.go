package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"
	EnvEnvFile  = "ENV_FILE"

	EnvServerBaseURL  = "API_BASE_URL"
	EnvStaticDir      = "STATIC_DIR"
	EnvUploadDir      = "UPLOAD_DIR"
	EnvPlaceholderURL = "PLACEHOLDER_URL"
	EnvMaxImageSize   = "MAX_IMAGE_SIZE"

	EnvJWTSecret      = "JWT_SECRET_KEY"
	EnvTokenTTL       = "TOKEN_TTL"
	EnvAllowedOrigins = "ALLOWED_ORIGINS"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"
	EnvTrustedProxies    = "TRUSTED_PROXIES"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvEventsEnabled = "EVENTS_ENABLED"
	EnvEventsTopic   = "EVENTS_TOPIC"
	EnvEventsDLQ     = "EVENTS_DLQ_TOPIC"

	EnvMaxTicketsPerReservation = "MAX_TICKETS_PER_RESERVATION"
)
