package config

import (
	"fmt"
	"net/netip"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"gallery/pkg/client"
	"gallery/pkg/imageurl"
	"gallery/pkg/logger"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	// ServerBaseURL qualifies server-relative image paths. Read once at Load.
	ServerBaseURL  string
	StaticDir      string
	UploadDir      string
	PlaceholderURL string
	MaxImageSize   int64

	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string

	RateLimitRequests int
	RateLimitWindow   time.Duration
	// TrustedProxies lists the peers (IPs or CIDRs) whose forwarding headers
	// name the client. Empty means the TCP peer is always the client.
	TrustedProxies []string

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	EventsEnabled bool
	EventsTopic   string
	EventsDLQ     string

	MaxTicketsPerReservation int

	Log    *logger.Logger
	Client *client.Client
	Images *imageurl.Normalizer
}

func Load(serviceName string) *Config {
	envFile, envErr := loadEnvFile()

	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		ServerBaseURL:  getEnvStr(EnvServerBaseURL, DefaultServerBaseURL),
		StaticDir:      getEnvStr(EnvStaticDir, DefaultStaticDir),
		UploadDir:      getEnvStr(EnvUploadDir, DefaultUploadDir),
		PlaceholderURL: getEnvStr(EnvPlaceholderURL, DefaultPlaceholderURL),
		MaxImageSize:   int64(getEnvNum(EnvMaxImageSize, DefaultMaxImageSize)),

		JWTSecret:      getEnvStr(EnvJWTSecret, DefaultJWTSecret),
		TokenTTL:       getEnvDuration(EnvTokenTTL, DefaultTokenTTL),
		AllowedOrigins: getEnvList(EnvAllowedOrigins, DefaultAllowedOrigins),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		TrustedProxies:    getEnvList(EnvTrustedProxies, nil),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		EventsEnabled: getEnvBool(EnvEventsEnabled, DefaultEventsEnabled),
		EventsTopic:   getEnvStr(EnvEventsTopic, DefaultEventsTopic),
		EventsDLQ:     getEnvStr(EnvEventsDLQ, DefaultEventsDLQ),

		MaxTicketsPerReservation: getEnvNum(EnvMaxTicketsPerReservation, DefaultMaxTicketsPerReservation),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if envErr != nil {
		cfg.Log.Warn("Failed to load env file", "path", envFile, "error", envErr)
	}

	err := cfg.Validate()
	if err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.Images = imageurl.MustNew(cfg.ServerBaseURL,
		imageurl.WithFallback(cfg.PlaceholderURL),
		imageurl.WithLogger(cfg.Log.WithComponent("imageurl").Logger),
	)
	cfg.LogConfiguration()
	return cfg
}

// loadEnvFile reads a .env file when present; real environment variables win.
// A missing file is not an error.
func loadEnvFile() (string, error) {
	path := os.Getenv(EnvEnvFile)
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return path, nil
	}
	return path, godotenv.Load(path)
}

// ParseTrustedProxies turns IP and CIDR entries into prefixes. A bare IP
// becomes a single-address prefix.
func ParseTrustedProxies(entries []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}

	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}

	if _, err := imageurl.New(cfg.ServerBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("ServerBaseURL must be an absolute http(s) URL, got: %s", cfg.ServerBaseURL))
	}
	if cfg.StaticDir == "" {
		errors = append(errors, "StaticDir cannot be empty")
	}
	if cfg.UploadDir == "" {
		errors = append(errors, "UploadDir cannot be empty")
	}
	if cfg.PlaceholderURL == "" {
		errors = append(errors, "PlaceholderURL cannot be empty")
	}
	if cfg.MaxImageSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxImageSize must be positive, got: %d", cfg.MaxImageSize))
	}
	if len(cfg.JWTSecret) < 16 {
		errors = append(errors, "JWTSecret must be at least 16 characters")
	}
	if cfg.TokenTTL <= 0 {
		errors = append(errors, fmt.Sprintf("TokenTTL must be positive, got: %s", cfg.TokenTTL))
	}
	for _, origin := range cfg.AllowedOrigins {
		if u, err := url.Parse(origin); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("AllowedOrigins entries must be absolute origins, got: %s", origin))
		}
	}

	if cfg.MongoConnTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}
	if _, err := ParseTrustedProxies(cfg.TrustedProxies); err != nil {
		errors = append(errors, fmt.Sprintf("TrustedProxies: %s", err))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	} else if int64(cfg.MaxRequestSize) < cfg.MaxImageSize {
		errors = append(errors, fmt.Sprintf("MaxRequestSize (%d) must be >= MaxImageSize (%d)", cfg.MaxRequestSize, cfg.MaxImageSize))
	}

	if cfg.EventsEnabled && cfg.EventsTopic == "" {
		errors = append(errors, "EventsTopic cannot be empty when events are enabled")
	}
	if cfg.MaxTicketsPerReservation <= 0 {
		errors = append(errors, fmt.Sprintf("MaxTicketsPerReservation must be positive, got: %d", cfg.MaxTicketsPerReservation))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"server_base_url", cfg.ServerBaseURL,
		"static_dir", cfg.StaticDir,
		"upload_dir", cfg.UploadDir,
		"placeholder_url", cfg.PlaceholderURL,
		"max_image_size", cfg.MaxImageSize,
		"jwt_secret_set", cfg.JWTSecret != DefaultJWTSecret,
		"token_ttl", cfg.TokenTTL,
		"allowed_origins", cfg.AllowedOrigins,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"trusted_proxies", cfg.TrustedProxies,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"events_enabled", cfg.EventsEnabled,
		"events_topic", cfg.EventsTopic,
		"max_tickets_per_reservation", cfg.MaxTicketsPerReservation,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log, cfg.ShutdownTimeout)
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		limit = MinPaginationLimit
	} else if limit > DefaultPaginationLimit {
		limit = DefaultPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
