package main

import (
	"context"
	"os"
	"time"

	authrepo "gallery/internal/auth/repository"
	authservice "gallery/internal/auth/service"
	authvalidator "gallery/internal/auth/validator"
	mongoMigration "gallery/internal/migrations/mongo"
	"gallery/pkg/auth"
	"gallery/pkg/config"
	"gallery/pkg/model"
)

const (
	JobName = "mongo-migration"

	EnvAdminName     = "ADMIN_NAME"
	EnvAdminEmail    = "ADMIN_EMAIL"
	EnvAdminPassword = "ADMIN_PASSWORD"

	DefaultAdminName = "Gallery Admin"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Mongo migration job")
	if err := mongoMigration.RunMigration(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.Log); err != nil {
		cfg.Log.Error("Migration failed", "error", err)
		cfg.GracefulShutdown()
		os.Exit(1)
	}

	seedAdmin(ctx, cfg)
	cfg.Log.Info("Migration completed successfully")
}

// seedAdmin creates the first admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set. Re-running with the same email is a no-op.
func seedAdmin(ctx context.Context, cfg *config.Config) {
	email, password := os.Getenv(EnvAdminEmail), os.Getenv(EnvAdminPassword)
	if email == "" || password == "" {
		cfg.Log.Info("Admin seeding skipped", "reason", EnvAdminEmail+" or "+EnvAdminPassword+" not set")
		return
	}
	name := os.Getenv(EnvAdminName)
	if name == "" {
		name = DefaultAdminName
	}

	svc := authservice.NewAuthService(
		authrepo.NewMongoUserRepository(cfg),
		authvalidator.NewUserValidator(cfg.Log),
		auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL),
		nil,
		cfg,
	)
	created, err := svc.EnsureAdmin(ctx, &model.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		cfg.Log.Error("Admin seeding failed", "error", err)
		return
	}
	if !created {
		cfg.Log.Info("Admin account already exists", "email", email)
	}
}
