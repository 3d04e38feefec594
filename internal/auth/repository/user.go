package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	autherrors "gallery/internal/auth/errors"
	"gallery/pkg/config"
	mongotx "gallery/pkg/db/mongo"
	"gallery/pkg/model"
)

const (
	UsersCollection  = "Users"
	AdminsCollection = "Admins"
)

// Role selects the collection an account lives in.
type Role int

const (
	RoleVisitor Role = iota
	RoleAdmin
)

type UserRepository interface {
	FindByEmail(ctx context.Context, role Role, email string) (*model.User, error)
	Create(ctx context.Context, role Role, u *model.User) error
}

type mongoUserRepository struct {
	cfg    *config.Config
	users  *mongo.Collection
	admins *mongo.Collection
}

func NewMongoUserRepository(cfg *config.Config) UserRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoUserRepository{
		cfg:    cfg,
		users:  db.Collection(UsersCollection),
		admins: db.Collection(AdminsCollection),
	}
}

func (r *mongoUserRepository) collection(role Role) *mongo.Collection {
	if role == RoleAdmin {
		return r.admins
	}
	return r.users
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, role Role, email string) (*model.User, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var u model.User
	err := r.collection(role).FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", autherrors.ErrUserNotFound, email)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

// Create relies on the unique email index to reject duplicates.
func (r *mongoUserRepository) Create(ctx context.Context, role Role, u *model.User) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	u.ID = ""
	u.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection(role).InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", autherrors.ErrEmailTaken, u.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid.Hex()
	}
	return nil
}
