package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// UserStore is the identity registry, keyed by email.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

// EnsureIndexes installs the unique email index so the registry can never
// hold two records for one identity.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user index: %w", err)
	}
	return nil
}

// FindByEmail returns the identity record, or ErrNotFound. An unknown email
// is a normal answer here, not a failure.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Upsert writes the record keyed by email, creating it when absent. Safe to
// retry; repeated calls converge on the same document.
func (s *UserStore) Upsert(ctx context.Context, user *models.User) error {
	update := bson.M{"$set": bson.M{"email": user.Email}}
	if user.DisplayName != "" {
		update["$set"].(bson.M)["displayName"] = user.DisplayName
	}
	if user.Role != "" {
		update["$set"].(bson.M)["role"] = user.Role
	}
	_, err := s.col.UpdateOne(ctx, bson.M{"email": user.Email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// SetRole sets the role on the record keyed by email, creating the record
// when it does not exist yet.
func (s *UserStore) SetRole(ctx context.Context, email, role string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"email": email, "role": role}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}
	return nil
}
