package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// DoctorStore holds the doctor listings. Records are write-once.
type DoctorStore struct {
	col *mongo.Collection
}

func NewDoctorStore(db *mongo.Database) *DoctorStore {
	return &DoctorStore{col: db.Collection("doctors")}
}

func (s *DoctorStore) List(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (s *DoctorStore) Insert(ctx context.Context, doctor *models.Doctor) (string, error) {
	res, err := s.col.InsertOne(ctx, doctor)
	if err != nil {
		return "", fmt.Errorf("failed to insert doctor: %w", err)
	}
	return objectIDHex(res.InsertedID), nil
}
