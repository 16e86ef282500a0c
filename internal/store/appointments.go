package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// AppointmentStore holds booking records. With enforceUniqueSlot on, a
// unique index over (treatment, date, slot) turns a double booking into
// ErrSlotTaken at insert time; off, inserts are unconditional.
type AppointmentStore struct {
	col               *mongo.Collection
	enforceUniqueSlot bool
}

func NewAppointmentStore(db *mongo.Database, enforceUniqueSlot bool) *AppointmentStore {
	return &AppointmentStore{
		col:               db.Collection("appointments"),
		enforceUniqueSlot: enforceUniqueSlot,
	}
}

func (s *AppointmentStore) EnsureIndexes(ctx context.Context) error {
	if !s.enforceUniqueSlot {
		return nil
	}
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "date", Value: 1},
			{Key: "slot", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create slot index: %w", err)
	}
	return nil
}

// Insert creates a booking in the Pending state and returns its id.
func (s *AppointmentStore) Insert(ctx context.Context, appt *models.Appointment) (string, error) {
	appt.Date = NormalizeDate(appt.Date)
	appt.Status = models.StatusPending
	appt.Payment = nil

	res, err := s.col.InsertOne(ctx, appt)
	if err != nil {
		if s.enforceUniqueSlot && mongo.IsDuplicateKeyError(err) {
			return "", ErrSlotTaken
		}
		return "", fmt.Errorf("failed to insert appointment: %w", err)
	}
	return objectIDHex(res.InsertedID), nil
}

// FindByEmailAndDate returns every booking the patient holds on the given
// calendar date. The date is normalized before comparison so time-of-day
// and format differences don't hide matches.
func (s *AppointmentStore) FindByEmailAndDate(ctx context.Context, email, date string) ([]models.Appointment, error) {
	filter := bson.M{"email": email, "date": NormalizeDate(date)}
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appts := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// FindByID returns one booking, ErrInvalidID for a malformed identifier,
// ErrNotFound for a miss.
func (s *AppointmentStore) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var appt models.Appointment
	err = s.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find appointment: %w", err)
	}
	return &appt, nil
}

// AttachPayment records the payment outcome and moves the booking to Paid.
// The update matches only while payment is absent, so a second attach can
// never overwrite the recorded outcome: it returns ErrAlreadyPaid instead.
func (s *AppointmentStore) AttachPayment(ctx context.Context, id string, payment *models.Payment) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID, "payment": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{
		"payment": payment,
		"status":  models.StatusPaid,
	}}
	res, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to attach payment: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either the booking doesn't exist or it is already paid.
		n, err := s.col.CountDocuments(ctx, bson.M{"_id": objectID})
		if err != nil {
			return fmt.Errorf("failed to attach payment: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return ErrAlreadyPaid
	}
	return nil
}

func objectIDHex(insertedID interface{}) string {
	if oid, ok := insertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
