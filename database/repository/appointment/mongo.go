package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"beautybook/database"
	"beautybook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a repository backed by the "appointments"
// collection.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create assigns id and creation timestamp, re-checks the open-interval
// overlap against existing rows for the professional and inserts the
// appointment. Conflicting inserts are rejected with ErrSlotConflict.
func (r *MongoAppointmentRepo) Create(draft models.AppointmentDraft) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	conflictFilter := bson.M{
		"professionalId": draft.ProfessionalID,
		"startTime":      bson.M{"$lt": draft.End},
		"endTime":        bson.M{"$gt": draft.Start},
	}
	n, err := r.coll.CountDocuments(ctx, conflictFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to check for conflicting appointments: %w", err)
	}
	if n > 0 {
		return nil, ErrSlotConflict
	}

	appt := models.Appointment{
		ID:             uuid.New().String(),
		ProfessionalID: draft.ProfessionalID,
		ServiceID:      draft.ServiceID,
		ClientName:     draft.ClientName,
		ClientContact:  draft.ClientContact,
		Start:          draft.Start,
		End:            draft.End,
		CreatedAt:      time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appt, nil
}

// GetByProfessional returns all appointments for a professional, oldest first.
func (r *MongoAppointmentRepo) GetByProfessional(professionalID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"professionalId": professionalID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for professional %s: %w", professionalID, err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

// GetStartingBetween returns appointments across professionals whose start
// falls in [from, to). Used by the reminder worker.
func (r *MongoAppointmentRepo) GetStartingBetween(from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"startTime": bson.M{"$gte": from, "$lt": to}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments between %s and %s: %w", from, to, err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

// GetByID fetches one appointment.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("appointment with id %s not found: %w", id, err)
	}
	return &appt, nil
}
