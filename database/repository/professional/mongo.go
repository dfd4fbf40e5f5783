package professionalRepo

import (
	"context"
	"fmt"
	"time"

	"beautybook/database"
	"beautybook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

func NewMongoProfessionalRepo() *MongoProfessionalRepo {
	return &MongoProfessionalRepo{
		coll: database.DB().Collection("professionals"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// EnsureIndexes creates the unique email index.
func (r *MongoProfessionalRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create professional indexes: %w", err)
	}
	return nil
}

func (r *MongoProfessionalRepo) Create(prof *models.Professional) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, prof); err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

func (r *MongoProfessionalRepo) Update(prof *models.Professional) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	prof.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": prof.ID}, prof)
	if err != nil {
		return fmt.Errorf("failed to update professional %s: %w", prof.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("professional with id %s not found", prof.ID)
	}
	return nil
}

// UpdateFields applies a partial update without replacing the document.
func (r *MongoProfessionalRepo) UpdateFields(id string, fields map[string]interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update professional %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("professional with id %s not found", id)
	}
	return nil
}

func (r *MongoProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var prof models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&prof); err != nil {
		return nil, fmt.Errorf("professional with id %s not found: %w", id, err)
	}
	return &prof, nil
}

func (r *MongoProfessionalRepo) GetByEmail(email string) (*models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var prof models.Professional
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&prof)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professional by email: %w", err)
	}
	return &prof, nil
}

func (r *MongoProfessionalRepo) GetAll() ([]models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professionals: %w", err)
	}
	defer cursor.Close(ctx)

	professionals := []models.Professional{}
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, fmt.Errorf("failed to decode professionals: %w", err)
	}
	return professionals, nil
}

func (r *MongoProfessionalRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete professional %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("professional with id %s not found", id)
	}
	return nil
}
