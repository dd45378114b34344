// internal/app/store/species/speciesstore.go
package speciesstore

import (
	"context"
	"errors"

	"github.com/dalemusser/strataqc/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no species document matches.
var ErrNotFound = errors.New("species not found")

// Store provides access to the species collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new species store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("species")}
}

// GetByOrganism returns the QC bounds document for an organism.
func (s *Store) GetByOrganism(ctx context.Context, organism string) (models.SpeciesQC, error) {
	var sp models.SpeciesQC
	err := s.c.FindOne(ctx, bson.M{"organism": organism}).Decode(&sp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.SpeciesQC{}, ErrNotFound
	}
	if err != nil {
		return models.SpeciesQC{}, err
	}
	return sp, nil
}

// QCValues returns the length bounds for organism, falling back to the
// "default" organism and then to zero bounds.
func (s *Store) QCValues(ctx context.Context, organism string) (models.SpeciesQC, error) {
	sp, err := s.GetByOrganism(ctx, organism)
	if err == nil {
		return sp, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.SpeciesQC{}, err
	}
	sp, err = s.GetByOrganism(ctx, models.DefaultOrganism)
	if errors.Is(err, ErrNotFound) {
		return models.SpeciesQC{Organism: organism}, nil
	}
	return sp, err
}

// Upsert creates or updates the bounds for sp.Organism.
func (s *Store) Upsert(ctx context.Context, sp models.SpeciesQC) error {
	update := bson.M{
		"$set": bson.M{
			"min_length": sp.MinLength,
			"max_length": sp.MaxLength,
		},
		"$setOnInsert": bson.M{
			"_id":      primitive.NewObjectID(),
			"organism": sp.Organism,
		},
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"organism": sp.Organism}, update, options.Update().SetUpsert(true))
	return err
}
