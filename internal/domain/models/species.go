package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultOrganism is the species document used when no organism-specific
// bounds exist.
const DefaultOrganism = "default"

// SpeciesQC holds the expected genome length bounds for an organism.
type SpeciesQC struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Organism  string             `bson:"organism"`
	MinLength float64            `bson:"min_length"`
	MaxLength float64            `bson:"max_length"`
}
