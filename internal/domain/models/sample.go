package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sample is one pipeline sample record. Properties is schema-less; the
// pipeline adds sub-documents (sample_info, species_detection, mlst, ...)
// as analyses complete.
type Sample struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Properties bson.M             `bson:"properties,omitempty"`
}
