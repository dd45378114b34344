package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportSnapshot records one exported QC report.
type ReportSnapshot struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"   json:"-"`
	SnapshotID     string             `bson:"snapshot_id"     json:"snapshot_id"`
	Species        string             `bson:"species"         json:"species"`
	SpeciesSource  string             `bson:"species_source"  json:"species_source"`
	SampleIDs      []string           `bson:"sample_ids"      json:"sample_ids"`
	StoragePath    string             `bson:"storage_path"    json:"storage_path"`
	URL            string             `bson:"url,omitempty"   json:"url,omitempty"`
	PanelsRendered int                `bson:"panels_rendered" json:"panels_rendered"`
	CreatedAt      time.Time          `bson:"created_at"      json:"created_at"`
}
