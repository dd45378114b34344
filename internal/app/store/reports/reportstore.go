// internal/app/store/reports/reportstore.go
package reportstore

import (
	"context"
	"time"

	"github.com/dalemusser/strataqc/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultListLimit caps ListRecent when the caller passes a non-positive limit.
const DefaultListLimit = 50

// Store provides access to the report_snapshots collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new report snapshot store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("report_snapshots")}
}

// Create inserts a snapshot, filling in the id and creation time.
func (s *Store) Create(ctx context.Context, snap models.ReportSnapshot) (models.ReportSnapshot, error) {
	snap.ID = primitive.NewObjectID()
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, snap); err != nil {
		return models.ReportSnapshot{}, err
	}
	return snap, nil
}

// ListRecent returns the newest snapshots first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]models.ReportSnapshot, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	snaps := []models.ReportSnapshot{}
	if err := cur.All(ctx, &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}
