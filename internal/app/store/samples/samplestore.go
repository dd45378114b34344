// internal/app/store/samples/samplestore.go
package samplestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/strataqc/internal/app/system/table"
	"github.com/dalemusser/strataqc/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID is returned when a sample id is empty.
var ErrInvalidID = errors.New("invalid sample id")

// Store provides read access to the samples collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new sample store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("samples")}
}

// Insert adds a sample and returns its id. Used by seeding and tests; the
// pipeline owns the collection in production.
func (s *Store) Insert(ctx context.Context, sample models.Sample) (primitive.ObjectID, error) {
	if sample.ID.IsZero() {
		sample.ID = primitive.NewObjectID()
	}
	if _, err := s.c.InsertOne(ctx, sample); err != nil {
		return primitive.NilObjectID, err
	}
	return sample.ID, nil
}

// FilterAll returns the samples with the given ids as ordered documents,
// in the order the ids were given. Unknown ids are skipped and duplicates
// are returned once. Ids that parse as ObjectID hex match ObjectID keys;
// anything else matches string keys.
//
// projection limits the returned top-level fields; _id and name are always
// included. With no projection the whole record is returned.
func (s *Store) FilterAll(ctx context.Context, ids []string, projection ...string) ([]table.Doc, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make(bson.A, 0, len(ids))
	order := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, ErrInvalidID
		}
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			keys = append(keys, oid)
			id = oid.Hex()
		} else {
			keys = append(keys, id)
		}
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}

	opts := options.Find()
	if len(projection) > 0 {
		proj := bson.D{{Key: "_id", Value: 1}, {Key: "name", Value: 1}}
		for _, p := range projection {
			if p == "_id" || p == "name" {
				continue
			}
			proj = append(proj, bson.E{Key: p, Value: 1})
		}
		opts.SetProjection(proj)
	}

	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": keys}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find samples: %w", err)
	}
	defer cur.Close(ctx)

	byID := make(map[string]table.Doc, len(order))
	for cur.Next(ctx) {
		var raw bson.D
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode sample: %w", err)
		}
		doc := toDoc(raw)
		id, _ := doc.Lookup("_id")
		byID[fmt.Sprint(id)] = doc
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}

	out := make([]table.Doc, 0, len(byID))
	for _, id := range order {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// toDoc converts decoded BSON into the driver-independent table.Doc shape.
func toDoc(d bson.D) table.Doc {
	out := make(table.Doc, len(d))
	for i, e := range d {
		out[i] = table.Field{Key: e.Key, Value: convert(e.Value)}
	}
	return out
}

func convert(v any) any {
	switch x := v.(type) {
	case bson.D:
		return toDoc(x)
	case bson.M:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = convert(e)
		}
		return m
	case bson.A:
		a := make([]any, len(x))
		for i, e := range x {
			a[i] = convert(e)
		}
		return a
	case primitive.ObjectID:
		return x.Hex()
	case primitive.DateTime:
		return x.Time().UTC().Format(time.RFC3339)
	case primitive.Decimal128:
		return x.String()
	case primitive.Null, primitive.Undefined:
		return nil
	}
	return v
}
