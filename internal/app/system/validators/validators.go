// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// collection pairs a collection name with its optional JSON-Schema.
type collection struct {
	name   string
	schema bson.M
}

// collections lists what this app owns. Samples are written by the
// upstream pipeline, so no schema is attached to them.
func collections() []collection {
	return []collection{
		{name: "samples"},
		{name: "species", schema: speciesSchema()},
		{name: "report_snapshots", schema: reportSnapshotsSchema()},
	}
}

// EnsureAll creates missing collections and attaches validators. Servers
// without collMod support (some DocumentDB versions) are logged and skipped.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, n := range existing {
		have[n] = true
	}

	var problems []string
	for _, c := range collections() {
		if !have[c.name] {
			if err := createCollection(ctx, db, c.name); err != nil {
				problems = append(problems, c.name+": "+err.Error())
				continue
			}
		}
		if c.schema == nil {
			continue
		}
		if err := setValidator(ctx, db, c.name, c.schema); err != nil {
			if isUnsupported(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", c.name))
				continue
			}
			problems = append(problems, c.name+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// createCollection tolerates a concurrent creator.
func createCollection(ctx context.Context, db *mongo.Database, name string) error {
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			return nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func commandErrorMatches(err error, code int32, phrases ...string) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == code {
		return true
	}
	s := strings.ToLower(err.Error())
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func isNamespaceExistsErr(err error) bool {
	return commandErrorMatches(err, 48, "already exists", "namespace exists")
}

// isUnsupported covers CommandNotFound (59) and NotImplemented (115).
func isUnsupported(err error) bool {
	return commandErrorMatches(err, 59, "no such command") ||
		commandErrorMatches(err, 115, "not implemented", "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func speciesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"organism", "min_length", "max_length"},
			"properties": bson.M{
				"organism":   bson.M{"bsonType": "string", "minLength": 1},
				"min_length": bson.M{"bsonType": bson.A{"double", "int", "long"}, "minimum": 0},
				"max_length": bson.M{"bsonType": bson.A{"double", "int", "long"}, "minimum": 0},
			},
		},
	}
}

func reportSnapshotsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"snapshot_id", "species", "species_source", "storage_path", "created_at"},
			"properties": bson.M{
				"snapshot_id":     bson.M{"bsonType": "string", "minLength": 1},
				"species":         bson.M{"bsonType": "string"},
				"species_source":  bson.M{"enum": bson.A{"provided", "detected"}},
				"sample_ids":      bson.M{"bsonType": bson.A{"array", "null"}},
				"storage_path":    bson.M{"bsonType": "string", "minLength": 1},
				"panels_rendered": bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"created_at":      bson.M{"bsonType": "date"},
			},
		},
	}
}
