package samplestore

import (
	"errors"
	"testing"

	"github.com/dalemusser/strataqc/internal/app/system/table"
	"github.com/dalemusser/strataqc/internal/domain/models"
	"github.com/dalemusser/strataqc/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStore_FilterAll_OrderAndProjection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	var ids []string
	for _, name := range []string{"S1", "S2", "S3"} {
		id, err := store.Insert(ctx, models.Sample{
			Name: name,
			Properties: bson.M{
				"species_detection": bson.M{"summary": bson.M{"detected_species": "Escherichia coli"}},
			},
		})
		if err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		ids = append(ids, id.Hex())
	}
	// extra top-level field that the projection must drop
	if _, err := db.Collection("samples").UpdateOne(ctx, bson.M{"name": "S1"}, bson.M{"$set": bson.M{"runs": []string{"r1"}}}); err != nil {
		t.Fatalf("UpdateOne() error = %v", err)
	}

	docs, err := store.FilterAll(ctx, []string{ids[2], ids[0], ids[2]}, "properties")
	if err != nil {
		t.Fatalf("FilterAll() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("FilterAll() returned %d docs, want 2", len(docs))
	}
	if name, _ := docs[0].Lookup("name"); name != "S3" {
		t.Errorf("docs[0] name = %v, want S3", name)
	}
	if id, _ := docs[1].Lookup("_id"); id != ids[0] {
		t.Errorf("docs[1] _id = %v, want %s", id, ids[0])
	}
	if _, ok := docs[1].Lookup("runs"); ok {
		t.Error("projection should drop runs")
	}

	tb := table.FromDocs(docs)
	if s, _ := tb.Cell(0, "properties.species_detection.summary.detected_species").String(); s != "Escherichia coli" {
		t.Errorf("flattened species = %q", s)
	}
}

func TestStore_FilterAll_StringIDsAndUnknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := db.Collection("samples").InsertOne(ctx, bson.M{"_id": "legacy-1", "name": "L1"}); err != nil {
		t.Fatalf("InsertOne() error = %v", err)
	}

	docs, err := store.FilterAll(ctx, []string{"legacy-1", "000000000000000000000000"})
	if err != nil {
		t.Fatalf("FilterAll() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("FilterAll() returned %d docs, want 1", len(docs))
	}
	if id, _ := docs[0].Lookup("_id"); id != "legacy-1" {
		t.Errorf("_id = %v, want legacy-1", id)
	}
}

func TestStore_FilterAll_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	docs, err := store.FilterAll(ctx, nil)
	if err != nil || docs != nil {
		t.Errorf("FilterAll(nil) = %v, %v; want nil, nil", docs, err)
	}
	if _, err := store.FilterAll(ctx, []string{""}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("FilterAll(\"\") error = %v, want ErrInvalidID", err)
	}
}
