package validators_test

import (
	"testing"
	"time"

	"github.com/dalemusser/strataqc/internal/app/system/validators"
	"github.com/dalemusser/strataqc/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll() error = %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames() error = %v", err)
	}
	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}
	for _, name := range []string{"samples", "species", "report_snapshots"} {
		if !have[name] {
			t.Errorf("collection %s should exist after EnsureAll", name)
		}
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll() error = %v", err)
	}
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll() error = %v", err)
	}
}

func TestEnsureAll_RejectsInvalidDocuments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll() error = %v", err)
	}

	if _, err := db.Collection("species").InsertOne(ctx, bson.M{"organism": "", "min_length": 1, "max_length": 2}); err == nil {
		t.Error("species with empty organism should be rejected")
	}
	if _, err := db.Collection("report_snapshots").InsertOne(ctx, bson.M{
		"snapshot_id":    "x",
		"species":        "E. coli",
		"species_source": "guessed",
		"storage_path":   "reports/x.html",
		"created_at":     time.Now(),
	}); err == nil {
		t.Error("snapshot with unknown species_source should be rejected")
	}
	if _, err := db.Collection("species").InsertOne(ctx, bson.M{"organism": "Escherichia coli", "min_length": 4.5e6, "max_length": 5.5e6}); err != nil {
		t.Errorf("valid species insert error = %v", err)
	}
}
