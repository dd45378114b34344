package reportstore

import (
	"testing"
	"time"

	"github.com/dalemusser/strataqc/internal/domain/models"
	"github.com/dalemusser/strataqc/internal/testutil"
)

func TestStore_CreateAndListRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, sp := range []string{"All species", "Escherichia coli", "Salmonella enterica"} {
		snap, err := store.Create(ctx, models.ReportSnapshot{
			SnapshotID:    sp,
			Species:       sp,
			SpeciesSource: "provided",
			SampleIDs:     []string{"a", "b"},
			StoragePath:   "reports/2026/01/" + sp + ".html",
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if snap.ID.IsZero() {
			t.Error("Create() should assign an id")
		}
	}

	got, err := store.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListRecent() len = %d, want 2", len(got))
	}
	if got[0].Species != "Salmonella enterica" || got[1].Species != "Escherichia coli" {
		t.Errorf("ListRecent() order = %q, %q", got[0].Species, got[1].Species)
	}
	if len(got[0].SampleIDs) != 2 {
		t.Errorf("SampleIDs = %v", got[0].SampleIDs)
	}
}

func TestStore_ListRecent_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.ListRecent(ctx, 0)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ListRecent() = %v, want empty slice", got)
	}
}
