package speciesstore

import (
	"errors"
	"testing"

	"github.com/dalemusser/strataqc/internal/domain/models"
	"github.com/dalemusser/strataqc/internal/testutil"
)

func TestStore_GetByOrganism_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByOrganism(ctx, "Nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByOrganism() error = %v, want ErrNotFound", err)
	}
}

func TestStore_UpsertAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Upsert(ctx, models.SpeciesQC{Organism: "Escherichia coli", MinLength: 4500000, MaxLength: 5800000}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Upsert(ctx, models.SpeciesQC{Organism: "Escherichia coli", MinLength: 4600000, MaxLength: 5800000}); err != nil {
		t.Fatalf("Upsert() update error = %v", err)
	}

	sp, err := store.GetByOrganism(ctx, "Escherichia coli")
	if err != nil {
		t.Fatalf("GetByOrganism() error = %v", err)
	}
	if sp.MinLength != 4600000 {
		t.Errorf("MinLength = %v, want 4600000", sp.MinLength)
	}
	if n, _ := db.Collection("species").CountDocuments(ctx, map[string]any{}); n != 1 {
		t.Errorf("document count = %d, want 1", n)
	}
}

func TestStore_QCValues_Fallback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	t.Run("zero bounds without default", func(t *testing.T) {
		sp, err := store.QCValues(ctx, "Salmonella enterica")
		if err != nil {
			t.Fatalf("QCValues() error = %v", err)
		}
		if sp.MinLength != 0 || sp.MaxLength != 0 {
			t.Errorf("bounds = %v/%v, want 0/0", sp.MinLength, sp.MaxLength)
		}
	})

	if err := store.Upsert(ctx, models.SpeciesQC{Organism: models.DefaultOrganism, MinLength: 1000000, MaxLength: 7000000}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	t.Run("default document", func(t *testing.T) {
		sp, err := store.QCValues(ctx, "Salmonella enterica")
		if err != nil {
			t.Fatalf("QCValues() error = %v", err)
		}
		if sp.MaxLength != 7000000 {
			t.Errorf("MaxLength = %v, want 7000000", sp.MaxLength)
		}
	})
}
