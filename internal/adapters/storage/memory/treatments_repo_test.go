package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-treatments/internal/domain/periodicity"
	"pet-treatments/internal/domain/treatments"
)

func TestTreatmentRepo_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewTreatmentRepo()

	tr := treatments.Treatment{
		ID:          "t-1",
		PetID:       "pet-1",
		BaseDosage:  "10mg",
		Periodicity: periodicity.Config{Kind: periodicity.KindWeekly, WeekDays: []int{1, 3}},
	}
	if err := repo.Create(ctx, tr); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, tr); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}

	// mutar el valor original no afecta lo guardado
	tr.Periodicity.WeekDays[0] = 6

	got, err := repo.GetByID(ctx, "t-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Periodicity.WeekDays[0] != 1 {
		t.Fatalf("stored treatment was aliased: %v", got.Periodicity.WeekDays)
	}

	got.DosesGiven = 4
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := repo.GetByID(ctx, "t-1")
	if again.DosesGiven != 4 {
		t.Fatalf("expected doses_given 4, got %d", again.DosesGiven)
	}
}

func TestTreatmentRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewTreatmentRepo()

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, treatments.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, treatments.Treatment{ID: "missing"}); !errors.Is(err, treatments.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTreatmentRepo_ListByPet_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewTreatmentRepo()

	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	_ = repo.Create(ctx, treatments.Treatment{ID: "old", PetID: "pet-1", StartedAt: base})
	_ = repo.Create(ctx, treatments.Treatment{ID: "new", PetID: "pet-1", StartedAt: base.Add(48 * time.Hour)})
	_ = repo.Create(ctx, treatments.Treatment{ID: "other", PetID: "pet-2", StartedAt: base})

	items, err := repo.ListByPet(ctx, "pet-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != "new" || items[1].ID != "old" {
		t.Fatalf("unexpected list: %+v", items)
	}
}

func TestTreatmentRepo_IncrementDoses(t *testing.T) {
	ctx := context.Background()
	repo := NewTreatmentRepo()

	if err := repo.Create(ctx, treatments.Treatment{ID: "t-1", PetID: "pet-1", Status: treatments.StatusActive}); err != nil {
		t.Fatalf("create: %v", err)
	}

	const n = 100
	at := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.IncrementDoses(ctx, "t-1", at); err != nil {
				t.Errorf("increment: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := repo.GetByID(ctx, "t-1")
	if got.DosesGiven != n || !got.UpdatedAt.Equal(at) {
		t.Fatalf("expected %d doses at %v, got %d at %v", n, at, got.DosesGiven, got.UpdatedAt)
	}

	if _, err := repo.IncrementDoses(ctx, "missing", at); !errors.Is(err, treatments.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got.Status = treatments.StatusFinished
	_ = repo.Update(ctx, got)
	if _, err := repo.IncrementDoses(ctx, "t-1", at); !errors.Is(err, treatments.ErrBadState) {
		t.Fatalf("expected ErrBadState, got %v", err)
	}
}
