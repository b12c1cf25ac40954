package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-treatments/internal/domain/treatments"
)

type treatmentRepo struct {
	mu   sync.RWMutex
	byID map[string]treatments.Treatment
}

func NewTreatmentRepo() treatments.Repository {
	return &treatmentRepo{
		byID: make(map[string]treatments.Treatment),
	}
}

func (r *treatmentRepo) Create(ctx context.Context, t treatments.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("treatment id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("treatment already exists")
	}

	r.byID[t.ID] = clone(t)
	return nil
}

func (r *treatmentRepo) Update(ctx context.Context, t treatments.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[t.ID]; !ok {
		return treatments.ErrNotFound
	}
	r.byID[t.ID] = clone(t)
	return nil
}

func (r *treatmentRepo) IncrementDoses(ctx context.Context, id string, at time.Time) (treatments.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return treatments.Treatment{}, treatments.ErrNotFound
	}
	if t.Status != treatments.StatusActive {
		return treatments.Treatment{}, treatments.ErrBadState
	}

	t.DosesGiven++
	t.UpdatedAt = at
	r.byID[id] = t
	return clone(t), nil
}

func (r *treatmentRepo) GetByID(ctx context.Context, id string) (treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return treatments.Treatment{}, treatments.ErrNotFound
	}
	return clone(t), nil
}

func (r *treatmentRepo) ListByPet(ctx context.Context, petID string) ([]treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]treatments.Treatment, 0)
	for _, t := range r.byID {
		if t.PetID == petID {
			out = append(out, clone(t))
		}
	}

	// más reciente primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out, nil
}

// clone evita que el caller comparta slices/punteros con el mapa interno.
func clone(t treatments.Treatment) treatments.Treatment {
	t.Periodicity.WeekDays = slices.Clone(t.Periodicity.WeekDays)
	t.Periodicity.MonthDays = slices.Clone(t.Periodicity.MonthDays)
	if t.Periodicity.CustomIntervalDays != nil {
		n := *t.Periodicity.CustomIntervalDays
		t.Periodicity.CustomIntervalDays = &n
	}
	return t
}
