package treatments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-treatments/internal/domain/dosage"
	"pet-treatments/internal/domain/periodicity"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrBadState     = errors.New("invalid state")
)

// MaxPreviewCount limita cuántas dosis futuras se proyectan por pedido.
const MaxPreviewCount = 100

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	MedicationName string
	BaseDosage     string
	Progression    Progression
	Periodicity    periodicity.Config
	DosesGiven     int // para tratamientos que ya venían en curso
	Notes          string
	StartedAt      time.Time // zero => ahora
}

// DoseRecord es el resultado de registrar una administración.
type DoseRecord struct {
	DoseNumber int
	Dosage     string
	Treatment  Treatment
}

func (s *Service) Create(ctx context.Context, ownerUserID, petID string, in CreateInput) (Treatment, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	petID = strings.TrimSpace(petID)
	if ownerUserID == "" || petID == "" {
		return Treatment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.MedicationName) == "" {
		return Treatment{}, fmt.Errorf("%w: medication_name required", ErrInvalidInput)
	}
	if in.DosesGiven < 0 {
		return Treatment{}, fmt.Errorf("%w: doses_given must be >= 0", ErrInvalidInput)
	}

	base := strings.TrimSpace(in.BaseDosage)
	prog := Progression{
		Direction:     in.Progression.Direction,
		Rate:          strings.TrimSpace(in.Progression.Rate),
		IntervalDoses: in.Progression.IntervalDoses,
		TargetDosage:  strings.TrimSpace(in.Progression.TargetDosage),
	}
	if prog.Direction == "" {
		prog.Direction = dosage.DirectionStable
	}

	// La dosis base siempre tiene que ser parseable, aunque sea estable:
	// el resto de la app la muestra y la compara.
	if _, err := dosage.Parse(base); err != nil {
		return Treatment{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := dosage.ValidateConfig(base, dosage.ProgressionConfig{
		Direction:     prog.Direction,
		Rate:          prog.Rate,
		IntervalDoses: prog.IntervalDoses,
		TargetDosage:  prog.TargetDosage,
	}); err != nil {
		return Treatment{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if in.Periodicity.Kind == "" {
		in.Periodicity.Kind = periodicity.KindDaily
	}
	if err := periodicity.Validate(in.Periodicity); err != nil {
		return Treatment{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	now := s.now()
	started := in.StartedAt
	if started.IsZero() {
		started = now
	}

	t := Treatment{
		ID:             uuid.NewString(),
		PetID:          petID,
		OwnerUserID:    ownerUserID,
		MedicationName: strings.TrimSpace(in.MedicationName),
		BaseDosage:     base,
		Progression:    prog,
		Periodicity:    in.Periodicity,
		DosesGiven:     in.DosesGiven,
		Status:         StatusActive,
		Notes:          strings.TrimSpace(in.Notes),
		StartedAt:      started,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Treatment{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Treatment, error) {
	return s.repo.ListByPet(ctx, strings.TrimSpace(petID))
}

// RecordDose registra una administración y devuelve la dosis que correspondía.
// El conteo lo incrementa el repo; la dosis sale del conteo previo.
func (s *Service) RecordDose(ctx context.Context, id string) (DoseRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DoseRecord{}, ErrInvalidInput
	}

	t, err := s.repo.IncrementDoses(ctx, id, s.now())
	if err != nil {
		return DoseRecord{}, err
	}

	cfg := t.DosageConfig()
	cfg.CurrentDoseCount = t.DosesGiven - 1
	applied, err := dosage.Compute(t.BaseDosage, cfg)
	if err != nil {
		// la config se valida en Create; esto solo pasa con datos viejos
		return DoseRecord{}, err
	}

	return DoseRecord{
		DoseNumber: t.DosesGiven,
		Dosage:     applied,
		Treatment:  t,
	}, nil
}

// Finish cierra el tratamiento; no se registran más dosis.
func (s *Service) Finish(ctx context.Context, id string) (Treatment, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return Treatment{}, err
	}
	if t.Status == StatusFinished {
		return Treatment{}, ErrBadState
	}

	t.Status = StatusFinished
	t.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, t); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

func (s *Service) Summary(ctx context.Context, id string) (Treatment, Summary, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return Treatment{}, Summary{}, err
	}
	sum, err := Summarize(t)
	if err != nil {
		return Treatment{}, Summary{}, err
	}
	return t, sum, nil
}

// Preview proyecta las próximas dosis desde el conteo actual.
func (s *Service) Preview(ctx context.Context, id string, count int) ([]dosage.PreviewEntry, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if count > MaxPreviewCount {
		count = MaxPreviewCount
	}
	return dosage.Preview(t.BaseDosage, t.DosageConfig(), count)
}

// Summarize calcula dosis vigente, objetivo alcanzado y texto de periodicidad.
func Summarize(t Treatment) (Summary, error) {
	cfg := t.DosageConfig()

	current, err := dosage.Compute(t.BaseDosage, cfg)
	if err != nil {
		return Summary{}, err
	}
	reached, err := dosage.HasReachedTarget(t.BaseDosage, cfg)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		CurrentDosage:    current,
		TargetReached:    reached,
		PeriodicityLabel: periodicity.Describe(t.Periodicity),
	}, nil
}
