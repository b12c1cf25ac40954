package treatments

import (
	"time"

	"pet-treatments/internal/domain/dosage"
	"pet-treatments/internal/domain/periodicity"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Progression es la política de ajuste guardada con el tratamiento.
// El conteo de dosis no vive acá: sale de Treatment.DosesGiven.
type Progression struct {
	Direction     dosage.Direction
	Rate          string // "10%" o "5mg"
	IntervalDoses int
	TargetDosage  string // opcional
}

// Treatment une una medicación con una mascota: dosis base, cómo evoluciona
// y cada cuánto se administra.
type Treatment struct {
	ID          string
	PetID       string
	OwnerUserID string

	MedicationName string
	BaseDosage     string // "10mg", "2 comprimidos"

	Progression Progression
	Periodicity periodicity.Config

	DosesGiven int
	Status     Status

	Notes string

	StartedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DosageConfig arma la entrada del calculador con el conteo actual.
func (t Treatment) DosageConfig() dosage.ProgressionConfig {
	return dosage.ProgressionConfig{
		Direction:        t.Progression.Direction,
		Rate:             t.Progression.Rate,
		IntervalDoses:    t.Progression.IntervalDoses,
		TargetDosage:     t.Progression.TargetDosage,
		CurrentDoseCount: t.DosesGiven,
	}
}

// Summary es la vista calculada de un tratamiento.
type Summary struct {
	CurrentDosage    string
	TargetReached    bool
	PeriodicityLabel string
}
