package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-treatments/internal/domain/dosage"
	"pet-treatments/internal/domain/periodicity"
	"pet-treatments/internal/domain/treatments"
)

type TreatmentsRepo struct {
	db *sql.DB
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

const treatmentColumns = `
	id, pet_id, owner_user_id,
	medication_name, base_dosage,
	direction, rate, interval_doses, target_dosage,
	periodicity_kind, custom_interval_days, week_days, month_days,
	doses_given, status, notes,
	started_at, created_at, updated_at
`

func (r *TreatmentsRepo) Create(ctx context.Context, t treatments.Treatment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_treatments (`+treatmentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	`,
		t.ID,
		t.PetID,
		t.OwnerUserID,
		t.MedicationName,
		t.BaseDosage,
		string(t.Progression.Direction),
		t.Progression.Rate,
		t.Progression.IntervalDoses,
		t.Progression.TargetDosage,
		string(t.Periodicity.Kind),
		toNullInt(t.Periodicity.CustomIntervalDays),
		periodicity.EncodeDays(t.Periodicity.WeekDays),
		periodicity.EncodeDays(t.Periodicity.MonthDays),
		t.DosesGiven,
		string(t.Status),
		t.Notes,
		t.StartedAt,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *TreatmentsRepo) Update(ctx context.Context, t treatments.Treatment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pet_treatments
		SET
			medication_name = $2,
			base_dosage = $3,
			direction = $4,
			rate = $5,
			interval_doses = $6,
			target_dosage = $7,
			periodicity_kind = $8,
			custom_interval_days = $9,
			week_days = $10,
			month_days = $11,
			doses_given = $12,
			status = $13,
			notes = $14,
			updated_at = $15
		WHERE id = $1
	`,
		t.ID,
		t.MedicationName,
		t.BaseDosage,
		string(t.Progression.Direction),
		t.Progression.Rate,
		t.Progression.IntervalDoses,
		t.Progression.TargetDosage,
		string(t.Periodicity.Kind),
		toNullInt(t.Periodicity.CustomIntervalDays),
		periodicity.EncodeDays(t.Periodicity.WeekDays),
		periodicity.EncodeDays(t.Periodicity.MonthDays),
		t.DosesGiven,
		string(t.Status),
		t.Notes,
		t.UpdatedAt,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return treatments.ErrNotFound
	}
	return nil
}

// IncrementDoses suma la dosis en la misma sentencia para no perder
// administraciones concurrentes.
func (r *TreatmentsRepo) IncrementDoses(ctx context.Context, id string, at time.Time) (treatments.Treatment, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE pet_treatments
		SET doses_given = doses_given + 1, updated_at = $2
		WHERE id = $1 AND status = $3
		RETURNING `+treatmentColumns,
		id, at, string(treatments.StatusActive),
	)

	t, err := scanTreatment(row)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return treatments.Treatment{}, err
	}

	// sin filas: no existe o ya no está activo
	if _, err := r.GetByID(ctx, id); err != nil {
		return treatments.Treatment{}, err
	}
	return treatments.Treatment{}, treatments.ErrBadState
}

func (r *TreatmentsRepo) GetByID(ctx context.Context, id string) (treatments.Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return treatments.Treatment{}, treatments.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+treatmentColumns+` FROM pet_treatments WHERE id = $1`, id)

	t, err := scanTreatment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return treatments.Treatment{}, treatments.ErrNotFound
		}
		return treatments.Treatment{}, err
	}
	return t, nil
}

func (r *TreatmentsRepo) ListByPet(ctx context.Context, petID string) ([]treatments.Treatment, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+treatmentColumns+`
		FROM pet_treatments
		WHERE pet_id = $1
		ORDER BY started_at DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]treatments.Treatment, 0)
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTreatment(s rowScanner) (treatments.Treatment, error) {
	var (
		t                   treatments.Treatment
		direction, kind     string
		status              string
		customDays          sql.NullInt64
		weekDays, monthDays string
	)

	if err := s.Scan(
		&t.ID,
		&t.PetID,
		&t.OwnerUserID,
		&t.MedicationName,
		&t.BaseDosage,
		&direction,
		&t.Progression.Rate,
		&t.Progression.IntervalDoses,
		&t.Progression.TargetDosage,
		&kind,
		&customDays,
		&weekDays,
		&monthDays,
		&t.DosesGiven,
		&status,
		&t.Notes,
		&t.StartedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return treatments.Treatment{}, err
	}

	t.Progression.Direction = dosage.Direction(direction)
	t.Periodicity.Kind = periodicity.Kind(kind)
	t.Status = treatments.Status(status)

	if customDays.Valid {
		n := int(customDays.Int64)
		t.Periodicity.CustomIntervalDays = &n
	}

	var err error
	if t.Periodicity.WeekDays, err = periodicity.DecodeDays(weekDays); err != nil {
		return treatments.Treatment{}, fmt.Errorf("treatment %s week_days: %w", t.ID, err)
	}
	if t.Periodicity.MonthDays, err = periodicity.DecodeDays(monthDays); err != nil {
		return treatments.Treatment{}, fmt.Errorf("treatment %s month_days: %w", t.ID, err)
	}

	return t, nil
}

func toNullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}
