package treatments

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, t Treatment) error
	Update(ctx context.Context, t Treatment) error
	GetByID(ctx context.Context, id string) (Treatment, error)
	ListByPet(ctx context.Context, petID string) ([]Treatment, error)

	// IncrementDoses suma una dosis de forma atómica y devuelve el tratamiento
	// ya actualizado. ErrNotFound si no existe, ErrBadState si no está activo.
	IncrementDoses(ctx context.Context, id string, at time.Time) (Treatment, error)
}
