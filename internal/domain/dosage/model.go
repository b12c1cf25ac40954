package dosage

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidFormat = errors.New("invalid dosage format")
	ErrUnitMismatch  = errors.New("rate unit does not match dosage unit")
	ErrInvalidConfig = errors.New("invalid progression config")
)

// Direction indica cómo evoluciona la dosis entre administraciones.
type Direction string

const (
	DirectionStable   Direction = "stable"
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// DefaultPreviewCount es la cantidad de dosis que devuelve Preview si no se indica otra.
const DefaultPreviewCount = 10

// Parsed es una dosis ya separada en magnitud y unidad ("1.5ml" => 1.5, "ml").
type Parsed struct {
	Value decimal.Decimal
	Unit  string
}

// Rate es el paso de ajuste: porcentaje de la dosis base o cantidad absoluta.
type Rate struct {
	Value        decimal.Decimal
	IsPercentage bool
	Unit         string // solo para ritmos absolutos; puede venir vacío
}

// ProgressionConfig describe la política de ajuste de una medicación.
type ProgressionConfig struct {
	Direction Direction
	Rate      string

	// IntervalDoses: administraciones entre un ajuste y el siguiente.
	IntervalDoses int

	// TargetDosage es opcional: techo (increase) o piso (decrease).
	TargetDosage string

	// CurrentDoseCount: administraciones ya dadas (base 0).
	CurrentDoseCount int
}

// PreviewEntry es una fila de la proyección; DoseNumber empieza en 1.
type PreviewEntry struct {
	DoseNumber int    `json:"dose_number"`
	Dosage     string `json:"dosage"`
}
