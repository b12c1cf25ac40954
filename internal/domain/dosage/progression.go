package dosage

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimales con los que se redondea una dosis calculada.
const resultPlaces = 2

var hundred = decimal.NewFromInt(100)

// Compute devuelve la dosis vigente tras cfg.CurrentDoseCount administraciones.
//
// La dosis cambia de a saltos: cada cfg.IntervalDoses administraciones se
// aplica un ajuste (porcentaje de la base o cantidad fija). Nunca baja de 0 y,
// si hay TargetDosage, no lo cruza. La unidad del resultado es siempre la de
// la dosis base.
func Compute(baseDosage string, cfg ProgressionConfig) (string, error) {
	if isStable(cfg.Direction) {
		return baseDosage, nil
	}
	if err := validateDirection(cfg.Direction); err != nil {
		return "", err
	}

	base, err := Parse(baseDosage)
	if err != nil {
		return "", err
	}

	if cfg.IntervalDoses <= 0 {
		return "", fmt.Errorf("%w: interval_doses must be > 0", ErrInvalidConfig)
	}
	if cfg.CurrentDoseCount < 0 {
		return "", fmt.Errorf("%w: current_dose_count must be >= 0", ErrInvalidConfig)
	}

	adjustments := cfg.CurrentDoseCount / cfg.IntervalDoses
	if adjustments == 0 {
		// todavía no llegamos al primer ajuste
		return baseDosage, nil
	}

	rate, err := ParseRate(cfg.Rate)
	if err != nil {
		return "", err
	}
	if rate.Value.IsNegative() {
		// el sentido lo da Direction, no el signo del ritmo
		return "", fmt.Errorf("%w: rate %q must not be negative", ErrInvalidConfig, cfg.Rate)
	}
	if !rate.IsPercentage && rate.Unit != "" && rate.Unit != base.Unit {
		return "", fmt.Errorf("%w: rate %q, dosage %q", ErrUnitMismatch, rate.Unit, base.Unit)
	}

	step := rate.Value
	if rate.IsPercentage {
		step = base.Value.Mul(rate.Value).Div(hundred)
	}
	if cfg.Direction == DirectionDecrease {
		step = step.Neg()
	}

	current := base.Value.Add(step.Mul(decimal.NewFromInt(int64(adjustments))))
	if current.IsNegative() {
		current = decimal.Zero
	}

	if strings.TrimSpace(cfg.TargetDosage) != "" {
		target, err := Parse(cfg.TargetDosage)
		if err != nil {
			return "", err
		}
		bound := targetBound(target.Value, cfg.Direction)
		switch cfg.Direction {
		case DirectionIncrease:
			if current.GreaterThan(bound) {
				current = bound
			}
		case DirectionDecrease:
			if current.LessThan(bound) {
				current = bound
			}
		}
	}

	return formatDosage(current, base.Unit), nil
}

// Preview proyecta las próximas count dosis a partir de cfg.CurrentDoseCount.
// count <= 0 usa DefaultPreviewCount. Ante el primer error no devuelve nada.
func Preview(baseDosage string, cfg ProgressionConfig, count int) ([]PreviewEntry, error) {
	if count <= 0 {
		count = DefaultPreviewCount
	}

	out := make([]PreviewEntry, 0, count)
	for i := 0; i < count; i++ {
		doseNumber := cfg.CurrentDoseCount + i + 1

		step := cfg
		step.CurrentDoseCount = doseNumber - 1

		d, err := Compute(baseDosage, step)
		if err != nil {
			return nil, err
		}
		out = append(out, PreviewEntry{DoseNumber: doseNumber, Dosage: d})
	}
	return out, nil
}

// HasReachedTarget informa si la dosis actual ya llegó (o pasó) la dosis objetivo.
// Sin objetivo o con progresión estable siempre es false.
func HasReachedTarget(baseDosage string, cfg ProgressionConfig) (bool, error) {
	if strings.TrimSpace(cfg.TargetDosage) == "" || isStable(cfg.Direction) {
		return false, nil
	}

	current, err := Compute(baseDosage, cfg)
	if err != nil {
		return false, err
	}

	cur, err := Parse(current)
	if err != nil {
		return false, err
	}
	target, err := Parse(cfg.TargetDosage)
	if err != nil {
		return false, err
	}

	bound := targetBound(target.Value, cfg.Direction)
	if cfg.Direction == DirectionDecrease {
		return cur.Value.LessThanOrEqual(bound), nil
	}
	return cur.Value.GreaterThanOrEqual(bound), nil
}

func isStable(d Direction) bool {
	return d == DirectionStable || d == ""
}

func validateDirection(d Direction) error {
	switch d {
	case DirectionStable, DirectionIncrease, DirectionDecrease:
		return nil
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, d)
	}
}

// ValidateConfig revisa una configuración sin depender del conteo de dosis:
// dirección conocida, intervalo positivo, ritmo y objetivo parseables y
// unidades compatibles con la dosis base.
func ValidateConfig(baseDosage string, cfg ProgressionConfig) error {
	if isStable(cfg.Direction) {
		return nil
	}
	if err := validateDirection(cfg.Direction); err != nil {
		return err
	}
	if cfg.IntervalDoses <= 0 {
		return fmt.Errorf("%w: interval_doses must be > 0", ErrInvalidConfig)
	}

	// Forzamos un ajuste para que Compute recorra ritmo, unidad y objetivo.
	probe := cfg
	probe.CurrentDoseCount = cfg.IntervalDoses
	_, err := Compute(baseDosage, probe)
	return err
}

// targetBound lleva el objetivo a resultPlaces decimales redondeando hacia el
// lado de la dosis base, así la dosis mostrada nunca cruza el objetivo.
func targetBound(target decimal.Decimal, d Direction) decimal.Decimal {
	if d == DirectionDecrease {
		return target.RoundCeil(resultPlaces)
	}
	return target.RoundFloor(resultPlaces)
}

func formatDosage(v decimal.Decimal, unit string) string {
	return v.Round(resultPlaces).String() + unit
}
