package periodicity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Format arma el texto de una periodicidad tal como llega de persistencia:
// los subconjuntos de días vienen serializados como arreglos JSON ("[1,3,5]").
//
// Un payload mal formado no rompe el render: se muestra la etiqueta genérica
// del tipo. Para rechazarlo antes (al configurar) usar DecodeDays.
// kind se compara tal cual: "Daily" o " weekly" no son tipos conocidos.
func Format(kind string, customIntervalDays *int, weekDaysEncoded, monthDaysEncoded string) string {
	cfg := Config{
		Kind:               Kind(kind),
		CustomIntervalDays: customIntervalDays,
	}

	if days, err := DecodeDays(weekDaysEncoded); err == nil {
		cfg.WeekDays = days
	}
	if days, err := DecodeDays(monthDaysEncoded); err == nil {
		cfg.MonthDays = days
	}

	return Describe(cfg)
}

// Describe arma el texto de una periodicidad ya decodificada.
func Describe(cfg Config) string {
	switch cfg.Kind {
	case KindDaily:
		return labelDaily

	case KindWeekly:
		names := make([]string, 0, len(cfg.WeekDays))
		for _, d := range cfg.WeekDays {
			if d < 0 || d > 6 {
				continue
			}
			names = append(names, weekDayAbbrev[d])
		}
		if len(names) == 0 {
			return labelWeekly
		}
		return labelWeekly + ": " + strings.Join(names, ", ")

	case KindMonthly:
		days := make([]string, 0, len(cfg.MonthDays))
		for _, d := range cfg.MonthDays {
			if d < 1 || d > 31 {
				continue
			}
			days = append(days, strconv.Itoa(d))
		}
		if len(days) == 0 {
			return labelMonthly
		}
		return labelMonthly + ": days " + strings.Join(days, ", ")

	case KindCustom:
		if cfg.CustomIntervalDays == nil || *cfg.CustomIntervalDays <= 0 {
			return labelCustom
		}
		return fmt.Sprintf("Every %d days", *cfg.CustomIntervalDays)

	default:
		return labelNotConfigured
	}
}

// DecodeDays decodifica un arreglo JSON de enteros. Vacío => nil, nil.
func DecodeDays(encoded string) ([]int, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" || encoded == "null" {
		return nil, nil
	}

	var days []int
	if err := json.Unmarshal([]byte(encoded), &days); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDays, err)
	}
	return days, nil
}

// EncodeDays es la inversa de DecodeDays (nil/vacío => "").
func EncodeDays(days []int) string {
	if len(days) == 0 {
		return ""
	}
	b, _ := json.Marshal(days)
	return string(b)
}

// Validate revisa que los días estén en rango para el tipo indicado.
func Validate(cfg Config) error {
	switch cfg.Kind {
	case KindDaily, KindWeekly, KindMonthly, KindCustom:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, cfg.Kind)
	}

	for _, d := range cfg.WeekDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: week day %d out of range 0-6", ErrInvalidDays, d)
		}
	}
	for _, d := range cfg.MonthDays {
		if d < 1 || d > 31 {
			return fmt.Errorf("%w: month day %d out of range 1-31", ErrInvalidDays, d)
		}
	}
	if cfg.Kind == KindCustom && cfg.CustomIntervalDays != nil && *cfg.CustomIntervalDays <= 0 {
		return fmt.Errorf("%w: custom interval must be > 0", ErrInvalidDays)
	}
	return nil
}
