package periodicity

import "errors"

var (
	ErrInvalidKind = errors.New("invalid periodicity kind")
	ErrInvalidDays = errors.New("invalid day list")
)

// Kind es el tipo de recurrencia de un tratamiento.
// @Enum daily, weekly, monthly, custom
type Kind string

const (
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindCustom  Kind = "custom"
)

// Config describe cuándo se repite un tratamiento.
// WeekDays usa 0=domingo ... 6=sábado; MonthDays va de 1 a 31.
type Config struct {
	Kind               Kind
	CustomIntervalDays *int
	WeekDays           []int
	MonthDays          []int
}

// Etiquetas fijas (un solo idioma).
const (
	labelDaily         = "Daily"
	labelWeekly        = "Weekly"
	labelMonthly       = "Monthly"
	labelCustom        = "Custom"
	labelNotConfigured = "Not configured"
)

var weekDayAbbrev = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
