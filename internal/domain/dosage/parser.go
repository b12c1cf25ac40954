package dosage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// numeral inicial (entero o decimal) + resto libre como unidad.
var dosagePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(.*)$`)

// Parse separa una dosis en número + unidad.
// Ej: "10mg" => {10, "mg"}, "2 comprimidos" => {2, "comprimidos"}, "5" => {5, ""}.
func Parse(dosage string) (Parsed, error) {
	s := strings.ToLower(strings.TrimSpace(dosage))

	m := dosagePattern.FindStringSubmatch(s)
	if m == nil {
		return Parsed{}, fmt.Errorf("%w: %q", ErrInvalidFormat, dosage)
	}

	v, err := decimal.NewFromString(m[1])
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: %q", ErrInvalidFormat, dosage)
	}

	return Parsed{
		Value: v,
		Unit:  normalizeUnit(m[2]),
	}, nil
}

// ParseRate interpreta el ritmo de progresión: "10%" o una cantidad absoluta ("5mg").
func ParseRate(rate string) (Rate, error) {
	s := strings.TrimSpace(rate)

	if prefix, ok := strings.CutSuffix(s, "%"); ok {
		v, err := decimal.NewFromString(strings.TrimSpace(prefix))
		if err != nil {
			return Rate{}, fmt.Errorf("%w: rate %q", ErrInvalidFormat, rate)
		}
		return Rate{Value: v, IsPercentage: true}, nil
	}

	p, err := Parse(s)
	if err != nil {
		return Rate{}, err
	}
	return Rate{Value: p.Value, IsPercentage: false, Unit: p.Unit}, nil
}

// normalizeUnit deja la unidad en NFC para que "cápsulas" compare igual
// sin importar cómo vino codificada la tilde.
func normalizeUnit(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}
