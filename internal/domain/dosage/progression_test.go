package dosage

import (
	"errors"
	"reflect"
	"testing"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		name string
		base string
		cfg  ProgressionConfig
		want string
	}{
		{
			name: "stable keeps base for any count",
			base: "10mg",
			cfg:  ProgressionConfig{Direction: DirectionStable, Rate: "50%", IntervalDoses: 1, CurrentDoseCount: 99},
			want: "10mg",
		},
		{
			name: "stable does not parse base",
			base: "media pastilla",
			cfg:  ProgressionConfig{Direction: DirectionStable},
			want: "media pastilla",
		},
		{
			name: "percentage increase, one adjustment",
			base: "10mg",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "10%", IntervalDoses: 3, CurrentDoseCount: 3},
			want: "11mg",
		},
		{
			name: "absolute increase, two adjustments",
			base: "10mg",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "5mg", IntervalDoses: 2, CurrentDoseCount: 4},
			want: "20mg",
		},
		{
			name: "percentage decrease",
			base: "10mg",
			cfg:  ProgressionConfig{Direction: DirectionDecrease, Rate: "20%", IntervalDoses: 3, CurrentDoseCount: 3},
			want: "8mg",
		},
		{
			name: "decrease floors at zero",
			base: "5mg",
			cfg:  ProgressionConfig{Direction: DirectionDecrease, Rate: "10mg", IntervalDoses: 1, CurrentDoseCount: 10},
			want: "0mg",
		},
		{
			name: "increase capped at target",
			base: "10mg",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "5mg", IntervalDoses: 1, TargetDosage: "20mg", CurrentDoseCount: 10},
			want: "20mg",
		},
		{
			name: "decrease floored at target",
			base: "10mg",
			cfg:  ProgressionConfig{Direction: DirectionDecrease, Rate: "2mg", IntervalDoses: 1, TargetDosage: "4mg", CurrentDoseCount: 10},
			want: "4mg",
		},
		{
			name: "before first adjustment boundary",
			base: "10mg",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "10%", IntervalDoses: 3, CurrentDoseCount: 2},
			want: "10mg",
		},
		{
			name: "absolute rate without unit",
			base: "2 comprimidos",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "1", IntervalDoses: 7, CurrentDoseCount: 14},
			want: "4comprimidos",
		},
		{
			name: "fractional result rounded to two places",
			base: "1ml",
			cfg:  ProgressionConfig{Direction: DirectionDecrease, Rate: "33.333%", IntervalDoses: 1, CurrentDoseCount: 1},
			want: "0.67ml",
		},
		{
			name: "fractional result without float noise",
			base: "0.1ml",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "0.2ml", IntervalDoses: 1, CurrentDoseCount: 1},
			want: "0.3ml",
		},
		{
			name: "unit carried from lower-cased base",
			base: "10MG",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "5mg", IntervalDoses: 1, CurrentDoseCount: 1},
			want: "15mg",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute(tc.base, tc.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCompute_Errors(t *testing.T) {
	cases := []struct {
		name    string
		base    string
		cfg     ProgressionConfig
		wantErr error
	}{
		{
			name:    "invalid base",
			base:    "invalid",
			cfg:     ProgressionConfig{Direction: DirectionIncrease, Rate: "10%", IntervalDoses: 1, CurrentDoseCount: 1},
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "invalid rate",
			base:    "10mg",
			cfg:     ProgressionConfig{Direction: DirectionIncrease, Rate: "lots", IntervalDoses: 1, CurrentDoseCount: 1},
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "invalid target",
			base:    "10mg",
			cfg:     ProgressionConfig{Direction: DirectionIncrease, Rate: "1mg", IntervalDoses: 1, TargetDosage: "max", CurrentDoseCount: 1},
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "unit mismatch",
			base:    "10mg",
			cfg:     ProgressionConfig{Direction: DirectionIncrease, Rate: "5ml", IntervalDoses: 1, CurrentDoseCount: 1},
			wantErr: ErrUnitMismatch,
		},
		{
			name:    "zero interval",
			base:    "10mg",
			cfg:     ProgressionConfig{Direction: DirectionIncrease, Rate: "5mg", IntervalDoses: 0, CurrentDoseCount: 1},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative interval",
			base:    "10mg",
			cfg:     ProgressionConfig{Direction: DirectionDecrease, Rate: "5mg", IntervalDoses: -2, CurrentDoseCount: 1},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative dose count",
			base:    "10mg",
			cfg:     ProgressionConfig{Direction: DirectionDecrease, Rate: "5mg", IntervalDoses: 1, CurrentDoseCount: -1},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative percentage rate",
			base:    "10mg",
			cfg:     ProgressionConfig{Direction: DirectionIncrease, Rate: "-10%", IntervalDoses: 1, TargetDosage: "20mg", CurrentDoseCount: 20},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown direction",
			base:    "10mg",
			cfg:     ProgressionConfig{Direction: "sideways", Rate: "5mg", IntervalDoses: 1, CurrentDoseCount: 1},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute(tc.base, tc.cfg)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if got != "" {
				t.Fatalf("expected empty result on error, got %q", got)
			}
		})
	}
}

func TestCompute_TargetRoundedTowardBase(t *testing.T) {
	cases := []struct {
		name string
		cfg  ProgressionConfig
		want string
	}{
		{
			name: "increase target with three decimals",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "1mg", IntervalDoses: 1, TargetDosage: "10.996mg", CurrentDoseCount: 1},
			want: "10.99mg",
		},
		{
			name: "decrease target with three decimals",
			cfg:  ProgressionConfig{Direction: DirectionDecrease, Rate: "1mg", IntervalDoses: 1, TargetDosage: "9.004mg", CurrentDoseCount: 1},
			want: "9.01mg",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute("10mg", tc.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}

			reached, err := HasReachedTarget("10mg", tc.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reached {
				t.Fatalf("expected target reached at %s", got)
			}
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	cfg := ProgressionConfig{Direction: DirectionIncrease, Rate: "12.5%", IntervalDoses: 2, TargetDosage: "30mg", CurrentDoseCount: 7}
	before := cfg

	a, errA := Compute("10mg", cfg)
	b, errB := Compute("10mg", cfg)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v / %v", errA, errB)
	}
	if a != b {
		t.Fatalf("expected identical results, got %q and %q", a, b)
	}
	if cfg != before {
		t.Fatalf("config mutated: %+v", cfg)
	}
}

func TestPreview(t *testing.T) {
	cfg := ProgressionConfig{Direction: DirectionIncrease, Rate: "5mg", IntervalDoses: 2, CurrentDoseCount: 0}

	got, err := Preview("10mg", cfg, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []PreviewEntry{
		{DoseNumber: 1, Dosage: "10mg"},
		{DoseNumber: 2, Dosage: "10mg"},
		{DoseNumber: 3, Dosage: "15mg"},
		{DoseNumber: 4, Dosage: "15mg"},
		{DoseNumber: 5, Dosage: "20mg"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	again, _ := Preview("10mg", cfg, 5)
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("expected deterministic preview, got %+v and %+v", got, again)
	}
	if cfg.CurrentDoseCount != 0 {
		t.Fatalf("config mutated: %+v", cfg)
	}
}

func TestPreview_StartsAfterCurrentCount(t *testing.T) {
	cfg := ProgressionConfig{Direction: DirectionDecrease, Rate: "10%", IntervalDoses: 1, TargetDosage: "8mg", CurrentDoseCount: 1}

	got, err := Preview("10mg", cfg, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []PreviewEntry{
		{DoseNumber: 2, Dosage: "9mg"},
		{DoseNumber: 3, Dosage: "8mg"},
		{DoseNumber: 4, Dosage: "8mg"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPreview_DefaultCount(t *testing.T) {
	got, err := Preview("10mg", ProgressionConfig{Direction: DirectionStable}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != DefaultPreviewCount {
		t.Fatalf("expected %d entries, got %d", DefaultPreviewCount, len(got))
	}
	for i, e := range got {
		if e.DoseNumber != i+1 || e.Dosage != "10mg" {
			t.Fatalf("unexpected entry %d: %+v", i, e)
		}
	}
}

func TestPreview_ErrorAbortsWholePreview(t *testing.T) {
	cfg := ProgressionConfig{Direction: DirectionIncrease, Rate: "5ml", IntervalDoses: 2}

	got, err := Preview("10mg", cfg, 5)
	if !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("expected ErrUnitMismatch, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no entries, got %+v", got)
	}
}

func TestHasReachedTarget(t *testing.T) {
	cases := []struct {
		name string
		cfg  ProgressionConfig
		want bool
	}{
		{
			name: "increase reaches target exactly",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "5mg", IntervalDoses: 1, TargetDosage: "20mg", CurrentDoseCount: 2},
			want: true,
		},
		{
			name: "increase below target",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "5mg", IntervalDoses: 1, TargetDosage: "20mg", CurrentDoseCount: 1},
			want: false,
		},
		{
			name: "decrease reaches floor",
			cfg:  ProgressionConfig{Direction: DirectionDecrease, Rate: "5mg", IntervalDoses: 1, TargetDosage: "2mg", CurrentDoseCount: 5},
			want: true,
		},
		{
			name: "decrease above floor",
			cfg:  ProgressionConfig{Direction: DirectionDecrease, Rate: "1mg", IntervalDoses: 1, TargetDosage: "2mg", CurrentDoseCount: 3},
			want: false,
		},
		{
			name: "no target",
			cfg:  ProgressionConfig{Direction: DirectionIncrease, Rate: "5mg", IntervalDoses: 1, CurrentDoseCount: 50},
			want: false,
		},
		{
			name: "stable with target",
			cfg:  ProgressionConfig{Direction: DirectionStable, TargetDosage: "10mg", CurrentDoseCount: 50},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HasReachedTarget("10mg", tc.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestHasReachedTarget_PropagatesErrors(t *testing.T) {
	cfg := ProgressionConfig{Direction: DirectionIncrease, Rate: "5ml", IntervalDoses: 1, TargetDosage: "20mg", CurrentDoseCount: 2}
	if _, err := HasReachedTarget("10mg", cfg); !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("expected ErrUnitMismatch, got %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	ok := ProgressionConfig{Direction: DirectionIncrease, Rate: "5mg", IntervalDoses: 3, TargetDosage: "20mg"}
	if err := ValidateConfig("10mg", ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateConfig("anything", ProgressionConfig{Direction: DirectionStable}); err != nil {
		t.Fatalf("stable must always validate, got %v", err)
	}

	bad := ok
	bad.Rate = "5ml"
	if err := ValidateConfig("10mg", bad); !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("expected ErrUnitMismatch, got %v", err)
	}

	bad = ok
	bad.IntervalDoses = 0
	if err := ValidateConfig("10mg", bad); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	bad = ok
	bad.Rate = "-10%"
	if err := ValidateConfig("10mg", bad); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative rate, got %v", err)
	}
}
