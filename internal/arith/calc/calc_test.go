package calc_test

import (
	"math"
	"testing"

	"github.com/aussiebroadwan/arith/internal/arith/calc"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		kind     calc.Kind
		operands []float64
		want     float64
	}{
		{"add", calc.KindAdd, []float64{2, 3}, 5},
		{"subtract", calc.KindSubtract, []float64{5, 2}, 3},
		{"multiply", calc.KindMultiply, []float64{4, 5}, 20},
		{"sqrt", calc.KindSqrt, []float64{16}, 4},
		{"sqrt zero", calc.KindSqrt, []float64{0}, 0},
		{"negative operands", calc.KindAdd, []float64{-1.5, -2.5}, -4},
		{"fractional", calc.KindMultiply, []float64{0.5, 0.5}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Apply(tt.kind, tt.operands...)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name     string
		kind     calc.Kind
		operands []float64
		want     error
	}{
		{"sqrt of negative", calc.KindSqrt, []float64{-1}, calc.ErrDomain},
		{"unknown kind", calc.Kind("divide"), []float64{1, 2}, calc.ErrUnknownKind},
		{"too few", calc.KindAdd, []float64{1}, calc.ErrArity},
		{"too many", calc.KindSqrt, []float64{1, 2}, calc.ErrArity},
		{"nan operand", calc.KindAdd, []float64{math.NaN(), 1}, calc.ErrNotFinite},
		{"inf operand", calc.KindSqrt, []float64{math.Inf(1)}, calc.ErrNotFinite},
		{"overflowing result", calc.KindMultiply, []float64{math.MaxFloat64, 2}, calc.ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Apply(tt.kind, tt.operands...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSqrtRejectsNegativeBeforeComputing(t *testing.T) {
	got, err := calc.Sqrt(-4)
	require.ErrorIs(t, err, calc.ErrDomain)
	require.Zero(t, got)
	require.False(t, math.IsNaN(got))
}

func TestSqrtOfNegativeZeroIsPositiveZero(t *testing.T) {
	got, err := calc.Apply(calc.KindSqrt, math.Copysign(0, -1))
	require.NoError(t, err)
	require.Zero(t, got)
	require.False(t, math.Signbit(got))
}

func TestParseKind(t *testing.T) {
	for _, k := range calc.Kinds {
		got, err := calc.ParseKind(string(k))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	_, err := calc.ParseKind("ADD")
	require.ErrorIs(t, err, calc.ErrUnknownKind)
}
