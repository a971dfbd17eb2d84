// Package calc is the arithmetic engine. It is pure: no I/O, no state.
package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDomain      = errors.New("calc: input outside the operation's domain")
	ErrArity       = errors.New("calc: wrong number of operands")
	ErrUnknownKind = errors.New("calc: unknown operation")
	ErrNotFinite   = errors.New("calc: non-finite number")
)

// Kind names an arithmetic operation.
type Kind string

const (
	KindAdd      Kind = "add"
	KindSubtract Kind = "subtract"
	KindMultiply Kind = "multiply"
	KindSqrt     Kind = "sqrt"
)

// Kinds lists every supported operation.
var Kinds = []Kind{KindAdd, KindSubtract, KindMultiply, KindSqrt}

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if k.Arity() == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Arity returns the operand count of k, or 0 for unknown kinds.
func (k Kind) Arity() int {
	switch k {
	case KindAdd, KindSubtract, KindMultiply:
		return 2
	case KindSqrt:
		return 1
	default:
		return 0
	}
}

func (k Kind) String() string { return string(k) }

func Add(a, b float64) float64 { return a + b }

func Subtract(a, b float64) float64 { return a - b }

func Multiply(a, b float64) float64 { return a * b }

// Sqrt returns the non-negative square root of a. Negative input is
// rejected before any computation.
func Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, fmt.Errorf("%w: square root of negative number %g", ErrDomain, a)
	}
	if a == 0 {
		// math.Sqrt(-0) is -0.
		return 0, nil
	}
	return math.Sqrt(a), nil
}

// Apply runs kind over operands. Inputs and the result must be finite,
// since a non-finite value cannot be represented in a JSON response.
func Apply(kind Kind, operands ...float64) (float64, error) {
	arity := kind.Arity()
	if arity == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	if len(operands) != arity {
		return 0, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, kind, arity, len(operands))
	}
	for _, x := range operands {
		if !finite(x) {
			return 0, fmt.Errorf("%w: operand %v", ErrNotFinite, x)
		}
	}

	var (
		result float64
		err    error
	)
	switch kind {
	case KindAdd:
		result = Add(operands[0], operands[1])
	case KindSubtract:
		result = Subtract(operands[0], operands[1])
	case KindMultiply:
		result = Multiply(operands[0], operands[1])
	case KindSqrt:
		result, err = Sqrt(operands[0])
	}
	if err != nil {
		return 0, err
	}

	if !finite(result) {
		return 0, fmt.Errorf("%w: %s result overflows", ErrNotFinite, kind)
	}
	return result, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
