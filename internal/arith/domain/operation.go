package domain

import (
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/calc"
)

// OperationRecord is one entry in a user's append-only history.
type OperationRecord struct {
	ID        int64
	Username  string
	Kind      calc.Kind
	Operands  []float64 // two for binary kinds, one for sqrt
	Result    float64
	Timestamp time.Time
}
