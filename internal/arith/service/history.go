package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/calc"
	"github.com/aussiebroadwan/arith/internal/arith/domain"
	"github.com/aussiebroadwan/arith/internal/arith/store"
)

// HistoryService is the append-only per-user ledger of operations.
type HistoryService struct {
	Store store.Store
	Retry RetryPolicy
}

// Record appends one entry. It returns ErrUnknownUser when username has no
// account, in which case nothing is written.
func (s *HistoryService) Record(
	ctx context.Context,
	username string,
	kind calc.Kind,
	operands []float64,
	result float64,
	ts time.Time,
) (domain.OperationRecord, error) {
	rec := domain.OperationRecord{
		Username:  username,
		Kind:      kind,
		Operands:  append([]float64(nil), operands...),
		Result:    result,
		Timestamp: ts,
	}

	saved, err := withRetry(ctx, s.Retry, "record operation", func() (domain.OperationRecord, error) {
		return s.Store.Operations().RecordOperation(ctx, rec)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.OperationRecord{}, ErrUnknownUser
	}
	return saved, err
}

// ListFor returns username's history oldest first; an empty slice when there
// is none.
func (s *HistoryService) ListFor(ctx context.Context, username string) ([]domain.OperationRecord, error) {
	return withRetry(ctx, s.Retry, "list operations", func() ([]domain.OperationRecord, error) {
		return s.Store.Operations().ListOperationsByUsername(ctx, username)
	})
}
