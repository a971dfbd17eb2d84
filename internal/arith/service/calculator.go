package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/calc"
	"github.com/aussiebroadwan/arith/internal/arith/domain"
	"github.com/aussiebroadwan/arith/internal/arith/metrics"
	"github.com/aussiebroadwan/arith/pkg/slogx"
)

// CalculatorService runs an operation for an authenticated caller and records
// it in their history. Rejected operations leave no record.
type CalculatorService struct {
	History *HistoryService
	Now     func() time.Time
}

// Compute applies kind to operands on behalf of ident.
func (s *CalculatorService) Compute(
	ctx context.Context,
	ident domain.Identity,
	kind calc.Kind,
	operands ...float64,
) (domain.OperationRecord, error) {
	log := slogx.FromContext(ctx).With(
		slog.String("username", ident.Username),
		slog.String("operation", kind.String()),
	)

	if ident.Username == "" {
		metrics.RecordOperation(kind.String(), metrics.OutcomeRejected)
		return domain.OperationRecord{}, ErrUnknownUser
	}

	result, err := calc.Apply(kind, operands...)
	if err != nil {
		metrics.RecordOperation(kind.String(), metrics.OutcomeRejected)
		log.Info("operation rejected", slog.Any("error", err))
		if errors.Is(err, calc.ErrArity) || errors.Is(err, calc.ErrUnknownKind) {
			return domain.OperationRecord{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return domain.OperationRecord{}, err
	}

	rec, err := s.History.Record(ctx, ident.Username, kind, operands, result, s.now().UTC())
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			metrics.RecordOperation(kind.String(), metrics.OutcomeRejected)
			log.Warn("token subject has no account")
		} else {
			metrics.RecordOperation(kind.String(), metrics.OutcomeError)
			log.Error("failed to record operation", slog.Any("error", err))
		}
		return domain.OperationRecord{}, err
	}

	metrics.RecordOperation(kind.String(), metrics.OutcomeOK)
	log.Info("operation recorded", slog.Int64("operation_id", rec.ID), slog.Float64("result", result))
	return rec, nil
}

func (s *CalculatorService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
