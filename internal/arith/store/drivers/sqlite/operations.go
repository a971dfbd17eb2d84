package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/arith/internal/arith/calc"
	"github.com/aussiebroadwan/arith/internal/arith/domain"
)

type operationsRepo struct {
	db *sql.DB
}

// The user check and the insert are one statement: no row is written when
// the username is unknown.
const recordOperation = `
INSERT INTO operations (username, kind, operand_a, operand_b, result, created_at)
SELECT username, ?, ?, ?, ?, ?
FROM users
WHERE username = ?
RETURNING id`

func (r *operationsRepo) RecordOperation(ctx context.Context, rec domain.OperationRecord) (domain.OperationRecord, error) {
	a, b, err := splitOperands(rec.Kind, rec.Operands)
	if err != nil {
		return domain.OperationRecord{}, err
	}
	rec.Timestamp = rec.Timestamp.UTC()

	err = r.db.QueryRowContext(ctx, recordOperation,
		string(rec.Kind), a, b, rec.Result, rec.Timestamp, rec.Username).
		Scan(&rec.ID)
	if err != nil {
		return domain.OperationRecord{}, mapNotFound(err)
	}
	return rec, nil
}

const listOperationsByUsername = `
SELECT id, username, kind, operand_a, operand_b, result, created_at
FROM operations
WHERE username = ?
ORDER BY id ASC`

func (r *operationsRepo) ListOperationsByUsername(ctx context.Context, username string) ([]domain.OperationRecord, error) {
	rows, err := r.db.QueryContext(ctx, listOperationsByUsername, username)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]domain.OperationRecord, 0)
	for rows.Next() {
		var (
			rec  domain.OperationRecord
			kind string
			a    float64
			b    sql.NullFloat64
		)
		if err := rows.Scan(&rec.ID, &rec.Username, &kind, &a, &b, &rec.Result, &rec.Timestamp); err != nil {
			return nil, mapError(err)
		}
		rec.Kind = calc.Kind(kind)
		rec.Operands = joinOperands(a, b)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// splitOperands maps a record's operands onto the operand_a/operand_b columns.
func splitOperands(kind calc.Kind, ops []float64) (float64, sql.NullFloat64, error) {
	if n := kind.Arity(); n == 0 || len(ops) != n {
		return 0, sql.NullFloat64{}, fmt.Errorf("sqlite: %d operands for %q: %w", len(ops), kind, calc.ErrArity)
	}
	if len(ops) == 1 {
		return ops[0], sql.NullFloat64{}, nil
	}
	return ops[0], sql.NullFloat64{Float64: ops[1], Valid: true}, nil
}

func joinOperands(a float64, b sql.NullFloat64) []float64 {
	if b.Valid {
		return []float64{a, b.Float64}
	}
	return []float64{a}
}
