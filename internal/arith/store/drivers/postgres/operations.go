package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/calc"
	"github.com/aussiebroadwan/arith/internal/arith/domain"
	"github.com/jmoiron/sqlx"
)

type operationsRepo struct {
	db *sqlx.DB
}

type operationRow struct {
	ID        int64           `db:"id"`
	Username  string          `db:"username"`
	Kind      string          `db:"kind"`
	OperandA  float64         `db:"operand_a"`
	OperandB  sql.NullFloat64 `db:"operand_b"`
	Result    float64         `db:"result"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r operationRow) toDomain() domain.OperationRecord {
	ops := []float64{r.OperandA}
	if r.OperandB.Valid {
		ops = append(ops, r.OperandB.Float64)
	}
	return domain.OperationRecord{
		ID:        r.ID,
		Username:  r.Username,
		Kind:      calc.Kind(r.Kind),
		Operands:  ops,
		Result:    r.Result,
		Timestamp: r.CreatedAt.UTC(),
	}
}

func (r *operationsRepo) RecordOperation(ctx context.Context, rec domain.OperationRecord) (domain.OperationRecord, error) {
	if n := rec.Kind.Arity(); n == 0 || len(rec.Operands) != n {
		return domain.OperationRecord{}, fmt.Errorf("postgres: %d operands for %q: %w", len(rec.Operands), rec.Kind, calc.ErrArity)
	}
	var b sql.NullFloat64
	if len(rec.Operands) == 2 {
		b = sql.NullFloat64{Float64: rec.Operands[1], Valid: true}
	}
	rec.Timestamp = rec.Timestamp.UTC()

	// Zero rows come back when the username is unknown.
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO operations (username, kind, operand_a, operand_b, result, created_at)
		SELECT username, $2::text, $3::double precision, $4::double precision, $5::double precision, $6::timestamptz
		FROM users
		WHERE username = $1
		RETURNING id
	`, rec.Username, string(rec.Kind), rec.Operands[0], b, rec.Result, rec.Timestamp).Scan(&rec.ID)
	if err != nil {
		return domain.OperationRecord{}, mapError(err)
	}
	return rec, nil
}

func (r *operationsRepo) ListOperationsByUsername(ctx context.Context, username string) ([]domain.OperationRecord, error) {
	var rows []operationRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, username, kind, operand_a, operand_b, result, created_at
		FROM operations
		WHERE username = $1
		ORDER BY id ASC
	`, username)
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]domain.OperationRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
