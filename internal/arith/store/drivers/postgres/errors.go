package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/aussiebroadwan/arith/internal/arith/store"
	"github.com/lib/pq"
)

const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
	tooManyConnections  pq.ErrorCode = "53300"
	adminShutdown       pq.ErrorCode = "57P01"
	crashShutdown       pq.ErrorCode = "57P02"
	cannotConnectNow    pq.ErrorCode = "57P03"

	connectionException pq.ErrorClass = "08"
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == uniqueViolation:
			return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
		case pqErr.Code == foreignKeyViolation:
			return fmt.Errorf("%w: %w", store.ErrNotFound, err)
		case pqErr.Code.Class() == connectionException,
			pqErr.Code == tooManyConnections,
			pqErr.Code == adminShutdown,
			pqErr.Code == crashShutdown,
			pqErr.Code == cannotConnectNow:
			return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	return err
}
