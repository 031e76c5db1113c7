// Package pgerrs maps driver and GORM failures onto the errs kinds the core understands.
package pgerrs

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"orderlifecycle/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes that mean another writer won.
const (
	UniqueViolation      = "23505"
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
)

const connectionExceptionClass = "08"

// Translate classifies err raised while running operation against entity id.
//
//   - gorm.ErrRecordNotFound becomes errs.ObjectNotFoundError
//   - unique violations, serialization failures and deadlocks become errs.ConcurrencyConflictError
//   - connection loss, admin shutdown and timeouts become errs.StorageFailureError
//
// Anything else is wrapped with the operation name and returned as is.
func Translate(err error, operation, entity string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == UniqueViolation,
			pgErr.Code == SerializationFailure,
			pgErr.Code == DeadlockDetected:
			return errs.NewConcurrencyConflictErrorWithCause(entity, id, err)
		case strings.HasPrefix(pgErr.Code, connectionExceptionClass),
			pgErr.Code == "57P01", // admin_shutdown
			pgErr.Code == "57P03": // cannot_connect_now
			return errs.NewStorageFailureErrorWithCause(operation, err)
		}
		return fmt.Errorf("%s: %w", operation, err)
	}

	if IsUnavailable(err) {
		return errs.NewStorageFailureErrorWithCause(operation, err)
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// IsUnavailable reports whether err means the database could not be reached in time.
func IsUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
