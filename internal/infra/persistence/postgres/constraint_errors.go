package postgres

import (
	"strings"

	"swirl/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgNotNullViolation     = "23502"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

func pgErrorCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}

	return pgErr.Code, pgErr.ConstraintName, true
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgForeignKeyViolation
}

// violatedConstraint returns the constraint name when the driver error is still untranslated.
func violatedConstraint(err error) string {
	_, name, _ := pgErrorCode(err)

	return name
}

func isNotNullConstraintViolation(err error) bool {
	if code, _, ok := pgErrorCode(err); ok {
		return code == pgNotNullViolation
	}

	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgCheckViolation
}

// isSerializationFailure reports whether PostgreSQL aborted the transaction
// because it conflicted with a concurrent one.
func isSerializationFailure(err error) bool {
	code, _, ok := pgErrorCode(err)

	return ok && (code == pgSerializationFailure || code == pgDeadlockDetected)
}

// wrapDBError annotates err, turning serialization failures into repository.ErrConcurrencyConflict.
func wrapDBError(err error, message string) error {
	if isSerializationFailure(err) {
		return errors.Wrapf(repository.ErrConcurrencyConflict, "%s: %v", message, err)
	}

	return errors.Wrap(err, message)
}
