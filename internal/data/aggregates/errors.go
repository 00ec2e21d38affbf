package aggregates

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
)

var (
	ErrValidation = errors.New("aggregate validation")
	ErrInvariant  = errors.New("aggregate invariant violation")
	// ErrConflict marks a stale version or a lost compare-and-set.
	ErrConflict  = errors.New("aggregate conflict")
	ErrRetryable = errors.New("aggregate retryable")
)

func ValidationError(msg string) error {
	return errors.Join(ErrValidation, errors.New(strings.TrimSpace(msg)))
}

func InvariantError(msg string) error {
	return errors.Join(ErrInvariant, errors.New(strings.TrimSpace(msg)))
}

func ConflictError(msg string) error {
	return errors.Join(ErrConflict, errors.New(strings.TrimSpace(msg)))
}

func RetryableError(msg string) error {
	return errors.Join(ErrRetryable, errors.New(strings.TrimSpace(msg)))
}

var sentinelCodes = []struct {
	err  error
	code domainagg.ErrorCode
}{
	{ErrValidation, domainagg.CodeValidation},
	{ErrInvariant, domainagg.CodeInvariantViolation},
	{ErrConflict, domainagg.CodeConflict},
	{ErrRetryable, domainagg.CodeRetryable},
	{gorm.ErrRecordNotFound, domainagg.CodeNotFound},
	{gorm.ErrDuplicatedKey, domainagg.CodeDuplicateKey},
	{gorm.ErrForeignKeyViolated, domainagg.CodePreconditionFailed},
	{context.Canceled, domainagg.CodeRetryable},
	{context.DeadlineExceeded, domainagg.CodeRetryable},
	{driver.ErrBadConn, domainagg.CodeRetryable},
}

// Postgres SQLSTATEs that are not internal failures.
var pgStateCodes = map[string]domainagg.ErrorCode{
	"23505": domainagg.CodeDuplicateKey,       // unique_violation (product code)
	"23503": domainagg.CodePreconditionFailed, // foreign_key_violation
	"23514": domainagg.CodeInvariantViolation, // check_violation (line quantity)
	"23502": domainagg.CodeValidation,         // not_null_violation
	"22003": domainagg.CodeValidation,         // numeric_value_out_of_range (price precision)
	"22001": domainagg.CodeValidation,         // string_data_right_truncation
	"40001": domainagg.CodeRetryable,          // serialization_failure
	"40P01": domainagg.CodeRetryable,          // deadlock_detected
	"55P03": domainagg.CodeRetryable,          // lock_not_available (lock_timeout)
	"57014": domainagg.CodeRetryable,          // query_canceled
}

var sqliteExtendedCodes = map[sqlite3.ErrNoExtended]domainagg.ErrorCode{
	sqlite3.ErrConstraintUnique:     domainagg.CodeDuplicateKey,
	sqlite3.ErrConstraintPrimaryKey: domainagg.CodeDuplicateKey,
	sqlite3.ErrConstraintForeignKey: domainagg.CodePreconditionFailed,
	sqlite3.ErrConstraintCheck:      domainagg.CodeInvariantViolation,
	sqlite3.ErrConstraintNotNull:    domainagg.CodeValidation,
}

// MapError classifies a storage or domain failure. Errors already classified
// anywhere in the chain pass through untouched; anything unrecognised is
// internal.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := domainagg.As(err); ok {
		return err
	}
	return domainagg.Wrap(classify(err), op, err)
}

func classify(err error) domainagg.ErrorCode {
	for _, s := range sentinelCodes {
		if errors.Is(err, s.err) {
			return s.code
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if code, ok := pgStateCodes[strings.TrimSpace(pgErr.Code)]; ok {
			return code
		}
		return domainagg.CodeInternal
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		if code, ok := sqliteExtendedCodes[liteErr.ExtendedCode]; ok {
			return code
		}
		if liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked {
			return domainagg.CodeRetryable
		}
		return domainagg.CodeInternal
	}

	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return domainagg.CodeRetryable
	}
	return domainagg.CodeInternal
}
