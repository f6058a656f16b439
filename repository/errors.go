package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL data exception codes for values that do not fit their column.
const (
	pgStringTooLong     = "22001"
	pgNumericOutOfRange = "22003"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique column already holds the value.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReference is returned when a foreign key points at a missing row,
	// or a row is still referenced by another.
	ErrReference = errors.New("foreign key violation")
	// ErrInvalidValue is returned when a value does not fit its column.
	ErrInvalidValue = errors.New("value does not fit column")
)

// translate maps driver-level errors onto the repository sentinels. The
// database is opened with TranslateError so gorm already classifies
// PostgreSQL error codes.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w: %v", op, ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w: %v", op, ErrReference, err)
	case isPgCode(err, pgStringTooLong, pgNumericOutOfRange):
		return fmt.Errorf("%s: %w: %v", op, ErrInvalidValue, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isPgCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	for _, code := range codes {
		if pgErr.Code == code {
			return true
		}
	}
	return false
}
