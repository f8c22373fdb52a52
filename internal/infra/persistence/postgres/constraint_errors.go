package postgres

import (
	"strings"

	"leadforge/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes checked when gorm's error translation is not enabled.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, sqlStateUniqueViolation) || strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, sqlStateForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, sqlStateNotNullViolation) || strings.Contains(strings.ToLower(err.Error()), "null value")
}

func hasSQLState(err error, code string) bool {
	return err != nil && strings.Contains(err.Error(), "SQLSTATE "+code)
}
