package service

import (
	"errors"

	"github.com/notewyze/backend/internal/apperror"
	"gorm.io/gorm"
)

// orNotFound maps a record-not-found lookup error to a domain not-found
// error and wraps anything else as internal.
func orNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(msg)
	}
	return apperror.Internal("database error", err)
}
