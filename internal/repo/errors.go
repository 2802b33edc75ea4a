package repo

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/motus-health/backend/internal/pkg/apperr"
)

// wrapInsertError maps integrity violations (duplicate key, broken foreign
// key) onto apperr.ErrConflict so callers can treat them uniformly. Other
// database faults pass through untouched.
func wrapInsertError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
		return apperr.ErrConflict
	}
	return err
}
