// Package pgerr translates postgres driver errors into the application's
// error kinds so that repository callers never handle driver-specific types.
package pgerr

import (
	"errors"

	"github.com/lib/pq"

	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// Postgres error codes relevant to referential integrity.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// Translate maps integrity violations reported by lib/pq onto ConflictError,
// keeping the original error as cause. Any other error passes through
// unchanged.
func Translate(err error, paramName string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeForeignKeyViolation, codeUniqueViolation:
			return errs.NewConflictErrorWithCause(paramName, err)
		}
	}

	return err
}
