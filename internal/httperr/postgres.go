package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgExclusionViolation = "23P01"

// IsExclusionConflict reports a Postgres exclusion-constraint violation,
// optionally restricted to named constraints.
func IsExclusionConflict(err error, constraints ...string) bool {
	return hasPgCode(err, pgExclusionViolation, constraints)
}

func hasPgCode(err error, code string, constraints []string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pgErr.ConstraintName == c {
			return true
		}
	}
	return false
}
