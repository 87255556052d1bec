package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/REslim30/palette-pal-backend/internal/model"
)

// classifyUniqueViolation maps a Postgres unique_violation onto the typed
// duplicate errors the auth flow surfaces per-field. Constraint names are
// preferred; substring matching is the fallback for renamed indexes.
func classifyUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	if pgErr.Code != "23505" { // unique_violation
		return nil
	}

	constraint := strings.ToLower(strings.TrimSpace(pgErr.ConstraintName))
	switch constraint {
	case "uq_users_email":
		return model.ErrDuplicateEmail
	case "uq_users_username":
		return model.ErrDuplicateUsername
	}

	switch {
	case strings.Contains(constraint, "email"):
		return model.ErrDuplicateEmail
	case strings.Contains(constraint, "username"):
		return model.ErrDuplicateUsername
	}

	return nil
}
