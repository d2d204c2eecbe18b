package repository

import (
	"errors"
	"strings"

	"ecamp/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	uniqueViolation          = "23505"
	integrityViolationPrefix = "23"
)

// classifyConstraint turns an integrity violation from either postgres driver
// into a *domain.ConstraintError naming the constraint. Other errors pass through.
func classifyConstraint(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, integrityViolationPrefix) {
		return &domain.ConstraintError{Constraint: pgErr.ConstraintName, Code: pgErr.Code, Err: err}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && strings.HasPrefix(string(pqErr.Code), integrityViolationPrefix) {
		return &domain.ConstraintError{Constraint: pqErr.Constraint, Code: string(pqErr.Code), Err: err}
	}

	return err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
