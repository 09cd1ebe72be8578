package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation de PostgreSQL.
const codeUniqueViolation = "23505"

// isUniqueViolation informa si err es una violación de constraint único,
// para mapearla a domain.ErrDuplicate en los repositorios.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
