package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de clase 23 de PostgreSQL para violaciones de constraint único.
const codigoUniqueViolation = "23505"

// isUniqueViolation detecta el 23505, que los repositorios traducen a los
// errores de duplicado del dominio.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoUniqueViolation
}
