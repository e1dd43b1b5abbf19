package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// sqlState devuelve el SQLSTATE de un error de PostgreSQL o "" si no lo es.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return sqlState(err) == pgerrcode.UniqueViolation
}

// isCheckViolation verifica si un error es una violación de CHECK (23514).
func isCheckViolation(err error) bool {
	return sqlState(err) == pgerrcode.CheckViolation
}

// isInvalidText verifica si un valor no pudo convertirse al tipo de la columna (22P02), p. ej. un uuid mal formado.
func isInvalidText(err error) bool {
	return sqlState(err) == pgerrcode.InvalidTextRepresentation
}
