package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUndefinedTable verifica si un error es por tabla inexistente (42P01).
// La tabla settings es opcional: sin ella se usa la moneda configurada.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01" // undefined_table
	}
	return false
}

// isQueryCanceled verifica si Postgres canceló la consulta (57014), lo que ocurre
// cuando el contexto de la solicitud se cancela a mitad de la ejecución.
func isQueryCanceled(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "57014" // query_canceled
	}
	return false
}
