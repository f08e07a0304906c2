package handlers

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isForeignKeyViolation reports whether err is a Postgres foreign key
// violation (SQLSTATE 23503). The delete handlers check reference counts
// first, but a registration inserted between the count and the delete still
// trips the database constraint; that case maps to the same conflict
// response as the pre-check.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
