package repository

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"commerce-admin/internal/apperr"
)

// psql builds $n-placeholder queries for pgx.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// selectLive is the single place the soft-delete predicate enters read
// queries: every repository read starts from a builder that already
// filters deleted rows.
func selectLive(table string, columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...).From(table).Where(squirrel.Eq{"deleted": false})
}

// updateLive restricts writes to live rows, so a concurrent soft delete
// surfaces as zero rows affected instead of resurrecting the record.
func updateLive(table string) squirrel.UpdateBuilder {
	return psql.Update(table).Where(squirrel.Eq{"deleted": false})
}

// uniqueViolation maps a Postgres duplicate-key error (23505) onto the
// structured duplicate error, using the constraint name to recover the
// offending field. The partial unique indexes are the authoritative
// uniqueness check; the service-level pre-check only exists for the
// friendlier fast path.
func uniqueViolation(err error, constraintFields map[string]string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if field, ok := constraintFields[pgErr.ConstraintName]; ok {
			return &apperr.UniqueConstraintError{Field: field}
		}
	}
	return nil
}
