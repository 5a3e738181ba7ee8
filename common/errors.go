package common

import (
  "errors"
  "strings"

  "github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a unique index violation from
// the underlying driver. Postgres signals 23505; the sqlite driver used
// in tests reports a UNIQUE constraint message.
func IsUniqueViolation(err error) bool {
  if err == nil {
    return false
  }
  var pgErr *pgconn.PgError
  if errors.As(err, &pgErr) {
    return pgErr.Code == "23505"
  }
  return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
