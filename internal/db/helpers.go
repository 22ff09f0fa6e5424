package db

import "database/sql"

// QueryRower is the subset of *sql.DB the helpers need; *sql.Tx satisfies
// it too.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
