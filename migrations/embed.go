package migrations

import (
	"embed"
	"io/fs"
)

// files stores forward-only SQL migrations for each supported dialect.
//
//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// ForDialect returns the migrations directory of one dialect.
func ForDialect(dialect string) (fs.FS, error) {
	return fs.Sub(files, dialect)
}
