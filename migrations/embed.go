// Package migrations embeds the SQL schema migrations into the binary.
//
// Files follow the naming convention YYYYMMDD_HHMMSS_description.up.sql
// with a matching .down.sql for rollback. The init function wires the
// embedded filesystem into the database package so Migrate() can find them.
package migrations

import (
	"embed"

	"github.com/havengate/havengate/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "."
}
