package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"opd-scheduler-service/internal/pkg/constvars"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationFS embed.FS

var dialects = map[string]string{
	constvars.LedgerDriverPostgres: "postgres",
	constvars.LedgerDriverSQLite:   "sqlite3",
}

// Up applies every pending migration for the given ledger driver and returns how many ran.
func Up(db *sql.DB, driver string) (int, error) {
	dialect, ok := dialects[driver]
	if !ok {
		return 0, fmt.Errorf("no migrations for ledger driver %q", driver)
	}

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFS,
		Root:       driver,
	}

	n, err := migrate.Exec(db, dialect, migrations, migrate.Up)
	if err != nil {
		return n, fmt.Errorf("apply %s migrations: %w", driver, err)
	}
	return n, nil
}
