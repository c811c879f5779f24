package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// ApplySchema executes the embedded up migrations directly against db,
// without golang-migrate's version bookkeeping. Tests use it to install the
// schema inside an isolated search_path.
func ApplySchema(ctx context.Context, db *stdsql.DB) error {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		ddl, err := fs.ReadFile(migrationsFS, "migrations/"+name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(ddl)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}
	return nil
}
