package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerease/internal/database"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

// requireColumns fails when any of columns is absent from the public table,
// naming every missing column at once.
func requireColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return errNilDB
	}
	if strings.TrimSpace(table) == "" {
		return fmt.Errorf("%w: empty table name", ErrSchemaMismatch)
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	have := make(map[string]bool, len(columns))
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		have[c] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, col := range columns {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s missing %s", ErrSchemaMismatch, table, strings.Join(missing, ", "))
	}
	return nil
}
