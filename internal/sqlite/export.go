package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/toolshop/seedgen/internal/csvstore"
	"github.com/toolshop/seedgen/internal/validate"
	"github.com/toolshop/seedgen/pkg/types"
)

// Export loads the CSV dataset in dir and writes it into a SQLite
// database at dbPath. The dataset is validated first; an inconsistent
// dataset is never exported. All inserts run in one transaction, so
// the database file is complete or absent rows entirely.
func Export(dir, dbPath string) error {
	result := validate.New(dir).Run()
	if !result.Valid {
		return fmt.Errorf("%w: %d violations in %s", types.ErrValidationFailed, len(result.Violations), dir)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	for _, ddl := range schemaStatements {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, table := range types.TableNames {
		if err := exportTable(tx, dir, table); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return db.Close()
}

// exportTable inserts every row of one CSV table. Blank cells become
// SQL NULL; the validator has already guaranteed required fields are
// never blank.
func exportTable(tx *sql.Tx, dir, table string) error {
	t, err := csvstore.Load(dir, table)
	if err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}

	columns := types.Columns(table)
	if columns == nil {
		return fmt.Errorf("%w: %s", types.ErrTableUnknown, table)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("prepare %s insert: %w", table, err)
	}
	defer stmt.Close()

	args := make([]any, len(columns))
	for _, row := range t.Rows {
		for i, col := range columns {
			if value := row.Get(col); value != "" {
				args[i] = value
			} else {
				args[i] = nil
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert into %s (row %d): %w", table, row.Line, err)
		}
	}
	return nil
}
