// Package csvstore persists generated tables as CSV files and loads
// them back as raw rows for validation. One file per table, header row
// first, blank cells for absent optional values.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Path returns the CSV file location for a table inside dir.
func Path(dir, table string) string {
	return filepath.Join(dir, table+".csv")
}

// Write persists rows under dir/<table>.csv with the given header.
// Column order is exactly the header order, so identical input yields
// identical bytes.
func Write(dir, table string, columns []string, rows [][]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(Path(dir, table))
	if err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("write %s header: %w", table, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s row: %w", table, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", table, err)
	}
	return f.Close()
}

// Row is one data row as persisted, with its source line number for
// error reporting (the header is line 1).
type Row struct {
	Line       int
	Fields     map[string]string
	FieldCount int
}

// Get returns the named field, or "" if the row does not carry it.
func (r Row) Get(col string) string { return r.Fields[col] }

// Table is a loaded CSV file: its header and every data row.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Load reads dir/<table>.csv without interpreting values. Rows with a
// field count differing from the header are kept (mapped by position
// for the columns they do have) so the validator can flag them.
func Load(dir, table string) (*Table, error) {
	f, err := os.Open(Path(dir, table))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", table, err)
	}
	if len(records) == 0 {
		return &Table{Name: table}, nil
	}

	t := &Table{Name: table, Columns: records[0]}
	for i, record := range records[1:] {
		row := Row{
			Line:       i + 2,
			Fields:     make(map[string]string, len(t.Columns)),
			FieldCount: len(record),
		}
		for j, col := range t.Columns {
			if j < len(record) {
				row.Fields[col] = record[j]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// IDs collects the id column of every row into a set.
func (t *Table) IDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		if id := row.Get("id"); id != "" {
			ids[id] = struct{}{}
		}
	}
	return ids
}
