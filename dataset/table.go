// Package dataset provides a small column-ordered string table used to pass
// subject and study lists between pipeline stages and to shape results.
//
// The table is deliberately untyped: callers may attach arbitrary extra
// columns (sex, species, treatment arm, ...) and filtering stages preserve
// them untouched. Message columns from consecutive stages are merged rather
// than overwritten.
package dataset

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MessageSeparator joins messages accumulated across pipeline stages in a
// shared message column.
const MessageSeparator = "|"

// Row is a single table row keyed by column name. Missing keys read as "".
type Row map[string]string

// Table is an ordered-column collection of rows.
type Table struct {
	columns []string
	rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	t := &Table{}
	for _, c := range columns {
		t.AddColumn(c)
	}
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return t.columns
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column if not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.columns = append(t.columns, name)
	}
}

// Append adds a row. Keys not yet known become new trailing columns, so a
// caller can build a table row-first without declaring columns up front.
func (t *Table) Append(row Row) {
	copied := make(Row, len(row))
	for k, v := range row {
		t.AddColumn(k)
		copied[k] = v
	}
	t.rows = append(t.rows, copied)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the underlying rows in insertion order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// AppendMessage merges msg into the named message column of row. An existing
// non-empty message is kept and msg appended with MessageSeparator; empty
// messages never produce a dangling separator.
func AppendMessage(row Row, column, msg string) {
	if msg == "" {
		return
	}
	if existing := row[column]; existing != "" {
		row[column] = existing + MessageSeparator + msg
		return
	}
	row[column] = msg
}

// MarshalJSON renders the table as an array of objects in column order.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := make([]map[string]string, 0, len(t.rows))
	for _, row := range t.rows {
		obj := make(map[string]string, len(t.columns))
		for _, c := range t.columns {
			obj[c] = row[c]
		}
		out = append(out, obj)
	}
	return json.Marshal(out)
}

// String renders an aligned text view for CLI output.
func (t *Table) String() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = len(c)
	}
	for _, row := range t.rows {
		for i, c := range t.columns {
			if l := len(row[c]); l > widths[i] {
				widths[i] = l
			}
		}
	}

	var b strings.Builder
	for i, c := range t.columns {
		fmt.Fprintf(&b, "%-*s  ", widths[i], c)
	}
	b.WriteString("\n")
	for _, row := range t.rows {
		for i, c := range t.columns {
			fmt.Fprintf(&b, "%-*s  ", widths[i], row[c])
		}
		b.WriteString("\n")
	}
	return b.String()
}
