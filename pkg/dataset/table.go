// Package dataset holds the in-memory seed table and its CSV input/output.
package dataset

import (
	"fmt"
	"strconv"

	"github.com/veldt-labs/synthgen/pkg/apperrors"
)

// Table is a fully materialized tabular dataset: an ordered header plus
// row-major string cells. The seed is small by contract, so holding it
// whole is fine; generated chunks never pass through a Table.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NumRows returns the number of data rows (the header is not a row).
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of name in the header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingColumn, name)
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// NumericColumn parses the named column as float64 values.
func (t *Table) NumericColumn(name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(col))
	for i, s := range col {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: parse %q: %w", name, i, s, err)
		}
		out[i] = v
	}
	return out, nil
}

// MaxIdentifier parses the named column as integers and returns its
// maximum. Values like "12.0" are tolerated the way a float parse
// tolerates them; non-numeric values are fatal.
func (t *Table) MaxIdentifier(name string) (int64, error) {
	col, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	if len(col) == 0 {
		return 0, apperrors.ErrEmptySeed
	}
	var max int64
	for i, s := range col {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: column %s row %d value %q", apperrors.ErrBadIdentifier, name, i, s)
		}
		if id := int64(v); i == 0 || id > max {
			max = id
		}
	}
	return max, nil
}
