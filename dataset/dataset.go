// Package dataset provides an in-memory table of named numeric columns used as
// the input to a regression fit. Missing values are represented by NaN.
package dataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrColumnNotFound     = errors.New("column not found in table")
	ErrColumnExists       = errors.New("column already exists in table")
	ErrNoColumnData       = errors.New("no column data")
	ErrColumnLenMismatch  = errors.New("column has a different length than the table")
	ErrPairedLenMismatch  = errors.New("paired columns have different lengths")
	ErrUninitializedTable = errors.New("uninitialized table")
)

// Table stores an ordered set of named float64 columns of equal length.
// Columns are copied on insert and on read so a table cannot be mutated
// through shared slices.
type Table struct {
	names []string
	cols  map[string][]float64
	n     int
}

// New returns an empty table. The first column added sets the row count.
func New() *Table {
	return &Table{
		cols: make(map[string][]float64),
	}
}

// NewFromColumns builds a table from name/column pairs in the given order.
func NewFromColumns(names []string, cols [][]float64) (*Table, error) {
	t := New()
	if len(names) != len(cols) {
		return nil, fmt.Errorf("got %d names for %d columns, %w", len(names), len(cols), ErrPairedLenMismatch)
	}
	for i, name := range names {
		if err := t.AddColumn(name, cols[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddColumn appends a named column to the table. The column must have the
// same length as any previously added column.
func (t *Table) AddColumn(name string, vals []float64) error {
	if t == nil {
		return ErrUninitializedTable
	}
	if len(vals) == 0 {
		return fmt.Errorf("%q, %w", name, ErrNoColumnData)
	}
	if _, exists := t.cols[name]; exists {
		return fmt.Errorf("%q, %w", name, ErrColumnExists)
	}
	if len(t.names) > 0 && len(vals) != t.n {
		return fmt.Errorf("%q has length %d, but table has %d rows, %w", name, len(vals), t.n, ErrColumnLenMismatch)
	}

	col := make([]float64, len(vals))
	copy(col, vals)

	t.names = append(t.names, name)
	t.cols[name] = col
	t.n = len(col)
	return nil
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	if t == nil {
		return nil, ErrUninitializedTable
	}
	col, exists := t.cols[name]
	if !exists {
		return nil, fmt.Errorf("%q, %w", name, ErrColumnNotFound)
	}
	out := make([]float64, len(col))
	copy(out, col)
	return out, nil
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

func (t *Table) Copy() *Table {
	if t == nil {
		return nil
	}
	out := New()
	for _, name := range t.names {
		// AddColumn copies and cannot fail on a valid source table
		_ = out.AddColumn(name, t.cols[name])
	}
	return out
}

// CompleteCases returns the pairs of x and y where neither value is NaN,
// preserving row order. The inputs must have the same length.
func CompleteCases(x, y []float64) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("got lengths %d and %d, %w", len(x), len(y), ErrPairedLenMismatch)
	}
	xOut := make([]float64, 0, len(x))
	yOut := make([]float64, 0, len(y))
	for i := 0; i < len(x); i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xOut = append(xOut, x[i])
		yOut = append(yOut, y[i])
	}
	return xOut, yOut, nil
}
