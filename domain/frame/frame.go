package frame

import (
	"fmt"

	"gowrangle/domain/core"
)

// Frame is an immutable table of typed cells with one integer index label
// per row. Operations return new frames; cell slices may be shared between
// frames but are never written after construction.
type Frame struct {
	columns []string
	index   []int
	cells   map[string][]Value
}

// New builds a frame from column-ordered cells. Every column must have
// len(index) cells.
func New(columns []string, index []int, cells map[string][]Value) (*Frame, error) {
	seen := make(map[string]bool, len(columns))
	for _, name := range columns {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true

		values, ok := cells[name]
		if !ok {
			return nil, core.NewMissingColumnError(name)
		}
		if len(values) != len(index) {
			return nil, fmt.Errorf("column %q has %d cells, index has %d rows", name, len(values), len(index))
		}
	}

	return &Frame{
		columns: append([]string(nil), columns...),
		index:   append([]int(nil), index...),
		cells:   cells,
	}, nil
}

// RangeIndex returns the default 0..n-1 index
func RangeIndex(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return index
}

// Len returns the number of rows
func (f *Frame) Len() int {
	return len(f.index)
}

// Columns returns the column names in order
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// Index returns a copy of the row index labels
func (f *Frame) Index() []int {
	return append([]int(nil), f.index...)
}

// HasColumn reports whether the frame carries the named column
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cells[name]
	return ok
}

// Column returns the cells of a column
func (f *Frame) Column(name string) ([]Value, error) {
	values, ok := f.cells[name]
	if !ok {
		return nil, core.NewMissingColumnError(name)
	}
	return append([]Value(nil), values...), nil
}

// Cell returns the value at a row position
func (f *Frame) Cell(row int, column string) (Value, error) {
	values, ok := f.cells[column]
	if !ok {
		return Value{}, core.NewMissingColumnError(column)
	}
	if row < 0 || row >= len(values) {
		return Value{}, fmt.Errorf("row %d out of range [0,%d)", row, len(values))
	}
	return values[row], nil
}

// RequireColumns fails with the first absent column
func (f *Frame) RequireColumns(names ...string) error {
	for _, name := range names {
		if !f.HasColumn(name) {
			return core.NewMissingColumnError(name)
		}
	}
	return nil
}

// Take returns the rows at the given positions, in that order
func (f *Frame) Take(positions []int) *Frame {
	index := make([]int, len(positions))
	for i, pos := range positions {
		index[i] = f.index[pos]
	}

	cells := make(map[string][]Value, len(f.columns))
	for _, name := range f.columns {
		src := f.cells[name]
		dst := make([]Value, len(positions))
		for i, pos := range positions {
			dst[i] = src[pos]
		}
		cells[name] = dst
	}

	return &Frame{columns: f.Columns(), index: index, cells: cells}
}

// Filter keeps the rows for which keep returns true
func (f *Frame) Filter(keep func(row int) bool) *Frame {
	positions := make([]int, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		if keep(i) {
			positions = append(positions, i)
		}
	}
	return f.Take(positions)
}

// DropColumns removes columns. Every named column must exist.
func (f *Frame) DropColumns(names ...string) (*Frame, error) {
	if err := f.RequireColumns(names...); err != nil {
		return nil, err
	}

	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}

	columns := make([]string, 0, len(f.columns))
	cells := make(map[string][]Value, len(f.columns))
	for _, name := range f.columns {
		if drop[name] {
			continue
		}
		columns = append(columns, name)
		cells[name] = f.cells[name]
	}

	return &Frame{columns: columns, index: f.Index(), cells: cells}, nil
}

// WithColumn replaces a column in place or appends it at the end
func (f *Frame) WithColumn(name string, values []Value) (*Frame, error) {
	if len(values) != f.Len() {
		return nil, fmt.Errorf("column %q has %d cells, frame has %d rows", name, len(values), f.Len())
	}

	columns := f.Columns()
	if !f.HasColumn(name) {
		columns = append(columns, name)
	}

	cells := make(map[string][]Value, len(columns))
	for k, v := range f.cells {
		cells[k] = v
	}
	cells[name] = append([]Value(nil), values...)

	return &Frame{columns: columns, index: f.Index(), cells: cells}, nil
}

// Concat appends the columns of other, which must share this frame's index
func (f *Frame) Concat(other *Frame) (*Frame, error) {
	if other.Len() != f.Len() {
		return nil, fmt.Errorf("cannot concat frames of %d and %d rows", f.Len(), other.Len())
	}
	for i, label := range f.index {
		if other.index[i] != label {
			return nil, fmt.Errorf("cannot concat frames with different index at row %d", i)
		}
	}

	out := f
	for _, name := range other.columns {
		var err error
		if out, err = out.WithColumn(name, other.cells[name]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
