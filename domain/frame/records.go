package frame

import (
	"fmt"
	"strconv"
	"strings"

	"gowrangle/domain/core"
)

// InferColumn converts raw text cells into typed values. A column is
// numeric when every non-empty cell parses as a float; otherwise every
// non-empty cell is kept as a string.
func InferColumn(raw []string) []Value {
	numeric := true
	nonEmpty := 0
	for _, s := range raw {
		if s == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			numeric = false
			break
		}
	}

	values := make([]Value, len(raw))
	for i, s := range raw {
		switch {
		case s == "":
			values[i] = NewMissingValue()
		case numeric && nonEmpty > 0:
			n, _ := strconv.ParseFloat(s, 64)
			values[i] = NewNumericValue(n)
		default:
			values[i] = NewStringValue(s)
		}
	}
	return values
}

// FromRecords builds a frame from a header and text rows. When indexed is
// true the first column holds the row index labels and is not a data column.
func FromRecords(header []string, rows [][]string, indexed bool) (*Frame, error) {
	start := 0
	if indexed {
		if len(header) == 0 {
			return nil, fmt.Errorf("indexed records need at least one column")
		}
		start = 1
	}

	columns := make([]string, 0, len(header)-start)
	for _, h := range header[start:] {
		columns = append(columns, strings.TrimSpace(h))
	}

	index := RangeIndex(len(rows))
	raw := make([][]string, len(columns))
	for j := range raw {
		raw[j] = make([]string, len(rows))
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i, len(row), len(header))
		}
		if indexed {
			label, err := strconv.Atoi(strings.TrimSpace(row[0]))
			if err != nil {
				return nil, fmt.Errorf("%w: index label %q at row %d", core.ErrNotNumeric, row[0], i)
			}
			index[i] = label
		}
		for j := range columns {
			raw[j][i] = row[start+j]
		}
	}

	cells := make(map[string][]Value, len(columns))
	for j, name := range columns {
		cells[name] = InferColumn(raw[j])
	}

	return New(columns, index, cells)
}

// Records renders the frame as text rows with the index as an unnamed
// leading column.
func (f *Frame) Records() (header []string, rows [][]string) {
	header = append([]string{""}, f.columns...)
	rows = make([][]string, f.Len())
	for i, label := range f.index {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(label))
		for _, name := range f.columns {
			row = append(row, f.cells[name][i].String())
		}
		rows[i] = row
	}
	return header, rows
}
