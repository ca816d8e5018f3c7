package frame

import (
	"fmt"
	"sort"

	"gowrangle/domain/core"
)

// MapValues translates the labels of a column through mapping. Labels
// that are not in the mapping, and missing cells, map to missing.
func (f *Frame) MapValues(column string, mapping map[string]float64) ([]Value, error) {
	values, err := f.Column(column)
	if err != nil {
		return nil, err
	}

	out := make([]Value, len(values))
	for i, v := range values {
		label, ok := v.Label()
		if !ok {
			out[i] = NewMissingValue()
			continue
		}
		if n, ok := mapping[label]; ok {
			out[i] = NewNumericValue(n)
		} else {
			out[i] = NewMissingValue()
		}
	}
	return out, nil
}

// ToNumeric coerces every cell of a column to a number
func (f *Frame) ToNumeric(column string) (*Frame, error) {
	values, err := f.Column(column)
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		n, ok := v.ToNumeric()
		if !ok {
			return nil, fmt.Errorf("%w: column %q row %d value %q", core.ErrNotNumeric, column, f.index[i], v.String())
		}
		values[i] = n
	}
	return f.WithColumn(column, values)
}

// Categories returns the sorted distinct labels of a column
func (f *Frame) Categories(column string) ([]string, error) {
	values, err := f.Column(column)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []string
	for _, v := range values {
		label, ok := v.Label()
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		categories = append(categories, label)
	}
	sort.Strings(categories)
	return categories, nil
}

// OneHot builds indicator columns named <column>_<category> for each
// categorical column, in column order then sorted category order. With
// dropFirst the first category of every column is left out. Missing cells
// are zero in every indicator.
func (f *Frame) OneHot(columns []string, dropFirst bool) (*Frame, error) {
	var names []string
	cells := make(map[string][]Value)

	for _, column := range columns {
		categories, err := f.Categories(column)
		if err != nil {
			return nil, err
		}
		if dropFirst && len(categories) > 0 {
			categories = categories[1:]
		}

		values := f.cells[column]
		for _, category := range categories {
			name := column + "_" + category
			indicator := make([]Value, len(values))
			for i, v := range values {
				label, ok := v.Label()
				if ok && label == category {
					indicator[i] = NewNumericValue(1)
				} else {
					indicator[i] = NewNumericValue(0)
				}
			}
			names = append(names, name)
			cells[name] = indicator
		}
	}

	return New(names, f.index, cells)
}
