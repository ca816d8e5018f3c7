package frame

import (
	"strconv"
	"strings"
)

// ValueType defines the storage type for a cell
type ValueType string

const (
	ValueTypeString  ValueType = "string"
	ValueTypeNumeric ValueType = "numeric"
	ValueTypeMissing ValueType = "missing"
)

// Value is a single typed cell of a frame
type Value struct {
	Type ValueType
	str  string
	num  float64
}

// NewStringValue creates a string value. The empty string is missing, but
// whitespace is kept as-is so callers can decide how to treat blanks.
func NewStringValue(s string) Value {
	if s == "" {
		return NewMissingValue()
	}
	return Value{Type: ValueTypeString, str: s}
}

// NewNumericValue creates a numeric value
func NewNumericValue(n float64) Value {
	return Value{Type: ValueTypeNumeric, num: n}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Type: ValueTypeMissing}
}

func (v Value) IsNumeric() bool { return v.Type == ValueTypeNumeric }
func (v Value) IsString() bool  { return v.Type == ValueTypeString }
func (v Value) IsMissing() bool { return v.Type == ValueTypeMissing }

// Float returns the numeric payload and whether the value is numeric
func (v Value) Float() (float64, bool) {
	if v.Type != ValueTypeNumeric {
		return 0, false
	}
	return v.num, true
}

// String renders the value the way it is written to a cache file.
// Missing values render as the empty string.
func (v Value) String() string {
	switch v.Type {
	case ValueTypeString:
		return v.str
	case ValueTypeNumeric:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return ""
}

// Label is the categorical key of a value, used for stratification and
// encoding. Missing values have no label.
func (v Value) Label() (string, bool) {
	if v.Type == ValueTypeMissing {
		return "", false
	}
	return v.String(), true
}

// IsBlank reports whether the value is missing or whitespace-only text
func (v Value) IsBlank() bool {
	switch v.Type {
	case ValueTypeMissing:
		return true
	case ValueTypeString:
		return strings.TrimSpace(v.str) == ""
	}
	return false
}

// ToNumeric coerces a value to a number. Numeric values pass through,
// strings are parsed after trimming, missing stays missing.
func (v Value) ToNumeric() (Value, bool) {
	switch v.Type {
	case ValueTypeNumeric, ValueTypeMissing:
		return v, true
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
	if err != nil {
		return v, false
	}
	return NewNumericValue(n), true
}
