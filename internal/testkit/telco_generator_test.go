package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelcoDataGenerator_Deterministic(t *testing.T) {
	cfg := DefaultTelcoConfig()
	cfg.CustomerCount = 60

	a := NewTelcoDataGenerator(cfg).Generate()
	b := NewTelcoDataGenerator(cfg).Generate()

	_, rowsA := a.Records()
	_, rowsB := b.Records()
	assert.Equal(t, rowsA, rowsB)
	assert.Equal(t, TelcoColumns, a.Columns())
}

func TestTelcoDataGenerator_Blanks(t *testing.T) {
	cfg := DefaultTelcoConfig()
	cfg.CustomerCount = 100
	cfg.BlankEvery = 25

	f := NewTelcoDataGenerator(cfg).Generate()
	charges, err := f.Column("total_charges")
	require.NoError(t, err)

	blanks := 0
	for _, v := range charges {
		if v.IsBlank() {
			blanks++
		}
	}
	assert.Equal(t, 4, blanks)
}

func TestLabeledFrame(t *testing.T) {
	f := LabeledFrame("y", map[string]int{"a": 3, "b": 1}, []string{"a", "b"})
	y, err := f.Column("y")
	require.NoError(t, err)

	got := make([]string, len(y))
	for i, v := range y {
		got[i] = v.String()
	}
	assert.Equal(t, []string{"a", "b", "a", "a"}, got)
}
