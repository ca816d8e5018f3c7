package frame

import (
	"testing"

	"gowrangle/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := FromRecords(
		[]string{"", "gender", "total_charges", "churn"},
		[][]string{
			{"10", "Male", "29.85", "No"},
			{"11", "Female", " ", "Yes"},
			{"12", "Female", "108.15", "No"},
			{"13", "", "1840.75", "Yes"},
		},
		true,
	)
	require.NoError(t, err)
	return f
}

func TestFromRecords_IndexAndInference(t *testing.T) {
	f := sampleFrame(t)

	assert.Equal(t, []int{10, 11, 12, 13}, f.Index())
	assert.Equal(t, []string{"gender", "total_charges", "churn"}, f.Columns())

	// A whitespace-only cell keeps the whole column textual.
	charges, err := f.Column("total_charges")
	require.NoError(t, err)
	assert.True(t, charges[0].IsString())
	assert.True(t, charges[1].IsBlank())

	gender, err := f.Column("gender")
	require.NoError(t, err)
	assert.True(t, gender[3].IsMissing())
}

func TestFromRecords_NumericColumn(t *testing.T) {
	f, err := FromRecords([]string{"tenure", "name"}, [][]string{{"1", "a"}, {"", "b"}, {"2.5", "c"}}, false)
	require.NoError(t, err)

	tenure, err := f.Column("tenure")
	require.NoError(t, err)
	n, ok := tenure[2].Float()
	assert.True(t, ok)
	assert.Equal(t, 2.5, n)
	assert.True(t, tenure[1].IsMissing())
	assert.Equal(t, []int{0, 1, 2}, f.Index())
}

func TestFromRecords_BadIndex(t *testing.T) {
	_, err := FromRecords([]string{"", "a"}, [][]string{{"x", "1"}}, true)
	assert.ErrorIs(t, err, core.ErrNotNumeric)
}

func TestRecords_RoundTripsIndex(t *testing.T) {
	f := sampleFrame(t)
	header, rows := f.Records()

	assert.Equal(t, []string{"", "gender", "total_charges", "churn"}, header)
	assert.Equal(t, []string{"13", "", "1840.75", "Yes"}, rows[3])

	back, err := FromRecords(header, rows, true)
	require.NoError(t, err)
	assert.Equal(t, f.Index(), back.Index())
	assert.Equal(t, f.Columns(), back.Columns())
}

func TestTakeAndFilter(t *testing.T) {
	f := sampleFrame(t)

	sub := f.Take([]int{2, 0})
	assert.Equal(t, []int{12, 10}, sub.Index())

	charges, err := f.Column("total_charges")
	require.NoError(t, err)
	kept := f.Filter(func(row int) bool { return !charges[row].IsBlank() })
	assert.Equal(t, []int{10, 12, 13}, kept.Index())
	assert.Equal(t, 4, f.Len(), "source frame is untouched")
}

func TestDropColumns(t *testing.T) {
	f := sampleFrame(t)

	out, err := f.DropColumns("gender")
	require.NoError(t, err)
	assert.Equal(t, []string{"total_charges", "churn"}, out.Columns())
	assert.True(t, f.HasColumn("gender"))

	_, err = f.DropColumns("customer_id")
	assert.ErrorIs(t, err, core.ErrMissingColumn)
	assert.True(t, core.IsLookupError(err))
}

func TestToNumeric(t *testing.T) {
	f := sampleFrame(t)

	_, err := f.ToNumeric("total_charges")
	assert.ErrorIs(t, err, core.ErrNotNumeric)

	f = f.Take([]int{0, 2})
	out, err := f.ToNumeric("total_charges")
	require.NoError(t, err)
	v, err := out.Cell(1, "total_charges")
	require.NoError(t, err)
	n, ok := v.Float()
	assert.True(t, ok)
	assert.Equal(t, 108.15, n)
}

func TestMapValues(t *testing.T) {
	f := sampleFrame(t)

	values, err := f.MapValues("churn", map[string]float64{"Yes": 1, "No": 0})
	require.NoError(t, err)
	got := make([]float64, len(values))
	for i, v := range values {
		got[i], _ = v.Float()
	}
	assert.Equal(t, []float64{0, 1, 0, 1}, got)

	values, err = f.MapValues("gender", map[string]float64{"Yes": 1})
	require.NoError(t, err)
	assert.True(t, values[0].IsMissing())
}

func TestOneHot_DropFirst(t *testing.T) {
	f, err := FromRecords(
		[]string{"contract_type", "gender"},
		[][]string{
			{"Month-to-month", "Male"},
			{"Two year", "Female"},
			{"One year", ""},
			{"Month-to-month", "Female"},
		},
		false,
	)
	require.NoError(t, err)

	dummies, err := f.OneHot([]string{"contract_type", "gender"}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"contract_type_One year", "contract_type_Two year", "gender_Male"}, dummies.Columns())

	male, err := dummies.Column("gender_Male")
	require.NoError(t, err)
	got := make([]float64, len(male))
	for i, v := range male {
		got[i], _ = v.Float()
	}
	assert.Equal(t, []float64{1, 0, 0, 0}, got)
}

func TestConcat(t *testing.T) {
	f := sampleFrame(t)
	dummies, err := f.OneHot([]string{"churn"}, true)
	require.NoError(t, err)

	out, err := f.Concat(dummies)
	require.NoError(t, err)
	assert.Equal(t, []string{"gender", "total_charges", "churn", "churn_Yes"}, out.Columns())

	_, err = f.Concat(dummies.Take([]int{0}))
	assert.Error(t, err)
}

func TestNew_Validation(t *testing.T) {
	_, err := New([]string{"a", "a"}, []int{0}, map[string][]Value{"a": {NewNumericValue(1)}})
	assert.Error(t, err)

	_, err = New([]string{"a"}, []int{0, 1}, map[string][]Value{"a": {NewNumericValue(1)}})
	assert.Error(t, err)

	_, err = New([]string{"b"}, []int{0}, map[string][]Value{})
	assert.ErrorIs(t, err, core.ErrMissingColumn)
}
