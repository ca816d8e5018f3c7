package prep

import (
	"testing"

	"gowrangle/domain/core"
	"gowrangle/domain/frame"
	"gowrangle/internal"
	"gowrangle/internal/split"
	"gowrangle/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawTelco(t *testing.T, n, blankEvery int) *frame.Frame {
	t.Helper()
	cfg := testkit.DefaultTelcoConfig()
	cfg.CustomerCount = n
	cfg.BlankEvery = blankEvery
	return testkit.NewTelcoDataGenerator(cfg).Generate()
}

func floats(t *testing.T, f *frame.Frame, column string) []float64 {
	t.Helper()
	values, err := f.Column(column)
	require.NoError(t, err)
	out := make([]float64, len(values))
	for i, v := range values {
		n, ok := v.Float()
		require.True(t, ok, "%s row %d is %s", column, i, v.Type)
		out[i] = n
	}
	return out
}

func TestClean_DropsBlankChargesAndCoerces(t *testing.T) {
	raw := rawTelco(t, 100, 10)

	cleaned, err := Clean(raw, Telco)
	require.NoError(t, err)

	assert.Equal(t, 90, cleaned.Len())
	for _, label := range cleaned.Index() {
		assert.NotEqual(t, 9, label%10, "blank row %d survived", label)
	}
	floats(t, cleaned, "total_charges")

	// the raw frame is untouched
	assert.Equal(t, 100, raw.Len())
	assert.True(t, raw.HasColumn("customer_id"))
}

func TestClean_Columns(t *testing.T) {
	cleaned, err := Clean(rawTelco(t, 80, 0), Telco)
	require.NoError(t, err)

	for _, dropped := range Telco.DropColumns {
		assert.False(t, cleaned.HasColumn(dropped), dropped)
	}
	for _, kept := range []string{"gender", "contract_type", "churn", "phone_service"} {
		assert.True(t, cleaned.HasColumn(kept), kept)
	}
	for _, derived := range []string{"has_phone", "is_paperless", "has_partner", "has_dependents", "has_churned"} {
		assert.True(t, cleaned.HasColumn(derived), derived)
	}

	// dropped reference categories
	assert.False(t, cleaned.HasColumn("gender_Female"))
	assert.True(t, cleaned.HasColumn("gender_Male"))
	assert.False(t, cleaned.HasColumn("contract_type_Month-to-month"))
	assert.True(t, cleaned.HasColumn("contract_type_One year"))
	assert.True(t, cleaned.HasColumn("contract_type_Two year"))
	assert.False(t, cleaned.HasColumn("internet_service_type_DSL"))
	assert.True(t, cleaned.HasColumn("internet_service_type_Fiber optic"))

	// 20 kept raw columns and 5 derived ones come before the dummies
	columns := cleaned.Columns()
	require.Greater(t, len(columns), 25)
	assert.Equal(t, "has_churned", columns[24])
	assert.Equal(t, "gender_Male", columns[25])
}

func TestClean_BinaryRemap(t *testing.T) {
	raw := rawTelco(t, 50, 0)
	cleaned, err := Clean(raw, Telco)
	require.NoError(t, err)

	churn, err := cleaned.Column("churn")
	require.NoError(t, err)
	hasChurned := floats(t, cleaned, "has_churned")
	for i, v := range churn {
		if v.String() == "Yes" {
			assert.Equal(t, 1.0, hasChurned[i])
		} else {
			assert.Equal(t, 0.0, hasChurned[i])
		}
	}

	partner, err := cleaned.Column("partner")
	require.NoError(t, err)
	hasPartner := floats(t, cleaned, "has_partner")
	for i, v := range partner {
		assert.Equal(t, v.String() == "Yes", hasPartner[i] == 1)
	}
}

func TestClean_MissingColumn(t *testing.T) {
	raw, err := rawTelco(t, 20, 0).DropColumns("signup_date")
	require.NoError(t, err)

	_, err = Clean(raw, Telco)
	assert.ErrorIs(t, err, core.ErrMissingColumn)
	assert.True(t, core.IsLookupError(err))
}

func TestClean_WhitespaceOnlyRow(t *testing.T) {
	raw := rawTelco(t, 3, 0)
	charges, err := raw.Column("total_charges")
	require.NoError(t, err)
	charges[1] = frame.NewStringValue("   ")
	raw, err = raw.WithColumn("total_charges", charges)
	require.NoError(t, err)

	cleaned, err := Clean(raw, Telco)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, cleaned.Index())
	floats(t, cleaned, "total_charges")
}

func TestPrepare_SplitsOnChurn(t *testing.T) {
	raw := rawTelco(t, 400, 50)
	p := New(split.New(split.DefaultConfig(), internal.NewNopLogger()), internal.NewNopLogger())

	res, err := p.Prepare(raw, Telco)
	require.NoError(t, err)

	total := res.Train.Len() + res.Test.Len() + res.Validate.Len()
	assert.Equal(t, 392, total)
	assert.Equal(t, "churn", res.Summary.Target)

	for _, subset := range []*frame.Frame{res.Train, res.Test, res.Validate} {
		floats(t, subset, "total_charges")
		assert.True(t, subset.HasColumn("has_churned"))
		assert.True(t, subset.HasColumn("churn"))
	}
}

func TestPrepare_RatioOverrides(t *testing.T) {
	raw := rawTelco(t, 200, 0)
	p := New(split.New(split.Config{ValidateRatio: 0.25, TestRatio: 0.25, Seed: 1}, internal.NewNopLogger()), internal.NewNopLogger())

	res, err := p.Prepare(raw, Telco)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Validate.Len())
	assert.Equal(t, 50, res.Test.Len())
	assert.Equal(t, 100, res.Train.Len())
}
