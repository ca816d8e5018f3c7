package hypothesis

import (
	"bytes"
	"testing"

	"gowrangle/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	d := Decide(0.03, "churn is independent of contract type", Config{})
	assert.True(t, d.Reject)
	assert.Equal(t, DefaultAlpha, d.Alpha)

	d = Decide(0.10, "h0", Config{})
	assert.False(t, d.Reject)

	d = Decide(0.03, "h0", Config{Alpha: 0.01})
	assert.False(t, d.Reject)

	// p equal to alpha does not reject
	d = Decide(0.05, "h0", Config{})
	assert.False(t, d.Reject)
}

func TestReporter_Reject(t *testing.T) {
	var buf bytes.Buffer
	d := Decide(0.03, "means are equal", Config{T: Float(2.5)})
	require.NoError(t, (&Reporter{Out: &buf}).Report(d))

	want := "\n\033[1mThe null hypothesis was:\033[0m means are equal\n" +
		"\033[1mWe reject the null hypothesis\033[0m, p = 0.03 | α = 0.05\n" +
		"  t: 2.5\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_FailToReject(t *testing.T) {
	var buf bytes.Buffer
	d := Decide(0.1, "no correlation", Config{R: Float(0.12), Chi2: Float(3)})
	require.NoError(t, (&Reporter{Out: &buf}).Report(d))

	want := "\n\033[1mThe null hypothesis was:\033[0m no correlation\n" +
		"We failed to reject the null hypothesis, p = 0.1 | α = 0.05\n" +
		"  r: 0.12\n" +
		"  chi2: 3\n"
	assert.Equal(t, want, buf.String())
}

func TestWelchT(t *testing.T) {
	a := []float64{19.1, 20.3, 21.0, 18.7, 20.9, 19.8, 20.1, 19.5}
	b := []float64{22.4, 23.1, 21.9, 22.8, 24.0, 23.3, 22.2, 23.6}

	res, err := WelchT(a, b)
	require.NoError(t, err)
	assert.Less(t, res.Statistic, 0.0)
	assert.Less(t, res.P, 0.001)
	assert.Greater(t, res.DF, 10.0)
	assert.Less(t, res.DF, 14.0)

	same, err := WelchT(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, same.Statistic, 1e-12)
	assert.InDelta(t, 1.0, same.P, 1e-9)

	_, err = WelchT([]float64{1}, b)
	assert.ErrorIs(t, err, ErrDegenerate)
	_, err = WelchT([]float64{1, 1}, []float64{2, 2})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestPearson(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 12.2, 13.8, 16.1}

	res, err := Pearson(x, y)
	require.NoError(t, err)
	assert.Greater(t, res.Statistic, 0.99)
	assert.Less(t, res.P, 1e-5)
	assert.Equal(t, 6.0, res.DF)

	_, err = Pearson(x, y[:3])
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
	_, err = Pearson([]float64{1, 2}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestChiSquareIndependence(t *testing.T) {
	// expected counts equal observed
	res, err := ChiSquareIndependence([][]float64{{10, 20}, {20, 40}})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Statistic, 1e-12)
	assert.InDelta(t, 1.0, res.P, 1e-9)
	assert.Equal(t, 1.0, res.DF)

	res, err = ChiSquareIndependence([][]float64{{50, 10}, {10, 50}})
	require.NoError(t, err)
	assert.InDelta(t, 53.333, res.Statistic, 1e-3)
	assert.Less(t, res.P, 1e-6)

	_, err = ChiSquareIndependence([][]float64{{1, 2}})
	assert.ErrorIs(t, err, ErrDegenerate)
	_, err = ChiSquareIndependence([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
	_, err = ChiSquareIndependence([][]float64{{0, 2}, {0, 3}})
	assert.ErrorIs(t, err, ErrDegenerate)
}
