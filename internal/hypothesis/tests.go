package hypothesis

import (
	"errors"
	"fmt"
	"math"

	"gowrangle/domain/core"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrDegenerate is returned when a sample is too small or has no variance
var ErrDegenerate = errors.New("sample too small or without variance")

// Test is the result of a two tailed test, ready to feed Decide
type Test struct {
	Statistic float64
	DF        float64
	P         float64
}

// WelchT compares the means of two independent samples without assuming
// equal variances
func WelchT(a, b []float64) (Test, error) {
	if len(a) < 2 || len(b) < 2 {
		return Test{}, fmt.Errorf("%w: need at least 2 observations per sample", ErrDegenerate)
	}

	meanA, _ := stats.Mean(a)
	meanB, _ := stats.Mean(b)
	varA, _ := stats.SampleVariance(a)
	varB, _ := stats.SampleVariance(b)

	na, nb := float64(len(a)), float64(len(b))
	seA, seB := varA/na, varB/nb
	if seA+seB == 0 {
		return Test{}, fmt.Errorf("%w: both samples are constant", ErrDegenerate)
	}

	t := (meanA - meanB) / math.Sqrt(seA+seB)
	df := (seA + seB) * (seA + seB) / (seA*seA/(na-1) + seB*seB/(nb-1))

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return Test{Statistic: t, DF: df, P: 2 * (1 - tDist.CDF(math.Abs(t)))}, nil
}

// Pearson tests the linear correlation of paired samples. Statistic is r.
func Pearson(x, y []float64) (Test, error) {
	if len(x) != len(y) {
		return Test{}, fmt.Errorf("%w: %d x, %d y", core.ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 3 {
		return Test{}, fmt.Errorf("%w: need at least 3 pairs", ErrDegenerate)
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return Test{}, fmt.Errorf("%w: constant sample", ErrDegenerate)
	}

	df := float64(len(x) - 2)
	if math.Abs(r) >= 1 {
		return Test{Statistic: r, DF: df, P: 0}, nil
	}

	t := r * math.Sqrt(df/(1-r*r))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return Test{Statistic: r, DF: df, P: 2 * (1 - tDist.CDF(math.Abs(t)))}, nil
}

// ChiSquareIndependence tests a contingency table of observed counts
func ChiSquareIndependence(table [][]float64) (Test, error) {
	rows := len(table)
	if rows < 2 {
		return Test{}, fmt.Errorf("%w: need at least 2 rows", ErrDegenerate)
	}
	cols := len(table[0])
	if cols < 2 {
		return Test{}, fmt.Errorf("%w: need at least 2 columns", ErrDegenerate)
	}

	rowSums := make([]float64, rows)
	colSums := make([]float64, cols)
	var total float64
	for i, row := range table {
		if len(row) != cols {
			return Test{}, fmt.Errorf("%w: row %d has %d cells, want %d", core.ErrLengthMismatch, i, len(row), cols)
		}
		for j, v := range row {
			rowSums[i] += v
			colSums[j] += v
			total += v
		}
	}

	var chi2 float64
	for i, row := range table {
		for j, observed := range row {
			expected := rowSums[i] * colSums[j] / total
			if expected == 0 {
				return Test{}, fmt.Errorf("%w: empty row or column", ErrDegenerate)
			}
			chi2 += (observed - expected) * (observed - expected) / expected
		}
	}

	df := float64((rows - 1) * (cols - 1))
	chiDist := distuv.ChiSquared{K: df}
	return Test{Statistic: chi2, DF: df, P: 1 - chiDist.CDF(chi2)}, nil
}
