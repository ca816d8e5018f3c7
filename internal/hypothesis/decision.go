package hypothesis

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultAlpha is the significance level used when Config.Alpha is zero
const DefaultAlpha = 0.05

// Config carries the significance level and any statistics to report
// alongside the decision. Nil statistics are not printed.
type Config struct {
	Alpha float64
	T     *float64
	R     *float64
	Chi2  *float64
}

// Decision is the outcome of comparing a p-value with alpha. Only two
// tailed tests are handled.
type Decision struct {
	NullHypothesis string
	P              float64
	Alpha          float64
	Reject         bool
	T              *float64
	R              *float64
	Chi2           *float64
}

// Decide rejects the null hypothesis when p < alpha
func Decide(p float64, nullHypothesis string, config Config) Decision {
	alpha := config.Alpha
	if alpha == 0 {
		alpha = DefaultAlpha
	}
	return Decision{
		NullHypothesis: nullHypothesis,
		P:              p,
		Alpha:          alpha,
		Reject:         p < alpha,
		T:              config.T,
		R:              config.R,
		Chi2:           config.Chi2,
	}
}

// Float returns a pointer to v, for Config statistics
func Float(v float64) *float64 {
	return &v
}

// Reporter prints decisions
type Reporter struct {
	Out io.Writer
}

// NewReporter creates a reporter writing to stdout
func NewReporter() *Reporter {
	return &Reporter{Out: os.Stdout}
}

// Report prints the null hypothesis, the decision and any statistics
func (r *Reporter) Report(d Decision) error {
	if _, err := fmt.Fprintf(r.Out, "\n\033[1mThe null hypothesis was:\033[0m %s\n", d.NullHypothesis); err != nil {
		return err
	}

	var err error
	if d.Reject {
		_, err = fmt.Fprintf(r.Out, "\033[1mWe reject the null hypothesis\033[0m, p = %s | α = %s\n", num(d.P), num(d.Alpha))
	} else {
		_, err = fmt.Fprintf(r.Out, "We failed to reject the null hypothesis, p = %s | α = %s\n", num(d.P), num(d.Alpha))
	}
	if err != nil {
		return err
	}

	for _, stat := range []struct {
		name  string
		value *float64
	}{{"t", d.T}, {"r", d.R}, {"chi2", d.Chi2}} {
		if stat.value == nil {
			continue
		}
		if _, err := fmt.Fprintf(r.Out, "  %s: %s\n", stat.name, num(*stat.value)); err != nil {
			return err
		}
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
