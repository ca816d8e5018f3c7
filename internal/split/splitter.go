package split

import (
	"math"
	"math/rand"
	"sort"

	"gowrangle/domain/core"
	"gowrangle/domain/frame"
	"gowrangle/internal"

	"github.com/montanaflynn/stats"
)

// Splitter partitions a frame into train, test and validate subsets with
// stratification on a target column
type Splitter struct {
	config Config
	logger *internal.Logger
}

// Result holds the three disjoint subsets
type Result struct {
	Train    *frame.Frame
	Test     *frame.Frame
	Validate *frame.Frame
	Summary  Summary
}

// Summary describes a realized split
type Summary struct {
	Total         int
	TrainSize     int
	TestSize      int
	ValidateSize  int
	TrainRatio    float64
	TestRatio     float64
	ValidateRatio float64
	Target        string
	Seed          int64
	Proportions   map[string]SubsetProportions // category -> share per subset
	MaxDeviation  float64                      // largest |subset share - overall share|
}

// SubsetProportions is the share of one category in each frame
type SubsetProportions struct {
	Overall  float64
	Train    float64
	Test     float64
	Validate float64
}

// New creates a splitter
func New(config Config, logger *internal.Logger) *Splitter {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Splitter{config: config, logger: logger}
}

// NewDefault creates a splitter with DefaultConfig
func NewDefault() *Splitter {
	return New(DefaultConfig(), nil)
}

// Config returns the splitter's configuration
func (s *Splitter) Config() Config {
	return s.config
}

// Split draws the validate subset from the whole frame first, then the
// test subset from the remainder at t/(1-v) so both sizes are fractions
// of the whole. The same frame, ratios and seed always give the same split.
func (s *Splitter) Split(f *frame.Frame, target string) (*Result, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	labels, err := targetLabels(f, target)
	if err != nil {
		return nil, err
	}

	positions := make([]int, f.Len())
	for i := range positions {
		positions[i] = i
	}

	rng := rand.New(rand.NewSource(s.config.Seed))

	rest, validate, err := stratifiedShuffleSplit(positions, labels, s.config.ValidateRatio, rng)
	if err != nil {
		return nil, err
	}
	train, test, err := stratifiedShuffleSplit(rest, labels, s.config.RemainderTestRatio(), rng)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Train:    f.Take(train),
		Test:     f.Take(test),
		Validate: f.Take(validate),
	}
	result.Summary = summarize(labels, train, test, validate, target, s.config.Seed)

	s.logger.Debug("[split] %s: train=%d test=%d validate=%d (max stratum deviation %.4f)",
		target, len(train), len(test), len(validate), result.Summary.MaxDeviation)
	return result, nil
}

func targetLabels(f *frame.Frame, target string) ([]string, error) {
	values, err := f.Column(target)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(values))
	for i, v := range values {
		label, ok := v.Label()
		if !ok {
			return nil, core.NewStratumError("target %q is missing at row %d", target, i)
		}
		labels[i] = label
	}
	return labels, nil
}

func summarize(labels []string, train, test, validate []int, target string, seed int64) Summary {
	total := len(labels)
	sum := Summary{
		Total:         total,
		TrainSize:     len(train),
		TestSize:      len(test),
		ValidateSize:  len(validate),
		TrainRatio:    float64(len(train)) / float64(total),
		TestRatio:     float64(len(test)) / float64(total),
		ValidateRatio: float64(len(validate)) / float64(total),
		Target:        target,
		Seed:          seed,
		Proportions:   make(map[string]SubsetProportions),
	}

	all := make([]int, total)
	for i := range all {
		all[i] = i
	}
	overall := shares(labels, all)
	trainShares := shares(labels, train)
	testShares := shares(labels, test)
	validateShares := shares(labels, validate)

	categories := make([]string, 0, len(overall))
	for label := range overall {
		categories = append(categories, label)
	}
	sort.Strings(categories)

	var deviations stats.Float64Data
	for _, label := range categories {
		p := SubsetProportions{
			Overall:  overall[label],
			Train:    trainShares[label],
			Test:     testShares[label],
			Validate: validateShares[label],
		}
		sum.Proportions[label] = p
		deviations = append(deviations,
			math.Abs(p.Train-p.Overall),
			math.Abs(p.Test-p.Overall),
			math.Abs(p.Validate-p.Overall),
		)
	}
	if maxDev, err := deviations.Max(); err == nil {
		sum.MaxDeviation = maxDev
	}
	return sum
}

func shares(labels []string, positions []int) map[string]float64 {
	out := make(map[string]float64)
	if len(positions) == 0 {
		return out
	}
	for _, pos := range positions {
		out[labels[pos]]++
	}
	for k := range out {
		out[k] /= float64(len(positions))
	}
	return out
}
