package split

import "gowrangle/domain/core"

// Config defines partitioning parameters. Both ratios are fractions of the
// whole input frame.
type Config struct {
	ValidateRatio float64
	TestRatio     float64
	Seed          int64
}

// DefaultConfig returns a 70/10/20 train/test/validate split with seed 88
func DefaultConfig() Config {
	return Config{
		ValidateRatio: 0.2,
		TestRatio:     0.1,
		Seed:          88,
	}
}

// Validate checks 0 < v < 1, 0 < t < 1 and v + t < 1
func (c Config) Validate() error {
	if c.ValidateRatio <= 0 || c.ValidateRatio >= 1 {
		return core.NewRatioError("validate_ratio", c.ValidateRatio, "must be in (0,1)")
	}
	if c.TestRatio <= 0 || c.TestRatio >= 1 {
		return core.NewRatioError("test_ratio", c.TestRatio, "must be in (0,1)")
	}
	if c.ValidateRatio+c.TestRatio >= 1 {
		return core.NewRatioError("validate_ratio+test_ratio", c.ValidateRatio+c.TestRatio, "must be below 1")
	}
	return nil
}

// RemainderTestRatio is the test fraction of the post-validation remainder
// that yields TestRatio of the whole: t / (1 - v)
func (c Config) RemainderTestRatio() float64 {
	return c.TestRatio / (1 - c.ValidateRatio)
}
