package domain

import "fmt"

// Thresholds carries the per-instance bounds used by the normalizer and the
// level classifier. Built from defaults merged with user overrides.
type Thresholds struct {
	// T-scores below NormScaleMin clamp the percentile to 1, above
	// NormScaleMax to 99.
	NormScaleMin int
	NormScaleMax int

	// score < LevelLow is "low", score > LevelHigh is "high".
	LevelLow  int
	LevelHigh int
}

// DefaultThresholds returns the instrument defaults: 32/73 and 45/55.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NormScaleMin: 32,
		NormScaleMax: 73,
		LevelLow:     45,
		LevelHigh:    55,
	}
}

// Validate requires min < max and low <= high.
func (t Thresholds) Validate() error {
	if t.NormScaleMin >= t.NormScaleMax {
		return NewConfigurationError(ErrInvalidThresholds,
			fmt.Sprintf("norm scale min (%d) must be below max (%d)", t.NormScaleMin, t.NormScaleMax))
	}
	if t.LevelLow > t.LevelHigh {
		return NewConfigurationError(ErrInvalidThresholds,
			fmt.Sprintf("facet level low (%d) must not exceed high (%d)", t.LevelLow, t.LevelHigh))
	}
	return nil
}

// Classify maps a score to a level. The score is truncated toward zero first.
func (t Thresholds) Classify(score float64) Level {
	s := int(score)
	switch {
	case s < t.LevelLow:
		return LevelLow
	case s <= t.LevelHigh:
		return LevelAverage
	default:
		return LevelHigh
	}
}
