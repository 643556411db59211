package domain

import "fmt"

// ScoringConfig holds scorer configuration loaded from .ipipneo.yaml.
type ScoringConfig struct {
	Questions  Variant         `yaml:"questions"   json:"questions,omitempty"`
	Test       bool            `yaml:"test"        json:"test,omitempty"`
	NormScale  *NormScaleConf  `yaml:"norm_scale"  json:"norm_scale,omitempty"`
	FacetLevel *FacetLevelConf `yaml:"facet_level" json:"facet_level,omitempty"`
}

// NormScaleConf overrides the T-score clamping bounds.
// Pointer types distinguish "not specified" from zero values.
type NormScaleConf struct {
	Min *int `yaml:"min,omitempty" json:"min,omitempty"`
	Max *int `yaml:"max,omitempty" json:"max,omitempty"`
}

// FacetLevelConf overrides the low/high level thresholds.
type FacetLevelConf struct {
	Low  *int `yaml:"low,omitempty"  json:"low,omitempty"`
	High *int `yaml:"high,omitempty" json:"high,omitempty"`
}

// DefaultConfig returns the 120-item form with default thresholds.
func DefaultConfig() ScoringConfig {
	return ScoringConfig{Questions: Variant120}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ScoringConfig) Validate() error {
	// questions may be left empty and defaulted later
	if c.Questions != 0 {
		if err := c.Questions.Validate(); err != nil {
			return err
		}
	}

	t := c.Thresholds()
	if c.NormScale != nil {
		for name, ptr := range map[string]*int{"norm_scale.min": c.NormScale.Min, "norm_scale.max": c.NormScale.Max} {
			if ptr != nil && *ptr <= 0 {
				return NewConfigurationError(ErrInvalidThresholds, fmt.Sprintf("%s must be > 0 (got %d)", name, *ptr))
			}
		}
	}
	if c.FacetLevel != nil {
		for name, ptr := range map[string]*int{"facet_level.low": c.FacetLevel.Low, "facet_level.high": c.FacetLevel.High} {
			if ptr != nil && (*ptr < 0 || *ptr > 100) {
				return NewConfigurationError(ErrInvalidThresholds, fmt.Sprintf("%s must be between 0 and 100 (got %d)", name, *ptr))
			}
		}
	}
	return t.Validate()
}

// Variant returns the configured form, defaulting to 120 items.
func (c ScoringConfig) Variant() Variant {
	if c.Questions == 0 {
		return Variant120
	}
	return c.Questions
}

// Thresholds merges the overrides onto DefaultThresholds.
func (c ScoringConfig) Thresholds() Thresholds {
	t := DefaultThresholds()
	if c.NormScale != nil {
		if c.NormScale.Min != nil {
			t.NormScaleMin = *c.NormScale.Min
		}
		if c.NormScale.Max != nil {
			t.NormScaleMax = *c.NormScale.Max
		}
	}
	if c.FacetLevel != nil {
		if c.FacetLevel.Low != nil {
			t.LevelLow = *c.FacetLevel.Low
		}
		if c.FacetLevel.High != nil {
			t.LevelHigh = *c.FacetLevel.High
		}
	}
	return t
}

// Merge overlays explicit values from override on top of c.
func (c ScoringConfig) Merge(override ScoringConfig) ScoringConfig {
	result := c
	if override.Questions != 0 {
		result.Questions = override.Questions
	}
	if override.Test {
		result.Test = true
	}
	if override.NormScale != nil {
		ns := NormScaleConf{}
		if result.NormScale != nil {
			ns = *result.NormScale
		}
		if override.NormScale.Min != nil {
			ns.Min = override.NormScale.Min
		}
		if override.NormScale.Max != nil {
			ns.Max = override.NormScale.Max
		}
		result.NormScale = &ns
	}
	if override.FacetLevel != nil {
		fl := FacetLevelConf{}
		if result.FacetLevel != nil {
			fl = *result.FacetLevel
		}
		if override.FacetLevel.Low != nil {
			fl.Low = override.FacetLevel.Low
		}
		if override.FacetLevel.High != nil {
			fl.High = override.FacetLevel.High
		}
		result.FacetLevel = &fl
	}
	return result
}
