package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fivefactor/ipipneo/internal/adapters/outbound/config"
	"github.com/fivefactor/ipipneo/internal/domain"
)

// configFlags are shared by every command that scores or looks up norms.
// Flags left untouched fall back to .ipipneo.yaml, then to defaults.
type configFlags struct {
	dir       string
	questions int
	test      bool
	normMin   int
	normMax   int
	levelLow  int
	levelHigh int
}

func (f *configFlags) register(cmd *cobra.Command) {
	d := domain.DefaultThresholds()
	cmd.Flags().StringVar(&f.dir, "config", ".", "Directory holding .ipipneo.yaml")
	cmd.Flags().IntVar(&f.questions, "questions", int(domain.Variant120), "Questionnaire form: 120 or 300")
	cmd.Flags().BoolVar(&f.test, "test", false, "Reverse items flagged with reverse_scored instead of the fixed tables")
	cmd.Flags().IntVar(&f.normMin, "norm-min", d.NormScaleMin, "T-score below which the percentile is 1")
	cmd.Flags().IntVar(&f.normMax, "norm-max", d.NormScaleMax, "T-score above which the percentile is 99")
	cmd.Flags().IntVar(&f.levelLow, "level-low", d.LevelLow, "Scores below this are low")
	cmd.Flags().IntVar(&f.levelHigh, "level-high", d.LevelHigh, "Scores above this are high")
}

// resolve loads the config file and overlays the flags the user set.
func (f *configFlags) resolve(cmd *cobra.Command) (domain.ScoringConfig, error) {
	var loader domain.ConfigLoader = config.New()
	cfg, err := loader.Load(f.dir)
	if err != nil {
		return domain.ScoringConfig{}, fmt.Errorf("loading config: %w", err)
	}

	changed := cmd.Flags().Changed
	var override domain.ScoringConfig
	if changed("questions") {
		v := domain.Variant(f.questions)
		if err := v.Validate(); err != nil {
			return domain.ScoringConfig{}, err
		}
		override.Questions = v
	}
	override.Test = f.test
	if changed("norm-min") || changed("norm-max") {
		override.NormScale = &domain.NormScaleConf{}
		if changed("norm-min") {
			override.NormScale.Min = &f.normMin
		}
		if changed("norm-max") {
			override.NormScale.Max = &f.normMax
		}
	}
	if changed("level-low") || changed("level-high") {
		override.FacetLevel = &domain.FacetLevelConf{}
		if changed("level-low") {
			override.FacetLevel.Low = &f.levelLow
		}
		if changed("level-high") {
			override.FacetLevel.High = &f.levelHigh
		}
	}

	merged := cfg.Merge(override)
	if err := merged.Validate(); err != nil {
		return domain.ScoringConfig{}, err
	}
	return merged, nil
}

// newLogger returns a debug logger on stderr when verbose is set, and a
// discarding one otherwise.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}
