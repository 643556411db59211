package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fivefactor/ipipneo/internal/adapters/outbound/config"
	"github.com/fivefactor/ipipneo/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		questions int
		test      bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .ipipneo.yaml configuration file",
		Long:  "Create a .ipipneo.yaml with the default norm scale and level thresholds spelled out.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			v := domain.Variant(questions)
			if err := v.Validate(); err != nil {
				return err
			}

			cfg := generateConfig(v, test)
			if err := cfg.Validate(); err != nil {
				return err
			}
			if _, err := config.Write(absPath, cfg, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().IntVar(&questions, "questions", int(domain.Variant120), "Questionnaire form: 120 or 300")
	cmd.Flags().BoolVar(&test, "test", false, "Use reverse_scored flags from the answer sheet")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .ipipneo.yaml")

	return cmd
}

func generateConfig(v domain.Variant, test bool) domain.ScoringConfig {
	t := domain.DefaultThresholds()
	return domain.ScoringConfig{
		Questions:  v,
		Test:       test,
		NormScale:  &domain.NormScaleConf{Min: &t.NormScaleMin, Max: &t.NormScaleMax},
		FacetLevel: &domain.FacetLevelConf{Low: &t.LevelLow, High: &t.LevelHigh},
	}
}
