package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fivefactor/ipipneo/internal/adapters/outbound/answers"
	"github.com/fivefactor/ipipneo/internal/adapters/outbound/history"
	"github.com/fivefactor/ipipneo/internal/adapters/outbound/tui"
	"github.com/fivefactor/ipipneo/internal/application"
	"github.com/fivefactor/ipipneo/internal/domain"
)

func newScoreCmd() *cobra.Command {
	var (
		cf          configFlags
		answersPath string
		sex         string
		age         int
		compare     bool
		jsonOutput  bool
		outPath     string
		save        bool
		showHistory bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a questionnaire answer sheet",
		Long: "Read an answer sheet in the quiz JSON format and produce Big-Five domain and facet scores " +
			"normed for the respondent's sex and age.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var hist domain.ResultHistory = history.New()

			// Show history if requested
			if showHistory {
				entries, err := hist.Load(cf.dir)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if answersPath == "" {
				return errors.New("--answers is required")
			}

			cfg, err := cf.resolve(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, verbose)

			var reader domain.AnswerReader = answers.New()
			sheet, err := reader.Read(answersPath)
			if err != nil {
				return fmt.Errorf("reading answers: %w", err)
			}

			svc, err := application.NewScoreService(cfg, application.WithLogger(logger))
			if err != nil {
				return err
			}
			logger.Debug("scoring", "questions", int(svc.Variant()), "test", cfg.Test, "answers", len(sheet.Answers))

			result, err := svc.Compute(domain.ScoreRequest{
				Sex:     domain.Sex(sex),
				Age:     age,
				Answers: sheet,
				Compare: compare,
			})
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}

			if outPath != "" {
				if err := writeResult(outPath, result); err != nil {
					return fmt.Errorf("writing result: %w", err)
				}
				logger.Debug("result written", "path", outPath)
			}

			if save {
				if err := hist.Save(cf.dir, result.Entry()); err != nil {
					return fmt.Errorf("saving history: %w", err)
				}
				logger.Debug("history saved", "path", history.Path(cf.dir))
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(result))
			return nil
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVar(&answersPath, "answers", "", "Answer sheet JSON file (- for stdin)")
	cmd.Flags().StringVar(&sex, "sex", "", "Respondent sex: M or F")
	cmd.Flags().IntVar(&age, "age", 0, "Respondent age (10 to 110)")
	cmd.Flags().BoolVar(&compare, "compare", false, "Include original and reverse-keyed answers")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().StringVar(&outPath, "out", "", "Also write the JSON result to this file")
	cmd.Flags().BoolVar(&save, "save", false, "Append a compact entry to the local result history")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show result history")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log pipeline stages to stderr")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResult(path string, result *domain.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
