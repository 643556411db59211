package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivefactor/ipipneo/internal/adapters/outbound/tui"
	"github.com/fivefactor/ipipneo/internal/domain"
	"github.com/fivefactor/ipipneo/internal/domain/scoring"
)

func newNormsCmd() *cobra.Command {
	var (
		cf         configFlags
		sex        string
		age        int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "norms",
		Short: "Show the norm record used for a respondent",
		Long:  "Print the reference means and standard deviations selected for a sex, age and questionnaire form.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.resolve(cmd)
			if err != nil {
				return err
			}
			s := domain.Sex(sex)
			if err := domain.ValidateSex(s); err != nil {
				return err
			}
			if err := domain.ValidateAge(age); err != nil {
				return err
			}

			rec, err := scoring.LookupNorm(cfg.Variant(), s, age)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, rec)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderNorm(rec, cfg.Variant(), s, age))
			return nil
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVar(&sex, "sex", "", "Respondent sex: M or F")
	cmd.Flags().IntVar(&age, "age", 0, "Respondent age (10 to 110)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the record as JSON")

	return cmd
}
