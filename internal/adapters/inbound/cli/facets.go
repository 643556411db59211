package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivefactor/ipipneo/internal/adapters/outbound/tui"
	"github.com/fivefactor/ipipneo/internal/domain/scoring"
)

func newFacetsCmd() *cobra.Command {
	var (
		cf         configFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List the 30 facets and the items feeding each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.resolve(cmd)
			if err != nil {
				return err
			}

			rows, err := scoring.Layout(cfg.Variant())
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, rows)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderFacets(cfg.Variant(), rows))
			return nil
		},
	}

	cf.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the layout as JSON")

	return cmd
}
