package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivefactor/ipipneo/internal/application"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show ipipneo version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ipipneo %s (%s)\n", application.Version, commit)
			return nil
		},
	}
}
