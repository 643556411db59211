package cli

import "github.com/spf13/cobra"

var commit = "none"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ipipneo",
		Short: "Score IPIP-NEO Big-Five questionnaires",
		Long: "ipipneo scores IPIP-NEO 120 and 300 item questionnaires into Big-Five domain and facet " +
			"percentiles normed by sex and age.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newNormsCmd())
	cmd.AddCommand(newFacetsCmd())
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
