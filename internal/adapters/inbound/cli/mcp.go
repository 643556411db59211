package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/fivefactor/ipipneo/internal/adapters/inbound/mcp"
	"github.com/fivefactor/ipipneo/internal/adapters/outbound/config"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the ipipneo MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start ipipneo MCP server (stdio)",
		Long:  "Start the ipipneo MCP server using stdio transport. This lets AI assistants score questionnaires and look up norms.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(configDir)
			if err != nil {
				return err
			}
			s := mcpadapter.NewIPIPNeoMCPServer(cfg)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&configDir, "config", ".", "Directory holding .ipipneo.yaml")

	return cmd
}
