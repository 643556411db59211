package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/fivefactor/ipipneo/internal/application"
	"github.com/fivefactor/ipipneo/internal/domain"
)

// NewIPIPNeoMCPServer creates a new MCP server with all scoring tools and
// resources registered. Each call scores against cfg; per-call arguments
// may override the variant and test mode.
func NewIPIPNeoMCPServer(cfg domain.ScoringConfig) *server.MCPServer {
	s := server.NewMCPServer(
		application.LibraryName,
		application.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, cfg)
	registerResources(s)

	return s
}
