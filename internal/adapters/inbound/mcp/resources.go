package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fivefactor/ipipneo/internal/domain"
	"github.com/fivefactor/ipipneo/internal/domain/scoring"
)

const facetsURI = "ipipneo://facets"

// registerResources registers all MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// ipipneo://facets - item layout of both questionnaire forms
	s.AddResource(
		mcplib.NewResource(
			facetsURI,
			"Facet Layout",
			mcplib.WithResourceDescription("The 30 facets with their item ids and reverse-keyed items, per questionnaire form"),
			mcplib.WithMIMEType("application/json"),
		),
		handleFacetsResource,
	)
}

func handleFacetsResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	layout := make(map[string][]domain.FacetInfo, len(domain.ValidVariants))
	for _, v := range domain.ValidVariants {
		rows, err := scoring.Layout(v)
		if err != nil {
			return nil, fmt.Errorf("building layout for %d questions: %w", int(v), err)
		}
		layout[fmt.Sprintf("%d", int(v))] = rows
	}

	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling facets: %w", err)
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      facetsURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
