package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fivefactor/ipipneo/internal/adapters/outbound/answers"
	"github.com/fivefactor/ipipneo/internal/application"
	"github.com/fivefactor/ipipneo/internal/domain"
	"github.com/fivefactor/ipipneo/internal/domain/scoring"
)

// registerTools registers all scoring MCP tools on the given server.
func registerTools(s *server.MCPServer, cfg domain.ScoringConfig) {
	// 1. ipipneo_score
	s.AddTool(
		mcplib.NewTool("ipipneo_score",
			mcplib.WithDescription("Score an IPIP-NEO questionnaire and return the Big-Five result record as JSON"),
			mcplib.WithString("sex",
				mcplib.Required(),
				mcplib.Description("Respondent sex: M or F"),
			),
			mcplib.WithNumber("age",
				mcplib.Required(),
				mcplib.Description("Respondent age, 10 to 110"),
			),
			mcplib.WithString("answers",
				mcplib.Required(),
				mcplib.Description(`Answer sheet as JSON: {"answers":[{"id_question":1,"id_select":3}, ...]}`),
			),
			mcplib.WithNumber("questions", mcplib.Description("Questionnaire form: 120 or 300 (default from config)")),
			mcplib.WithBoolean("test", mcplib.Description("Reverse items flagged with reverse_scored instead of the fixed tables")),
			mcplib.WithBoolean("compare", mcplib.Description("Echo the original and reverse-keyed answers")),
		),
		handleScore(cfg),
	)

	// 2. ipipneo_norm
	s.AddTool(
		mcplib.NewTool("ipipneo_norm",
			mcplib.WithDescription("Return the norm record used for a respondent's sex, age and questionnaire form"),
			mcplib.WithString("sex", mcplib.Required(), mcplib.Description("Respondent sex: M or F")),
			mcplib.WithNumber("age", mcplib.Required(), mcplib.Description("Respondent age, 10 to 110")),
			mcplib.WithNumber("questions", mcplib.Description("Questionnaire form: 120 or 300 (default from config)")),
		),
		handleNorm(cfg),
	)
}

func handleScore(cfg domain.ScoringConfig) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("answers")
		if err != nil {
			return errorResult("'answers' is required"), nil
		}
		sheet, err := answers.Decode(strings.NewReader(raw))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		override := domain.ScoringConfig{
			Questions: domain.Variant(int(request.GetFloat("questions", 0))),
			Test:      request.GetBool("test", false),
		}
		svc, err := application.NewScoreService(cfg.Merge(override))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result, err := svc.Compute(domain.ScoreRequest{
			Sex:     domain.Sex(request.GetString("sex", "")),
			Age:     int(request.GetFloat("age", 0)),
			Answers: sheet,
			Compare: request.GetBool("compare", false),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed (%s): %v", domain.KindOf(err), err)), nil
		}
		return jsonResult(result)
	}
}

func handleNorm(cfg domain.ScoringConfig) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		v := cfg.Merge(domain.ScoringConfig{Questions: domain.Variant(int(request.GetFloat("questions", 0)))}).Variant()
		sex := domain.Sex(request.GetString("sex", ""))
		age := int(request.GetFloat("age", 0))

		if err := v.Validate(); err != nil {
			return errorResult(err.Error()), nil
		}
		if err := domain.ValidateSex(sex); err != nil {
			return errorResult(err.Error()), nil
		}
		if err := domain.ValidateAge(age); err != nil {
			return errorResult(err.Error()), nil
		}

		rec, err := scoring.LookupNorm(v, sex, age)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(rec)
	}
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
