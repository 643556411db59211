package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivefactor/ipipneo/internal/domain"
)

func makeReq(args map[string]interface{}) mcplib.CallToolRequest {
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcplib.CallToolResult) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcplib.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func neutralSheet(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"id_question":%d,"id_select":3}`, i+1)
	}
	return `{"answers":[` + strings.Join(parts, ",") + `]}`
}

func TestHandleScore(t *testing.T) {
	res, err := handleScore(domain.DefaultConfig())(context.Background(), makeReq(map[string]interface{}{
		"sex":     "F",
		"age":     float64(33),
		"answers": neutralSheet(120),
		"compare": true,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(res))

	var out domain.Result
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &out))
	assert.Equal(t, "IPIP-NEO", out.Model)
	assert.Equal(t, domain.SexFemale, out.Person.Sex)
	assert.Len(t, out.Person.Result.Personalities, 5)
	require.NotNil(t, out.Person.Result.Compare)
	assert.Len(t, out.Person.Result.Compare.Reversed, 120)
}

func TestHandleScore_300Override(t *testing.T) {
	res, err := handleScore(domain.DefaultConfig())(context.Background(), makeReq(map[string]interface{}{
		"sex":       "M",
		"age":       float64(19),
		"answers":   neutralSheet(300),
		"questions": float64(300),
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(res))
	assert.Contains(t, resultText(res), `"question": 300`)
}

func TestHandleScore_Errors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"no answers", map[string]interface{}{"sex": "M", "age": float64(30)}, "'answers' is required"},
		{"malformed answers", map[string]interface{}{"sex": "M", "age": float64(30), "answers": "{"}, "decoding answers"},
		{"lowercase sex", map[string]interface{}{"sex": "m", "age": float64(30), "answers": neutralSheet(120)}, "invalid_input"},
		{"age out of range", map[string]interface{}{"sex": "M", "age": float64(111), "answers": neutralSheet(120)}, "age"},
		{"bad variant", map[string]interface{}{"sex": "M", "age": float64(30), "answers": neutralSheet(120), "questions": float64(50)}, "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := handleScore(domain.DefaultConfig())(context.Background(), makeReq(tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(res), tt.want)
		})
	}
}

func TestHandleNorm(t *testing.T) {
	res, err := handleNorm(domain.DefaultConfig())(context.Background(), makeReq(map[string]interface{}{
		"sex": "M",
		"age": float64(45),
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(res))

	var rec domain.NormRecord
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &rec))
	assert.Equal(t, 3, rec.ID)
}

func TestHandleNorm_Invalid(t *testing.T) {
	res, err := handleNorm(domain.DefaultConfig())(context.Background(), makeReq(map[string]interface{}{
		"sex": "X",
		"age": float64(45),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "(sex)")
}

func TestHandleFacetsResource(t *testing.T) {
	contents, err := handleFacetsResource(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, facetsURI, text.URI)

	var layout map[string][]domain.FacetInfo
	require.NoError(t, json.Unmarshal([]byte(text.Text), &layout))
	assert.Len(t, layout["120"], 30)
	assert.Len(t, layout["300"], 30)
}
