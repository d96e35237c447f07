package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samuelgursky/resolve-tools-mcp/internal/tools"
	"github.com/samuelgursky/resolve-tools-mcp/pkg/mcp"
)

// The MCP surface exposes two meta-tools instead of the full registry:
// search finds operations by keyword, execute dispatches one by name. The
// full surface is a few hundred operations, which would drown a client's
// tool list.
const (
	metaSearch  = "search"
	metaExecute = "execute"
)

func (s *Server) registerHandlers(mcpServer *mcp.Server) {
	mcpServer.SetHandler("tools/list", s.handleListTools)
	mcpServer.SetHandler("tools/call", s.handleCallTool)
	mcpServer.SetHandler("resources/list", s.handleListResources)
	mcpServer.SetHandler("resources/read", s.handleReadResource)
}

func (s *Server) handleListTools(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	return mcp.ListToolsResponse{Tools: []mcp.ToolDefinition{
		{
			Name:        metaSearch,
			Description: "Search the DaVinci Resolve operations by keyword or component.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Keyword matched against operation names and descriptions.",
					},
					"component": map[string]interface{}{
						"type":        "string",
						"description": "Restrict results to one component, e.g. timeline or media_pool.",
					},
				},
			},
		},
		{
			Name:        metaExecute,
			Description: "Execute one DaVinci Resolve operation by name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"tool": map[string]interface{}{
						"type":        "string",
						"description": "Operation name, as returned by search.",
					},
					"arguments": map[string]interface{}{
						"type":        "object",
						"description": "Operation arguments.",
					},
				},
				"required": []string{"tool"},
			},
		},
	}}, nil
}

func (s *Server) handleCallTool(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req mcp.CallToolRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("failed to parse tool call: %w", err)
	}

	switch req.Name {
	case metaSearch:
		query, _ := req.Arguments["query"].(string)
		component, _ := req.Arguments["component"].(string)
		descriptors := s.Search(query, component)
		return envelopeResponse(tools.OK(descriptors))
	case metaExecute:
		name, _ := req.Arguments["tool"].(string)
		if name == "" {
			return envelopeResponse(tools.Fail("No tool name given"))
		}
		args, _ := req.Arguments["arguments"].(map[string]interface{})
		return envelopeResponse(s.Dispatch(ctx, name, args))
	default:
		return envelopeResponse(tools.Failf("Tool not found: %s", req.Name))
	}
}

// envelopeResponse renders a result envelope as MCP content. Failures ride
// in the envelope with IsError set; the JSON-RPC layer never sees them as
// errors.
func envelopeResponse(result tools.Result) (interface{}, error) {
	text, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return mcp.CallToolResponse{
		Content: []mcp.ContentBlock{{Type: "text", Text: string(text)}},
		IsError: !result.Success,
	}, nil
}

func (s *Server) handleListResources(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	return mcp.ListResourcesResponse{Resources: s.provider.List()}, nil
}

func (s *Server) handleReadResource(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req mcp.ReadResourceRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("failed to parse resource request: %w", err)
	}
	content, err := s.provider.Read(ctx, req.URI)
	if err != nil {
		return nil, err
	}
	return mcp.ReadResourceResponse{Contents: []mcp.ResourceContent{content}}, nil
}
