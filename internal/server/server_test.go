package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/config"
	"github.com/samuelgursky/resolve-tools-mcp/internal/host/hosttest"
	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
	"github.com/samuelgursky/resolve-tools-mcp/pkg/mcp"
)

func newTestServer(t *testing.T, cfg *config.ServerConfig, root *hosttest.Object) *Server {
	t.Helper()
	srv, err := New(cfg, logging.Discard(), hosttest.NewBridge(root))
	require.NoError(t, err)
	return srv
}

func TestServerStartupValidatesClean(t *testing.T) {
	strict := true
	cfg := config.Default()
	cfg.Server.StrictValidation = &strict

	srv := newTestServer(t, cfg, hosttest.NewObject("app"))
	assert.True(t, srv.Validation().Clean())
	assert.Positive(t, srv.Validation().Tools)
}

func TestDispatchUnknownTool(t *testing.T) {
	srv := newTestServer(t, config.Default(), hosttest.NewObject("app"))

	result := srv.Dispatch(context.Background(), "nonexistent_tool", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "Tool not found: nonexistent_tool", result.Error)
}

func TestDispatchReachesHost(t *testing.T) {
	root := hosttest.NewObject("app").
		Stub("GetProductName", "DaVinci Resolve").
		Stub("GetVersionString", "19.1.2")
	srv := newTestServer(t, config.Default(), root)

	result := srv.Dispatch(context.Background(), "get_product_info", nil)

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 1, root.CallCount("GetProductName"))
}

func TestSearchAppliesFeatureFlags(t *testing.T) {
	off := false
	cfg := config.Default()
	cfg.Features.Gallery = &off
	srv := newTestServer(t, cfg, hosttest.NewObject("app"))

	assert.Empty(t, srv.Search("", "gallery"))
	assert.NotEmpty(t, srv.Search("", "timeline"))
}

func TestHandleCallToolMetaTools(t *testing.T) {
	srv := newTestServer(t, config.Default(), hosttest.NewObject("app"))
	ctx := context.Background()

	t.Run("search returns descriptors in the envelope", func(t *testing.T) {
		params, _ := json.Marshal(mcp.CallToolRequest{
			Name:      "search",
			Arguments: map[string]interface{}{"query": "marker", "component": "timeline"},
		})
		raw, err := srv.handleCallTool(ctx, params)
		require.NoError(t, err)
		resp, ok := raw.(mcp.CallToolResponse)
		require.True(t, ok)
		assert.False(t, resp.IsError)
		require.Len(t, resp.Content, 1)
		assert.Contains(t, resp.Content[0].Text, `"success":true`)
		assert.Contains(t, resp.Content[0].Text, "marker")
	})

	t.Run("execute requires a tool name", func(t *testing.T) {
		params, _ := json.Marshal(mcp.CallToolRequest{Name: "execute"})
		raw, err := srv.handleCallTool(ctx, params)
		require.NoError(t, err)
		resp := raw.(mcp.CallToolResponse)
		assert.True(t, resp.IsError)
		assert.Contains(t, resp.Content[0].Text, "No tool name given")
	})

	t.Run("unknown meta tool", func(t *testing.T) {
		params, _ := json.Marshal(mcp.CallToolRequest{Name: "bogus"})
		raw, err := srv.handleCallTool(ctx, params)
		require.NoError(t, err)
		resp := raw.(mcp.CallToolResponse)
		assert.True(t, resp.IsError)
		assert.Contains(t, resp.Content[0].Text, "Tool not found: bogus")
	})

	t.Run("execute dispatches through the registry", func(t *testing.T) {
		params, _ := json.Marshal(mcp.CallToolRequest{
			Name:      "execute",
			Arguments: map[string]interface{}{"tool": "nonexistent_tool"},
		})
		raw, err := srv.handleCallTool(ctx, params)
		require.NoError(t, err)
		resp := raw.(mcp.CallToolResponse)
		assert.True(t, resp.IsError)
		assert.Contains(t, resp.Content[0].Text, "Tool not found: nonexistent_tool")
	})
}

func TestHandleListToolsExposesOnlyMetaTools(t *testing.T) {
	srv := newTestServer(t, config.Default(), hosttest.NewObject("app"))

	raw, err := srv.handleListTools(context.Background(), nil)
	require.NoError(t, err)
	resp, ok := raw.(mcp.ListToolsResponse)
	require.True(t, ok)
	require.Len(t, resp.Tools, 2)
	assert.Equal(t, "search", resp.Tools[0].Name)
	assert.Equal(t, "execute", resp.Tools[1].Name)
}
