package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
	"github.com/samuelgursky/resolve-tools-mcp/internal/host/hosttest"
	"github.com/samuelgursky/resolve-tools-mcp/internal/tools"
)

func newProviderWithProject(t *testing.T) *Provider {
	t.Helper()
	timeline := hosttest.NewObject("timeline").Stub("GetName", "Rough Cut")
	project := hosttest.NewObject("project").
		Stub("GetName", "Documentary").
		Stub("GetUniqueId", "proj-1").
		Stub("GetTimelineCount", 2).
		Stub("GetCurrentTimeline", timeline)
	pm := hosttest.NewObject("project_manager").Stub("GetCurrentProject", project)
	app := hosttest.NewObject("app").Stub("GetProjectManager", pm)
	session := host.NewSession(hosttest.NewBridge(app), nil)
	return NewProvider(session, tools.Summary{Tools: 5, Warnings: 1})
}

func TestProviderListsThreeResources(t *testing.T) {
	provider := newProviderWithProject(t)
	definitions := provider.List()
	require.Len(t, definitions, 3)
	uris := []string{definitions[0].URI, definitions[1].URI, definitions[2].URI}
	assert.Contains(t, uris, URIProjectInfo)
	assert.Contains(t, uris, URIFolderStructure)
	assert.Contains(t, uris, URIValidation)
}

func TestProviderReadsProjectInfo(t *testing.T) {
	provider := newProviderWithProject(t)

	content, err := provider.Read(context.Background(), URIProjectInfo)
	require.NoError(t, err)
	assert.Equal(t, URIProjectInfo, content.URI)
	assert.Equal(t, "application/json", content.MimeType)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(content.Text), &info))
	assert.Equal(t, "Documentary", info["name"])
	assert.Equal(t, "proj-1", info["unique_id"])
	assert.Equal(t, float64(2), info["timeline_count"])
	assert.Equal(t, "Rough Cut", info["current_timeline"])
}

func TestProviderReadsValidationSummary(t *testing.T) {
	provider := newProviderWithProject(t)

	content, err := provider.Read(context.Background(), URIValidation)
	require.NoError(t, err)

	var summary tools.Summary
	require.NoError(t, json.Unmarshal([]byte(content.Text), &summary))
	assert.Equal(t, 5, summary.Tools)
	assert.Equal(t, 1, summary.Warnings)
}

func TestProviderReadWithoutProject(t *testing.T) {
	pm := hosttest.NewObject("project_manager").Stub("GetCurrentProject", nil)
	app := hosttest.NewObject("app").Stub("GetProjectManager", pm)
	session := host.NewSession(hosttest.NewBridge(app), nil)
	provider := NewProvider(session, tools.Summary{})

	_, err := provider.Read(context.Background(), URIProjectInfo)
	require.Error(t, err)
	assert.Equal(t, "No project is currently open", err.Error())
}

func TestProviderReadUnknownURI(t *testing.T) {
	provider := newProviderWithProject(t)
	_, err := provider.Read(context.Background(), "resolve://nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resource not found")
}
