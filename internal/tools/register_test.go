package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/config"
)

func disabled() *bool {
	v := false
	return &v
}

func TestDiscoverableDefaultsToEverything(t *testing.T) {
	r := NewDefaultRegistry()
	all := r.Search("", "")
	assert.Len(t, FilterDiscoverable(&config.FeaturesConfig{}, all), len(all))
	assert.Len(t, FilterDiscoverable(nil, all), len(all))
}

func TestDiscoverableGalleryFlagHidesGalleryComponents(t *testing.T) {
	r := NewDefaultRegistry()
	features := &config.FeaturesConfig{Gallery: disabled()}

	visible := FilterDiscoverable(features, r.Search("", ""))

	for _, d := range visible {
		assert.NotEqual(t, "gallery", d.Component)
		assert.NotEqual(t, "gallery_still_album", d.Component)
	}
	assert.Less(t, len(visible), r.Len())
}

func TestDiscoverableRenderingFlagHidesRenderTools(t *testing.T) {
	r := NewDefaultRegistry()
	features := &config.FeaturesConfig{Rendering: disabled()}

	visible := FilterDiscoverable(features, r.Search("", ""))

	for _, d := range visible {
		assert.NotContains(t, d.Name, "render")
	}
	assert.Less(t, len(visible), r.Len())
}

func TestDiscoverableColorFlagHidesGradingComponents(t *testing.T) {
	r := NewDefaultRegistry()
	features := &config.FeaturesConfig{Color: disabled()}

	visible := FilterDiscoverable(features, r.Search("", ""))

	for _, d := range visible {
		assert.NotEqual(t, "graph", d.Component)
		assert.NotEqual(t, "color_group", d.Component)
	}
}

func TestHiddenToolsStayExecutable(t *testing.T) {
	// Feature flags trim discovery only; a caller that knows the name can
	// still execute the tool.
	r := NewDefaultRegistry()
	features := &config.FeaturesConfig{Gallery: disabled()}

	var hidden string
	for _, d := range r.Search("", "") {
		if !Discoverable(features, d) && strings.HasPrefix(d.Component, "gallery") {
			hidden = d.Name
			break
		}
	}
	require.NotEmpty(t, hidden)

	result := r.Execute(context.Background(), emptyDeps(), hidden, map[string]interface{}{})
	assert.NotEqual(t, "Tool not found: "+hidden, result.Error)
}

func TestDefaultRegistryCoversEveryComponent(t *testing.T) {
	r := NewDefaultRegistry()
	components := r.Components()
	for _, want := range []string{
		"resolve", "project_manager", "project", "media_storage", "media_pool",
		"media_pool_item", "timeline", "timeline_item", "gallery",
		"gallery_still_album", "graph", "color_group", "folder",
	} {
		assert.Contains(t, components, want)
	}
}
