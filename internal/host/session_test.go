package host_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
	"github.com/samuelgursky/resolve-tools-mcp/internal/host/hosttest"
)

func TestSessionUnavailableApplication(t *testing.T) {
	ctx := context.Background()
	bridge := hosttest.NewBridge(nil)
	bridge.AppErr = errors.New("connection refused")
	session := host.NewSession(bridge, nil)

	_, ok := session.App(ctx)
	assert.False(t, ok)
	_, ok = session.ProjectManager(ctx)
	assert.False(t, ok)
	_, ok = session.CurrentProject(ctx)
	assert.False(t, ok)
	_, ok = session.CurrentMediaPool(ctx)
	assert.False(t, ok)
	_, ok = session.CurrentTimeline(ctx)
	assert.False(t, ok)
	_, ok = session.Gallery(ctx)
	assert.False(t, ok)
	_, ok = session.MediaStorage(ctx)
	assert.False(t, ok)
}

func TestSessionNoProjectOpen(t *testing.T) {
	ctx := context.Background()
	pm := hosttest.NewObject("project_manager").Stub("GetCurrentProject", nil)
	app := hosttest.NewObject("app").Stub("GetProjectManager", pm)
	session := host.NewSession(hosttest.NewBridge(app), nil)

	_, ok := session.ProjectManager(ctx)
	assert.True(t, ok)
	_, ok = session.CurrentProject(ctx)
	assert.False(t, ok)
	_, ok = session.CurrentTimeline(ctx)
	assert.False(t, ok)
}

func TestSessionResolvesObjectChain(t *testing.T) {
	ctx := context.Background()
	timeline := hosttest.NewObject("timeline").Stub("GetName", "Rough Cut")
	project := hosttest.NewObject("project").
		Stub("GetName", "Documentary").
		Stub("GetCurrentTimeline", timeline)
	pm := hosttest.NewObject("project_manager").Stub("GetCurrentProject", project)
	app := hosttest.NewObject("app").Stub("GetProjectManager", pm)
	session := host.NewSession(hosttest.NewBridge(app), nil)

	proj, ok := session.CurrentProject(ctx)
	require.True(t, ok)
	name, err := proj.Name(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Documentary", name)

	tl, ok := session.CurrentTimeline(ctx)
	require.True(t, ok)
	tlName, err := tl.Name(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rough Cut", tlName)
}

func TestSessionCloseReleasesBridge(t *testing.T) {
	bridge := hosttest.NewBridge(hosttest.NewObject("app"))
	session := host.NewSession(bridge, nil)

	require.NoError(t, session.Close())
	assert.True(t, bridge.Closed())
}
