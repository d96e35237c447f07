package tools

import (
	"github.com/samuelgursky/resolve-tools-mcp/internal/config"
	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
	"github.com/samuelgursky/resolve-tools-mcp/internal/host/hosttest"
	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
)

// fakeHost is a scripted application object graph reaching down to the
// current timeline, the shape most adapter tests need.
type fakeHost struct {
	App      *hosttest.Object
	PM       *hosttest.Object
	Project  *hosttest.Object
	Timeline *hosttest.Object
}

func newFakeHost() *fakeHost {
	f := &fakeHost{
		App:      hosttest.NewObject("app"),
		PM:       hosttest.NewObject("project_manager"),
		Project:  hosttest.NewObject("project"),
		Timeline: hosttest.NewObject("timeline"),
	}
	f.App.Stub("GetProjectManager", f.PM)
	f.PM.Stub("GetCurrentProject", f.Project)
	f.Project.Stub("GetCurrentTimeline", f.Timeline)
	return f
}

// deps wires the fake into a dependency set with fast retry tunables.
func (f *fakeHost) deps() *Deps {
	cfg := config.Default()
	delay := 1
	cfg.Host.TimelineItemRetryDelayMillis = &delay
	session := host.NewSession(hosttest.NewBridge(f.App), logging.Discard())
	return &Deps{Session: session, Config: cfg, Log: logging.Discard()}
}

// emptyDeps is a dependency set whose host has no project open.
func emptyDeps() *Deps {
	app := hosttest.NewObject("app")
	pm := hosttest.NewObject("project_manager")
	app.Stub("GetProjectManager", pm)
	pm.Stub("GetCurrentProject", nil)
	cfg := config.Default()
	session := host.NewSession(hosttest.NewBridge(app), logging.Discard())
	return &Deps{Session: session, Config: cfg, Log: logging.Discard()}
}
