package host

import (
	"context"

	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
)

// Bridge supplies the root application handle. The gateway implements this
// over the scripting connection; tests implement it over a scripted fake.
type Bridge interface {
	App(ctx context.Context) (Object, error)
	Close() error
}

// Session resolves the commonly needed host objects from the bridge. Every
// accessor returns false when the object is unavailable rather than an
// error, because absence is an expected state for most of them (no project
// open, no timeline active).
type Session struct {
	bridge Bridge
	log    *logging.Logger
}

// NewSession creates a session over a bridge.
func NewSession(bridge Bridge, log *logging.Logger) *Session {
	if log == nil {
		log = logging.Discard()
	}
	return &Session{bridge: bridge, log: log}
}

// Close releases the underlying bridge connection.
func (s *Session) Close() error {
	return s.bridge.Close()
}

// App returns the application root handle.
func (s *Session) App(ctx context.Context) (Resolve, bool) {
	obj, err := s.bridge.App(ctx)
	if err != nil || obj == nil {
		s.debugMiss("application", err)
		return Resolve{}, false
	}
	return Resolve{obj: obj}, true
}

// ProjectManager returns the project manager.
func (s *Session) ProjectManager(ctx context.Context) (ProjectManager, bool) {
	app, ok := s.App(ctx)
	if !ok {
		return ProjectManager{}, false
	}
	pm, err := app.ProjectManager(ctx)
	if err != nil || !pm.Valid() {
		s.debugMiss("project manager", err)
		return ProjectManager{}, false
	}
	return pm, true
}

// CurrentProject returns the open project, if any.
func (s *Session) CurrentProject(ctx context.Context) (Project, bool) {
	pm, ok := s.ProjectManager(ctx)
	if !ok {
		return Project{}, false
	}
	project, err := pm.CurrentProject(ctx)
	if err != nil || !project.Valid() {
		s.debugMiss("current project", err)
		return Project{}, false
	}
	return project, true
}

// CurrentMediaPool returns the open project's media pool.
func (s *Session) CurrentMediaPool(ctx context.Context) (MediaPool, bool) {
	project, ok := s.CurrentProject(ctx)
	if !ok {
		return MediaPool{}, false
	}
	pool, err := project.MediaPool(ctx)
	if err != nil || !pool.Valid() {
		s.debugMiss("media pool", err)
		return MediaPool{}, false
	}
	return pool, true
}

// CurrentTimeline returns the active timeline of the open project.
func (s *Session) CurrentTimeline(ctx context.Context) (Timeline, bool) {
	project, ok := s.CurrentProject(ctx)
	if !ok {
		return Timeline{}, false
	}
	timeline, err := project.CurrentTimeline(ctx)
	if err != nil || !timeline.Valid() {
		s.debugMiss("current timeline", err)
		return Timeline{}, false
	}
	return timeline, true
}

// Gallery returns the open project's gallery.
func (s *Session) Gallery(ctx context.Context) (Gallery, bool) {
	project, ok := s.CurrentProject(ctx)
	if !ok {
		return Gallery{}, false
	}
	gallery, err := project.Gallery(ctx)
	if err != nil || !gallery.Valid() {
		s.debugMiss("gallery", err)
		return Gallery{}, false
	}
	return gallery, true
}

// MediaStorage returns the media storage browser.
func (s *Session) MediaStorage(ctx context.Context) (MediaStorage, bool) {
	app, ok := s.App(ctx)
	if !ok {
		return MediaStorage{}, false
	}
	storage, err := app.MediaStorage(ctx)
	if err != nil || !storage.Valid() {
		s.debugMiss("media storage", err)
		return MediaStorage{}, false
	}
	return storage, true
}

func (s *Session) debugMiss(what string, err error) {
	metadata := map[string]interface{}{"object": what}
	if err != nil {
		metadata["error"] = err.Error()
	}
	s.log.Debug("host object unavailable", metadata)
}
