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

// newPoolSession scripts an application down to a media pool rooted at the
// given folder fake.
func newPoolSession(root *hosttest.Object) *host.Session {
	pool := hosttest.NewObject("media_pool").Stub("GetRootFolder", root)
	project := hosttest.NewObject("project").Stub("GetMediaPool", pool)
	pm := hosttest.NewObject("project_manager").Stub("GetCurrentProject", project)
	app := hosttest.NewObject("app").Stub("GetProjectManager", pm)
	return host.NewSession(hosttest.NewBridge(app), nil)
}

func namedClip(name, id string) *hosttest.Object {
	return hosttest.NewObject("clip").
		Stub("GetName", name).
		Stub("GetUniqueId", id)
}

func TestFindClipSearchesDepthFirst(t *testing.T) {
	ctx := context.Background()

	interview := namedClip("interview.mov", "clip-1")
	broll := namedClip("b-roll.mov", "clip-2")

	// The b-roll lives in a subfolder whose ID probe fails; the search must
	// skip the probe and keep descending.
	footage := hosttest.NewObject("footage").
		Stub("GetName", "Footage").
		StubErr("GetUniqueId", errors.New("no unique id for folders here")).
		Stub("GetClipList", hosttest.Objects(broll)).
		Stub("GetSubFolderList", []interface{}{})
	master := hosttest.NewObject("master").
		Stub("GetName", "Master").
		Stub("GetUniqueId", "folder-root").
		Stub("GetClipList", hosttest.Objects(interview)).
		Stub("GetSubFolderList", hosttest.Objects(footage))

	session := newPoolSession(master)
	pool, ok := session.CurrentMediaPool(ctx)
	require.True(t, ok)

	t.Run("by name in root", func(t *testing.T) {
		clip, found := host.FindClip(ctx, pool, "interview.mov")
		require.True(t, found)
		name, err := clip.Name(ctx)
		require.NoError(t, err)
		assert.Equal(t, "interview.mov", name)
	})

	t.Run("by name in subfolder", func(t *testing.T) {
		_, found := host.FindClip(ctx, pool, "b-roll.mov")
		assert.True(t, found)
	})

	t.Run("by unique id", func(t *testing.T) {
		clip, found := host.FindClip(ctx, pool, "clip-2")
		require.True(t, found)
		name, err := clip.Name(ctx)
		require.NoError(t, err)
		assert.Equal(t, "b-roll.mov", name)
	})

	t.Run("absent", func(t *testing.T) {
		_, found := host.FindClip(ctx, pool, "missing.mov")
		assert.False(t, found)
	})
}

func TestFindFolderMatchesRootAndDescends(t *testing.T) {
	ctx := context.Background()

	footage := hosttest.NewObject("footage").
		Stub("GetName", "Footage").
		StubErr("GetUniqueId", errors.New("probe failed")).
		Stub("GetSubFolderList", []interface{}{})
	master := hosttest.NewObject("master").
		Stub("GetName", "Master").
		Stub("GetUniqueId", "folder-root").
		Stub("GetSubFolderList", hosttest.Objects(footage))

	session := newPoolSession(master)
	pool, ok := session.CurrentMediaPool(ctx)
	require.True(t, ok)

	t.Run("root by name", func(t *testing.T) {
		folder, found := host.FindFolder(ctx, pool, "Master")
		require.True(t, found)
		name, err := folder.Name(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Master", name)
	})

	t.Run("root by unique id", func(t *testing.T) {
		_, found := host.FindFolder(ctx, pool, "folder-root")
		assert.True(t, found)
	})

	t.Run("subfolder with failing id probe", func(t *testing.T) {
		_, found := host.FindFolder(ctx, pool, "Footage")
		assert.True(t, found)
	})

	t.Run("absent", func(t *testing.T) {
		_, found := host.FindFolder(ctx, pool, "Stills")
		assert.False(t, found)
	})
}

func TestFindTimelineScansByIndex(t *testing.T) {
	ctx := context.Background()

	first := hosttest.NewObject("timeline-1").
		Stub("GetName", "Rough Cut").
		Stub("GetUniqueId", "tl-1")
	second := hosttest.NewObject("timeline-2").
		Stub("GetName", "Final Cut").
		Stub("GetUniqueId", "tl-2")

	project := hosttest.NewObject("project").
		Stub("GetTimelineCount", 2).
		Handle("GetTimelineByIndex", func(args ...interface{}) (interface{}, error) {
			switch args[0] {
			case 1:
				return first, nil
			case 2:
				return second, nil
			}
			return nil, nil
		})
	pm := hosttest.NewObject("project_manager").Stub("GetCurrentProject", project)
	app := hosttest.NewObject("app").Stub("GetProjectManager", pm)
	session := host.NewSession(hosttest.NewBridge(app), nil)

	proj, ok := session.CurrentProject(ctx)
	require.True(t, ok)

	timeline, found := host.FindTimeline(ctx, proj, "Final Cut")
	require.True(t, found)
	id, err := timeline.UniqueID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tl-2", id)

	_, found = host.FindTimeline(ctx, proj, "Director's Cut")
	assert.False(t, found)
}

func TestFindTimelineItemSkipsFailingTracks(t *testing.T) {
	ctx := context.Background()

	voiceover := hosttest.NewObject("item").
		Stub("GetName", "voiceover.wav").
		Stub("GetUniqueId", "item-9")

	timelineFake := hosttest.NewObject("timeline").
		Handle("GetTrackCount", func(args ...interface{}) (interface{}, error) {
			if args[0] == "subtitle" {
				return 0, nil
			}
			return 1, nil
		}).
		Handle("GetItemListInTrack", func(args ...interface{}) (interface{}, error) {
			if args[0] == "video" {
				return nil, errors.New("'NoneType' object is not callable")
			}
			return hosttest.Objects(voiceover), nil
		})

	project := hosttest.NewObject("project").Stub("GetCurrentTimeline", timelineFake)
	pm := hosttest.NewObject("project_manager").Stub("GetCurrentProject", project)
	app := hosttest.NewObject("app").Stub("GetProjectManager", pm)
	session := host.NewSession(hosttest.NewBridge(app), nil)

	timeline, ok := session.CurrentTimeline(ctx)
	require.True(t, ok)

	item, found := host.FindTimelineItem(ctx, timeline, "voiceover.wav")
	require.True(t, found)
	id, err := item.UniqueID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "item-9", id)
}

func TestIsNullCallable(t *testing.T) {
	assert.True(t, host.IsNullCallable(host.ErrNullCallable))
	assert.True(t, host.IsNullCallable(errors.New("call failed: 'NoneType' object is not callable")))
	assert.False(t, host.IsNullCallable(errors.New("connection refused")))
	assert.False(t, host.IsNullCallable(nil))
}
