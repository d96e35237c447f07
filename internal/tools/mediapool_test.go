package tools

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host/hosttest"
)

// withMediaPool scripts a root folder holding the given clips.
func (f *fakeHost) withMediaPool(clips ...*hosttest.Object) *hosttest.Object {
	root := hosttest.NewObject("root_folder").
		Stub("GetName", "Master").
		Stub("GetUniqueId", "").
		Stub("GetClipList", hosttest.Objects(clips...)).
		Stub("GetSubFolderList", []interface{}{})
	pool := hosttest.NewObject("media_pool").Stub("GetRootFolder", root)
	f.Project.Stub("GetMediaPool", pool)
	return pool
}

func TestDeleteClipsResolvesByName(t *testing.T) {
	f := newFakeHost()
	clip := namedClipFake("interview.mov")
	pool := f.withMediaPool(clip)
	pool.Stub("DeleteClips", true)

	r := NewRegistry(MediaPoolTools())
	result := r.Execute(context.Background(), f.deps(), "delete_clips", map[string]interface{}{
		"clip_names": []interface{}{"interview.mov"},
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 1, pool.CallCount("DeleteClips"))
}

func TestDeleteClipsReportsMissingNames(t *testing.T) {
	f := newFakeHost()
	pool := f.withMediaPool(namedClipFake("interview.mov"))

	r := NewRegistry(MediaPoolTools())
	result := r.Execute(context.Background(), f.deps(), "delete_clips", map[string]interface{}{
		"clip_names": []interface{}{"interview.mov", "missing_one.mov", "missing_two.mov"},
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Clip not found: missing_one.mov, missing_two.mov", result.Error)
	assert.Zero(t, pool.CallCount("DeleteClips"))
}

func TestDeleteClipsRequiresNames(t *testing.T) {
	f := newFakeHost()

	r := NewRegistry(MediaPoolTools())
	result := r.Execute(context.Background(), f.deps(), "delete_clips", map[string]interface{}{})

	assert.False(t, result.Success)
	assert.Equal(t, "No clip names given", result.Error)
	assert.Empty(t, f.App.Calls())
}

func TestClipToolRequiresOpenProject(t *testing.T) {
	r := NewRegistry(MediaPoolItemTools())
	result := r.Execute(context.Background(), emptyDeps(), "get_clip_name", map[string]interface{}{
		"clip_name": "interview.mov",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "No project is currently open", result.Error)
}

func TestGetClipNameFindsClip(t *testing.T) {
	f := newFakeHost()
	f.withMediaPool(namedClipFake("interview.mov"))

	r := NewRegistry(MediaPoolItemTools())
	result := r.Execute(context.Background(), f.deps(), "get_clip_name", map[string]interface{}{
		"clip_name": "interview.mov",
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, "interview.mov", result.Result)
}

func TestImportMediaMissingPathNeverTouchesHost(t *testing.T) {
	f := newFakeHost()
	pool := f.withMediaPool()
	missing := filepath.Join(t.TempDir(), "missing.mov")

	r := NewRegistry(MediaPoolTools())
	result := r.Execute(context.Background(), f.deps(), "import_media", map[string]interface{}{
		"paths": []interface{}{missing},
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Path does not exist: "+missing, result.Error)
	assert.Zero(t, pool.CallCount("ImportMedia"))
	assert.Empty(t, f.App.Calls())
}

func TestImportMediaAcceptsExistingPath(t *testing.T) {
	f := newFakeHost()
	path := writeTempFile(t, "interview.mov")
	pool := f.withMediaPool()
	pool.Stub("ImportMedia", hosttest.Objects(namedClipFake("interview.mov")))

	r := NewRegistry(MediaPoolTools())
	result := r.Execute(context.Background(), f.deps(), "import_media", map[string]interface{}{
		"paths": []interface{}{path},
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 1, pool.CallCount("ImportMedia"))
}

func TestLinkProxyMediaMissingFileNeverTouchesHost(t *testing.T) {
	f := newFakeHost()
	clip := namedClipFake("interview.mov")
	f.withMediaPool(clip)
	missing := filepath.Join(t.TempDir(), "proxy.mov")

	r := NewRegistry(MediaPoolItemTools())
	result := r.Execute(context.Background(), f.deps(), "link_proxy_media", map[string]interface{}{
		"clip_name":  "interview.mov",
		"proxy_path": missing,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Proxy media file not found: "+missing, result.Error)
	assert.Zero(t, clip.CallCount("LinkProxyMedia"))
	assert.Empty(t, f.App.Calls())
}

func TestReplaceClipMissingFileNeverTouchesHost(t *testing.T) {
	f := newFakeHost()
	clip := namedClipFake("interview.mov")
	f.withMediaPool(clip)
	missing := filepath.Join(t.TempDir(), "replacement.mov")

	r := NewRegistry(MediaPoolItemTools())
	result := r.Execute(context.Background(), f.deps(), "replace_clip", map[string]interface{}{
		"clip_name": "interview.mov",
		"file_path": missing,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Replacement media file not found: "+missing, result.Error)
	assert.Zero(t, clip.CallCount("ReplaceClip"))
	assert.Empty(t, f.App.Calls())
}

func TestAppendAllClipsToTimeline(t *testing.T) {
	f := newFakeHost()
	clip := namedClipFake("interview.mov")
	pool := f.withMediaPool(clip)
	folder := hosttest.NewObject("folder").Stub("GetClipList", hosttest.Objects(clip))
	pool.
		Stub("GetCurrentFolder", folder).
		Stub("AppendToTimeline", hosttest.Objects(hosttest.NewObject("item")))

	r := NewRegistry(MediaPoolTools())
	result := r.Execute(context.Background(), f.deps(), "append_all_clips_to_timeline", nil)

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 1, pool.CallCount("AppendToTimeline"))
	assert.Equal(t, map[string]interface{}{"appended": 1}, result.Result)
}

func TestAppendAllClipsToTimelineEmptyFolder(t *testing.T) {
	f := newFakeHost()
	pool := f.withMediaPool()
	folder := hosttest.NewObject("folder").Stub("GetClipList", []interface{}{})
	pool.Stub("GetCurrentFolder", folder)

	r := NewRegistry(MediaPoolTools())
	result := r.Execute(context.Background(), f.deps(), "append_all_clips_to_timeline", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "No clips found in current folder", result.Error)
	assert.Zero(t, pool.CallCount("AppendToTimeline"))
}

func TestGetClipMatteListReturnsPaths(t *testing.T) {
	f := newFakeHost()
	pool := f.withMediaPool(namedClipFake("interview.mov"))
	pool.Stub("GetClipMatteList", []interface{}{"/mattes/roto.png"})

	r := NewRegistry(MediaPoolTools())
	result := r.Execute(context.Background(), f.deps(), "get_clip_matte_list", map[string]interface{}{
		"clip_name": "interview.mov",
	})

	require.True(t, result.Success, "error: %s", result.Error)
	info, ok := result.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1, info["matte_count"])
	assert.Equal(t, []string{"/mattes/roto.png"}, info["matte_paths"])
}

func TestDeleteClipMattesRequiresPaths(t *testing.T) {
	f := newFakeHost()
	f.withMediaPool(namedClipFake("interview.mov"))

	r := NewRegistry(MediaPoolTools())
	result := r.Execute(context.Background(), f.deps(), "delete_clip_mattes", map[string]interface{}{
		"clip_name": "interview.mov",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "No matte paths given", result.Error)
	assert.Empty(t, f.App.Calls())
}

func TestCreateStereoClipResolvesBothClips(t *testing.T) {
	f := newFakeHost()
	left := namedClipFake("shot_L.mov")
	right := namedClipFake("shot_R.mov")
	pool := f.withMediaPool(left, right)
	pool.Stub("CreateStereoClip", namedClipFake("shot_stereo"))

	r := NewRegistry(MediaPoolTools())
	result := r.Execute(context.Background(), f.deps(), "create_stereo_clip", map[string]interface{}{
		"left_clip":  "shot_L.mov",
		"right_clip": "shot_R.mov",
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 1, pool.CallCount("CreateStereoClip"))
	assert.Equal(t, "shot_stereo", result.Result)
}

func TestUpdateClipMarkerCustomData(t *testing.T) {
	f := newFakeHost()
	clip := namedClipFake("interview.mov").Stub("UpdateMarkerCustomData", true)
	f.withMediaPool(clip)

	r := NewRegistry(MediaPoolItemTools())
	result := r.Execute(context.Background(), f.deps(), "update_clip_marker_custom_data", map[string]interface{}{
		"clip_name":   "interview.mov",
		"frame":       48,
		"custom_data": "selects",
	})

	require.True(t, result.Success, "error: %s", result.Error)
	calls := clip.Calls()
	require.Equal(t, 1, clip.CallCount("UpdateMarkerCustomData"))
	assert.Equal(t, []interface{}{48, "selects"}, calls[len(calls)-1].Args)
}

func TestDeleteClipMarkerByCustomDataNotFound(t *testing.T) {
	f := newFakeHost()
	clip := namedClipFake("interview.mov").Stub("DeleteMarkerByCustomData", false)
	f.withMediaPool(clip)

	r := NewRegistry(MediaPoolItemTools())
	result := r.Execute(context.Background(), f.deps(), "delete_clip_marker_by_custom_data", map[string]interface{}{
		"clip_name":   "interview.mov",
		"custom_data": "missing",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "No marker found with custom data: missing", result.Error)
}

func TestAddClipMattesMissingPathNeverTouchesHost(t *testing.T) {
	f := newFakeHost()
	storage := hosttest.NewObject("media_storage").Stub("AddClipMattesToMediaPool", true)
	f.App.Stub("GetMediaStorage", storage)
	f.withMediaPool(namedClipFake("interview.mov"))
	missing := filepath.Join(t.TempDir(), "roto.png")

	r := NewRegistry(MediaStorageTools())
	result := r.Execute(context.Background(), f.deps(), "add_clip_mattes_to_media_pool", map[string]interface{}{
		"clip_name": "interview.mov",
		"paths":     []interface{}{missing},
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Path does not exist: "+missing, result.Error)
	assert.Zero(t, storage.CallCount("AddClipMattesToMediaPool"))
	assert.Empty(t, f.App.Calls())
}

func TestAddClipMattesToMediaPool(t *testing.T) {
	f := newFakeHost()
	storage := hosttest.NewObject("media_storage").Stub("AddClipMattesToMediaPool", true)
	f.App.Stub("GetMediaStorage", storage)
	f.withMediaPool(namedClipFake("interview.mov"))
	path := writeTempFile(t, "roto.png")

	r := NewRegistry(MediaStorageTools())
	result := r.Execute(context.Background(), f.deps(), "add_clip_mattes_to_media_pool", map[string]interface{}{
		"clip_name": "interview.mov",
		"paths":     []interface{}{path},
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 1, storage.CallCount("AddClipMattesToMediaPool"))
}

func namedClipFake(name string) *hosttest.Object {
	return hosttest.NewObject("clip").
		Stub("GetName", name).
		Stub("GetUniqueId", "")
}
