package tools

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host/hosttest"
)

func TestImportProjectMissingFileNeverTouchesHost(t *testing.T) {
	f := newFakeHost()
	f.PM.Stub("ImportProject", true)
	missing := filepath.Join(t.TempDir(), "cut.drp")

	r := NewRegistry(ProjectManagerTools())
	result := r.Execute(context.Background(), f.deps(), "import_project", map[string]interface{}{
		"path": missing,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "File not found: "+missing, result.Error)
	assert.Zero(t, f.PM.CallCount("ImportProject"))
	assert.Empty(t, f.App.Calls())
}

func TestStorageListingRejectsNonDirectory(t *testing.T) {
	f := newFakeHost()
	storage := hosttest.NewObject("media_storage")
	f.App.Stub("GetMediaStorage", storage)
	path := writeTempFile(t, "clip.mov")

	r := NewRegistry(MediaStorageTools())
	result := r.Execute(context.Background(), f.deps(), "get_storage_files", map[string]interface{}{
		"path": path,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Path is not a directory: "+path, result.Error)
	assert.Empty(t, storage.Calls())
}

func TestStorageListingAcceptsDirectory(t *testing.T) {
	f := newFakeHost()
	storage := hosttest.NewObject("media_storage").
		Stub("GetFileList", []interface{}{"/media/a.mov"})
	f.App.Stub("GetMediaStorage", storage)
	dir := t.TempDir()

	r := NewRegistry(MediaStorageTools())
	result := r.Execute(context.Background(), f.deps(), "get_storage_files", map[string]interface{}{
		"path": dir,
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, []string{"/media/a.mov"}, result.Result)
}

func TestSaveAsNewRenderPreset(t *testing.T) {
	f := newFakeHost()
	f.Project.Stub("SaveAsNewRenderPreset", true)

	r := NewRegistry(ProjectTools())
	result := r.Execute(context.Background(), f.deps(), "save_as_new_render_preset", map[string]interface{}{
		"preset_name": "ProRes Master",
	})

	require.True(t, result.Success, "error: %s", result.Error)
	calls := f.Project.Calls()
	require.Equal(t, 1, f.Project.CallCount("SaveAsNewRenderPreset"))
	assert.Equal(t, []interface{}{"ProRes Master"}, calls[len(calls)-1].Args)
}

func TestRenderPresetToolsRequireName(t *testing.T) {
	f := newFakeHost()

	r := NewRegistry(ProjectTools())
	for _, name := range []string{"save_as_new_render_preset", "delete_render_preset", "render_with_quick_export"} {
		result := r.Execute(context.Background(), f.deps(), name, map[string]interface{}{})
		assert.False(t, result.Success, name)
		assert.Equal(t, "No preset name given", result.Error, name)
	}
	assert.Empty(t, f.App.Calls())
}

func TestDeleteRenderPresetFailure(t *testing.T) {
	f := newFakeHost()
	f.Project.Stub("DeleteRenderPreset", false)

	r := NewRegistry(ProjectTools())
	result := r.Execute(context.Background(), f.deps(), "delete_render_preset", map[string]interface{}{
		"preset_name": "Missing Preset",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to delete render preset: Missing Preset", result.Error)
}

func TestGetQuickExportRenderPresets(t *testing.T) {
	f := newFakeHost()
	f.Project.Stub("GetQuickExportRenderPresets", []interface{}{"H.264 Master", "ProRes 422 HQ"})

	r := NewRegistry(ProjectTools())
	result := r.Execute(context.Background(), f.deps(), "get_quick_export_render_presets", nil)

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, []interface{}{"H.264 Master", "ProRes 422 HQ"}, result.Result)
}

func TestRenderWithQuickExport(t *testing.T) {
	f := newFakeHost()
	f.Project.Stub("RenderWithQuickExport", map[string]interface{}{
		"IsRenderComplete":      true,
		"TimeTakenToRenderInMs": 5200,
	})

	r := NewRegistry(ProjectTools())
	result := r.Execute(context.Background(), f.deps(), "render_with_quick_export", map[string]interface{}{
		"preset_name": "H.264 Master",
		"params":      map[string]interface{}{"TargetDir": "/exports"},
	})

	require.True(t, result.Success, "error: %s", result.Error)
	calls := f.Project.Calls()
	require.Equal(t, 1, f.Project.CallCount("RenderWithQuickExport"))
	assert.Equal(t, []interface{}{"H.264 Master", map[string]interface{}{"TargetDir": "/exports"}}, calls[len(calls)-1].Args)
}
