package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host/hosttest"
)

// withGallery scripts the project's gallery object.
func (f *fakeHost) withGallery() *hosttest.Object {
	gallery := hosttest.NewObject("gallery")
	f.Project.Stub("GetGallery", gallery)
	return gallery
}

func powerGradeAlbumFake(label string) *hosttest.Object {
	return hosttest.NewObject("power_grade_album").Stub("GetLabel", label)
}

func TestGetGalleryPowerGradeAlbums(t *testing.T) {
	f := newFakeHost()
	gallery := f.withGallery()
	gallery.Stub("GetGalleryPowerGradeAlbums", hosttest.Objects(
		powerGradeAlbumFake("Film Looks"),
		powerGradeAlbumFake("Client Looks"),
	))

	r := NewRegistry(GalleryTools())
	result := r.Execute(context.Background(), f.deps(), "get_gallery_power_grade_albums", nil)

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, []string{"Film Looks", "Client Looks"}, result.Result)
}

func TestCreatePowerGradeAlbum(t *testing.T) {
	f := newFakeHost()
	gallery := f.withGallery()
	gallery.
		Stub("GetGalleryPowerGradeAlbums", []interface{}{}).
		Stub("CreateGalleryPowerGradeAlbum", powerGradeAlbumFake("Film Looks"))

	r := NewRegistry(GalleryTools())
	result := r.Execute(context.Background(), f.deps(), "create_gallery_power_grade_album", map[string]interface{}{
		"album_name": "Film Looks",
	})

	require.True(t, result.Success, "error: %s", result.Error)
	calls := gallery.Calls()
	require.Equal(t, 1, gallery.CallCount("CreateGalleryPowerGradeAlbum"))
	assert.Equal(t, []interface{}{"Film Looks"}, calls[len(calls)-1].Args)
}

func TestCreatePowerGradeAlbumRejectsDuplicate(t *testing.T) {
	f := newFakeHost()
	gallery := f.withGallery()
	gallery.Stub("GetGalleryPowerGradeAlbums", hosttest.Objects(powerGradeAlbumFake("Film Looks")))

	r := NewRegistry(GalleryTools())
	result := r.Execute(context.Background(), f.deps(), "create_gallery_power_grade_album", map[string]interface{}{
		"album_name": "Film Looks",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Power grade album already exists: Film Looks", result.Error)
	assert.Zero(t, gallery.CallCount("CreateGalleryPowerGradeAlbum"))
}

func TestImportStillsSkipsMissingFiles(t *testing.T) {
	f := newFakeHost()
	gallery := f.withGallery()
	album := hosttest.NewObject("still_album").Stub("ImportStills", true)
	gallery.Stub("GetCurrentStillAlbum", album)
	path := writeTempFile(t, "grade.dpx")
	missing := path + ".missing"

	r := NewRegistry(GalleryAlbumTools())
	result := r.Execute(context.Background(), f.deps(), "import_stills", map[string]interface{}{
		"paths": []interface{}{path, missing},
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Contains(t, result.Warning, missing)
	calls := album.Calls()
	require.Equal(t, 1, album.CallCount("ImportStills"))
	assert.Equal(t, []interface{}{[]interface{}{path}}, calls[len(calls)-1].Args)
}

func TestImportStillsAllMissingNeverTouchesHost(t *testing.T) {
	f := newFakeHost()

	r := NewRegistry(GalleryAlbumTools())
	result := r.Execute(context.Background(), f.deps(), "import_stills", map[string]interface{}{
		"paths": []interface{}{"/nowhere/a.dpx", "/nowhere/b.dpx"},
	})

	assert.False(t, result.Success)
	assert.Equal(t, "No valid file paths provided", result.Error)
	assert.Empty(t, f.App.Calls())
}

func TestCreatePowerGradeAlbumRequiresName(t *testing.T) {
	f := newFakeHost()

	r := NewRegistry(GalleryTools())
	result := r.Execute(context.Background(), f.deps(), "create_gallery_power_grade_album", map[string]interface{}{})

	assert.False(t, result.Success)
	assert.Equal(t, "No album name given", result.Error)
	assert.Empty(t, f.App.Calls())
}
