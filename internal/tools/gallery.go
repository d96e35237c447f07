package tools

import (
	"context"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

// currentGallery resolves the open project's gallery.
func currentGallery(ctx context.Context, deps *Deps) (host.Gallery, Result) {
	if _, ok := deps.Session.CurrentProject(ctx); !ok {
		return host.Gallery{}, Fail(ErrNoProject)
	}
	gallery, ok := deps.Session.Gallery(ctx)
	if !ok {
		return host.Gallery{}, Fail(ErrNoGallery)
	}
	return gallery, Result{Success: true}
}

// findAlbum resolves a still album by name.
func findAlbum(ctx context.Context, gallery host.Gallery, name string) (host.StillAlbum, bool) {
	albums, err := gallery.StillAlbums(ctx)
	if err != nil {
		return host.StillAlbum{}, false
	}
	for _, album := range albums {
		if albumName, err := gallery.AlbumName(ctx, album); err == nil && albumName == name {
			return album, true
		}
	}
	return host.StillAlbum{}, false
}

// GalleryTools covers the color page gallery's album management.
func GalleryTools() []Tool {
	return []Tool{
		New("get_album_name", "gallery", "Get the name of a still album.",
			[]ParamSpec{P("album_name", "string", "Album name; empty uses the current album.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				AlbumName string `json:"album_name"`
			}) Result {
				gallery, res := currentGallery(ctx, deps)
				if !res.Success {
					return res
				}
				var album host.StillAlbum
				if p.AlbumName == "" {
					current, err := gallery.CurrentStillAlbum(ctx)
					if err != nil || !current.Valid() {
						return Fail("No current still album")
					}
					album = current
				} else {
					found, ok := findAlbum(ctx, gallery, p.AlbumName)
					if !ok {
						return Failf("Album not found: %s", p.AlbumName)
					}
					album = found
				}
				name, err := gallery.AlbumName(ctx, album)
				if err != nil {
					return FailErr(err)
				}
				return OK(name)
			}),

		New("set_album_name", "gallery", "Rename a still album.",
			[]ParamSpec{
				P("album_name", "string", "Current album name.", true),
				P("new_name", "string", "New album name.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				AlbumName string `json:"album_name"`
				NewName   string `json:"new_name"`
			}) Result {
				if p.NewName == "" {
					return Fail("No new name given")
				}
				gallery, res := currentGallery(ctx, deps)
				if !res.Success {
					return res
				}
				album, found := findAlbum(ctx, gallery, p.AlbumName)
				if !found {
					return Failf("Album not found: %s", p.AlbumName)
				}
				renamed, err := gallery.SetAlbumName(ctx, album, p.NewName)
				if err != nil {
					return FailErr(err)
				}
				if !renamed {
					return Failf("Failed to rename album to: %s", p.NewName)
				}
				return OK(p.NewName)
			}),

		New("get_current_still_album", "gallery", "Get the current still album's name and still count.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				gallery, res := currentGallery(ctx, deps)
				if !res.Success {
					return res
				}
				album, err := gallery.CurrentStillAlbum(ctx)
				if err != nil || !album.Valid() {
					return Fail("No current still album")
				}
				info := map[string]interface{}{}
				if name, err := gallery.AlbumName(ctx, album); err == nil {
					info["name"] = name
				}
				if stills, err := album.Stills(ctx); err == nil {
					info["still_count"] = len(stills)
				}
				return OK(info)
			}),

		New("set_current_still_album", "gallery", "Make the named still album current.",
			[]ParamSpec{P("album_name", "string", "Album name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				AlbumName string `json:"album_name"`
			}) Result {
				gallery, res := currentGallery(ctx, deps)
				if !res.Success {
					return res
				}
				album, found := findAlbum(ctx, gallery, p.AlbumName)
				if !found {
					return Failf("Album not found: %s", p.AlbumName)
				}
				set, err := gallery.SetCurrentStillAlbum(ctx, album)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to switch to album: %s", p.AlbumName)
				}
				return OK(p.AlbumName)
			}),

		New("get_gallery_still_albums", "gallery", "List the gallery's still album names.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				gallery, res := currentGallery(ctx, deps)
				if !res.Success {
					return res
				}
				albums, err := gallery.StillAlbums(ctx)
				if err != nil {
					return FailErr(err)
				}
				names := make([]string, 0, len(albums))
				for _, album := range albums {
					if name, err := gallery.AlbumName(ctx, album); err == nil {
						names = append(names, name)
					}
				}
				return OK(names)
			}),

		New("create_gallery_still_album", "gallery", "Create a still album, optionally naming it.",
			[]ParamSpec{P("album_name", "string", "Name for the new album.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				AlbumName string `json:"album_name"`
			}) Result {
				gallery, res := currentGallery(ctx, deps)
				if !res.Success {
					return res
				}
				album, err := gallery.CreateStillAlbum(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !album.Valid() {
					return Fail("Failed to create still album")
				}
				if p.AlbumName != "" {
					if renamed, err := gallery.SetAlbumName(ctx, album, p.AlbumName); err != nil || !renamed {
						return OKWarn("created", "Album created but could not be renamed")
					}
				}
				return OK("created")
			}),

		New("get_gallery_power_grade_albums", "gallery", "List the gallery's power grade album labels.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				gallery, res := currentGallery(ctx, deps)
				if !res.Success {
					return res
				}
				albums, err := gallery.PowerGradeAlbums(ctx)
				if err != nil {
					return FailErr(err)
				}
				labels := make([]string, 0, len(albums))
				for _, album := range albums {
					if label, err := album.Label(ctx); err == nil {
						labels = append(labels, label)
					}
				}
				return OK(labels)
			}),

		New("create_gallery_power_grade_album", "gallery", "Create a power grade album.",
			[]ParamSpec{P("album_name", "string", "Name for the new album.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				AlbumName string `json:"album_name"`
			}) Result {
				if p.AlbumName == "" {
					return Fail("No album name given")
				}
				gallery, res := currentGallery(ctx, deps)
				if !res.Success {
					return res
				}
				existing, err := gallery.PowerGradeAlbums(ctx)
				if err != nil {
					return FailErr(err)
				}
				for _, album := range existing {
					if label, err := album.Label(ctx); err == nil && label == p.AlbumName {
						return Failf("Power grade album already exists: %s", p.AlbumName)
					}
				}
				album, err := gallery.CreatePowerGradeAlbum(ctx, p.AlbumName)
				if err != nil {
					return FailErr(err)
				}
				if !album.Valid() {
					return Failf("Failed to create power grade album: %s", p.AlbumName)
				}
				return OK(p.AlbumName)
			}),
	}
}
