package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

var stillFormats = []string{"dpx", "cin", "tif", "jpg", "png", "ppm", "bmp", "xpm"}

// resolveAlbum returns the named album, or the current one when name is
// empty.
func resolveAlbum(ctx context.Context, deps *Deps, name string) (host.Gallery, host.StillAlbum, Result) {
	gallery, res := currentGallery(ctx, deps)
	if !res.Success {
		return host.Gallery{}, host.StillAlbum{}, res
	}
	if name == "" {
		album, err := gallery.CurrentStillAlbum(ctx)
		if err != nil || !album.Valid() {
			return host.Gallery{}, host.StillAlbum{}, Fail("No current still album")
		}
		return gallery, album, Result{Success: true}
	}
	album, found := findAlbum(ctx, gallery, name)
	if !found {
		return host.Gallery{}, host.StillAlbum{}, Failf("Album not found: %s", name)
	}
	return gallery, album, Result{Success: true}
}

// GalleryAlbumTools covers stills inside an album: labels, import, export
// and deletion. Stills are addressed by their 1-based position in the
// album.
func GalleryAlbumTools() []Tool {
	return []Tool{
		New("get_album_stills", "gallery_still_album", "List the stills in an album with their labels.",
			[]ParamSpec{P("album_name", "string", "Album name; empty uses the current album.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				AlbumName string `json:"album_name"`
			}) Result {
				_, album, res := resolveAlbum(ctx, deps, p.AlbumName)
				if !res.Success {
					return res
				}
				stills, err := album.Stills(ctx)
				if err != nil {
					return FailErr(err)
				}
				out := make([]map[string]interface{}, 0, len(stills))
				for i, still := range stills {
					entry := map[string]interface{}{"index": i + 1}
					if label, err := album.Label(ctx, still); err == nil {
						entry["label"] = label
					}
					out = append(out, entry)
				}
				return OK(out)
			}),

		New("get_album_label", "gallery_still_album", "Get the label of a still in an album.",
			[]ParamSpec{
				P("still_index", "integer", "Still position in the album, starting at 1.", true),
				P("album_name", "string", "Album name; empty uses the current album.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				StillIndex int    `json:"still_index"`
				AlbumName  string `json:"album_name"`
			}) Result {
				_, album, res := resolveAlbum(ctx, deps, p.AlbumName)
				if !res.Success {
					return res
				}
				stills, err := album.Stills(ctx)
				if err != nil {
					return FailErr(err)
				}
				if p.StillIndex < 1 || p.StillIndex > len(stills) {
					return Failf("Invalid still index: %d. Valid range is 1-%d", p.StillIndex, len(stills))
				}
				label, err := album.Label(ctx, stills[p.StillIndex-1])
				if err != nil {
					return FailErr(err)
				}
				return OK(label)
			}),

		New("set_album_label", "gallery_still_album", "Set the label of a still in an album.",
			[]ParamSpec{
				P("still_index", "integer", "Still position in the album, starting at 1.", true),
				P("label", "string", "New label.", true),
				P("album_name", "string", "Album name; empty uses the current album.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				StillIndex int    `json:"still_index"`
				Label      string `json:"label"`
				AlbumName  string `json:"album_name"`
			}) Result {
				_, album, res := resolveAlbum(ctx, deps, p.AlbumName)
				if !res.Success {
					return res
				}
				stills, err := album.Stills(ctx)
				if err != nil {
					return FailErr(err)
				}
				if p.StillIndex < 1 || p.StillIndex > len(stills) {
					return Failf("Invalid still index: %d. Valid range is 1-%d", p.StillIndex, len(stills))
				}
				set, err := album.SetLabel(ctx, stills[p.StillIndex-1], p.Label)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set label: %s", p.Label)
				}
				return OK(p.Label)
			}),

		New("import_stills", "gallery_still_album", "Import still files into an album.",
			[]ParamSpec{
				P("paths", "array", "Still file paths.", true),
				P("album_name", "string", "Album name; empty uses the current album.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Paths     []string `json:"paths"`
				AlbumName string   `json:"album_name"`
			}) Result {
				if len(p.Paths) == 0 {
					return Fail("No paths given")
				}
				var valid, skipped []string
				for _, path := range p.Paths {
					if fileExists(path) {
						valid = append(valid, path)
					} else {
						skipped = append(skipped, path)
					}
				}
				if len(valid) == 0 {
					return Fail("No valid file paths provided")
				}
				_, album, res := resolveAlbum(ctx, deps, p.AlbumName)
				if !res.Success {
					return res
				}
				imported, err := album.ImportStills(ctx, valid)
				if err != nil {
					return FailErr(err)
				}
				if !imported {
					return Fail("Failed to import stills")
				}
				if len(skipped) > 0 {
					return OKWarn(len(valid), fmt.Sprintf("Skipped missing still file(s): %s", strings.Join(skipped, ", ")))
				}
				return OK(len(valid))
			}),

		New("export_stills", "gallery_still_album", "Export stills from an album to a folder.",
			[]ParamSpec{
				P("folder_path", "string", "Destination folder.", true),
				P("file_prefix", "string", "Filename prefix for the exported stills.", true),
				P("format", "string", "dpx, cin, tif, jpg, png, ppm, bmp or xpm.", true),
				P("still_indices", "array", "Still positions to export; empty exports all.", false),
				P("album_name", "string", "Album name; empty uses the current album.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				FolderPath   string `json:"folder_path"`
				FilePrefix   string `json:"file_prefix"`
				Format       string `json:"format"`
				StillIndices []int  `json:"still_indices"`
				AlbumName    string `json:"album_name"`
			}) Result {
				if p.FolderPath == "" {
					return Fail("No folder path given")
				}
				if !containsString(stillFormats, p.Format) {
					return Failf("Invalid still format: %s", p.Format)
				}
				_, album, res := resolveAlbum(ctx, deps, p.AlbumName)
				if !res.Success {
					return res
				}
				stills, err := album.Stills(ctx)
				if err != nil {
					return FailErr(err)
				}
				selected := stills
				if len(p.StillIndices) > 0 {
					selected = nil
					for _, index := range p.StillIndices {
						if index < 1 || index > len(stills) {
							return Failf("Invalid still index: %d. Valid range is 1-%d", index, len(stills))
						}
						selected = append(selected, stills[index-1])
					}
				}
				if len(selected) == 0 {
					return Fail("Album has no stills to export")
				}
				exported, err := album.ExportStills(ctx, selected, p.FolderPath, p.FilePrefix, p.Format)
				if err != nil {
					return FailErr(err)
				}
				if !exported {
					return Fail("Failed to export stills")
				}
				return OK(len(selected))
			}),

		New("delete_stills", "gallery_still_album", "Delete stills from an album.",
			[]ParamSpec{
				P("still_indices", "array", "Still positions to delete; empty deletes all.", false),
				P("album_name", "string", "Album name; empty uses the current album.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				StillIndices []int  `json:"still_indices"`
				AlbumName    string `json:"album_name"`
			}) Result {
				_, album, res := resolveAlbum(ctx, deps, p.AlbumName)
				if !res.Success {
					return res
				}
				stills, err := album.Stills(ctx)
				if err != nil {
					return FailErr(err)
				}
				selected := stills
				if len(p.StillIndices) > 0 {
					selected = nil
					for _, index := range p.StillIndices {
						if index < 1 || index > len(stills) {
							return Failf("Invalid still index: %d. Valid range is 1-%d", index, len(stills))
						}
						selected = append(selected, stills[index-1])
					}
				}
				if len(selected) == 0 {
					return Fail("Album has no stills to delete")
				}
				deleted, err := album.DeleteStills(ctx, selected)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Fail("Failed to delete stills")
				}
				return OK(len(selected))
			}),
	}
}
