package tools

import (
	"context"
	"strings"
)

// MediaStorageTools covers the media storage browser: mounted volumes,
// filesystem listing and direct import into the media pool.
func MediaStorageTools() []Tool {
	return []Tool{
		New("get_mounted_volumes", "media_storage", "List mounted storage volumes.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				storage, ok := deps.Session.MediaStorage(ctx)
				if !ok {
					return Fail(ErrNoMediaStore)
				}
				volumes, err := storage.MountedVolumes(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(volumes)
			}),

		New("get_storage_subfolders", "media_storage", "List subfolders of a storage path.",
			[]ParamSpec{P("path", "string", "Storage folder path.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Path string `json:"path"`
			}) Result {
				if p.Path == "" {
					return Fail("No path given")
				}
				if !pathExists(p.Path) {
					return Failf("Path does not exist: %s", p.Path)
				}
				if !dirExists(p.Path) {
					return Failf("Path is not a directory: %s", p.Path)
				}
				storage, ok := deps.Session.MediaStorage(ctx)
				if !ok {
					return Fail(ErrNoMediaStore)
				}
				folders, err := storage.SubFolderList(ctx, p.Path)
				if err != nil {
					return FailErr(err)
				}
				return OK(folders)
			}),

		New("get_storage_files", "media_storage", "List media files in a storage path.",
			[]ParamSpec{P("path", "string", "Storage folder path.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Path string `json:"path"`
			}) Result {
				if p.Path == "" {
					return Fail("No path given")
				}
				if !pathExists(p.Path) {
					return Failf("Path does not exist: %s", p.Path)
				}
				if !dirExists(p.Path) {
					return Failf("Path is not a directory: %s", p.Path)
				}
				storage, ok := deps.Session.MediaStorage(ctx)
				if !ok {
					return Fail(ErrNoMediaStore)
				}
				files, err := storage.FileList(ctx, p.Path)
				if err != nil {
					return FailErr(err)
				}
				return OK(files)
			}),

		New("reveal_in_storage", "media_storage", "Reveal a path in the media storage browser.",
			[]ParamSpec{P("path", "string", "Path to reveal.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Path string `json:"path"`
			}) Result {
				if p.Path == "" {
					return Fail("No path given")
				}
				if !pathExists(p.Path) {
					return Failf("Path does not exist: %s", p.Path)
				}
				storage, ok := deps.Session.MediaStorage(ctx)
				if !ok {
					return Fail(ErrNoMediaStore)
				}
				revealed, err := storage.RevealInStorage(ctx, p.Path)
				if err != nil {
					return FailErr(err)
				}
				if !revealed {
					return Failf("Failed to reveal path: %s", p.Path)
				}
				return OK(p.Path)
			}),

		New("add_items_to_media_pool", "media_storage", "Import storage items into the current media pool folder.",
			[]ParamSpec{P("paths", "array", "File or folder paths to import.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Paths []string `json:"paths"`
			}) Result {
				if len(p.Paths) == 0 {
					return Fail("No paths given")
				}
				if missing := missingPaths(p.Paths); len(missing) > 0 {
					return Failf("Path does not exist: %s", strings.Join(missing, ", "))
				}
				if _, ok := deps.Session.CurrentProject(ctx); !ok {
					return Fail(ErrNoProject)
				}
				storage, ok := deps.Session.MediaStorage(ctx)
				if !ok {
					return Fail(ErrNoMediaStore)
				}
				clips, err := storage.AddItemsToMediaPool(ctx, p.Paths)
				if err != nil {
					return FailErr(err)
				}
				names := make([]string, 0, len(clips))
				for _, clip := range clips {
					if name, err := clip.Name(ctx); err == nil {
						names = append(names, name)
					}
				}
				return OK(map[string]interface{}{
					"imported": len(clips),
					"clips":    names,
				})
			}),

		New("add_clip_mattes_to_media_pool", "media_storage", "Attach matte files to a media pool clip.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("paths", "array", "Matte file paths.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string   `json:"clip_name"`
				Paths    []string `json:"paths"`
			}) Result {
				if len(p.Paths) == 0 {
					return Fail("No paths given")
				}
				if missing := missingPaths(p.Paths); len(missing) > 0 {
					return Failf("Path does not exist: %s", strings.Join(missing, ", "))
				}
				_, clips, res := resolveClipList(ctx, deps, []string{p.ClipName})
				if !res.Success {
					return res
				}
				storage, ok := deps.Session.MediaStorage(ctx)
				if !ok {
					return Fail(ErrNoMediaStore)
				}
				added, err := storage.AddClipMattesToMediaPool(ctx, clips[0], p.Paths)
				if err != nil {
					return FailErr(err)
				}
				if !added {
					return Failf("Failed to add mattes to clip: %s", p.ClipName)
				}
				return OK(len(p.Paths))
			}),

		New("add_timeline_mattes_to_media_pool", "media_storage", "Import timeline mattes into a media pool folder.",
			[]ParamSpec{
				P("paths", "array", "Matte file paths.", true),
				P("folder_name", "string", "Folder name or unique ID; empty uses the current folder.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Paths      []string `json:"paths"`
				FolderName string   `json:"folder_name"`
			}) Result {
				if len(p.Paths) == 0 {
					return Fail("No paths given")
				}
				if missing := missingPaths(p.Paths); len(missing) > 0 {
					return Failf("Path does not exist: %s", strings.Join(missing, ", "))
				}
				folder, res := resolveFolder(ctx, deps, p.FolderName)
				if !res.Success {
					return res
				}
				storage, ok := deps.Session.MediaStorage(ctx)
				if !ok {
					return Fail(ErrNoMediaStore)
				}
				added, err := storage.AddTimelineMattesToMediaPool(ctx, folder, p.Paths)
				if err != nil {
					return FailErr(err)
				}
				if !added {
					return Fail("Failed to add timeline mattes")
				}
				return OK(len(p.Paths))
			}),
	}
}
