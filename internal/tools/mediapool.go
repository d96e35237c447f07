package tools

import (
	"context"
	"strings"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

// MediaPoolTools covers the media pool: folder tree, clip import and the
// bulk clip operations.
func MediaPoolTools() []Tool {
	return []Tool{
		New("list_media_pool_items", "media_pool", "List the clips in the current media pool folder.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				folder, err := pool.CurrentFolder(ctx)
				if err != nil || !folder.Valid() {
					return Fail(ErrNoMediaPool)
				}
				clips, err := folder.ClipList(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(describeClips(ctx, clips))
			}),

		New("get_media_pool_root_folder", "media_pool", "Get the root media pool folder's name and contents.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				root, err := pool.RootFolder(ctx)
				if err != nil || !root.Valid() {
					return Fail(ErrNoMediaPool)
				}
				return OK(describeFolder(ctx, root))
			}),

		New("get_folder_structure", "media_pool", "Get the full media pool folder tree.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				root, err := pool.RootFolder(ctx)
				if err != nil || !root.Valid() {
					return Fail(ErrNoMediaPool)
				}
				return OK(folderTree(ctx, root))
			}),

		New("get_media_pool_current_folder", "media_pool", "Get the current media pool folder.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				folder, err := pool.CurrentFolder(ctx)
				if err != nil || !folder.Valid() {
					return Fail(ErrNoMediaPool)
				}
				return OK(describeFolder(ctx, folder))
			}),

		New("set_media_pool_current_folder", "media_pool", "Make the named folder the current media pool folder.",
			[]ParamSpec{P("folder_name", "string", "Folder name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				FolderName string `json:"folder_name"`
			}) Result {
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				folder, found := host.FindFolder(ctx, pool, p.FolderName)
				if !found {
					return Failf("Folder not found: %s", p.FolderName)
				}
				set, err := pool.SetCurrentFolder(ctx, folder)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to switch to folder: %s", p.FolderName)
				}
				return OK(p.FolderName)
			}),

		New("add_subfolder", "media_pool", "Create a subfolder under the named parent, or under the current folder.",
			[]ParamSpec{
				P("name", "string", "New folder name.", true),
				P("parent_folder", "string", "Parent folder name; empty uses the current folder.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Name         string `json:"name"`
				ParentFolder string `json:"parent_folder"`
			}) Result {
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				var parent host.Folder
				if p.ParentFolder == "" {
					current, err := pool.CurrentFolder(ctx)
					if err != nil || !current.Valid() {
						return Fail(ErrNoMediaPool)
					}
					parent = current
				} else {
					found, ok := host.FindFolder(ctx, pool, p.ParentFolder)
					if !ok {
						return Failf("Folder not found: %s", p.ParentFolder)
					}
					parent = found
				}
				folder, err := pool.AddSubFolder(ctx, parent, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !folder.Valid() {
					return Failf("Failed to create folder: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("refresh_folders", "media_pool", "Refresh the media pool folder tree, needed in collaboration mode.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				refreshed, err := pool.RefreshFolders(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !refreshed {
					return Fail("Failed to refresh folders")
				}
				return OK("refreshed")
			}),

		New("create_empty_timeline", "media_pool", "Create an empty timeline in the current folder.",
			[]ParamSpec{P("name", "string", "Timeline name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				timeline, err := pool.CreateEmptyTimeline(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !timeline.Valid() {
					return Failf("Failed to create timeline: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("import_media", "media_pool", "Import media files into the current folder.",
			[]ParamSpec{P("paths", "array", "Media file paths.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Paths []string `json:"paths"`
			}) Result {
				if len(p.Paths) == 0 {
					return Fail("No paths given")
				}
				if missing := missingPaths(p.Paths); len(missing) > 0 {
					return Failf("Path does not exist: %s", strings.Join(missing, ", "))
				}
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				clips, err := pool.ImportMedia(ctx, p.Paths)
				if err != nil {
					return FailErr(err)
				}
				if len(clips) == 0 {
					return Failf("No media imported from %d path(s)", len(p.Paths))
				}
				return OK(map[string]interface{}{
					"imported": len(clips),
					"clips":    describeClips(ctx, clips),
				})
			}),

		New("delete_clips", "media_pool", "Delete clips from the media pool by name.",
			[]ParamSpec{P("clip_names", "array", "Clip names or unique IDs.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipNames []string `json:"clip_names"`
			}) Result {
				pool, clips, res := resolveClipList(ctx, deps, p.ClipNames)
				if !res.Success {
					return res
				}
				deleted, err := pool.DeleteClips(ctx, clips)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Fail("Failed to delete clips")
				}
				return OK(len(clips))
			}),

		New("append_to_timeline", "media_pool", "Append media pool clips to the current timeline.",
			[]ParamSpec{P("clip_names", "array", "Clip names or unique IDs.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipNames []string `json:"clip_names"`
			}) Result {
				if _, ok := deps.Session.CurrentTimeline(ctx); !ok {
					return Fail(ErrNoTimeline)
				}
				pool, clips, res := resolveClipList(ctx, deps, p.ClipNames)
				if !res.Success {
					return res
				}
				items, err := pool.AppendToTimeline(ctx, clips)
				if err != nil {
					return FailErr(err)
				}
				return OK(map[string]interface{}{"appended": len(items)})
			}),

		New("create_timeline_from_clips", "media_pool", "Create a timeline populated with the named clips.",
			[]ParamSpec{
				P("name", "string", "Timeline name.", true),
				P("clip_names", "array", "Clip names or unique IDs.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Name      string   `json:"name"`
				ClipNames []string `json:"clip_names"`
			}) Result {
				pool, clips, res := resolveClipList(ctx, deps, p.ClipNames)
				if !res.Success {
					return res
				}
				timeline, err := pool.CreateTimelineFromClips(ctx, p.Name, clips)
				if err != nil {
					return FailErr(err)
				}
				if !timeline.Valid() {
					return Failf("Failed to create timeline: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("delete_timelines", "media_pool", "Delete timelines from the project by name.",
			[]ParamSpec{P("timeline_names", "array", "Timeline names or unique IDs.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				TimelineNames []string `json:"timeline_names"`
			}) Result {
				if len(p.TimelineNames) == 0 {
					return Fail("No timeline names given")
				}
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoMediaPool)
				}
				var timelines []host.Timeline
				var missing []string
				for _, name := range p.TimelineNames {
					if timeline, found := host.FindTimeline(ctx, project, name); found {
						timelines = append(timelines, timeline)
					} else {
						missing = append(missing, name)
					}
				}
				if len(missing) > 0 {
					return Failf("Timeline not found: %s", strings.Join(missing, ", "))
				}
				deleted, err := pool.DeleteTimelines(ctx, timelines)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Fail("Failed to delete timelines")
				}
				return OK(len(timelines))
			}),

		New("delete_folders", "media_pool", "Delete media pool folders by name.",
			[]ParamSpec{P("folder_names", "array", "Folder names or unique IDs.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				FolderNames []string `json:"folder_names"`
			}) Result {
				if len(p.FolderNames) == 0 {
					return Fail("No folder names given")
				}
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				var folders []host.Folder
				var missing []string
				for _, name := range p.FolderNames {
					if folder, found := host.FindFolder(ctx, pool, name); found {
						folders = append(folders, folder)
					} else {
						missing = append(missing, name)
					}
				}
				if len(missing) > 0 {
					return Failf("Folder not found: %s", strings.Join(missing, ", "))
				}
				deleted, err := pool.DeleteFolders(ctx, folders)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Fail("Failed to delete folders")
				}
				return OK(len(folders))
			}),

		New("move_clips", "media_pool", "Move clips into another media pool folder.",
			[]ParamSpec{
				P("clip_names", "array", "Clip names or unique IDs.", true),
				P("target_folder", "string", "Destination folder name or unique ID.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipNames    []string `json:"clip_names"`
				TargetFolder string   `json:"target_folder"`
			}) Result {
				pool, clips, res := resolveClipList(ctx, deps, p.ClipNames)
				if !res.Success {
					return res
				}
				target, found := host.FindFolder(ctx, pool, p.TargetFolder)
				if !found {
					return Failf("Folder not found: %s", p.TargetFolder)
				}
				moved, err := pool.MoveClips(ctx, clips, target)
				if err != nil {
					return FailErr(err)
				}
				if !moved {
					return Fail("Failed to move clips")
				}
				return OK(len(clips))
			}),

		New("move_folders", "media_pool", "Move media pool folders under another folder.",
			[]ParamSpec{
				P("folder_names", "array", "Folder names or unique IDs.", true),
				P("target_folder", "string", "Destination folder name or unique ID.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				FolderNames  []string `json:"folder_names"`
				TargetFolder string   `json:"target_folder"`
			}) Result {
				if len(p.FolderNames) == 0 {
					return Fail("No folder names given")
				}
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				var folders []host.Folder
				for _, name := range p.FolderNames {
					folder, found := host.FindFolder(ctx, pool, name)
					if !found {
						return Failf("Folder not found: %s", name)
					}
					folders = append(folders, folder)
				}
				target, found := host.FindFolder(ctx, pool, p.TargetFolder)
				if !found {
					return Failf("Folder not found: %s", p.TargetFolder)
				}
				moved, err := pool.MoveFolders(ctx, folders, target)
				if err != nil {
					return FailErr(err)
				}
				if !moved {
					return Fail("Failed to move folders")
				}
				return OK(len(folders))
			}),

		New("relink_clips", "media_pool", "Relink clips to media under a folder path.",
			[]ParamSpec{
				P("clip_names", "array", "Clip names or unique IDs.", true),
				P("folder_path", "string", "Filesystem path holding the media.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipNames  []string `json:"clip_names"`
				FolderPath string   `json:"folder_path"`
			}) Result {
				if p.FolderPath == "" {
					return Fail("No folder path given")
				}
				pool, clips, res := resolveClipList(ctx, deps, p.ClipNames)
				if !res.Success {
					return res
				}
				relinked, err := pool.RelinkClips(ctx, clips, p.FolderPath)
				if err != nil {
					return FailErr(err)
				}
				if !relinked {
					return Fail("Failed to relink clips")
				}
				return OK(len(clips))
			}),

		New("unlink_clips", "media_pool", "Unlink clips from their media.",
			[]ParamSpec{P("clip_names", "array", "Clip names or unique IDs.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipNames []string `json:"clip_names"`
			}) Result {
				pool, clips, res := resolveClipList(ctx, deps, p.ClipNames)
				if !res.Success {
					return res
				}
				unlinked, err := pool.UnlinkClips(ctx, clips)
				if err != nil {
					return FailErr(err)
				}
				if !unlinked {
					return Fail("Failed to unlink clips")
				}
				return OK(len(clips))
			}),

		New("auto_sync_audio", "media_pool", "Sync audio across clips by waveform or timecode.",
			[]ParamSpec{
				P("clip_names", "array", "Clip names or unique IDs, at least two.", true),
				P("sync_type", "string", "waveform or timecode.", false),
				P("append_mode", "boolean", "Append synced audio instead of replacing.", false),
				P("target_bin", "string", "Destination folder for synced clips.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipNames  []string `json:"clip_names"`
				SyncType   string   `json:"sync_type"`
				AppendMode bool     `json:"append_mode"`
				TargetBin  string   `json:"target_bin"`
			}) Result {
				if len(p.ClipNames) < 2 {
					return Fail("Audio sync requires at least two clips")
				}
				syncType := p.SyncType
				if syncType == "" {
					syncType = "waveform"
				}
				if syncType != "waveform" && syncType != "timecode" {
					return Failf("Invalid sync type: %s. Valid types are: waveform, timecode", p.SyncType)
				}
				pool, clips, res := resolveClipList(ctx, deps, p.ClipNames)
				if !res.Success {
					return res
				}
				settings := map[string]interface{}{
					"syncType":   syncType,
					"appendMode": p.AppendMode,
				}
				if p.TargetBin != "" {
					settings["targetBin"] = p.TargetBin
				}
				synced, err := pool.AutoSyncAudio(ctx, clips, settings)
				if err != nil {
					return FailErr(err)
				}
				if !synced {
					return Fail("Failed to sync audio")
				}
				return OK(len(clips))
			}),

		New("export_metadata", "media_pool", "Export clip metadata to a CSV file.",
			[]ParamSpec{
				P("file_path", "string", "Destination CSV path.", true),
				P("clip_names", "array", "Clip names; empty exports all clips.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				FilePath  string   `json:"file_path"`
				ClipNames []string `json:"clip_names"`
			}) Result {
				if p.FilePath == "" {
					return Fail("No file path given")
				}
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				var clips []host.MediaPoolItem
				for _, name := range p.ClipNames {
					clip, found := host.FindClip(ctx, pool, name)
					if !found {
						return Failf("Clip not found: %s", name)
					}
					clips = append(clips, clip)
				}
				exported, err := pool.ExportMetadata(ctx, p.FilePath, clips)
				if err != nil {
					return FailErr(err)
				}
				if !exported {
					return Fail("Failed to export metadata")
				}
				return OK(p.FilePath)
			}),

		New("append_all_clips_to_timeline", "media_pool", "Append every clip in the current folder to the current timeline.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				if _, ok := deps.Session.CurrentTimeline(ctx); !ok {
					return Fail(ErrNoTimeline)
				}
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				folder, err := pool.CurrentFolder(ctx)
				if err != nil || !folder.Valid() {
					return Fail("Failed to get current folder")
				}
				clips, err := folder.ClipList(ctx)
				if err != nil {
					return FailErr(err)
				}
				if len(clips) == 0 {
					return Fail("No clips found in current folder")
				}
				items, err := pool.AppendToTimeline(ctx, clips)
				if err != nil {
					return FailErr(err)
				}
				if len(items) == 0 {
					return Fail("Failed to append clips to timeline")
				}
				return OK(map[string]interface{}{"appended": len(items)})
			}),

		New("get_clip_matte_list", "media_pool", "List the matte files attached to a clip.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				pool, clips, res := resolveClipList(ctx, deps, []string{p.ClipName})
				if !res.Success {
					return res
				}
				mattes, err := pool.ClipMatteList(ctx, clips[0])
				if err != nil {
					return FailErr(err)
				}
				return OK(map[string]interface{}{
					"matte_count": len(mattes),
					"matte_paths": mattes,
				})
			}),

		New("get_timeline_matte_list", "media_pool", "List the timeline mattes in a media pool folder.",
			[]ParamSpec{P("folder_name", "string", "Folder name or unique ID; empty uses the current folder.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				FolderName string `json:"folder_name"`
			}) Result {
				folder, res := resolveFolder(ctx, deps, p.FolderName)
				if !res.Success {
					return res
				}
				pool, ok := deps.Session.CurrentMediaPool(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				mattes, err := pool.TimelineMatteList(ctx, folder)
				if err != nil {
					return FailErr(err)
				}
				return OK(map[string]interface{}{
					"matte_count": len(mattes),
					"mattes":      describeClips(ctx, mattes),
				})
			}),

		New("delete_clip_mattes", "media_pool", "Delete matte files from a clip.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("matte_paths", "array", "Matte file paths to remove.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName   string   `json:"clip_name"`
				MattePaths []string `json:"matte_paths"`
			}) Result {
				if len(p.MattePaths) == 0 {
					return Fail("No matte paths given")
				}
				pool, clips, res := resolveClipList(ctx, deps, []string{p.ClipName})
				if !res.Success {
					return res
				}
				deleted, err := pool.DeleteClipMattes(ctx, clips[0], p.MattePaths)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Fail("Failed to delete clip mattes")
				}
				return OK(len(p.MattePaths))
			}),

		New("create_stereo_clip", "media_pool", "Create a stereo 3D clip from left and right eye clips.",
			[]ParamSpec{
				P("left_clip", "string", "Left eye clip name or unique ID.", true),
				P("right_clip", "string", "Right eye clip name or unique ID.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				LeftClip  string `json:"left_clip"`
				RightClip string `json:"right_clip"`
			}) Result {
				pool, clips, res := resolveClipList(ctx, deps, []string{p.LeftClip, p.RightClip})
				if !res.Success {
					return res
				}
				stereo, err := pool.CreateStereoClip(ctx, clips[0], clips[1])
				if err != nil {
					return FailErr(err)
				}
				if !stereo.Valid() {
					return Fail("Failed to create stereo clip")
				}
				name, _ := stereo.Name(ctx)
				return OK(name)
			}),
	}
}

// resolveClipList resolves names against the current media pool. The empty
// Result has Success set when resolution succeeded.
func resolveClipList(ctx context.Context, deps *Deps, names []string) (host.MediaPool, []host.MediaPoolItem, Result) {
	if len(names) == 0 {
		return host.MediaPool{}, nil, Fail("No clip names given")
	}
	pool, ok := deps.Session.CurrentMediaPool(ctx)
	if !ok {
		return host.MediaPool{}, nil, Fail(ErrNoProject)
	}
	var clips []host.MediaPoolItem
	var missing []string
	for _, name := range names {
		if clip, found := host.FindClip(ctx, pool, name); found {
			clips = append(clips, clip)
		} else {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return host.MediaPool{}, nil, Failf("Clip not found: %s", strings.Join(missing, ", "))
	}
	return pool, clips, Result{Success: true}
}

func describeClips(ctx context.Context, clips []host.MediaPoolItem) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(clips))
	for _, clip := range clips {
		entry := map[string]interface{}{}
		if name, err := clip.Name(ctx); err == nil {
			entry["name"] = name
		}
		if id, err := clip.UniqueID(ctx); err == nil && id != "" {
			entry["unique_id"] = id
		}
		out = append(out, entry)
	}
	return out
}

func describeFolder(ctx context.Context, folder host.Folder) map[string]interface{} {
	out := map[string]interface{}{}
	if name, err := folder.Name(ctx); err == nil {
		out["name"] = name
	}
	if id, err := folder.UniqueID(ctx); err == nil && id != "" {
		out["unique_id"] = id
	}
	if clips, err := folder.ClipList(ctx); err == nil {
		out["clip_count"] = len(clips)
	}
	if subFolders, err := folder.SubFolderList(ctx); err == nil {
		names := make([]string, 0, len(subFolders))
		for _, sub := range subFolders {
			if name, err := sub.Name(ctx); err == nil {
				names = append(names, name)
			}
		}
		out["subfolders"] = names
	}
	return out
}

func folderTree(ctx context.Context, folder host.Folder) map[string]interface{} {
	node := map[string]interface{}{}
	if name, err := folder.Name(ctx); err == nil {
		node["name"] = name
	}
	if clips, err := folder.ClipList(ctx); err == nil {
		names := make([]string, 0, len(clips))
		for _, clip := range clips {
			if name, err := clip.Name(ctx); err == nil {
				names = append(names, name)
			}
		}
		node["clips"] = names
	}
	if subFolders, err := folder.SubFolderList(ctx); err == nil {
		children := make([]map[string]interface{}, 0, len(subFolders))
		for _, sub := range subFolders {
			children = append(children, folderTree(ctx, sub))
		}
		node["folders"] = children
	}
	return node
}
