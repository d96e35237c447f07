package tools

import (
	"context"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

// resolveFolder finds a media pool folder by name or unique ID; an empty
// ref resolves to the current folder.
func resolveFolder(ctx context.Context, deps *Deps, ref string) (host.Folder, Result) {
	pool, ok := deps.Session.CurrentMediaPool(ctx)
	if !ok {
		return host.Folder{}, Fail(ErrNoProject)
	}
	if ref == "" {
		folder, err := pool.CurrentFolder(ctx)
		if err != nil || !folder.Valid() {
			return host.Folder{}, Fail(ErrNoMediaPool)
		}
		return folder, Result{Success: true}
	}
	folder, found := host.FindFolder(ctx, pool, ref)
	if !found {
		return host.Folder{}, Failf("Folder not found: %s", ref)
	}
	return folder, Result{Success: true}
}

// FolderTools covers per-folder operations in the media pool.
func FolderTools() []Tool {
	return []Tool{
		New("get_folder_name", "folder", "Get a media pool folder's name.",
			[]ParamSpec{P("folder_name", "string", "Folder name or unique ID; empty uses the current folder.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				FolderName string `json:"folder_name"`
			}) Result {
				folder, res := resolveFolder(ctx, deps, p.FolderName)
				if !res.Success {
					return res
				}
				name, err := folder.Name(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(name)
			}),

		New("get_folder_unique_id", "folder", "Get a media pool folder's unique ID.",
			[]ParamSpec{P("folder_name", "string", "Folder name; empty uses the current folder.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				FolderName string `json:"folder_name"`
			}) Result {
				folder, res := resolveFolder(ctx, deps, p.FolderName)
				if !res.Success {
					return res
				}
				id, err := folder.UniqueID(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(id)
			}),

		New("get_folder_clips", "folder", "List the clips in a media pool folder.",
			[]ParamSpec{P("folder_name", "string", "Folder name or unique ID; empty uses the current folder.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				FolderName string `json:"folder_name"`
			}) Result {
				folder, res := resolveFolder(ctx, deps, p.FolderName)
				if !res.Success {
					return res
				}
				clips, err := folder.ClipList(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(describeClips(ctx, clips))
			}),

		New("get_folder_subfolders", "folder", "List the subfolders of a media pool folder.",
			[]ParamSpec{P("folder_name", "string", "Folder name or unique ID; empty uses the current folder.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				FolderName string `json:"folder_name"`
			}) Result {
				folder, res := resolveFolder(ctx, deps, p.FolderName)
				if !res.Success {
					return res
				}
				subFolders, err := folder.SubFolderList(ctx)
				if err != nil {
					return FailErr(err)
				}
				names := make([]string, 0, len(subFolders))
				for _, sub := range subFolders {
					if name, err := sub.Name(ctx); err == nil {
						names = append(names, name)
					}
				}
				return OK(names)
			}),

		New("get_is_folder_stale", "folder", "Report whether a folder's content is stale in collaboration mode.",
			[]ParamSpec{P("folder_name", "string", "Folder name or unique ID; empty uses the current folder.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				FolderName string `json:"folder_name"`
			}) Result {
				folder, res := resolveFolder(ctx, deps, p.FolderName)
				if !res.Success {
					return res
				}
				stale, err := folder.IsStale(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(stale)
			}),

		New("export_folder", "folder", "Export a folder and its contents to a DRB file.",
			[]ParamSpec{
				P("file_path", "string", "Destination DRB path.", true),
				P("folder_name", "string", "Folder name or unique ID; empty uses the current folder.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				FilePath   string `json:"file_path"`
				FolderName string `json:"folder_name"`
			}) Result {
				if p.FilePath == "" {
					return Fail("No file path given")
				}
				folder, res := resolveFolder(ctx, deps, p.FolderName)
				if !res.Success {
					return res
				}
				exported, err := folder.Export(ctx, p.FilePath)
				if err != nil {
					return FailErr(err)
				}
				if !exported {
					return Failf("Failed to export folder to: %s", p.FilePath)
				}
				return OK(p.FilePath)
			}),

		New("transcribe_folder_audio", "folder", "Start audio transcription for every clip in a folder.",
			[]ParamSpec{P("folder_name", "string", "Folder name or unique ID; empty uses the current folder.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				FolderName string `json:"folder_name"`
			}) Result {
				folder, res := resolveFolder(ctx, deps, p.FolderName)
				if !res.Success {
					return res
				}
				started, err := folder.TranscribeAudio(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !started {
					return Fail("Failed to start transcription")
				}
				return OK("transcribing")
			}),

		New("clear_folder_transcription", "folder", "Clear the audio transcription of every clip in a folder.",
			[]ParamSpec{P("folder_name", "string", "Folder name or unique ID; empty uses the current folder.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				FolderName string `json:"folder_name"`
			}) Result {
				folder, res := resolveFolder(ctx, deps, p.FolderName)
				if !res.Success {
					return res
				}
				cleared, err := folder.ClearTranscription(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !cleared {
					return Fail("Failed to clear transcription")
				}
				return OK("cleared")
			}),
	}
}
