package host

import "context"

// MediaPool wraps the host media pool object.
type MediaPool struct{ obj Object }

func (m MediaPool) Valid() bool { return m.obj != nil }
func (m MediaPool) raw() Object { return m.obj }

func (m MediaPool) RootFolder(ctx context.Context) (Folder, error) {
	obj, err := callObject(ctx, m.obj, "GetRootFolder")
	return Folder{obj: obj}, err
}

func (m MediaPool) CurrentFolder(ctx context.Context) (Folder, error) {
	obj, err := callObject(ctx, m.obj, "GetCurrentFolder")
	return Folder{obj: obj}, err
}

func (m MediaPool) SetCurrentFolder(ctx context.Context, f Folder) (bool, error) {
	return callBool(ctx, m.obj, "SetCurrentFolder", f.raw())
}

func (m MediaPool) AddSubFolder(ctx context.Context, parent Folder, name string) (Folder, error) {
	obj, err := callObject(ctx, m.obj, "AddSubFolder", parent.raw(), name)
	return Folder{obj: obj}, err
}

func (m MediaPool) RefreshFolders(ctx context.Context) (bool, error) {
	return callBool(ctx, m.obj, "RefreshFolders")
}

func (m MediaPool) CreateEmptyTimeline(ctx context.Context, name string) (Timeline, error) {
	obj, err := callObject(ctx, m.obj, "CreateEmptyTimeline", name)
	return Timeline{obj: obj}, err
}

func (m MediaPool) ImportMedia(ctx context.Context, paths []string) ([]MediaPoolItem, error) {
	objects, err := callObjects(ctx, m.obj, "ImportMedia", toAnySlice(paths))
	return wrapClips(objects), err
}

func (m MediaPool) ImportTimelineFromFile(ctx context.Context, path string, options map[string]interface{}) (Timeline, error) {
	obj, err := callObject(ctx, m.obj, "ImportTimelineFromFile", path, options)
	return Timeline{obj: obj}, err
}

func (m MediaPool) DeleteClips(ctx context.Context, clips []MediaPoolItem) (bool, error) {
	return callBool(ctx, m.obj, "DeleteClips", rawObjects(clips))
}

func (m MediaPool) AppendToTimeline(ctx context.Context, clips []MediaPoolItem) ([]TimelineItem, error) {
	objects, err := callObjects(ctx, m.obj, "AppendToTimeline", rawObjects(clips))
	return wrapTimelineItems(objects), err
}

func (m MediaPool) CreateTimelineFromClips(ctx context.Context, name string, clips []MediaPoolItem) (Timeline, error) {
	obj, err := callObject(ctx, m.obj, "CreateTimelineFromClips", name, rawObjects(clips))
	return Timeline{obj: obj}, err
}

func (m MediaPool) DeleteTimelines(ctx context.Context, timelines []Timeline) (bool, error) {
	return callBool(ctx, m.obj, "DeleteTimelines", rawObjects(timelines))
}

func (m MediaPool) DeleteFolders(ctx context.Context, folders []Folder) (bool, error) {
	return callBool(ctx, m.obj, "DeleteFolders", rawObjects(folders))
}

func (m MediaPool) MoveClips(ctx context.Context, clips []MediaPoolItem, target Folder) (bool, error) {
	return callBool(ctx, m.obj, "MoveClips", rawObjects(clips), target.raw())
}

func (m MediaPool) MoveFolders(ctx context.Context, folders []Folder, target Folder) (bool, error) {
	return callBool(ctx, m.obj, "MoveFolders", rawObjects(folders), target.raw())
}

func (m MediaPool) RelinkClips(ctx context.Context, clips []MediaPoolItem, folderPath string) (bool, error) {
	return callBool(ctx, m.obj, "RelinkClips", rawObjects(clips), folderPath)
}

func (m MediaPool) UnlinkClips(ctx context.Context, clips []MediaPoolItem) (bool, error) {
	return callBool(ctx, m.obj, "UnlinkClips", rawObjects(clips))
}

func (m MediaPool) AutoSyncAudio(ctx context.Context, clips []MediaPoolItem, settings map[string]interface{}) (bool, error) {
	return callBool(ctx, m.obj, "AutoSyncAudio", rawObjects(clips), settings)
}

func (m MediaPool) ClipMatteList(ctx context.Context, clip MediaPoolItem) ([]string, error) {
	return callStrings(ctx, m.obj, "GetClipMatteList", clip.raw())
}

func (m MediaPool) TimelineMatteList(ctx context.Context, folder Folder) ([]MediaPoolItem, error) {
	objects, err := callObjects(ctx, m.obj, "GetTimelineMatteList", folder.raw())
	return wrapClips(objects), err
}

func (m MediaPool) DeleteClipMattes(ctx context.Context, clip MediaPoolItem, paths []string) (bool, error) {
	return callBool(ctx, m.obj, "DeleteClipMattes", clip.raw(), toAnySlice(paths))
}

func (m MediaPool) CreateStereoClip(ctx context.Context, left, right MediaPoolItem) (MediaPoolItem, error) {
	obj, err := callObject(ctx, m.obj, "CreateStereoClip", left.raw(), right.raw())
	return MediaPoolItem{obj: obj}, err
}

func (m MediaPool) ExportMetadata(ctx context.Context, path string, clips []MediaPoolItem) (bool, error) {
	if len(clips) == 0 {
		return callBool(ctx, m.obj, "ExportMetadata", path)
	}
	return callBool(ctx, m.obj, "ExportMetadata", path, rawObjects(clips))
}

// Folder wraps a host media pool folder object.
type Folder struct{ obj Object }

func (f Folder) Valid() bool { return f.obj != nil }
func (f Folder) raw() Object { return f.obj }

func (f Folder) Name(ctx context.Context) (string, error) {
	return callString(ctx, f.obj, "GetName")
}

func (f Folder) UniqueID(ctx context.Context) (string, error) {
	return callString(ctx, f.obj, "GetUniqueId")
}

func (f Folder) ClipList(ctx context.Context) ([]MediaPoolItem, error) {
	objects, err := callObjects(ctx, f.obj, "GetClipList")
	return wrapClips(objects), err
}

func (f Folder) SubFolderList(ctx context.Context) ([]Folder, error) {
	objects, err := callObjects(ctx, f.obj, "GetSubFolderList")
	folders := make([]Folder, 0, len(objects))
	for _, obj := range objects {
		folders = append(folders, Folder{obj: obj})
	}
	return folders, err
}

func (f Folder) IsStale(ctx context.Context) (bool, error) {
	return callBool(ctx, f.obj, "GetIsFolderStale")
}

func (f Folder) Export(ctx context.Context, path string) (bool, error) {
	return callBool(ctx, f.obj, "Export", path)
}

func (f Folder) TranscribeAudio(ctx context.Context) (bool, error) {
	return callBool(ctx, f.obj, "TranscribeAudio")
}

func (f Folder) ClearTranscription(ctx context.Context) (bool, error) {
	return callBool(ctx, f.obj, "ClearTranscription")
}

// MediaPoolItem wraps a host media pool clip object.
type MediaPoolItem struct{ obj Object }

func wrapClips(objects []Object) []MediaPoolItem {
	clips := make([]MediaPoolItem, 0, len(objects))
	for _, obj := range objects {
		clips = append(clips, MediaPoolItem{obj: obj})
	}
	return clips
}

func (c MediaPoolItem) Valid() bool { return c.obj != nil }
func (c MediaPoolItem) raw() Object { return c.obj }

func (c MediaPoolItem) Name(ctx context.Context) (string, error) {
	return callString(ctx, c.obj, "GetName")
}

func (c MediaPoolItem) UniqueID(ctx context.Context) (string, error) {
	return callString(ctx, c.obj, "GetUniqueId")
}

func (c MediaPoolItem) MediaID(ctx context.Context) (string, error) {
	return callString(ctx, c.obj, "GetMediaId")
}

// Metadata returns all metadata when key is empty.
func (c MediaPoolItem) Metadata(ctx context.Context, key string) (interface{}, error) {
	if key == "" {
		return c.obj.Call(ctx, "GetMetadata")
	}
	return c.obj.Call(ctx, "GetMetadata", key)
}

func (c MediaPoolItem) SetMetadata(ctx context.Context, key, value string) (bool, error) {
	return callBool(ctx, c.obj, "SetMetadata", key, value)
}

func (c MediaPoolItem) AddMarker(ctx context.Context, frame int, color, name, note string, duration int, customData string) (bool, error) {
	return callBool(ctx, c.obj, "AddMarker", frame, color, name, note, duration, customData)
}

func (c MediaPoolItem) Markers(ctx context.Context) (map[string]interface{}, error) {
	return callMap(ctx, c.obj, "GetMarkers")
}

func (c MediaPoolItem) DeleteMarkersByColor(ctx context.Context, color string) (bool, error) {
	return callBool(ctx, c.obj, "DeleteMarkersByColor", color)
}

func (c MediaPoolItem) DeleteMarkerAtFrame(ctx context.Context, frame int) (bool, error) {
	return callBool(ctx, c.obj, "DeleteMarkerAtFrame", frame)
}

func (c MediaPoolItem) MarkerByCustomData(ctx context.Context, customData string) (map[string]interface{}, error) {
	return callMap(ctx, c.obj, "GetMarkerByCustomData", customData)
}

func (c MediaPoolItem) UpdateMarkerCustomData(ctx context.Context, frame int, customData string) (bool, error) {
	return callBool(ctx, c.obj, "UpdateMarkerCustomData", frame, customData)
}

func (c MediaPoolItem) MarkerCustomData(ctx context.Context, frame int) (string, error) {
	return callString(ctx, c.obj, "GetMarkerCustomData", frame)
}

func (c MediaPoolItem) DeleteMarkerByCustomData(ctx context.Context, customData string) (bool, error) {
	return callBool(ctx, c.obj, "DeleteMarkerByCustomData", customData)
}

func (c MediaPoolItem) AddFlag(ctx context.Context, color string) (bool, error) {
	return callBool(ctx, c.obj, "AddFlag", color)
}

func (c MediaPoolItem) FlagList(ctx context.Context) ([]string, error) {
	return callStrings(ctx, c.obj, "GetFlagList")
}

func (c MediaPoolItem) ClearFlags(ctx context.Context, color string) (bool, error) {
	return callBool(ctx, c.obj, "ClearFlags", color)
}

func (c MediaPoolItem) ClipColor(ctx context.Context) (string, error) {
	return callString(ctx, c.obj, "GetClipColor")
}

func (c MediaPoolItem) SetClipColor(ctx context.Context, color string) (bool, error) {
	return callBool(ctx, c.obj, "SetClipColor", color)
}

func (c MediaPoolItem) ClearClipColor(ctx context.Context) (bool, error) {
	return callBool(ctx, c.obj, "ClearClipColor")
}

// ClipProperty returns all properties when key is empty.
func (c MediaPoolItem) ClipProperty(ctx context.Context, key string) (interface{}, error) {
	if key == "" {
		return c.obj.Call(ctx, "GetClipProperty")
	}
	return c.obj.Call(ctx, "GetClipProperty", key)
}

func (c MediaPoolItem) SetClipProperty(ctx context.Context, key, value string) (bool, error) {
	return callBool(ctx, c.obj, "SetClipProperty", key, value)
}

func (c MediaPoolItem) LinkProxyMedia(ctx context.Context, path string) (bool, error) {
	return callBool(ctx, c.obj, "LinkProxyMedia", path)
}

func (c MediaPoolItem) UnlinkProxyMedia(ctx context.Context) (bool, error) {
	return callBool(ctx, c.obj, "UnlinkProxyMedia")
}

func (c MediaPoolItem) ReplaceClip(ctx context.Context, path string) (bool, error) {
	return callBool(ctx, c.obj, "ReplaceClip", path)
}

func (c MediaPoolItem) TranscribeAudio(ctx context.Context) (bool, error) {
	return callBool(ctx, c.obj, "TranscribeAudio")
}

func (c MediaPoolItem) ClearTranscription(ctx context.Context) (bool, error) {
	return callBool(ctx, c.obj, "ClearTranscription")
}

func (c MediaPoolItem) MarkInOut(ctx context.Context) (map[string]interface{}, error) {
	return callMap(ctx, c.obj, "GetMarkInOut")
}

func (c MediaPoolItem) SetMarkInOut(ctx context.Context, in, out int, markType string) (bool, error) {
	return callBool(ctx, c.obj, "SetMarkInOut", in, out, markType)
}

func (c MediaPoolItem) ClearMarkInOut(ctx context.Context, markType string) (bool, error) {
	return callBool(ctx, c.obj, "ClearMarkInOut", markType)
}
