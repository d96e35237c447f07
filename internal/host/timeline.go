package host

import "context"

// Timeline wraps a host timeline object.
type Timeline struct{ obj Object }

func (t Timeline) Valid() bool { return t.obj != nil }
func (t Timeline) raw() Object { return t.obj }

func (t Timeline) Name(ctx context.Context) (string, error) {
	return callString(ctx, t.obj, "GetName")
}

func (t Timeline) SetName(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, t.obj, "SetName", name)
}

func (t Timeline) UniqueID(ctx context.Context) (string, error) {
	return callString(ctx, t.obj, "GetUniqueId")
}

func (t Timeline) StartFrame(ctx context.Context) (int, error) {
	return callInt(ctx, t.obj, "GetStartFrame")
}

func (t Timeline) EndFrame(ctx context.Context) (int, error) {
	return callInt(ctx, t.obj, "GetEndFrame")
}

func (t Timeline) TrackCount(ctx context.Context, trackType string) (int, error) {
	return callInt(ctx, t.obj, "GetTrackCount", trackType)
}

// ItemsInTrack enumerates items on one track. This is the call affected by
// the host's transient null-callable bug; callers check IsNullCallable.
func (t Timeline) ItemsInTrack(ctx context.Context, trackType string, index int) ([]TimelineItem, error) {
	objects, err := callObjects(ctx, t.obj, "GetItemListInTrack", trackType, index)
	return wrapTimelineItems(objects), err
}

func (t Timeline) AddTrack(ctx context.Context, trackType string) (bool, error) {
	return callBool(ctx, t.obj, "AddTrack", trackType)
}

func (t Timeline) DeleteTrack(ctx context.Context, trackType string, index int) (bool, error) {
	return callBool(ctx, t.obj, "DeleteTrack", trackType, index)
}

func (t Timeline) SetTrackEnable(ctx context.Context, trackType string, index int, enabled bool) (bool, error) {
	return callBool(ctx, t.obj, "SetTrackEnable", trackType, index, enabled)
}

func (t Timeline) SetTrackLock(ctx context.Context, trackType string, index int, locked bool) (bool, error) {
	return callBool(ctx, t.obj, "SetTrackLock", trackType, index, locked)
}

func (t Timeline) TrackName(ctx context.Context, trackType string, index int) (string, error) {
	return callString(ctx, t.obj, "GetTrackName", trackType, index)
}

func (t Timeline) SetTrackName(ctx context.Context, trackType string, index int, name string) (bool, error) {
	return callBool(ctx, t.obj, "SetTrackName", trackType, index, name)
}

func (t Timeline) AddMarker(ctx context.Context, frame int, color, name, note string, duration int, customData string) (bool, error) {
	return callBool(ctx, t.obj, "AddMarker", frame, color, name, note, duration, customData)
}

func (t Timeline) Markers(ctx context.Context) (map[string]interface{}, error) {
	return callMap(ctx, t.obj, "GetMarkers")
}

func (t Timeline) DeleteMarkersByColor(ctx context.Context, color string) (bool, error) {
	return callBool(ctx, t.obj, "DeleteMarkersByColor", color)
}

func (t Timeline) DeleteMarkerAtFrame(ctx context.Context, frame int) (bool, error) {
	return callBool(ctx, t.obj, "DeleteMarkerAtFrame", frame)
}

func (t Timeline) MarkerByCustomData(ctx context.Context, customData string) (map[string]interface{}, error) {
	return callMap(ctx, t.obj, "GetMarkerByCustomData", customData)
}

func (t Timeline) UpdateMarkerCustomData(ctx context.Context, frame int, customData string) (bool, error) {
	return callBool(ctx, t.obj, "UpdateMarkerCustomData", frame, customData)
}

func (t Timeline) MarkerCustomData(ctx context.Context, frame int) (string, error) {
	return callString(ctx, t.obj, "GetMarkerCustomData", frame)
}

func (t Timeline) DeleteMarkerByCustomData(ctx context.Context, customData string) (bool, error) {
	return callBool(ctx, t.obj, "DeleteMarkerByCustomData", customData)
}

func (t Timeline) CurrentTimecode(ctx context.Context) (string, error) {
	return callString(ctx, t.obj, "GetCurrentTimecode")
}

func (t Timeline) SetCurrentTimecode(ctx context.Context, timecode string) (bool, error) {
	return callBool(ctx, t.obj, "SetCurrentTimecode", timecode)
}

func (t Timeline) SetStartTimecode(ctx context.Context, timecode string) (bool, error) {
	return callBool(ctx, t.obj, "SetStartTimecode", timecode)
}

func (t Timeline) Duplicate(ctx context.Context, name string) (Timeline, error) {
	obj, err := callObject(ctx, t.obj, "DuplicateTimeline", name)
	return Timeline{obj: obj}, err
}

func (t Timeline) Export(ctx context.Context, path string, exportType, exportSubtype interface{}) (bool, error) {
	if exportSubtype == nil {
		return callBool(ctx, t.obj, "Export", path, exportType)
	}
	return callBool(ctx, t.obj, "Export", path, exportType, exportSubtype)
}

func (t Timeline) Setting(ctx context.Context, name string) (string, error) {
	return callString(ctx, t.obj, "GetSetting", name)
}

func (t Timeline) SetSetting(ctx context.Context, name, value string) (bool, error) {
	return callBool(ctx, t.obj, "SetSetting", name, value)
}

func (t Timeline) DeleteClips(ctx context.Context, items []TimelineItem, rippleDelete bool) (bool, error) {
	return callBool(ctx, t.obj, "DeleteClips", rawObjects(items), rippleDelete)
}

func (t Timeline) CreateCompoundClip(ctx context.Context, items []TimelineItem, clipInfo map[string]interface{}) (TimelineItem, error) {
	obj, err := callObject(ctx, t.obj, "CreateCompoundClip", rawObjects(items), clipInfo)
	return TimelineItem{obj: obj}, err
}

func (t Timeline) CreateFusionClip(ctx context.Context, items []TimelineItem) (TimelineItem, error) {
	obj, err := callObject(ctx, t.obj, "CreateFusionClip", rawObjects(items))
	return TimelineItem{obj: obj}, err
}

func (t Timeline) InsertGenerator(ctx context.Context, name string) (TimelineItem, error) {
	obj, err := callObject(ctx, t.obj, "InsertGeneratorIntoTimeline", name)
	return TimelineItem{obj: obj}, err
}

func (t Timeline) InsertTitle(ctx context.Context, name string) (TimelineItem, error) {
	obj, err := callObject(ctx, t.obj, "InsertTitleIntoTimeline", name)
	return TimelineItem{obj: obj}, err
}

func (t Timeline) GrabStill(ctx context.Context) (Object, error) {
	return callObject(ctx, t.obj, "GrabStill")
}

func (t Timeline) GrabAllStills(ctx context.Context, stillFrameSource int) ([]Object, error) {
	return callObjects(ctx, t.obj, "GrabAllStills", stillFrameSource)
}

func (t Timeline) CurrentVideoItem(ctx context.Context) (TimelineItem, error) {
	obj, err := callObject(ctx, t.obj, "GetCurrentVideoItem")
	return TimelineItem{obj: obj}, err
}

// TimelineItem wraps a host timeline item object.
type TimelineItem struct{ obj Object }

func wrapTimelineItems(objects []Object) []TimelineItem {
	items := make([]TimelineItem, 0, len(objects))
	for _, obj := range objects {
		items = append(items, TimelineItem{obj: obj})
	}
	return items
}

func (i TimelineItem) Valid() bool { return i.obj != nil }
func (i TimelineItem) raw() Object { return i.obj }

func (i TimelineItem) Name(ctx context.Context) (string, error) {
	return callString(ctx, i.obj, "GetName")
}

func (i TimelineItem) UniqueID(ctx context.Context) (string, error) {
	return callString(ctx, i.obj, "GetUniqueId")
}

func (i TimelineItem) Type(ctx context.Context) (string, error) {
	return callString(ctx, i.obj, "GetType")
}

func (i TimelineItem) Duration(ctx context.Context) (int, error) {
	return callInt(ctx, i.obj, "GetDuration")
}

func (i TimelineItem) Start(ctx context.Context) (int, error) {
	return callInt(ctx, i.obj, "GetStart")
}

func (i TimelineItem) End(ctx context.Context) (int, error) {
	return callInt(ctx, i.obj, "GetEnd")
}

func (i TimelineItem) LeftOffset(ctx context.Context) (int, error) {
	return callInt(ctx, i.obj, "GetLeftOffset")
}

func (i TimelineItem) RightOffset(ctx context.Context) (int, error) {
	return callInt(ctx, i.obj, "GetRightOffset")
}

func (i TimelineItem) SetStart(ctx context.Context, frame int) (bool, error) {
	return callBool(ctx, i.obj, "SetStart", frame)
}

func (i TimelineItem) SetEnd(ctx context.Context, frame int) (bool, error) {
	return callBool(ctx, i.obj, "SetEnd", frame)
}

func (i TimelineItem) SetLeftOffset(ctx context.Context, frames int) (bool, error) {
	return callBool(ctx, i.obj, "SetLeftOffset", frames)
}

func (i TimelineItem) SetRightOffset(ctx context.Context, frames int) (bool, error) {
	return callBool(ctx, i.obj, "SetRightOffset", frames)
}

// Property returns all properties when key is empty.
func (i TimelineItem) Property(ctx context.Context, key string) (interface{}, error) {
	if key == "" {
		return i.obj.Call(ctx, "GetProperty")
	}
	return i.obj.Call(ctx, "GetProperty", key)
}

func (i TimelineItem) SetProperty(ctx context.Context, key string, value interface{}) (bool, error) {
	return callBool(ctx, i.obj, "SetProperty", key, value)
}

func (i TimelineItem) AddFlag(ctx context.Context, color string) (bool, error) {
	return callBool(ctx, i.obj, "AddFlag", color)
}

func (i TimelineItem) FlagList(ctx context.Context) ([]string, error) {
	return callStrings(ctx, i.obj, "GetFlagList")
}

func (i TimelineItem) ClearFlags(ctx context.Context, color string) (bool, error) {
	return callBool(ctx, i.obj, "ClearFlags", color)
}

func (i TimelineItem) ClipColor(ctx context.Context) (string, error) {
	return callString(ctx, i.obj, "GetClipColor")
}

func (i TimelineItem) SetClipColor(ctx context.Context, color string) (bool, error) {
	return callBool(ctx, i.obj, "SetClipColor", color)
}

func (i TimelineItem) ClearClipColor(ctx context.Context) (bool, error) {
	return callBool(ctx, i.obj, "ClearClipColor")
}

func (i TimelineItem) AddFusionComp(ctx context.Context) (Object, error) {
	return callObject(ctx, i.obj, "AddFusionComp")
}

func (i TimelineItem) RenameFusionComp(ctx context.Context, oldName, newName string) (bool, error) {
	return callBool(ctx, i.obj, "RenameFusionComp", oldName, newName)
}

func (i TimelineItem) Scale(ctx context.Context) (int, error) {
	return callInt(ctx, i.obj, "GetScale")
}

func (i TimelineItem) SetEnabled(ctx context.Context, enabled bool) (bool, error) {
	return callBool(ctx, i.obj, "SetClipEnabled", enabled)
}

func (i TimelineItem) Enabled(ctx context.Context) (bool, error) {
	return callBool(ctx, i.obj, "GetClipEnabled")
}

func (i TimelineItem) AddTake(ctx context.Context, clip MediaPoolItem, startFrame, endFrame int) (bool, error) {
	if startFrame < 0 && endFrame < 0 {
		return callBool(ctx, i.obj, "AddTake", clip.raw())
	}
	return callBool(ctx, i.obj, "AddTake", clip.raw(), startFrame, endFrame)
}

func (i TimelineItem) TakesCount(ctx context.Context) (int, error) {
	return callInt(ctx, i.obj, "GetTakesCount")
}

func (i TimelineItem) SelectedTakeIndex(ctx context.Context) (int, error) {
	return callInt(ctx, i.obj, "GetSelectedTakeIndex")
}

func (i TimelineItem) SelectTakeByIndex(ctx context.Context, index int) (bool, error) {
	return callBool(ctx, i.obj, "SelectTakeByIndex", index)
}

func (i TimelineItem) DeleteTakeByIndex(ctx context.Context, index int) (bool, error) {
	return callBool(ctx, i.obj, "DeleteTakeByIndex", index)
}

func (i TimelineItem) FinalizeTake(ctx context.Context) (bool, error) {
	return callBool(ctx, i.obj, "FinalizeTake")
}

func (i TimelineItem) IsFiller(ctx context.Context) (bool, error) {
	return callBool(ctx, i.obj, "GetIsFiller")
}

func (i TimelineItem) HasVideoEffect(ctx context.Context) (bool, error) {
	return callBool(ctx, i.obj, "HasVideoEffect")
}

func (i TimelineItem) HasAudioEffect(ctx context.Context) (bool, error) {
	return callBool(ctx, i.obj, "HasAudioEffect")
}

func (i TimelineItem) HasVideoEffectAtOffset(ctx context.Context, offset int) (bool, error) {
	return callBool(ctx, i.obj, "HasVideoEffectAtOffset", offset)
}

func (i TimelineItem) HasAudioEffectAtOffset(ctx context.Context, offset int) (bool, error) {
	return callBool(ctx, i.obj, "HasAudioEffectAtOffset", offset)
}

func (i TimelineItem) CopyGrades(ctx context.Context, targets []TimelineItem) (bool, error) {
	return callBool(ctx, i.obj, "CopyGrades", rawObjects(targets))
}

func (i TimelineItem) UpdateSidecar(ctx context.Context) (bool, error) {
	return callBool(ctx, i.obj, "UpdateSidecar")
}

func (i TimelineItem) NodeGraph(ctx context.Context) (Graph, error) {
	obj, err := callObject(ctx, i.obj, "GetNodeGraph")
	return Graph{obj: obj}, err
}

func (i TimelineItem) MediaPoolItem(ctx context.Context) (MediaPoolItem, error) {
	obj, err := callObject(ctx, i.obj, "GetMediaPoolItem")
	return MediaPoolItem{obj: obj}, err
}

// Graph wraps a host node graph object from the color page.
type Graph struct{ obj Object }

func (g Graph) Valid() bool { return g.obj != nil }
func (g Graph) raw() Object { return g.obj }

func (g Graph) NumNodes(ctx context.Context) (int, error) {
	return callInt(ctx, g.obj, "GetNumNodes")
}

func (g Graph) SetLUT(ctx context.Context, nodeIndex int, lutPath string) (bool, error) {
	return callBool(ctx, g.obj, "SetLUT", nodeIndex, lutPath)
}

func (g Graph) LUT(ctx context.Context, nodeIndex int) (string, error) {
	return callString(ctx, g.obj, "GetLUT", nodeIndex)
}

func (g Graph) SetNodeCacheMode(ctx context.Context, nodeIndex int, mode string) (bool, error) {
	return callBool(ctx, g.obj, "SetNodeCacheMode", nodeIndex, mode)
}

func (g Graph) NodeCacheMode(ctx context.Context, nodeIndex int) (interface{}, error) {
	return g.obj.Call(ctx, "GetNodeCacheMode", nodeIndex)
}

func (g Graph) NodeLabel(ctx context.Context, nodeIndex int) (string, error) {
	return callString(ctx, g.obj, "GetNodeLabel", nodeIndex)
}

func (g Graph) ToolsInNode(ctx context.Context, nodeIndex int) ([]string, error) {
	return callStrings(ctx, g.obj, "GetToolsInNode", nodeIndex)
}

func (g Graph) SetNodeEnabled(ctx context.Context, nodeIndex int, enabled bool) (bool, error) {
	return callBool(ctx, g.obj, "SetNodeEnabled", nodeIndex, enabled)
}

func (g Graph) ApplyGradeFromDRX(ctx context.Context, path string, gradeMode int) (bool, error) {
	return callBool(ctx, g.obj, "ApplyGradeFromDRX", path, gradeMode)
}

func (g Graph) ApplyArriCdlLut(ctx context.Context, cdlPath string) (bool, error) {
	return callBool(ctx, g.obj, "ApplyArriCdlLut", cdlPath)
}

func (g Graph) ResetAllGrades(ctx context.Context) (bool, error) {
	return callBool(ctx, g.obj, "ResetAllGrades")
}
