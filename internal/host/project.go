package host

import "context"

// Project wraps a host project object.
type Project struct{ obj Object }

func (p Project) Valid() bool { return p.obj != nil }
func (p Project) raw() Object { return p.obj }

func (p Project) Name(ctx context.Context) (string, error) {
	return callString(ctx, p.obj, "GetName")
}

func (p Project) SetName(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, p.obj, "SetName", name)
}

func (p Project) UniqueID(ctx context.Context) (string, error) {
	return callString(ctx, p.obj, "GetUniqueId")
}

func (p Project) TimelineCount(ctx context.Context) (int, error) {
	return callInt(ctx, p.obj, "GetTimelineCount")
}

func (p Project) TimelineByIndex(ctx context.Context, index int) (Timeline, error) {
	obj, err := callObject(ctx, p.obj, "GetTimelineByIndex", index)
	return Timeline{obj: obj}, err
}

func (p Project) CurrentTimeline(ctx context.Context) (Timeline, error) {
	obj, err := callObject(ctx, p.obj, "GetCurrentTimeline")
	return Timeline{obj: obj}, err
}

func (p Project) SetCurrentTimeline(ctx context.Context, t Timeline) (bool, error) {
	return callBool(ctx, p.obj, "SetCurrentTimeline", t.raw())
}

func (p Project) MediaPool(ctx context.Context) (MediaPool, error) {
	obj, err := callObject(ctx, p.obj, "GetMediaPool")
	return MediaPool{obj: obj}, err
}

func (p Project) Gallery(ctx context.Context) (Gallery, error) {
	obj, err := callObject(ctx, p.obj, "GetGallery")
	return Gallery{obj: obj}, err
}

func (p Project) Setting(ctx context.Context, name string) (string, error) {
	return callString(ctx, p.obj, "GetSetting", name)
}

// Settings returns every project setting.
func (p Project) Settings(ctx context.Context) (map[string]interface{}, error) {
	return callMap(ctx, p.obj, "GetSetting")
}

func (p Project) SetSetting(ctx context.Context, name, value string) (bool, error) {
	return callBool(ctx, p.obj, "SetSetting", name, value)
}

func (p Project) PresetList(ctx context.Context) (interface{}, error) {
	return p.obj.Call(ctx, "GetPresetList")
}

func (p Project) SetPreset(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, p.obj, "SetPreset", name)
}

// Render queue.

func (p Project) AddRenderJob(ctx context.Context) (string, error) {
	return callString(ctx, p.obj, "AddRenderJob")
}

func (p Project) DeleteRenderJob(ctx context.Context, jobID string) (bool, error) {
	return callBool(ctx, p.obj, "DeleteRenderJob", jobID)
}

func (p Project) DeleteAllRenderJobs(ctx context.Context) (bool, error) {
	return callBool(ctx, p.obj, "DeleteAllRenderJobs")
}

func (p Project) RenderJobList(ctx context.Context) (interface{}, error) {
	return p.obj.Call(ctx, "GetRenderJobList")
}

func (p Project) RenderJobStatus(ctx context.Context, jobID string) (map[string]interface{}, error) {
	return callMap(ctx, p.obj, "GetRenderJobStatus", jobID)
}

func (p Project) StartRendering(ctx context.Context, jobIDs ...string) (bool, error) {
	args := make([]interface{}, len(jobIDs))
	for i, id := range jobIDs {
		args[i] = id
	}
	return callBool(ctx, p.obj, "StartRendering", args...)
}

func (p Project) StopRendering(ctx context.Context) error {
	_, err := p.obj.Call(ctx, "StopRendering")
	return err
}

func (p Project) IsRenderingInProgress(ctx context.Context) (bool, error) {
	return callBool(ctx, p.obj, "IsRenderingInProgress")
}

// Render presets, formats and codecs.

func (p Project) RenderPresetList(ctx context.Context) (interface{}, error) {
	return p.obj.Call(ctx, "GetRenderPresetList")
}

func (p Project) LoadRenderPreset(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, p.obj, "LoadRenderPreset", name)
}

func (p Project) SetRenderSettings(ctx context.Context, settings map[string]interface{}) (bool, error) {
	return callBool(ctx, p.obj, "SetRenderSettings", settings)
}

func (p Project) RenderFormats(ctx context.Context) (map[string]interface{}, error) {
	return callMap(ctx, p.obj, "GetRenderFormats")
}

func (p Project) RenderCodecs(ctx context.Context, format string) (map[string]interface{}, error) {
	return callMap(ctx, p.obj, "GetRenderCodecs", format)
}

func (p Project) CurrentRenderFormatAndCodec(ctx context.Context) (map[string]interface{}, error) {
	return callMap(ctx, p.obj, "GetCurrentRenderFormatAndCodec")
}

func (p Project) SetCurrentRenderFormatAndCodec(ctx context.Context, format, codec string) (bool, error) {
	return callBool(ctx, p.obj, "SetCurrentRenderFormatAndCodec", format, codec)
}

func (p Project) CurrentRenderMode(ctx context.Context) (int, error) {
	return callInt(ctx, p.obj, "GetCurrentRenderMode")
}

func (p Project) SetCurrentRenderMode(ctx context.Context, mode int) (bool, error) {
	return callBool(ctx, p.obj, "SetCurrentRenderMode", mode)
}

func (p Project) RefreshLUTList(ctx context.Context) (bool, error) {
	return callBool(ctx, p.obj, "RefreshLUTList")
}

func (p Project) SaveAsNewRenderPreset(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, p.obj, "SaveAsNewRenderPreset", name)
}

func (p Project) DeleteRenderPreset(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, p.obj, "DeleteRenderPreset", name)
}

func (p Project) QuickExportRenderPresets(ctx context.Context) (interface{}, error) {
	return p.obj.Call(ctx, "GetQuickExportRenderPresets")
}

func (p Project) RenderWithQuickExport(ctx context.Context, preset string, params map[string]interface{}) (map[string]interface{}, error) {
	return callMap(ctx, p.obj, "RenderWithQuickExport", preset, params)
}

// Color groups.

func (p Project) ColorGroups(ctx context.Context) ([]ColorGroup, error) {
	objects, err := callObjects(ctx, p.obj, "GetColorGroupsList")
	groups := make([]ColorGroup, 0, len(objects))
	for _, obj := range objects {
		groups = append(groups, ColorGroup{obj: obj})
	}
	return groups, err
}

func (p Project) AddColorGroup(ctx context.Context, name string) (ColorGroup, error) {
	obj, err := callObject(ctx, p.obj, "AddColorGroup", name)
	return ColorGroup{obj: obj}, err
}

func (p Project) DeleteColorGroup(ctx context.Context, g ColorGroup) (bool, error) {
	return callBool(ctx, p.obj, "DeleteColorGroup", g.raw())
}

// ColorGroup wraps a host color group object.
type ColorGroup struct{ obj Object }

func (g ColorGroup) Valid() bool { return g.obj != nil }
func (g ColorGroup) raw() Object { return g.obj }

func (g ColorGroup) Name(ctx context.Context) (string, error) {
	return callString(ctx, g.obj, "GetName")
}

func (g ColorGroup) SetName(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, g.obj, "SetName", name)
}

func (g ColorGroup) ClipsInTimeline(ctx context.Context) ([]TimelineItem, error) {
	objects, err := callObjects(ctx, g.obj, "GetClipsInTimeline")
	return wrapTimelineItems(objects), err
}

func (g ColorGroup) PreClipNodeGraph(ctx context.Context) (Graph, error) {
	obj, err := callObject(ctx, g.obj, "GetPreClipNodeGraph")
	return Graph{obj: obj}, err
}

func (g ColorGroup) PostClipNodeGraph(ctx context.Context) (Graph, error) {
	obj, err := callObject(ctx, g.obj, "GetPostClipNodeGraph")
	return Graph{obj: obj}, err
}
