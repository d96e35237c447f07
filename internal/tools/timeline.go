package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

var trackTypes = []string{"video", "audio", "subtitle"}

// currentTimeline resolves the active timeline.
func currentTimeline(ctx context.Context, deps *Deps) (host.Timeline, Result) {
	if _, ok := deps.Session.CurrentProject(ctx); !ok {
		return host.Timeline{}, Fail(ErrNoProject)
	}
	timeline, ok := deps.Session.CurrentTimeline(ctx)
	if !ok {
		return host.Timeline{}, Fail(ErrNoTimeline)
	}
	return timeline, Result{Success: true}
}

// itemsInTrackRetrying enumerates one track, retrying through the host's
// transient null-callable failure. Between attempts the current timecode is
// rewritten to itself, which forces the host to refresh the timeline state
// the enumeration depends on. Returns the last error once attempts are
// exhausted; other errors abort immediately.
func itemsInTrackRetrying(ctx context.Context, deps *Deps, timeline host.Timeline, trackType string, index int) ([]host.TimelineItem, error) {
	attempts := deps.Config.Host.GetTimelineItemRetries()
	delay := deps.Config.Host.GetTimelineItemRetryDelay()
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		items, err := timeline.ItemsInTrack(ctx, trackType, index)
		if err == nil {
			return items, nil
		}
		if !host.IsNullCallable(err) {
			return nil, err
		}
		lastErr = err
		if deps.Metrics != nil {
			deps.Metrics.ObserveTransientHostError("get_timeline_items")
		}
		deps.Log.Warn("track enumeration hit transient host failure", map[string]interface{}{
			"track_type": trackType,
			"track":      index,
			"attempt":    attempt,
		})
		if attempt == attempts {
			break
		}
		if timecode, tcErr := timeline.CurrentTimecode(ctx); tcErr == nil && timecode != "" {
			_, _ = timeline.SetCurrentTimecode(ctx, timecode)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, lastErr
}

func describeItem(ctx context.Context, item host.TimelineItem) map[string]interface{} {
	out := map[string]interface{}{}
	if name, err := item.Name(ctx); err == nil {
		out["name"] = name
	}
	if id, err := item.UniqueID(ctx); err == nil && id != "" {
		out["unique_id"] = id
	}
	if start, err := item.Start(ctx); err == nil {
		out["start"] = start
	}
	if end, err := item.End(ctx); err == nil {
		out["end"] = end
	}
	if duration, err := item.Duration(ctx); err == nil {
		out["duration"] = duration
	}
	return out
}

// TimelineTools covers the active timeline: tracks, items, markers,
// timecode, export and still grabbing.
func TimelineTools() []Tool {
	return []Tool{
		New("get_timeline_details", "timeline", "Get the active timeline's name, frame range and track counts.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				name, err := timeline.Name(ctx)
				if err != nil {
					return FailErr(err)
				}
				details := map[string]interface{}{"name": name}
				if id, err := timeline.UniqueID(ctx); err == nil && id != "" {
					details["unique_id"] = id
				}
				if start, err := timeline.StartFrame(ctx); err == nil {
					details["start_frame"] = start
				}
				if end, err := timeline.EndFrame(ctx); err == nil {
					details["end_frame"] = end
				}
				tracks := map[string]int{}
				for _, trackType := range trackTypes {
					if count, err := timeline.TrackCount(ctx, trackType); err == nil {
						tracks[trackType] = count
					}
				}
				details["tracks"] = tracks
				return OK(details)
			}),

		New("get_timeline_unique_id", "timeline", "Get the active timeline's unique ID.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				id, err := timeline.UniqueID(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(id)
			}),

		New("get_timeline_tracks", "timeline", "List the tracks of the active timeline with names and item counts.",
			[]ParamSpec{P("track_type", "string", "video, audio or subtitle; empty lists all types.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				TrackType string `json:"track_type"`
			}) Result {
				types := trackTypes
				if p.TrackType != "" {
					if !containsString(trackTypes, p.TrackType) {
						return Failf("Invalid track type: %s. Valid types are: %s", p.TrackType, strings.Join(trackTypes, ", "))
					}
					types = []string{p.TrackType}
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				out := map[string]interface{}{}
				for _, trackType := range types {
					count, err := timeline.TrackCount(ctx, trackType)
					if err != nil {
						return FailErr(err)
					}
					tracks := make([]map[string]interface{}, 0, count)
					for index := 1; index <= count; index++ {
						track := map[string]interface{}{"index": index}
						if name, err := timeline.TrackName(ctx, trackType, index); err == nil {
							track["name"] = name
						}
						tracks = append(tracks, track)
					}
					out[trackType] = tracks
				}
				return OK(out)
			}),

		New("get_timeline_items", "timeline", "List the items on the active timeline's tracks.",
			[]ParamSpec{
				P("track_type", "string", "video, audio or subtitle; empty lists all types.", false),
				P("track_index", "integer", "Track number; 0 lists every track of the type.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				TrackType  string `json:"track_type"`
				TrackIndex int    `json:"track_index"`
			}) Result {
				types := trackTypes
				if p.TrackType != "" {
					if !containsString(trackTypes, p.TrackType) {
						return Failf("Invalid track type: %s. Valid types are: %s", p.TrackType, strings.Join(trackTypes, ", "))
					}
					types = []string{p.TrackType}
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				items := map[string]interface{}{}
				var failedTracks []string
				for _, trackType := range types {
					count, err := timeline.TrackCount(ctx, trackType)
					if err != nil {
						return FailErr(err)
					}
					first, last := 1, count
					if p.TrackIndex > 0 {
						if p.TrackIndex > count {
							return Failf("Invalid track index: %d. Valid range is 1-%d", p.TrackIndex, count)
						}
						first, last = p.TrackIndex, p.TrackIndex
					}
					for index := first; index <= last; index++ {
						key := fmt.Sprintf("%s_%d", trackType, index)
						trackItems, err := itemsInTrackRetrying(ctx, deps, timeline, trackType, index)
						if err != nil {
							if host.IsNullCallable(err) {
								failedTracks = append(failedTracks, key)
								continue
							}
							return FailErr(err)
						}
						described := make([]map[string]interface{}, 0, len(trackItems))
						for _, item := range trackItems {
							described = append(described, describeItem(ctx, item))
						}
						items[key] = described
					}
				}
				if len(failedTracks) > 0 {
					return OKWarn(items, fmt.Sprintf(
						"Track enumeration failed after retries for: %s", strings.Join(failedTracks, ", ")))
				}
				return OK(items)
			}),

		New("add_track", "timeline", "Add a track to the active timeline.",
			[]ParamSpec{P("track_type", "string", "video, audio or subtitle.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				TrackType string `json:"track_type"`
			}) Result {
				if !containsString(trackTypes, p.TrackType) {
					return Failf("Invalid track type: %s. Valid types are: %s", p.TrackType, strings.Join(trackTypes, ", "))
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				added, err := timeline.AddTrack(ctx, p.TrackType)
				if err != nil {
					return FailErr(err)
				}
				if !added {
					return Failf("Failed to add %s track", p.TrackType)
				}
				return OK(p.TrackType)
			}),

		New("delete_track", "timeline", "Delete a track from the active timeline.",
			[]ParamSpec{
				P("track_type", "string", "video, audio or subtitle.", true),
				P("track_index", "integer", "Track number.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				TrackType  string `json:"track_type"`
				TrackIndex int    `json:"track_index"`
			}) Result {
				if !containsString(trackTypes, p.TrackType) {
					return Failf("Invalid track type: %s. Valid types are: %s", p.TrackType, strings.Join(trackTypes, ", "))
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				deleted, err := timeline.DeleteTrack(ctx, p.TrackType, p.TrackIndex)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("Failed to delete %s track %d", p.TrackType, p.TrackIndex)
				}
				return OK(p.TrackIndex)
			}),

		New("set_track_enable", "timeline", "Enable or disable a track.",
			[]ParamSpec{
				P("track_type", "string", "video, audio or subtitle.", true),
				P("track_index", "integer", "Track number.", true),
				P("enabled", "boolean", "Track enabled state.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				TrackType  string `json:"track_type"`
				TrackIndex int    `json:"track_index"`
				Enabled    bool   `json:"enabled"`
			}) Result {
				if !containsString(trackTypes, p.TrackType) {
					return Failf("Invalid track type: %s. Valid types are: %s", p.TrackType, strings.Join(trackTypes, ", "))
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				set, err := timeline.SetTrackEnable(ctx, p.TrackType, p.TrackIndex, p.Enabled)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set enable on %s track %d", p.TrackType, p.TrackIndex)
				}
				return OK(p.Enabled)
			}),

		New("set_track_lock", "timeline", "Lock or unlock a track.",
			[]ParamSpec{
				P("track_type", "string", "video, audio or subtitle.", true),
				P("track_index", "integer", "Track number.", true),
				P("locked", "boolean", "Track locked state.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				TrackType  string `json:"track_type"`
				TrackIndex int    `json:"track_index"`
				Locked     bool   `json:"locked"`
			}) Result {
				if !containsString(trackTypes, p.TrackType) {
					return Failf("Invalid track type: %s. Valid types are: %s", p.TrackType, strings.Join(trackTypes, ", "))
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				set, err := timeline.SetTrackLock(ctx, p.TrackType, p.TrackIndex, p.Locked)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set lock on %s track %d", p.TrackType, p.TrackIndex)
				}
				return OK(p.Locked)
			}),

		New("get_track_name", "timeline", "Get a track's name.",
			[]ParamSpec{
				P("track_type", "string", "video, audio or subtitle.", true),
				P("track_index", "integer", "Track number.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				TrackType  string `json:"track_type"`
				TrackIndex int    `json:"track_index"`
			}) Result {
				if !containsString(trackTypes, p.TrackType) {
					return Failf("Invalid track type: %s. Valid types are: %s", p.TrackType, strings.Join(trackTypes, ", "))
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				name, err := timeline.TrackName(ctx, p.TrackType, p.TrackIndex)
				if err != nil {
					return FailErr(err)
				}
				return OK(name)
			}),

		New("set_track_name", "timeline", "Rename a track.",
			[]ParamSpec{
				P("track_type", "string", "video, audio or subtitle.", true),
				P("track_index", "integer", "Track number.", true),
				P("name", "string", "New track name.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				TrackType  string `json:"track_type"`
				TrackIndex int    `json:"track_index"`
				Name       string `json:"name"`
			}) Result {
				if !containsString(trackTypes, p.TrackType) {
					return Failf("Invalid track type: %s. Valid types are: %s", p.TrackType, strings.Join(trackTypes, ", "))
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				set, err := timeline.SetTrackName(ctx, p.TrackType, p.TrackIndex, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to rename %s track %d", p.TrackType, p.TrackIndex)
				}
				return OK(p.Name)
			}),

		New("set_timeline_name", "timeline", "Rename the active timeline.",
			[]ParamSpec{P("name", "string", "New timeline name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				renamed, err := timeline.SetName(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !renamed {
					return Failf("Failed to rename timeline to: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("add_timeline_marker", "timeline", "Add a marker to the active timeline.",
			[]ParamSpec{
				P("frame", "integer", "Timeline frame for the marker.", true),
				P("color", "string", "Marker color.", false),
				P("name", "string", "Marker name.", false),
				P("note", "string", "Marker note.", false),
				P("duration", "integer", "Marker duration in frames.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Frame    int    `json:"frame"`
				Color    string `json:"color"`
				Name     string `json:"name"`
				Note     string `json:"note"`
				Duration int    `json:"duration"`
			}) Result {
				color := p.Color
				if color == "" {
					color = "Blue"
				}
				if !containsString(markerColors, color) {
					return Failf("Invalid marker color: %s", p.Color)
				}
				duration := p.Duration
				if duration <= 0 {
					duration = 1
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				if start, err := timeline.StartFrame(ctx); err == nil {
					if end, err := timeline.EndFrame(ctx); err == nil && (p.Frame < start || p.Frame > end) {
						return Failf("Invalid frame: %d. Valid range is %d-%d", p.Frame, start, end)
					}
				}
				added, err := timeline.AddMarker(ctx, p.Frame, color, p.Name, p.Note, duration, "")
				if err != nil {
					return FailErr(err)
				}
				if !added {
					return Failf("Failed to add marker at frame %d", p.Frame)
				}
				return OK(map[string]interface{}{"frame": p.Frame, "color": color})
			}),

		New("get_timeline_markers", "timeline", "Get every marker on the active timeline.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				markers, err := timeline.Markers(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(markers)
			}),

		New("delete_timeline_markers_by_color", "timeline", "Delete timeline markers of one color, or all markers.",
			[]ParamSpec{P("color", "string", "Marker color, or All.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Color string `json:"color"`
			}) Result {
				if p.Color != "All" && !containsString(markerColors, p.Color) {
					return Failf("Invalid marker color: %s", p.Color)
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				deleted, err := timeline.DeleteMarkersByColor(ctx, p.Color)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("Failed to delete markers: %s", p.Color)
				}
				return OK(p.Color)
			}),

		New("delete_timeline_marker_at_frame", "timeline", "Delete the timeline marker at a frame.",
			[]ParamSpec{P("frame", "integer", "Timeline frame of the marker.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Frame int `json:"frame"`
			}) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				deleted, err := timeline.DeleteMarkerAtFrame(ctx, p.Frame)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("No marker at frame %d", p.Frame)
				}
				return OK(p.Frame)
			}),

		New("get_timeline_marker_by_custom_data", "timeline", "Find the timeline marker carrying a custom data string.",
			[]ParamSpec{P("custom_data", "string", "Custom data attached to the marker.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				CustomData string `json:"custom_data"`
			}) Result {
				if p.CustomData == "" {
					return Fail("No custom data given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				marker, err := timeline.MarkerByCustomData(ctx, p.CustomData)
				if err != nil {
					return FailErr(err)
				}
				if len(marker) == 0 {
					return Failf("No marker found with custom data: %s", p.CustomData)
				}
				return OK(marker)
			}),

		New("update_timeline_marker_custom_data", "timeline", "Set the custom data on the timeline marker at a frame.",
			[]ParamSpec{
				P("frame", "integer", "Timeline frame of the marker.", true),
				P("custom_data", "string", "Custom data to store on the marker.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Frame      int    `json:"frame"`
				CustomData string `json:"custom_data"`
			}) Result {
				if p.CustomData == "" {
					return Fail("No custom data given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				updated, err := timeline.UpdateMarkerCustomData(ctx, p.Frame, p.CustomData)
				if err != nil {
					return FailErr(err)
				}
				if !updated {
					return Failf("No marker found at frame %d", p.Frame)
				}
				return OK(p.Frame)
			}),

		New("get_timeline_marker_custom_data", "timeline", "Get the custom data on the timeline marker at a frame.",
			[]ParamSpec{P("frame", "integer", "Timeline frame of the marker.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Frame int `json:"frame"`
			}) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				data, err := timeline.MarkerCustomData(ctx, p.Frame)
				if err != nil {
					return FailErr(err)
				}
				return OK(data)
			}),

		New("delete_timeline_marker_by_custom_data", "timeline", "Delete the timeline marker carrying a custom data string.",
			[]ParamSpec{P("custom_data", "string", "Custom data attached to the marker.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				CustomData string `json:"custom_data"`
			}) Result {
				if p.CustomData == "" {
					return Fail("No custom data given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				deleted, err := timeline.DeleteMarkerByCustomData(ctx, p.CustomData)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("No marker found with custom data: %s", p.CustomData)
				}
				return OK(p.CustomData)
			}),

		New("get_current_timecode", "timeline", "Get the playhead timecode.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				timecode, err := timeline.CurrentTimecode(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(timecode)
			}),

		New("set_current_timecode", "timeline", "Move the playhead to a timecode.",
			[]ParamSpec{P("timecode", "string", "Target timecode, HH:MM:SS:FF.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Timecode string `json:"timecode"`
			}) Result {
				if p.Timecode == "" {
					return Fail("No timecode given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				set, err := timeline.SetCurrentTimecode(ctx, p.Timecode)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set timecode: %s", p.Timecode)
				}
				return OK(p.Timecode)
			}),

		New("set_start_timecode", "timeline", "Set the timeline's start timecode.",
			[]ParamSpec{P("timecode", "string", "Start timecode, HH:MM:SS:FF.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Timecode string `json:"timecode"`
			}) Result {
				if p.Timecode == "" {
					return Fail("No timecode given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				set, err := timeline.SetStartTimecode(ctx, p.Timecode)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set start timecode: %s", p.Timecode)
				}
				return OK(p.Timecode)
			}),

		New("duplicate_timeline", "timeline", "Duplicate the active timeline.",
			[]ParamSpec{P("name", "string", "Name for the duplicate.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				duplicate, err := timeline.Duplicate(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !duplicate.Valid() {
					return Failf("Failed to duplicate timeline as: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("export_timeline", "timeline", "Export the active timeline to an interchange file.",
			[]ParamSpec{
				P("file_path", "string", "Destination file path.", true),
				P("export_type", "string", "AAF, DRT, EDL, FCP_7_XML, FCPXML_1_8, CSV or TAB.", true),
				P("export_subtype", "string", "Subtype for AAF exports.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				FilePath      string `json:"file_path"`
				ExportType    string `json:"export_type"`
				ExportSubtype string `json:"export_subtype"`
			}) Result {
				if p.FilePath == "" {
					return Fail("No file path given")
				}
				if p.ExportType == "" {
					return Fail("No export type given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				var subtype interface{}
				if p.ExportSubtype != "" {
					subtype = p.ExportSubtype
				}
				exported, err := timeline.Export(ctx, p.FilePath, p.ExportType, subtype)
				if err != nil {
					return FailErr(err)
				}
				if !exported {
					return Failf("Failed to export timeline to: %s", p.FilePath)
				}
				return OK(p.FilePath)
			}),

		New("get_timeline_setting", "timeline", "Get one timeline setting.",
			[]ParamSpec{P("setting_name", "string", "Setting name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				SettingName string `json:"setting_name"`
			}) Result {
				if p.SettingName == "" {
					return Fail("No setting name given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				value, err := timeline.Setting(ctx, p.SettingName)
				if err != nil {
					return FailErr(err)
				}
				return OK(value)
			}),

		New("set_timeline_setting", "timeline", "Set a timeline setting.",
			[]ParamSpec{
				P("setting_name", "string", "Setting name.", true),
				P("setting_value", "string", "Setting value.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				SettingName  string `json:"setting_name"`
				SettingValue string `json:"setting_value"`
			}) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				set, err := timeline.SetSetting(ctx, p.SettingName, p.SettingValue)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set timeline setting: %s", p.SettingName)
				}
				return OK(p.SettingValue)
			}),

		New("delete_timeline_clips", "timeline", "Delete items from the active timeline by name.",
			[]ParamSpec{
				P("item_names", "array", "Timeline item names or unique IDs.", true),
				P("ripple_delete", "boolean", "Close the gaps left by deletion.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemNames    []string `json:"item_names"`
				RippleDelete bool     `json:"ripple_delete"`
			}) Result {
				if len(p.ItemNames) == 0 {
					return Fail("No item names given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				var items []host.TimelineItem
				for _, name := range p.ItemNames {
					item, found := host.FindTimelineItem(ctx, timeline, name)
					if !found {
						return Failf("Timeline item not found: %s", name)
					}
					items = append(items, item)
				}
				deleted, err := timeline.DeleteClips(ctx, items, p.RippleDelete)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Fail("Failed to delete timeline items")
				}
				return OK(len(items))
			}),

		New("create_compound_clip", "timeline", "Combine timeline items into a compound clip.",
			[]ParamSpec{
				P("item_names", "array", "Timeline item names or unique IDs.", true),
				P("clip_name", "string", "Name for the compound clip.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemNames []string `json:"item_names"`
				ClipName  string   `json:"clip_name"`
			}) Result {
				if len(p.ItemNames) == 0 {
					return Fail("No item names given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				var items []host.TimelineItem
				for _, name := range p.ItemNames {
					item, found := host.FindTimelineItem(ctx, timeline, name)
					if !found {
						return Failf("Timeline item not found: %s", name)
					}
					items = append(items, item)
				}
				info := map[string]interface{}{}
				if p.ClipName != "" {
					info["name"] = p.ClipName
				}
				compound, err := timeline.CreateCompoundClip(ctx, items, info)
				if err != nil {
					return FailErr(err)
				}
				if !compound.Valid() {
					return Fail("Failed to create compound clip")
				}
				return OK(describeItem(ctx, compound))
			}),

		New("create_fusion_clip", "timeline", "Combine timeline items into a Fusion clip.",
			[]ParamSpec{P("item_names", "array", "Timeline item names or unique IDs.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemNames []string `json:"item_names"`
			}) Result {
				if len(p.ItemNames) == 0 {
					return Fail("No item names given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				var items []host.TimelineItem
				for _, name := range p.ItemNames {
					item, found := host.FindTimelineItem(ctx, timeline, name)
					if !found {
						return Failf("Timeline item not found: %s", name)
					}
					items = append(items, item)
				}
				fusion, err := timeline.CreateFusionClip(ctx, items)
				if err != nil {
					return FailErr(err)
				}
				if !fusion.Valid() {
					return Fail("Failed to create Fusion clip")
				}
				return OK(describeItem(ctx, fusion))
			}),

		New("insert_generator_into_timeline", "timeline", "Insert a generator at the playhead.",
			[]ParamSpec{P("generator_name", "string", "Generator name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				GeneratorName string `json:"generator_name"`
			}) Result {
				if p.GeneratorName == "" {
					return Fail("No generator name given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				item, err := timeline.InsertGenerator(ctx, p.GeneratorName)
				if err != nil {
					return FailErr(err)
				}
				if !item.Valid() {
					return Failf("Failed to insert generator: %s", p.GeneratorName)
				}
				return OK(describeItem(ctx, item))
			}),

		New("insert_title_into_timeline", "timeline", "Insert a title at the playhead.",
			[]ParamSpec{P("title_name", "string", "Title name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				TitleName string `json:"title_name"`
			}) Result {
				if p.TitleName == "" {
					return Fail("No title name given")
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				item, err := timeline.InsertTitle(ctx, p.TitleName)
				if err != nil {
					return FailErr(err)
				}
				if !item.Valid() {
					return Failf("Failed to insert title: %s", p.TitleName)
				}
				return OK(describeItem(ctx, item))
			}),

		New("grab_still", "timeline", "Grab a still of the current frame into the gallery.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				still, err := timeline.GrabStill(ctx)
				if err != nil {
					return FailErr(err)
				}
				if still == nil {
					return Fail("Failed to grab still")
				}
				return OK("grabbed")
			}),

		New("grab_all_stills", "timeline", "Grab a still from every clip in the timeline.",
			[]ParamSpec{P("still_frame_source", "integer", "1 = first frame, 2 = middle frame.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				StillFrameSource int `json:"still_frame_source"`
			}) Result {
				source := p.StillFrameSource
				if source == 0 {
					source = 1
				}
				if source != 1 && source != 2 {
					return Failf("Invalid still frame source: %d. Valid range is 1-2", p.StillFrameSource)
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				stills, err := timeline.GrabAllStills(ctx, source)
				if err != nil {
					return FailErr(err)
				}
				return OK(map[string]interface{}{"grabbed": len(stills)})
			}),

		New("get_current_video_item", "timeline", "Get the video item under the playhead.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				item, err := timeline.CurrentVideoItem(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !item.Valid() {
					return Fail("No video item at the playhead")
				}
				return OK(describeItem(ctx, item))
			}),
	}
}
