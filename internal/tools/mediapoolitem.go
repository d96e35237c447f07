package tools

import (
	"context"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

var markerColors = []string{
	"Blue", "Cyan", "Green", "Yellow", "Red", "Pink", "Purple", "Fuchsia",
	"Rose", "Lavender", "Sky", "Mint", "Lemon", "Sand", "Cocoa", "Cream",
}

var clipColors = []string{
	"Orange", "Apricot", "Yellow", "Lime", "Olive", "Green", "Teal", "Navy",
	"Blue", "Purple", "Violet", "Pink", "Tan", "Beige", "Brown", "Chocolate",
}

// findClip resolves a clip reference against the current media pool.
func findClip(ctx context.Context, deps *Deps, ref string) (host.MediaPoolItem, Result) {
	if ref == "" {
		return host.MediaPoolItem{}, Fail("No clip name given")
	}
	pool, ok := deps.Session.CurrentMediaPool(ctx)
	if !ok {
		return host.MediaPoolItem{}, Fail(ErrNoProject)
	}
	clip, found := host.FindClip(ctx, pool, ref)
	if !found {
		return host.MediaPoolItem{}, Failf("Clip not found: %s", ref)
	}
	return clip, Result{Success: true}
}

/// MediaPoolItemTools covers per-clip operations: metadata, markers, flags,
// colors, properties, proxies and transcription.
func MediaPoolItemTools() []Tool {
	return []Tool{
		New("get_clip_name", "media_pool_item", "Get a clip's display name.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				name, err := clip.Name(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(name)
			}),

		New("get_clip_unique_id", "media_pool_item", "Get a clip's unique ID.",
			[]ParamSpec{P("clip_name", "string", "Clip name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				id, err := clip.UniqueID(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(id)
			}),

		New("get_clip_media_id", "media_pool_item", "Get a clip's media ID.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				id, err := clip.MediaID(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(id)
			}),

		New("get_clip_metadata", "media_pool_item", "Get one metadata field, or all fields when no name is given.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("metadata_type", "string", "Metadata field name; empty returns all fields.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName     string `json:"clip_name"`
				MetadataType string `json:"metadata_type"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				value, err := clip.Metadata(ctx, p.MetadataType)
				if err != nil {
					return FailErr(err)
				}
				return OK(value)
			}),

		New("set_clip_metadata", "media_pool_item", "Set a metadata field on a clip.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("metadata_type", "string", "Metadata field name.", true),
				P("metadata_value", "string", "Metadata value.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName      string `json:"clip_name"`
				MetadataType  string `json:"metadata_type"`
				MetadataValue string `json:"metadata_value"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				set, err := clip.SetMetadata(ctx, p.MetadataType, p.MetadataValue)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set metadata: %s", p.MetadataType)
				}
				return OK(p.MetadataValue)
			}),

		New("add_clip_marker", "media_pool_item", "Add a marker to a clip at a source frame.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("frame", "integer", "Source frame for the marker.", true),
				P("color", "string", "Marker color.", false),
				P("name", "string", "Marker name.", false),
				P("note", "string", "Marker note.", false),
				P("duration", "integer", "Marker duration in frames.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
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
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				added, err := clip.AddMarker(ctx, p.Frame, color, p.Name, p.Note, duration, "")
				if err != nil {
					return FailErr(err)
				}
				if !added {
					return Failf("Failed to add marker at frame %d", p.Frame)
				}
				return OK(map[string]interface{}{"frame": p.Frame, "color": color})
			}),

		New("get_clip_markers", "media_pool_item", "Get every marker on a clip.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				markers, err := clip.Markers(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(markers)
			}),

		New("delete_clip_markers_by_color", "media_pool_item", "Delete a clip's markers of one color, or all markers.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("color", "string", "Marker color, or All.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
				Color    string `json:"color"`
			}) Result {
				if p.Color != "All" && !containsString(markerColors, p.Color) {
					return Failf("Invalid marker color: %s", p.Color)
				}
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				deleted, err := clip.DeleteMarkersByColor(ctx, p.Color)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("Failed to delete markers: %s", p.Color)
				}
				return OK(p.Color)
			}),

		New("delete_clip_marker_at_frame", "media_pool_item", "Delete the clip marker at a source frame.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("frame", "integer", "Source frame of the marker.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
				Frame    int    `json:"frame"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				deleted, err := clip.DeleteMarkerAtFrame(ctx, p.Frame)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("No marker at frame %d", p.Frame)
				}
				return OK(p.Frame)
			}),

		New("get_clip_marker_by_custom_data", "media_pool_item", "Find the clip marker carrying a custom data string.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("custom_data", "string", "Custom data attached to the marker.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName   string `json:"clip_name"`
				CustomData string `json:"custom_data"`
			}) Result {
				if p.CustomData == "" {
					return Fail("No custom data given")
				}
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				marker, err := clip.MarkerByCustomData(ctx, p.CustomData)
				if err != nil {
					return FailErr(err)
				}
				if len(marker) == 0 {
					return Failf("No marker found with custom data: %s", p.CustomData)
				}
				return OK(marker)
			}),

		New("update_clip_marker_custom_data", "media_pool_item", "Set the custom data on the clip marker at a source frame.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("frame", "integer", "Source frame of the marker.", true),
				P("custom_data", "string", "Custom data to store on the marker.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName   string `json:"clip_name"`
				Frame      int    `json:"frame"`
				CustomData string `json:"custom_data"`
			}) Result {
				if p.CustomData == "" {
					return Fail("No custom data given")
				}
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				updated, err := clip.UpdateMarkerCustomData(ctx, p.Frame, p.CustomData)
				if err != nil {
					return FailErr(err)
				}
				if !updated {
					return Failf("No marker found at frame %d", p.Frame)
				}
				return OK(p.Frame)
			}),

		New("get_clip_marker_custom_data", "media_pool_item", "Get the custom data on the clip marker at a source frame.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("frame", "integer", "Source frame of the marker.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
				Frame    int    `json:"frame"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				data, err := clip.MarkerCustomData(ctx, p.Frame)
				if err != nil {
					return FailErr(err)
				}
				return OK(data)
			}),

		New("delete_clip_marker_by_custom_data", "media_pool_item", "Delete the clip marker carrying a custom data string.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("custom_data", "string", "Custom data attached to the marker.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName   string `json:"clip_name"`
				CustomData string `json:"custom_data"`
			}) Result {
				if p.CustomData == "" {
					return Fail("No custom data given")
				}
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				deleted, err := clip.DeleteMarkerByCustomData(ctx, p.CustomData)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("No marker found with custom data: %s", p.CustomData)
				}
				return OK(p.CustomData)
			}),

		New("add_clip_flag", "media_pool_item", "Add a colored flag to a clip.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("color", "string", "Flag color.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
				Color    string `json:"color"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				added, err := clip.AddFlag(ctx, p.Color)
				if err != nil {
					return FailErr(err)
				}
				if !added {
					return Failf("Failed to add flag: %s", p.Color)
				}
				return OK(p.Color)
			}),

		New("get_clip_flags", "media_pool_item", "List the flag colors on a clip.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				flags, err := clip.FlagList(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(flags)
			}),

		New("clear_clip_flags", "media_pool_item", "Clear flags of one color from a clip, or all flags.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("color", "string", "Flag color, or All.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
				Color    string `json:"color"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				cleared, err := clip.ClearFlags(ctx, p.Color)
				if err != nil {
					return FailErr(err)
				}
				if !cleared {
					return Failf("Failed to clear flags: %s", p.Color)
				}
				return OK(p.Color)
			}),

		New("get_clip_color", "media_pool_item", "Get a clip's color label.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				color, err := clip.ClipColor(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(color)
			}),

		New("set_clip_color", "media_pool_item", "Set a clip's color label.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("color", "string", "Clip color label.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
				Color    string `json:"color"`
			}) Result {
				if !containsString(clipColors, p.Color) {
					return Failf("Invalid clip color: %s", p.Color)
				}
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				set, err := clip.SetClipColor(ctx, p.Color)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set clip color: %s", p.Color)
				}
				return OK(p.Color)
			}),

		New("clear_clip_color", "media_pool_item", "Clear a clip's color label.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				cleared, err := clip.ClearClipColor(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !cleared {
					return Fail("Failed to clear clip color")
				}
				return OK("cleared")
			}),

		New("get_clip_property", "media_pool_item", "Get one clip property, or all properties when no name is given.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("property_name", "string", "Property name; empty returns all properties.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName     string `json:"clip_name"`
				PropertyName string `json:"property_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				value, err := clip.ClipProperty(ctx, p.PropertyName)
				if err != nil {
					return FailErr(err)
				}
				return OK(value)
			}),

		New("set_clip_property", "media_pool_item", "Set a clip property.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("property_name", "string", "Property name.", true),
				P("property_value", "string", "Property value.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName      string `json:"clip_name"`
				PropertyName  string `json:"property_name"`
				PropertyValue string `json:"property_value"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				set, err := clip.SetClipProperty(ctx, p.PropertyName, p.PropertyValue)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set property: %s", p.PropertyName)
				}
				return OK(p.PropertyValue)
			}),

		New("link_proxy_media", "media_pool_item", "Link a proxy media file to a clip.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("proxy_path", "string", "Absolute path to the proxy file.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName  string `json:"clip_name"`
				ProxyPath string `json:"proxy_path"`
			}) Result {
				if p.ProxyPath == "" {
					return Fail("No proxy path given")
				}
				if !pathExists(p.ProxyPath) {
					return Failf("Proxy media file not found: %s", p.ProxyPath)
				}
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				linked, err := clip.LinkProxyMedia(ctx, p.ProxyPath)
				if err != nil {
					return FailErr(err)
				}
				if !linked {
					return Failf("Failed to link proxy media: %s", p.ProxyPath)
				}
				return OK(p.ProxyPath)
			}),

		New("unlink_proxy_media", "media_pool_item", "Unlink a clip's proxy media.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				unlinked, err := clip.UnlinkProxyMedia(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !unlinked {
					return Fail("Failed to unlink proxy media")
				}
				return OK("unlinked")
			}),

		New("replace_clip", "media_pool_item", "Replace a clip's media with another file.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("file_path", "string", "Replacement media file path.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
				FilePath string `json:"file_path"`
			}) Result {
				if p.FilePath == "" {
					return Fail("No file path given")
				}
				if !fileExists(p.FilePath) {
					return Failf("Replacement media file not found: %s", p.FilePath)
				}
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				replaced, err := clip.ReplaceClip(ctx, p.FilePath)
				if err != nil {
					return FailErr(err)
				}
				if !replaced {
					return Failf("Failed to replace clip with: %s", p.FilePath)
				}
				return OK(p.FilePath)
			}),

		New("transcribe_clip_audio", "media_pool_item", "Start audio transcription for a clip.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				started, err := clip.TranscribeAudio(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !started {
					return Fail("Failed to start transcription")
				}
				return OK("transcribing")
			}),

		New("clear_clip_transcription", "media_pool_item", "Clear a clip's audio transcription.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				cleared, err := clip.ClearTranscription(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !cleared {
					return Fail("Failed to clear transcription")
				}
				return OK("cleared")
			}),

		New("get_clip_mark_in_out", "media_pool_item", "Get a clip's in/out marks.",
			[]ParamSpec{P("clip_name", "string", "Clip name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
			}) Result {
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				marks, err := clip.MarkInOut(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(marks)
			}),

		New("set_clip_mark_in_out", "media_pool_item", "Set a clip's in/out marks.",
			[]ParamSpec{
				P("clip_name", "string", "Clip name or unique ID.", true),
				P("mark_in", "integer", "In point frame.", true),
				P("mark_out", "integer", "Out point frame.", true),
				P("mark_type", "string", "video, audio or all.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ClipName string `json:"clip_name"`
				MarkIn   int    `json:"mark_in"`
				MarkOut  int    `json:"mark_out"`
				MarkType string `json:"mark_type"`
			}) Result {
				if p.MarkOut < p.MarkIn {
					return Failf("Invalid mark range: out %d is before in %d", p.MarkOut, p.MarkIn)
				}
				markType := p.MarkType
				if markType == "" {
					markType = "all"
				}
				if markType != "video" && markType != "audio" && markType != "all" {
					return Failf("Invalid mark type: %s. Valid types are: video, audio, all", p.MarkType)
				}
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				set, err := clip.SetMarkInOut(ctx, p.MarkIn, p.MarkOut, markType)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Fail("Failed to set in/out marks")
				}
				return OK(map[string]interface{}{"in": p.MarkIn, "out": p.MarkOut, "type": markType})
			}),
	}
}
