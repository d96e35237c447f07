package tools

import (
	"context"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

// findItem resolves a timeline item reference against the active timeline.
func findItem(ctx context.Context, deps *Deps, ref string) (host.TimelineItem, Result) {
	if ref == "" {
		return host.TimelineItem{}, Fail("No item name given")
	}
	timeline, res := currentTimeline(ctx, deps)
	if !res.Success {
		return host.TimelineItem{}, res
	}
	item, found := host.FindTimelineItem(ctx, timeline, ref)
	if !found {
		return host.TimelineItem{}, Failf("Timeline item not found: %s", ref)
	}
	return item, Result{Success: true}
}

// TimelineItemTools covers per-item operations on the active timeline:
// properties, trims, flags, colors, takes and Fusion comps.
func TimelineItemTools() []Tool {
	return []Tool{
		New("get_timeline_item", "timeline_item", "Get a timeline item's details.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				details := describeItem(ctx, item)
				if itemType, err := item.Type(ctx); err == nil {
					details["type"] = itemType
				}
				if leftOffset, err := item.LeftOffset(ctx); err == nil {
					details["left_offset"] = leftOffset
				}
				if rightOffset, err := item.RightOffset(ctx); err == nil {
					details["right_offset"] = rightOffset
				}
				if enabled, err := item.Enabled(ctx); err == nil {
					details["enabled"] = enabled
				}
				return OK(details)
			}),

		New("get_item_unique_id", "timeline_item", "Get a timeline item's unique ID.",
			[]ParamSpec{P("item_name", "string", "Item name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				id, err := item.UniqueID(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(id)
			}),

		New("get_item_property", "timeline_item", "Get one item property, or all properties when no name is given.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("property_name", "string", "Property name; empty returns all properties.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName     string `json:"item_name"`
				PropertyName string `json:"property_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				value, err := item.Property(ctx, p.PropertyName)
				if err != nil {
					return FailErr(err)
				}
				return OK(value)
			}),

		New("set_item_property", "timeline_item", "Set an item property such as ZoomX or Pan.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("property_name", "string", "Property name.", true),
				P("property_value", "string", "Property value.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName      string      `json:"item_name"`
				PropertyName  string      `json:"property_name"`
				PropertyValue interface{} `json:"property_value"`
			}) Result {
				if p.PropertyName == "" {
					return Fail("No property name given")
				}
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				set, err := item.SetProperty(ctx, p.PropertyName, p.PropertyValue)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set property: %s", p.PropertyName)
				}
				return OK(p.PropertyValue)
			}),

		New("set_item_start", "timeline_item", "Set an item's start frame on the timeline.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("frame", "integer", "New start frame.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
				Frame    int    `json:"frame"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				set, err := item.SetStart(ctx, p.Frame)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set start frame: %d", p.Frame)
				}
				return OK(p.Frame)
			}),

		New("set_item_end", "timeline_item", "Set an item's end frame on the timeline.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("frame", "integer", "New end frame.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
				Frame    int    `json:"frame"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				set, err := item.SetEnd(ctx, p.Frame)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set end frame: %d", p.Frame)
				}
				return OK(p.Frame)
			}),

		New("set_item_left_offset", "timeline_item", "Set an item's left trim offset.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("frames", "integer", "Offset in frames.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
				Frames   int    `json:"frames"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				set, err := item.SetLeftOffset(ctx, p.Frames)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set left offset: %d", p.Frames)
				}
				return OK(p.Frames)
			}),

		New("set_item_right_offset", "timeline_item", "Set an item's right trim offset.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("frames", "integer", "Offset in frames.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
				Frames   int    `json:"frames"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				set, err := item.SetRightOffset(ctx, p.Frames)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set right offset: %d", p.Frames)
				}
				return OK(p.Frames)
			}),

		New("add_item_flag", "timeline_item", "Add a colored flag to a timeline item.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("color", "string", "Flag color.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
				Color    string `json:"color"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				added, err := item.AddFlag(ctx, p.Color)
				if err != nil {
					return FailErr(err)
				}
				if !added {
					return Failf("Failed to add flag: %s", p.Color)
				}
				return OK(p.Color)
			}),

		New("get_item_flags", "timeline_item", "List the flag colors on a timeline item.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				flags, err := item.FlagList(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(flags)
			}),

		New("clear_item_flags", "timeline_item", "Clear flags of one color from a timeline item, or all flags.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("color", "string", "Flag color, or All.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
				Color    string `json:"color"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				cleared, err := item.ClearFlags(ctx, p.Color)
				if err != nil {
					return FailErr(err)
				}
				if !cleared {
					return Failf("Failed to clear flags: %s", p.Color)
				}
				return OK(p.Color)
			}),

		New("get_item_color", "timeline_item", "Get a timeline item's color label.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				color, err := item.ClipColor(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(color)
			}),

		New("set_item_color", "timeline_item", "Set a timeline item's color label.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("color", "string", "Color label.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
				Color    string `json:"color"`
			}) Result {
				if !containsString(clipColors, p.Color) {
					return Failf("Invalid clip color: %s", p.Color)
				}
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				set, err := item.SetClipColor(ctx, p.Color)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set item color: %s", p.Color)
				}
				return OK(p.Color)
			}),

		New("clear_item_color", "timeline_item", "Clear a timeline item's color label.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				cleared, err := item.ClearClipColor(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !cleared {
					return Fail("Failed to clear item color")
				}
				return OK("cleared")
			}),

		New("add_fusion_comp", "timeline_item", "Add a Fusion composition to a timeline item.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				comp, err := item.AddFusionComp(ctx)
				if err != nil {
					return FailErr(err)
				}
				if comp == nil {
					return Fail("Failed to add Fusion comp")
				}
				return OK("added")
			}),

		New("rename_fusion_comp", "timeline_item", "Rename a Fusion composition on a timeline item.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("old_name", "string", "Current comp name.", true),
				P("new_name", "string", "New comp name.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
				OldName  string `json:"old_name"`
				NewName  string `json:"new_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				renamed, err := item.RenameFusionComp(ctx, p.OldName, p.NewName)
				if err != nil {
					return FailErr(err)
				}
				if !renamed {
					return Failf("Failed to rename Fusion comp: %s", p.OldName)
				}
				return OK(p.NewName)
			}),

		New("get_item_scale", "timeline_item", "Get a timeline item's playback speed scale.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				scale, err := item.Scale(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(scale)
			}),

		New("get_item_enabled", "timeline_item", "Report whether a timeline item is enabled.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				enabled, err := item.Enabled(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(enabled)
			}),

		New("set_item_enabled", "timeline_item", "Enable or disable a timeline item.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("enabled", "boolean", "Item enabled state.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
				Enabled  bool   `json:"enabled"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				set, err := item.SetEnabled(ctx, p.Enabled)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Fail("Failed to set item enabled state")
				}
				return OK(p.Enabled)
			}),

		New("add_take", "timeline_item", "Add a media pool clip as a take on a timeline item.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("clip_name", "string", "Media pool clip to add.", true),
				P("start_frame", "integer", "Source start frame; omit with end_frame to use the whole clip.", false),
				P("end_frame", "integer", "Source end frame.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName   string `json:"item_name"`
				ClipName   string `json:"clip_name"`
				StartFrame *int   `json:"start_frame"`
				EndFrame   *int   `json:"end_frame"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				clip, res := findClip(ctx, deps, p.ClipName)
				if !res.Success {
					return res
				}
				start, end := -1, -1
				if p.StartFrame != nil && p.EndFrame != nil {
					start, end = *p.StartFrame, *p.EndFrame
					if end < start {
						return Failf("Invalid frame range: end %d is before start %d", end, start)
					}
				}
				added, err := item.AddTake(ctx, clip, start, end)
				if err != nil {
					return FailErr(err)
				}
				if !added {
					return Failf("Failed to add take: %s", p.ClipName)
				}
				return OK(p.ClipName)
			}),

		New("get_takes_count", "timeline_item", "Get the number of takes on a timeline item.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				count, err := item.TakesCount(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(count)
			}),

		New("get_selected_take_index", "timeline_item", "Get the selected take index of a timeline item.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				index, err := item.SelectedTakeIndex(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(index)
			}),

		New("select_take_by_index", "timeline_item", "Select a take on a timeline item.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("take_index", "integer", "Take number, starting at 1.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName  string `json:"item_name"`
				TakeIndex int    `json:"take_index"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				count, err := item.TakesCount(ctx)
				if err != nil {
					return FailErr(err)
				}
				if p.TakeIndex < 1 || p.TakeIndex > count {
					return Failf("Invalid take index: %d. Valid range is 1-%d", p.TakeIndex, count)
				}
				selected, err := item.SelectTakeByIndex(ctx, p.TakeIndex)
				if err != nil {
					return FailErr(err)
				}
				if !selected {
					return Failf("Failed to select take: %d", p.TakeIndex)
				}
				return OK(p.TakeIndex)
			}),

		New("delete_take_by_index", "timeline_item", "Delete a take from a timeline item.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("take_index", "integer", "Take number, starting at 1.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName  string `json:"item_name"`
				TakeIndex int    `json:"take_index"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				count, err := item.TakesCount(ctx)
				if err != nil {
					return FailErr(err)
				}
				if p.TakeIndex < 1 || p.TakeIndex > count {
					return Failf("Invalid take index: %d. Valid range is 1-%d", p.TakeIndex, count)
				}
				deleted, err := item.DeleteTakeByIndex(ctx, p.TakeIndex)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("Failed to delete take: %d", p.TakeIndex)
				}
				return OK(p.TakeIndex)
			}),

		New("finalize_take", "timeline_item", "Finalize the selected take of a timeline item.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				finalized, err := item.FinalizeTake(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !finalized {
					return Fail("Failed to finalize take")
				}
				return OK("finalized")
			}),

		New("copy_item_grades", "timeline_item", "Copy the grade of one timeline item onto others.",
			[]ParamSpec{
				P("source_item", "string", "Source item name or unique ID.", true),
				P("target_items", "array", "Target item names or unique IDs.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				SourceItem  string   `json:"source_item"`
				TargetItems []string `json:"target_items"`
			}) Result {
				if len(p.TargetItems) == 0 {
					return Fail("No target items given")
				}
				source, res := findItem(ctx, deps, p.SourceItem)
				if !res.Success {
					return res
				}
				timeline, res := currentTimeline(ctx, deps)
				if !res.Success {
					return res
				}
				var targets []host.TimelineItem
				for _, name := range p.TargetItems {
					target, found := host.FindTimelineItem(ctx, timeline, name)
					if !found {
						return Failf("Timeline item not found: %s", name)
					}
					targets = append(targets, target)
				}
				copied, err := source.CopyGrades(ctx, targets)
				if err != nil {
					return FailErr(err)
				}
				if !copied {
					return Fail("Failed to copy grades")
				}
				return OK(len(targets))
			}),

		New("get_is_filler", "timeline_item", "Check whether a timeline item is filler.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				filler, err := item.IsFiller(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(filler)
			}),

		New("has_video_effect", "timeline_item", "Check whether a timeline item carries a video effect.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				has, err := item.HasVideoEffect(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(has)
			}),

		New("has_audio_effect", "timeline_item", "Check whether a timeline item carries an audio effect.",
			[]ParamSpec{P("item_name", "string", "Item name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				has, err := item.HasAudioEffect(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(has)
			}),

		New("has_video_effect_at_offset", "timeline_item", "Check for a video effect at a frame offset into an item.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("frame_offset", "integer", "Frame offset from the item start.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName    string `json:"item_name"`
				FrameOffset int    `json:"frame_offset"`
			}) Result {
				if p.FrameOffset < 0 {
					return Failf("Invalid frame offset: %d", p.FrameOffset)
				}
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				has, err := item.HasVideoEffectAtOffset(ctx, p.FrameOffset)
				if err != nil {
					return FailErr(err)
				}
				return OK(has)
			}),

		New("has_audio_effect_at_offset", "timeline_item", "Check for an audio effect at a frame offset into an item.",
			[]ParamSpec{
				P("item_name", "string", "Item name or unique ID.", true),
				P("frame_offset", "integer", "Frame offset from the item start.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName    string `json:"item_name"`
				FrameOffset int    `json:"frame_offset"`
			}) Result {
				if p.FrameOffset < 0 {
					return Failf("Invalid frame offset: %d", p.FrameOffset)
				}
				item, res := findItem(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				has, err := item.HasAudioEffectAtOffset(ctx, p.FrameOffset)
				if err != nil {
					return FailErr(err)
				}
				return OK(has)
			}),
	}
}
