package tools

import (
	"context"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

// ProjectTools covers project settings, timelines, the render queue, render
// presets and color groups.
func ProjectTools() []Tool {
	return []Tool{
		New("get_project_info", "project", "Get the open project's name, ID and timeline summary.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				name, err := project.Name(ctx)
				if err != nil {
					return FailErr(err)
				}
				id, _ := project.UniqueID(ctx)
				count, _ := project.TimelineCount(ctx)
				info := map[string]interface{}{
					"name":           name,
					"unique_id":      id,
					"timeline_count": count,
				}
				if timeline, err := project.CurrentTimeline(ctx); err == nil && timeline.Valid() {
					if tlName, err := timeline.Name(ctx); err == nil {
						info["current_timeline"] = tlName
					}
				}
				return OK(info)
			}),

		New("get_project_unique_id", "project", "Get the open project's unique ID.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				id, err := project.UniqueID(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(id)
			}),

		New("set_project_name", "project", "Rename the open project.",
			[]ParamSpec{P("name", "string", "New project name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				renamed, err := project.SetName(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !renamed {
					return Failf("Failed to rename project to: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("save_project_as", "project", "Rename the open project and save it under the new name.",
			[]ParamSpec{P("name", "string", "New project name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				renamed, err := project.SetName(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !renamed {
					return Failf("Failed to rename project to: %s", p.Name)
				}
				saved, err := pm.SaveProject(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !saved {
					return Fail("Failed to save project")
				}
				return OK(p.Name)
			}),

		New("get_project_settings", "project", "Get one project setting, or all settings when no name is given.",
			[]ParamSpec{P("setting_name", "string", "Setting name; empty returns all settings.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				SettingName string `json:"setting_name"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				if p.SettingName == "" {
					settings, err := project.Settings(ctx)
					if err != nil {
						return FailErr(err)
					}
					return OK(settings)
				}
				value, err := project.Setting(ctx, p.SettingName)
				if err != nil {
					return FailErr(err)
				}
				return OK(value)
			}),

		New("set_setting", "project", "Set a project setting.",
			[]ParamSpec{
				P("setting_name", "string", "Setting name.", true),
				P("setting_value", "string", "Setting value.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				SettingName  string `json:"setting_name"`
				SettingValue string `json:"setting_value"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				set, err := project.SetSetting(ctx, p.SettingName, p.SettingValue)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set setting: %s", p.SettingName)
				}
				return OK(p.SettingValue)
			}),

		New("get_all_timelines", "project", "List the names of every timeline in the open project.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				count, err := project.TimelineCount(ctx)
				if err != nil {
					return FailErr(err)
				}
				names := make([]string, 0, count)
				for i := 1; i <= count; i++ {
					timeline, err := project.TimelineByIndex(ctx, i)
					if err != nil || !timeline.Valid() {
						continue
					}
					if name, err := timeline.Name(ctx); err == nil {
						names = append(names, name)
					}
				}
				return OK(names)
			}),

		New("set_current_timeline", "project", "Make the named timeline the active one.",
			[]ParamSpec{P("timeline_name", "string", "Timeline name or unique ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				TimelineName string `json:"timeline_name"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				timeline, found := host.FindTimeline(ctx, project, p.TimelineName)
				if !found {
					return Failf("Timeline not found: %s", p.TimelineName)
				}
				set, err := project.SetCurrentTimeline(ctx, timeline)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to switch to timeline: %s", p.TimelineName)
				}
				return OK(p.TimelineName)
			}),

		New("get_preset_list", "project", "List the project's settings presets.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				presets, err := project.PresetList(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(presets)
			}),

		New("set_preset", "project", "Apply a settings preset to the open project.",
			[]ParamSpec{P("preset_name", "string", "Preset name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				PresetName string `json:"preset_name"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				applied, err := project.SetPreset(ctx, p.PresetName)
				if err != nil {
					return FailErr(err)
				}
				if !applied {
					return Failf("Failed to apply preset: %s", p.PresetName)
				}
				return OK(p.PresetName)
			}),

		New("add_render_job", "project", "Add the current render settings as a job on the render queue.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				jobID, err := project.AddRenderJob(ctx)
				if err != nil {
					return FailErr(err)
				}
				if jobID == "" {
					return Fail("Failed to add render job")
				}
				return OK(map[string]interface{}{"job_id": jobID})
			}),

		New("delete_render_job", "project", "Remove a job from the render queue.",
			[]ParamSpec{P("job_id", "string", "Render job ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				JobID string `json:"job_id"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				deleted, err := project.DeleteRenderJob(ctx, p.JobID)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("Failed to delete render job: %s", p.JobID)
				}
				return OK(p.JobID)
			}),

		New("delete_all_render_jobs", "project", "Clear the render queue.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				cleared, err := project.DeleteAllRenderJobs(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !cleared {
					return Fail("Failed to clear render queue")
				}
				return OK("cleared")
			}),

		New("get_render_job_list", "project", "List the jobs on the render queue.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				jobs, err := project.RenderJobList(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(jobs)
			}),

		New("get_render_job_status", "project", "Get the status of one render job.",
			[]ParamSpec{P("job_id", "string", "Render job ID.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				JobID string `json:"job_id"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				status, err := project.RenderJobStatus(ctx, p.JobID)
				if err != nil {
					return FailErr(err)
				}
				return OK(status)
			}),

		New("start_rendering", "project", "Start rendering, optionally limited to specific job IDs.",
			[]ParamSpec{P("job_ids", "array", "Render job IDs; empty renders the whole queue.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				JobIDs []string `json:"job_ids"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				started, err := project.StartRendering(ctx, p.JobIDs...)
				if err != nil {
					return FailErr(err)
				}
				if !started {
					return Fail("Failed to start rendering")
				}
				return OK("rendering")
			}),

		New("stop_rendering", "project", "Stop the render in progress.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				if err := project.StopRendering(ctx); err != nil {
					return FailErr(err)
				}
				return OK("stopped")
			}),

		New("is_rendering_in_progress", "project", "Report whether a render is in progress.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				rendering, err := project.IsRenderingInProgress(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(rendering)
			}),

		New("get_render_preset_list", "project", "List the available render presets.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				presets, err := project.RenderPresetList(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(presets)
			}),

		New("load_render_preset", "project", "Load a render preset as the current render settings.",
			[]ParamSpec{P("preset_name", "string", "Render preset name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				PresetName string `json:"preset_name"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				loaded, err := project.LoadRenderPreset(ctx, p.PresetName)
				if err != nil {
					return FailErr(err)
				}
				if !loaded {
					return Failf("Failed to load render preset: %s", p.PresetName)
				}
				return OK(p.PresetName)
			}),

		New("set_render_settings", "project", "Set current render settings from a map.",
			[]ParamSpec{P("settings", "object", "Render settings map.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Settings map[string]interface{} `json:"settings"`
			}) Result {
				if len(p.Settings) == 0 {
					return Fail("No render settings given")
				}
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				set, err := project.SetRenderSettings(ctx, p.Settings)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Fail("Failed to set render settings")
				}
				return OK("set")
			}),

		New("get_render_formats", "project", "List the supported render formats.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				formats, err := project.RenderFormats(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(formats)
			}),

		New("get_render_codecs", "project", "List the codecs supported by a render format.",
			[]ParamSpec{P("format", "string", "Render format.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Format string `json:"format"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				codecs, err := project.RenderCodecs(ctx, p.Format)
				if err != nil {
					return FailErr(err)
				}
				return OK(codecs)
			}),

		New("get_current_render_format_and_codec", "project", "Get the current render format and codec.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				current, err := project.CurrentRenderFormatAndCodec(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(current)
			}),

		New("set_current_render_format_and_codec", "project", "Set the current render format and codec.",
			[]ParamSpec{
				P("format", "string", "Render format.", true),
				P("codec", "string", "Render codec.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Format string `json:"format"`
				Codec  string `json:"codec"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				set, err := project.SetCurrentRenderFormatAndCodec(ctx, p.Format, p.Codec)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set render format/codec: %s/%s", p.Format, p.Codec)
				}
				return OK(map[string]interface{}{"format": p.Format, "codec": p.Codec})
			}),

		New("get_current_render_mode", "project", "Get the render mode (0 = individual clips, 1 = single clip).",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				mode, err := project.CurrentRenderMode(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(mode)
			}),

		New("set_current_render_mode", "project", "Set the render mode (0 = individual clips, 1 = single clip).",
			[]ParamSpec{P("mode", "integer", "Render mode value.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Mode int `json:"mode"`
			}) Result {
				if p.Mode != 0 && p.Mode != 1 {
					return Failf("Invalid render mode: %d. Valid range is 0-1", p.Mode)
				}
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				set, err := project.SetCurrentRenderMode(ctx, p.Mode)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set render mode: %d", p.Mode)
				}
				return OK(p.Mode)
			}),

		New("refresh_lut_list", "project", "Rescan the LUT directories.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				refreshed, err := project.RefreshLUTList(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !refreshed {
					return Fail("Failed to refresh LUT list")
				}
				return OK("refreshed")
			}),

		New("save_as_new_render_preset", "project", "Save the current render settings as a named preset.",
			[]ParamSpec{P("preset_name", "string", "Name for the new preset.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				PresetName string `json:"preset_name"`
			}) Result {
				if p.PresetName == "" {
					return Fail("No preset name given")
				}
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				saved, err := project.SaveAsNewRenderPreset(ctx, p.PresetName)
				if err != nil {
					return FailErr(err)
				}
				if !saved {
					return Failf("Failed to save render preset: %s", p.PresetName)
				}
				return OK(p.PresetName)
			}),

		New("delete_render_preset", "project", "Delete a named render preset.",
			[]ParamSpec{P("preset_name", "string", "Preset name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				PresetName string `json:"preset_name"`
			}) Result {
				if p.PresetName == "" {
					return Fail("No preset name given")
				}
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				deleted, err := project.DeleteRenderPreset(ctx, p.PresetName)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("Failed to delete render preset: %s", p.PresetName)
				}
				return OK(p.PresetName)
			}),

		New("get_quick_export_render_presets", "project", "List the quick export render presets.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				presets, err := project.QuickExportRenderPresets(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(presets)
			}),

		New("render_with_quick_export", "project", "Render the current timeline with a quick export preset.",
			[]ParamSpec{
				P("preset_name", "string", "Quick export preset name.", true),
				P("params", "object", "Optional overrides such as TargetDir and CustomName.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				PresetName string                 `json:"preset_name"`
				Params     map[string]interface{} `json:"params"`
			}) Result {
				if p.PresetName == "" {
					return Fail("No preset name given")
				}
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				if _, ok := deps.Session.CurrentTimeline(ctx); !ok {
					return Fail(ErrNoTimeline)
				}
				params := p.Params
				if params == nil {
					params = map[string]interface{}{}
				}
				rendered, err := project.RenderWithQuickExport(ctx, p.PresetName, params)
				if err != nil {
					return FailErr(err)
				}
				if len(rendered) == 0 {
					return Failf("Failed to render with preset: %s", p.PresetName)
				}
				return OK(rendered)
			}),

		New("get_color_groups_list", "project", "List the project's color group names.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				groups, err := project.ColorGroups(ctx)
				if err != nil {
					return FailErr(err)
				}
				names := make([]string, 0, len(groups))
				for _, group := range groups {
					if name, err := group.Name(ctx); err == nil {
						names = append(names, name)
					}
				}
				return OK(names)
			}),

		New("add_color_group", "project", "Create a color group.",
			[]ParamSpec{P("group_name", "string", "Color group name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				GroupName string `json:"group_name"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				group, err := project.AddColorGroup(ctx, p.GroupName)
				if err != nil {
					return FailErr(err)
				}
				if !group.Valid() {
					return Failf("Failed to create color group: %s", p.GroupName)
				}
				return OK(p.GroupName)
			}),

		New("delete_color_group", "project", "Delete a color group by name.",
			[]ParamSpec{P("group_name", "string", "Color group name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				GroupName string `json:"group_name"`
			}) Result {
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				group, found := findColorGroup(ctx, project, p.GroupName)
				if !found {
					return Failf("Color group not found: %s", p.GroupName)
				}
				deleted, err := project.DeleteColorGroup(ctx, group)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("Failed to delete color group: %s", p.GroupName)
				}
				return OK(p.GroupName)
			}),
	}
}

func findColorGroup(ctx context.Context, project host.Project, name string) (host.ColorGroup, bool) {
	groups, err := project.ColorGroups(ctx)
	if err != nil {
		return host.ColorGroup{}, false
	}
	for _, group := range groups {
		if groupName, err := group.Name(ctx); err == nil && groupName == name {
			return group, true
		}
	}
	return host.ColorGroup{}, false
}
