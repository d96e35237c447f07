package tools

import (
	"context"
	"strings"
)

var validPages = []string{"media", "cut", "edit", "fusion", "color", "fairlight", "deliver"}

// ResolveTools covers the application root object: product info, page
// navigation, keyframe mode and layout presets.
func ResolveTools() []Tool {
	return []Tool{
		New("get_product_info", "resolve", "Get the host product name, version and current page.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				app, ok := deps.Session.App(ctx)
				if !ok {
					return Fail(ErrNotConnected)
				}
				product, err := app.ProductName(ctx)
				if err != nil {
					return FailErr(err)
				}
				version, err := app.Version(ctx)
				if err != nil {
					return FailErr(err)
				}
				page, _ := app.CurrentPage(ctx)
				return OK(map[string]interface{}{
					"product":      product,
					"version":      version,
					"current_page": page,
				})
			}),

		New("get_current_page", "resolve", "Get the page currently shown in the host UI.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				app, ok := deps.Session.App(ctx)
				if !ok {
					return Fail(ErrNotConnected)
				}
				page, err := app.CurrentPage(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(page)
			}),

		New("open_page", "resolve", "Switch the host UI to the given page.",
			[]ParamSpec{P("page", "string", "One of: media, cut, edit, fusion, color, fairlight, deliver.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Page string `json:"page"`
			}) Result {
				page := strings.ToLower(p.Page)
				if !containsString(validPages, page) {
					return Failf("Invalid page: %s. Valid pages are: %s", p.Page, strings.Join(validPages, ", "))
				}
				app, ok := deps.Session.App(ctx)
				if !ok {
					return Fail(ErrNotConnected)
				}
				switched, err := app.OpenPage(ctx, page)
				if err != nil {
					return FailErr(err)
				}
				if !switched {
					return Failf("Failed to open page: %s", page)
				}
				return OK(page)
			}),

		New("get_keyframe_mode", "resolve", "Get the current keyframe mode.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				app, ok := deps.Session.App(ctx)
				if !ok {
					return Fail(ErrNotConnected)
				}
				mode, err := app.KeyframeMode(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(mode)
			}),

		New("set_keyframe_mode", "resolve", "Set the keyframe mode (0 = all, 1 = color, 2 = sizing).",
			[]ParamSpec{P("mode", "integer", "Keyframe mode value.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Mode int `json:"mode"`
			}) Result {
				if p.Mode < 0 || p.Mode > 2 {
					return Failf("Invalid keyframe mode: %d. Valid range is 0-2", p.Mode)
				}
				app, ok := deps.Session.App(ctx)
				if !ok {
					return Fail(ErrNotConnected)
				}
				set, err := app.SetKeyframeMode(ctx, p.Mode)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set keyframe mode: %d", p.Mode)
				}
				return OK(p.Mode)
			}),

		New("manage_layout_preset", "resolve", "Load, save, update, delete, import or export a UI layout preset.",
			[]ParamSpec{
				P("action", "string", "One of: load, save, update, delete, import, export.", true),
				P("preset_name", "string", "Layout preset name.", true),
				P("path", "string", "File path, required for import and export.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Action     string `json:"action"`
				PresetName string `json:"preset_name"`
				Path       string `json:"path"`
			}) Result {
				app, ok := deps.Session.App(ctx)
				if !ok {
					return Fail(ErrNotConnected)
				}
				var done bool
				var err error
				switch strings.ToLower(p.Action) {
				case "load":
					done, err = app.LoadLayoutPreset(ctx, p.PresetName)
				case "save":
					done, err = app.SaveLayoutPreset(ctx, p.PresetName)
				case "update":
					done, err = app.UpdateLayoutPreset(ctx, p.PresetName)
				case "delete":
					done, err = app.DeleteLayoutPreset(ctx, p.PresetName)
				case "import":
					if p.Path == "" {
						return Fail("Import requires a path")
					}
					done, err = app.ImportLayoutPreset(ctx, p.Path, p.PresetName)
				case "export":
					if p.Path == "" {
						return Fail("Export requires a path")
					}
					done, err = app.ExportLayoutPreset(ctx, p.PresetName, p.Path)
				default:
					return Failf("Invalid action: %s. Valid actions are: load, save, update, delete, import, export", p.Action)
				}
				if err != nil {
					return FailErr(err)
				}
				if !done {
					return Failf("Failed to %s layout preset: %s", strings.ToLower(p.Action), p.PresetName)
				}
				return OK(p.PresetName)
			}),

		New("quit_resolve", "resolve", "Quit the host application.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				app, ok := deps.Session.App(ctx)
				if !ok {
					return Fail(ErrNotConnected)
				}
				if err := app.Quit(ctx); err != nil {
					return FailErr(err)
				}
				return OK("quitting")
			}),
	}
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
