package tools

import (
	"context"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

// resolveColorGroup finds a color group in the open project by name.
func resolveColorGroup(ctx context.Context, deps *Deps, name string) (host.ColorGroup, Result) {
	if name == "" {
		return host.ColorGroup{}, Fail("No group name given")
	}
	project, ok := deps.Session.CurrentProject(ctx)
	if !ok {
		return host.ColorGroup{}, Fail(ErrNoProject)
	}
	group, found := findColorGroup(ctx, project, name)
	if !found {
		return host.ColorGroup{}, Failf("Color group not found: %s", name)
	}
	return group, Result{Success: true}
}

// ColorGroupTools covers per-group operations: renaming, membership in the
// active timeline and the shared pre/post clip graphs.
func ColorGroupTools() []Tool {
	return []Tool{
		New("rename_color_group", "color_group", "Rename a color group.",
			[]ParamSpec{
				P("group_name", "string", "Current group name.", true),
				P("new_name", "string", "New group name.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				GroupName string `json:"group_name"`
				NewName   string `json:"new_name"`
			}) Result {
				if p.NewName == "" {
					return Fail("No new name given")
				}
				group, res := resolveColorGroup(ctx, deps, p.GroupName)
				if !res.Success {
					return res
				}
				renamed, err := group.SetName(ctx, p.NewName)
				if err != nil {
					return FailErr(err)
				}
				if !renamed {
					return Failf("Failed to rename color group to: %s", p.NewName)
				}
				return OK(p.NewName)
			}),

		New("get_color_group_clips", "color_group", "List the active timeline's clips assigned to a color group.",
			[]ParamSpec{P("group_name", "string", "Group name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				GroupName string `json:"group_name"`
			}) Result {
				group, res := resolveColorGroup(ctx, deps, p.GroupName)
				if !res.Success {
					return res
				}
				if _, ok := deps.Session.CurrentTimeline(ctx); !ok {
					return Fail(ErrNoTimeline)
				}
				items, err := group.ClipsInTimeline(ctx)
				if err != nil {
					return FailErr(err)
				}
				out := make([]map[string]interface{}, 0, len(items))
				for _, item := range items {
					out = append(out, describeItem(ctx, item))
				}
				return OK(out)
			}),

		New("get_color_group_node_count", "color_group", "Get the node count of a group's shared pre or post clip graph.",
			[]ParamSpec{
				P("group_name", "string", "Group name.", true),
				P("phase", "string", "pre or post.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				GroupName string `json:"group_name"`
				Phase     string `json:"phase"`
			}) Result {
				if p.Phase != "pre" && p.Phase != "post" {
					return Failf("Invalid phase: %s. Valid phases are: pre, post", p.Phase)
				}
				group, res := resolveColorGroup(ctx, deps, p.GroupName)
				if !res.Success {
					return res
				}
				var graph host.Graph
				var err error
				if p.Phase == "pre" {
					graph, err = group.PreClipNodeGraph(ctx)
				} else {
					graph, err = group.PostClipNodeGraph(ctx)
				}
				if err != nil {
					return FailErr(err)
				}
				if !graph.Valid() {
					return Failf("No %s clip graph for group: %s", p.Phase, p.GroupName)
				}
				count, err := graph.NumNodes(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(count)
			}),
	}
}
