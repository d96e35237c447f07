package tools

import (
	"context"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

// currentGraph resolves the node graph of the named timeline item, or of
// the video item under the playhead when no name is given.
func currentGraph(ctx context.Context, deps *Deps, itemName string) (host.Graph, Result) {
	timeline, res := currentTimeline(ctx, deps)
	if !res.Success {
		return host.Graph{}, res
	}
	var item host.TimelineItem
	if itemName == "" {
		current, err := timeline.CurrentVideoItem(ctx)
		if err != nil || !current.Valid() {
			return host.Graph{}, Fail("No video item at the playhead")
		}
		item = current
	} else {
		found, ok := host.FindTimelineItem(ctx, timeline, itemName)
		if !ok {
			return host.Graph{}, Failf("Timeline item not found: %s", itemName)
		}
		item = found
	}
	graph, err := item.NodeGraph(ctx)
	if err != nil {
		return host.Graph{}, FailErr(err)
	}
	if !graph.Valid() {
		return host.Graph{}, Fail("Node graph is not available")
	}
	return graph, Result{Success: true}
}

// checkNodeIndex validates a node index against the graph's node count
// before any node operation touches the host.
func checkNodeIndex(ctx context.Context, graph host.Graph, index int) Result {
	count, err := graph.NumNodes(ctx)
	if err != nil {
		return FailErr(err)
	}
	if index < 1 || index > count {
		return Failf("Invalid node index: %d. Valid range is 1-%d", index, count)
	}
	return Result{Success: true}
}

// GraphTools covers the color page node graph of a timeline item.
func GraphTools() []Tool {
	return []Tool{
		New("get_num_nodes", "graph", "Get the number of nodes in an item's grade.",
			[]ParamSpec{P("item_name", "string", "Item name; empty uses the item at the playhead.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				count, err := graph.NumNodes(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(count)
			}),

		New("set_lut", "graph", "Apply a LUT file to a node.",
			[]ParamSpec{
				P("node_index", "integer", "Node number, starting at 1.", true),
				P("lut_path", "string", "LUT file path.", true),
				P("item_name", "string", "Item name; empty uses the item at the playhead.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				NodeIndex int    `json:"node_index"`
				LUTPath   string `json:"lut_path"`
				ItemName  string `json:"item_name"`
			}) Result {
				if p.LUTPath == "" {
					return Fail("No LUT path given")
				}
				if !fileExists(p.LUTPath) {
					return Failf("LUT file not found: %s", p.LUTPath)
				}
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				if res := checkNodeIndex(ctx, graph, p.NodeIndex); !res.Success {
					return res
				}
				set, err := graph.SetLUT(ctx, p.NodeIndex, p.LUTPath)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set LUT on node %d", p.NodeIndex)
				}
				return OK(p.LUTPath)
			}),

		New("get_lut", "graph", "Get the LUT applied to a node.",
			[]ParamSpec{
				P("node_index", "integer", "Node number, starting at 1.", true),
				P("item_name", "string", "Item name; empty uses the item at the playhead.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				NodeIndex int    `json:"node_index"`
				ItemName  string `json:"item_name"`
			}) Result {
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				if res := checkNodeIndex(ctx, graph, p.NodeIndex); !res.Success {
					return res
				}
				lut, err := graph.LUT(ctx, p.NodeIndex)
				if err != nil {
					return FailErr(err)
				}
				return OK(lut)
			}),

		New("set_node_cache_mode", "graph", "Set a node's cache mode.",
			[]ParamSpec{
				P("node_index", "integer", "Node number, starting at 1.", true),
				P("cache_mode", "string", "auto, on or off.", true),
				P("item_name", "string", "Item name; empty uses the item at the playhead.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				NodeIndex int    `json:"node_index"`
				CacheMode string `json:"cache_mode"`
				ItemName  string `json:"item_name"`
			}) Result {
				if p.CacheMode != "auto" && p.CacheMode != "on" && p.CacheMode != "off" {
					return Failf("Invalid cache mode: %s. Valid modes are: auto, on, off", p.CacheMode)
				}
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				if res := checkNodeIndex(ctx, graph, p.NodeIndex); !res.Success {
					return res
				}
				set, err := graph.SetNodeCacheMode(ctx, p.NodeIndex, p.CacheMode)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set cache mode on node %d", p.NodeIndex)
				}
				return OK(p.CacheMode)
			}),

		New("get_node_cache_mode", "graph", "Get a node's cache mode.",
			[]ParamSpec{
				P("node_index", "integer", "Node number, starting at 1.", true),
				P("item_name", "string", "Item name; empty uses the item at the playhead.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				NodeIndex int    `json:"node_index"`
				ItemName  string `json:"item_name"`
			}) Result {
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				if res := checkNodeIndex(ctx, graph, p.NodeIndex); !res.Success {
					return res
				}
				mode, err := graph.NodeCacheMode(ctx, p.NodeIndex)
				if err != nil {
					return FailErr(err)
				}
				return OK(mode)
			}),

		New("get_node_label", "graph", "Get a node's label.",
			[]ParamSpec{
				P("node_index", "integer", "Node number, starting at 1.", true),
				P("item_name", "string", "Item name; empty uses the item at the playhead.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				NodeIndex int    `json:"node_index"`
				ItemName  string `json:"item_name"`
			}) Result {
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				if res := checkNodeIndex(ctx, graph, p.NodeIndex); !res.Success {
					return res
				}
				label, err := graph.NodeLabel(ctx, p.NodeIndex)
				if err != nil {
					return FailErr(err)
				}
				return OK(label)
			}),

		New("get_tools_in_node", "graph", "List the ResolveFX tools applied in a node.",
			[]ParamSpec{
				P("node_index", "integer", "Node number, starting at 1.", true),
				P("item_name", "string", "Item name; empty uses the item at the playhead.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				NodeIndex int    `json:"node_index"`
				ItemName  string `json:"item_name"`
			}) Result {
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				if res := checkNodeIndex(ctx, graph, p.NodeIndex); !res.Success {
					return res
				}
				nodeTools, err := graph.ToolsInNode(ctx, p.NodeIndex)
				if err != nil {
					return FailErr(err)
				}
				return OK(nodeTools)
			}),

		New("set_node_enabled", "graph", "Enable or disable a node.",
			[]ParamSpec{
				P("node_index", "integer", "Node number, starting at 1.", true),
				P("enabled", "boolean", "Node enabled state.", true),
				P("item_name", "string", "Item name; empty uses the item at the playhead.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				NodeIndex int    `json:"node_index"`
				Enabled   bool   `json:"enabled"`
				ItemName  string `json:"item_name"`
			}) Result {
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				if res := checkNodeIndex(ctx, graph, p.NodeIndex); !res.Success {
					return res
				}
				set, err := graph.SetNodeEnabled(ctx, p.NodeIndex, p.Enabled)
				if err != nil {
					return FailErr(err)
				}
				if !set {
					return Failf("Failed to set enabled state on node %d", p.NodeIndex)
				}
				return OK(p.Enabled)
			}),

		New("apply_grade_from_drx", "graph", "Apply a DRX grade file to an item's graph.",
			[]ParamSpec{
				P("drx_path", "string", "DRX file path.", true),
				P("grade_mode", "integer", "0 = no keyframes, 1 = source timecode aligned, 2 = start frames aligned.", false),
				P("item_name", "string", "Item name; empty uses the item at the playhead.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				DRXPath   string `json:"drx_path"`
				GradeMode int    `json:"grade_mode"`
				ItemName  string `json:"item_name"`
			}) Result {
				if p.DRXPath == "" {
					return Fail("No DRX path given")
				}
				if !fileExists(p.DRXPath) {
					return Failf("DRX file not found: %s", p.DRXPath)
				}
				if p.GradeMode < 0 || p.GradeMode > 2 {
					return Failf("Invalid grade mode: %d. Valid range is 0-2", p.GradeMode)
				}
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				applied, err := graph.ApplyGradeFromDRX(ctx, p.DRXPath, p.GradeMode)
				if err != nil {
					return FailErr(err)
				}
				if !applied {
					return Failf("Failed to apply grade from: %s", p.DRXPath)
				}
				return OK(p.DRXPath)
			}),

		New("apply_arri_cdl_lut", "graph", "Apply an ARRI CDL and LUT file to an item's graph.",
			[]ParamSpec{
				P("cdl_path", "string", "CDL file path.", true),
				P("item_name", "string", "Item name; empty uses the item at the playhead.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				CDLPath  string `json:"cdl_path"`
				ItemName string `json:"item_name"`
			}) Result {
				if p.CDLPath == "" {
					return Fail("No CDL path given")
				}
				if !fileExists(p.CDLPath) {
					return Failf("CDL file not found: %s", p.CDLPath)
				}
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				applied, err := graph.ApplyArriCdlLut(ctx, p.CDLPath)
				if err != nil {
					return FailErr(err)
				}
				if !applied {
					return Fail("Failed to apply ARRI CDL and LUT")
				}
				return OK("applied")
			}),

		New("reset_all_grades", "graph", "Reset every node grade on an item.",
			[]ParamSpec{P("item_name", "string", "Item name; empty uses the item at the playhead.", false)},
			func(ctx context.Context, deps *Deps, p struct {
				ItemName string `json:"item_name"`
			}) Result {
				graph, res := currentGraph(ctx, deps, p.ItemName)
				if !res.Success {
					return res
				}
				reset, err := graph.ResetAllGrades(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !reset {
					return Fail("Failed to reset grades")
				}
				return OK("reset")
			}),
	}
}
