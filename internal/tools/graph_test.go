package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host/hosttest"
)

// gradedItem scripts a playhead item carrying a node graph.
func gradedItem(graph *hosttest.Object) *hosttest.Object {
	return hosttest.NewObject("item").Stub("GetNodeGraph", graph)
}

// writeTempFile creates a real file on disk for path preconditions.
func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestSetLUTOutOfRangeNodeNeverTouchesNode(t *testing.T) {
	f := newFakeHost()
	graph := hosttest.NewObject("graph").Stub("GetNumNodes", 3)
	f.Timeline.Stub("GetCurrentVideoItem", gradedItem(graph))
	lutPath := writeTempFile(t, "film.cube")

	r := NewRegistry(GraphTools())
	result := r.Execute(context.Background(), f.deps(), "set_lut", map[string]interface{}{
		"node_index": 5,
		"lut_path":   lutPath,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Invalid node index: 5. Valid range is 1-3", result.Error)
	assert.Zero(t, graph.CallCount("SetLUT"))
}

func TestSetLUTAppliesToValidNode(t *testing.T) {
	f := newFakeHost()
	graph := hosttest.NewObject("graph").
		Stub("GetNumNodes", 3).
		Stub("SetLUT", true)
	f.Timeline.Stub("GetCurrentVideoItem", gradedItem(graph))
	lutPath := writeTempFile(t, "film.cube")

	r := NewRegistry(GraphTools())
	result := r.Execute(context.Background(), f.deps(), "set_lut", map[string]interface{}{
		"node_index": 2,
		"lut_path":   lutPath,
	})

	require.True(t, result.Success, "error: %s", result.Error)
	calls := graph.Calls()
	require.Equal(t, 1, graph.CallCount("SetLUT"))
	last := calls[len(calls)-1]
	assert.Equal(t, []interface{}{2, lutPath}, last.Args)
}

func TestSetLUTMissingFileNeverTouchesHost(t *testing.T) {
	f := newFakeHost()
	graph := hosttest.NewObject("graph").
		Stub("GetNumNodes", 3).
		Stub("SetLUT", true)
	f.Timeline.Stub("GetCurrentVideoItem", gradedItem(graph))
	missing := filepath.Join(t.TempDir(), "missing.cube")

	r := NewRegistry(GraphTools())
	result := r.Execute(context.Background(), f.deps(), "set_lut", map[string]interface{}{
		"node_index": 1,
		"lut_path":   missing,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "LUT file not found: "+missing, result.Error)
	assert.Zero(t, graph.CallCount("SetLUT"))
	assert.Empty(t, f.App.Calls())
}

func TestApplyGradeFromDRXMissingFileNeverTouchesHost(t *testing.T) {
	f := newFakeHost()
	graph := hosttest.NewObject("graph").Stub("ApplyGradeFromDRX", true)
	f.Timeline.Stub("GetCurrentVideoItem", gradedItem(graph))
	missing := filepath.Join(t.TempDir(), "grade.drx")

	r := NewRegistry(GraphTools())
	result := r.Execute(context.Background(), f.deps(), "apply_grade_from_drx", map[string]interface{}{
		"drx_path": missing,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "DRX file not found: "+missing, result.Error)
	assert.Zero(t, graph.CallCount("ApplyGradeFromDRX"))
	assert.Empty(t, f.App.Calls())
}

func TestApplyArriCdlLutPassesPath(t *testing.T) {
	f := newFakeHost()
	graph := hosttest.NewObject("graph").Stub("ApplyArriCdlLut", true)
	f.Timeline.Stub("GetCurrentVideoItem", gradedItem(graph))
	cdlPath := writeTempFile(t, "look.cdl")

	r := NewRegistry(GraphTools())
	result := r.Execute(context.Background(), f.deps(), "apply_arri_cdl_lut", map[string]interface{}{
		"cdl_path": cdlPath,
	})

	require.True(t, result.Success, "error: %s", result.Error)
	calls := graph.Calls()
	require.Equal(t, 1, graph.CallCount("ApplyArriCdlLut"))
	assert.Equal(t, []interface{}{cdlPath}, calls[len(calls)-1].Args)
}

func TestApplyArriCdlLutMissingFileNeverTouchesHost(t *testing.T) {
	f := newFakeHost()
	missing := filepath.Join(t.TempDir(), "look.cdl")

	r := NewRegistry(GraphTools())
	result := r.Execute(context.Background(), f.deps(), "apply_arri_cdl_lut", map[string]interface{}{
		"cdl_path": missing,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "CDL file not found: "+missing, result.Error)
	assert.Empty(t, f.App.Calls())
}

func TestSetLUTRequiresPath(t *testing.T) {
	f := newFakeHost()

	r := NewRegistry(GraphTools())
	result := r.Execute(context.Background(), f.deps(), "set_lut", map[string]interface{}{
		"node_index": 1,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "No LUT path given", result.Error)
	assert.Empty(t, f.App.Calls())
}

func TestGetNumNodesUsesPlayheadItem(t *testing.T) {
	f := newFakeHost()
	graph := hosttest.NewObject("graph").Stub("GetNumNodes", 7)
	f.Timeline.Stub("GetCurrentVideoItem", gradedItem(graph))

	r := NewRegistry(GraphTools())
	result := r.Execute(context.Background(), f.deps(), "get_num_nodes", nil)

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 7, result.Result)
}

func TestGraphToolsWithoutPlayheadItem(t *testing.T) {
	f := newFakeHost()
	f.Timeline.Stub("GetCurrentVideoItem", nil)

	r := NewRegistry(GraphTools())
	result := r.Execute(context.Background(), f.deps(), "get_num_nodes", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "No video item at the playhead", result.Error)
}
