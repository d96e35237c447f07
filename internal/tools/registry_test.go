package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
)

func staticTool(name, component, description string) Tool {
	return New(name, component, description, nil,
		func(ctx context.Context, deps *Deps, _ NoParams) Result {
			return OK(name)
		})
}

func TestRegistryExecuteUnknownTool(t *testing.T) {
	r := NewRegistry([]Tool{staticTool("known", "test", "A known tool.")})

	result := r.Execute(context.Background(), &Deps{Log: logging.Discard()}, "nonexistent_tool", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "Tool not found: nonexistent_tool", result.Error)
}

func TestRegistryExecuteRecoversPanic(t *testing.T) {
	panicking := New("boom", "test", "Panics on purpose.", nil,
		func(ctx context.Context, deps *Deps, _ NoParams) Result {
			panic("kaboom")
		})
	r := NewRegistry([]Tool{panicking})

	result := r.Execute(context.Background(), &Deps{Log: logging.Discard()}, "boom", nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Internal error executing boom")
	assert.Contains(t, result.Error, "kaboom")
}

func TestRegistryDuplicateNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(
			[]Tool{staticTool("dup", "a", "First.")},
			[]Tool{staticTool("dup", "b", "Second.")},
		)
	})
}

func TestRegistrySearch(t *testing.T) {
	r := NewRegistry([]Tool{
		staticTool("get_marker_list", "timeline", "List timeline markers."),
		staticTool("add_marker", "timeline", "Add a marker."),
		staticTool("get_clip_details", "media_pool", "Describe a clip."),
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		results := r.Search("", "")
		require.Len(t, results, 3)
		assert.Equal(t, "add_marker", results[0].Name)
		assert.Equal(t, "get_clip_details", results[1].Name)
		assert.Equal(t, "get_marker_list", results[2].Name)
	})

	t.Run("query is case insensitive", func(t *testing.T) {
		results := r.Search("MARKER", "")
		require.Len(t, results, 2)
	})

	t.Run("component narrows the result", func(t *testing.T) {
		results := r.Search("", "media_pool")
		require.Len(t, results, 1)
		assert.Equal(t, "get_clip_details", results[0].Name)
	})

	t.Run("query and component combine", func(t *testing.T) {
		results := r.Search("marker", "media_pool")
		assert.Empty(t, results)
	})

	t.Run("repeated searches return the same set", func(t *testing.T) {
		first := r.Search("marker", "timeline")
		second := r.Search("marker", "timeline")
		assert.Equal(t, first, second)
	})
}

func TestRegistryComponents(t *testing.T) {
	r := NewRegistry([]Tool{
		staticTool("a", "timeline", ""),
		staticTool("b", "media_pool", ""),
		staticTool("c", "timeline", ""),
	})
	assert.Equal(t, []string{"media_pool", "timeline"}, r.Components())
}

func TestDescribeNilParams(t *testing.T) {
	d := staticTool("bare", "test", "No parameters.").Describe()
	require.NotNil(t, d.Params)
	assert.Empty(t, d.Params)
}

func TestDefaultRegistryEnvelopesEveryTool(t *testing.T) {
	r := NewDefaultRegistry()
	deps := emptyDeps()

	// Every tool must answer with an envelope against an empty host; the
	// ones needing a project fail gracefully, none may panic.
	for _, tool := range r.All() {
		result := r.Execute(context.Background(), deps, tool.Name, map[string]interface{}{})
		if !result.Success {
			assert.NotEmptyf(t, result.Error, "tool %s failed without a message", tool.Name)
		}
	}
}
