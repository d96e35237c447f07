package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markerParams struct {
	Frame int    `json:"frame"`
	Color string `json:"color"`
}

func markerTool(params []ParamSpec) Tool {
	return New("test_add_marker", "test", "Adds a marker.", params,
		func(ctx context.Context, deps *Deps, p markerParams) Result {
			return OK(p)
		})
}

func TestValidateCleanTool(t *testing.T) {
	r := NewRegistry([]Tool{markerTool([]ParamSpec{
		P("frame", "integer", "Frame number.", true),
		P("color", "string", "Marker color.", false),
	})})

	summary := Validate(r)

	assert.Equal(t, 1, summary.Tools)
	assert.Zero(t, summary.Errors)
	assert.Zero(t, summary.Warnings)
	assert.True(t, summary.Clean())
}

func TestValidateUndeclaredFieldIsError(t *testing.T) {
	// The handler accepts color but the declaration omits it, so callers
	// cannot discover the argument.
	r := NewRegistry([]Tool{markerTool([]ParamSpec{
		P("frame", "integer", "Frame number.", true),
	})})

	summary := Validate(r)

	assert.Equal(t, 1, summary.Errors)
	assert.Zero(t, summary.Warnings)
	assert.False(t, summary.Clean())
	require.Len(t, summary.Issues, 1)
	assert.Equal(t, "test_add_marker", summary.Issues[0].Tool)
	assert.Equal(t, "color", summary.Issues[0].Param)
	assert.Equal(t, SeverityError, summary.Issues[0].Severity)
	assert.Contains(t, summary.Issues[0].Message, "missing from the tool declaration")
}

func TestValidateBogusDeclarationIsWarning(t *testing.T) {
	// The declaration promises a parameter decoding silently drops.
	r := NewRegistry([]Tool{markerTool([]ParamSpec{
		P("frame", "integer", "Frame number.", true),
		P("color", "string", "Marker color.", false),
		P("note", "string", "Not bound to anything.", false),
	})})

	summary := Validate(r)

	assert.Zero(t, summary.Errors)
	assert.Equal(t, 1, summary.Warnings)
	assert.True(t, summary.Clean())
	require.Len(t, summary.Issues, 1)
	assert.Equal(t, "note", summary.Issues[0].Param)
	assert.Equal(t, SeverityWarning, summary.Issues[0].Severity)
}

func TestValidateNoParamsTool(t *testing.T) {
	r := NewRegistry([]Tool{New("bare", "test", "Takes nothing.", nil,
		func(ctx context.Context, deps *Deps, _ NoParams) Result {
			return OK(nil)
		})})

	summary := Validate(r)
	assert.True(t, summary.Clean())
	assert.Empty(t, summary.Issues)
}

func TestDefaultRegistryValidatesClean(t *testing.T) {
	summary := Validate(NewDefaultRegistry())
	for _, issue := range summary.Issues {
		t.Logf("%s: %s %s: %s", issue.Tool, issue.Severity, issue.Param, issue.Message)
	}
	assert.Zero(t, summary.Errors)
	assert.Zero(t, summary.Warnings)
}
