package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host/hosttest"
)

var errNullCallable = errors.New("'NoneType' object is not callable")

func scriptedItem(name string) *hosttest.Object {
	return hosttest.NewObject("item").
		Stub("GetName", name).
		Stub("GetUniqueId", "").
		Stub("GetStart", 100).
		Stub("GetEnd", 200).
		Stub("GetDuration", 100)
}

func TestGetTimelineItemsRetriesThroughNullCallable(t *testing.T) {
	f := newFakeHost()
	item := scriptedItem("Clip 1")
	f.Timeline.
		Stub("GetTrackCount", 1).
		Stub("GetCurrentTimecode", "01:00:00:00").
		Stub("SetCurrentTimecode", true).
		StubSequence("GetItemListInTrack",
			[]interface{}{nil, nil, hosttest.Objects(item)},
			[]error{errNullCallable, errNullCallable, nil})

	r := NewRegistry(TimelineTools())
	result := r.Execute(context.Background(), f.deps(), "get_timeline_items", map[string]interface{}{
		"track_type":  "video",
		"track_index": 1,
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Empty(t, result.Warning)
	assert.Equal(t, 3, f.Timeline.CallCount("GetItemListInTrack"))
	// The timecode rewrite between attempts nudges the host to refresh.
	assert.Equal(t, 2, f.Timeline.CallCount("SetCurrentTimecode"))

	items, ok := result.Result.(map[string]interface{})
	require.True(t, ok)
	track, ok := items["video_1"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, track, 1)
	assert.Equal(t, "Clip 1", track[0]["name"])
}

func TestGetTimelineItemsExhaustedRetriesIsPartialResult(t *testing.T) {
	f := newFakeHost()
	f.Timeline.
		Stub("GetTrackCount", 1).
		Stub("GetCurrentTimecode", "01:00:00:00").
		Stub("SetCurrentTimecode", true).
		StubErr("GetItemListInTrack", errNullCallable)

	r := NewRegistry(TimelineTools())
	result := r.Execute(context.Background(), f.deps(), "get_timeline_items", map[string]interface{}{
		"track_type":  "video",
		"track_index": 1,
	})

	require.True(t, result.Success)
	assert.Contains(t, result.Warning, "Track enumeration failed after retries for: video_1")
	assert.Equal(t, 3, f.Timeline.CallCount("GetItemListInTrack"))
	assert.Equal(t, 2, f.Timeline.CallCount("SetCurrentTimecode"))

	items, ok := result.Result.(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, items, "video_1")
}

func TestGetTimelineItemsNonTransientErrorAborts(t *testing.T) {
	f := newFakeHost()
	f.Timeline.
		Stub("GetTrackCount", 1).
		StubErr("GetItemListInTrack", errors.New("track enumeration exploded"))

	r := NewRegistry(TimelineTools())
	result := r.Execute(context.Background(), f.deps(), "get_timeline_items", map[string]interface{}{
		"track_type":  "video",
		"track_index": 1,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "track enumeration exploded", result.Error)
	assert.Equal(t, 1, f.Timeline.CallCount("GetItemListInTrack"))
	assert.Zero(t, f.Timeline.CallCount("SetCurrentTimecode"))
}

func TestGetTimelineItemsValidatesBeforeTouchingHost(t *testing.T) {
	f := newFakeHost()
	r := NewRegistry(TimelineTools())

	t.Run("invalid track type", func(t *testing.T) {
		result := r.Execute(context.Background(), f.deps(), "get_timeline_items", map[string]interface{}{
			"track_type": "picture",
		})
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "Invalid track type: picture")
		assert.Empty(t, f.Timeline.Calls())
	})

	t.Run("invalid track index", func(t *testing.T) {
		f.Timeline.Stub("GetTrackCount", 1)
		result := r.Execute(context.Background(), f.deps(), "get_timeline_items", map[string]interface{}{
			"track_type":  "video",
			"track_index": 5,
		})
		assert.False(t, result.Success)
		assert.Equal(t, "Invalid track index: 5. Valid range is 1-1", result.Error)
		assert.Zero(t, f.Timeline.CallCount("GetItemListInTrack"))
	})
}

func TestUpdateTimelineMarkerCustomData(t *testing.T) {
	f := newFakeHost()
	f.Timeline.Stub("UpdateMarkerCustomData", true)

	r := NewRegistry(TimelineTools())
	result := r.Execute(context.Background(), f.deps(), "update_timeline_marker_custom_data", map[string]interface{}{
		"frame":       120,
		"custom_data": "review-pass-1",
	})

	require.True(t, result.Success, "error: %s", result.Error)
	calls := f.Timeline.Calls()
	require.Equal(t, 1, f.Timeline.CallCount("UpdateMarkerCustomData"))
	assert.Equal(t, []interface{}{120, "review-pass-1"}, calls[len(calls)-1].Args)
}

func TestTimelineMarkerByCustomDataNotFound(t *testing.T) {
	f := newFakeHost()
	f.Timeline.Stub("GetMarkerByCustomData", map[string]interface{}{})

	r := NewRegistry(TimelineTools())
	result := r.Execute(context.Background(), f.deps(), "get_timeline_marker_by_custom_data", map[string]interface{}{
		"custom_data": "missing",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "No marker found with custom data: missing", result.Error)
}

func TestMarkerCustomDataToolsRequireData(t *testing.T) {
	f := newFakeHost()

	r := NewRegistry(TimelineTools())
	for _, name := range []string{
		"get_timeline_marker_by_custom_data",
		"update_timeline_marker_custom_data",
		"delete_timeline_marker_by_custom_data",
	} {
		result := r.Execute(context.Background(), f.deps(), name, map[string]interface{}{})
		assert.False(t, result.Success, name)
		assert.Equal(t, "No custom data given", result.Error, name)
	}
	assert.Empty(t, f.Timeline.Calls())
}

func TestCreateFusionClipResolvesItems(t *testing.T) {
	f := newFakeHost()
	item := scriptedItem("Clip 1")
	f.Timeline.
		Stub("GetTrackCount", 1).
		Stub("GetItemListInTrack", hosttest.Objects(item)).
		Stub("CreateFusionClip", scriptedItem("Fusion Clip 1"))

	r := NewRegistry(TimelineTools())
	result := r.Execute(context.Background(), f.deps(), "create_fusion_clip", map[string]interface{}{
		"item_names": []interface{}{"Clip 1"},
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 1, f.Timeline.CallCount("CreateFusionClip"))
}

func TestHasVideoEffectAtOffsetRejectsNegativeOffset(t *testing.T) {
	f := newFakeHost()

	r := NewRegistry(TimelineItemTools())
	result := r.Execute(context.Background(), f.deps(), "has_video_effect_at_offset", map[string]interface{}{
		"item_name":    "Clip 1",
		"frame_offset": -1,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Invalid frame offset: -1", result.Error)
	assert.Empty(t, f.App.Calls())
}

func TestHasVideoEffectQueriesItem(t *testing.T) {
	f := newFakeHost()
	item := scriptedItem("Clip 1").Stub("HasVideoEffect", true)
	f.Timeline.
		Stub("GetTrackCount", 1).
		Stub("GetItemListInTrack", hosttest.Objects(item))

	r := NewRegistry(TimelineItemTools())
	result := r.Execute(context.Background(), f.deps(), "has_video_effect", map[string]interface{}{
		"item_name": "Clip 1",
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, true, result.Result)
}

func TestTimelineToolsRequireOpenProject(t *testing.T) {
	r := NewRegistry(TimelineTools())
	result := r.Execute(context.Background(), emptyDeps(), "get_timeline_details", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "No project is currently open", result.Error)
}
