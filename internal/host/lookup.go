package host

import "context"

// Lookup helpers resolve host objects from the names and unique IDs that
// tool callers pass around. Matching is by display name first, then by
// unique ID. Some host objects never expose a unique ID; the probe treats
// an error or empty result as "no ID" instead of failing the whole search.

func probeUniqueID(ctx context.Context, id func(context.Context) (string, error)) (string, bool) {
	value, err := id(ctx)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// FindClip searches the media pool folder tree depth first for a clip whose
// name or unique ID matches ref.
func FindClip(ctx context.Context, pool MediaPool, ref string) (MediaPoolItem, bool) {
	root, err := pool.RootFolder(ctx)
	if err != nil || !root.Valid() {
		return MediaPoolItem{}, false
	}
	return findClipIn(ctx, root, ref)
}

func findClipIn(ctx context.Context, folder Folder, ref string) (MediaPoolItem, bool) {
	clips, err := folder.ClipList(ctx)
	if err == nil {
		for _, clip := range clips {
			if name, err := clip.Name(ctx); err == nil && name == ref {
				return clip, true
			}
			if id, ok := probeUniqueID(ctx, clip.UniqueID); ok && id == ref {
				return clip, true
			}
		}
	}
	subFolders, err := folder.SubFolderList(ctx)
	if err != nil {
		return MediaPoolItem{}, false
	}
	for _, sub := range subFolders {
		if clip, ok := findClipIn(ctx, sub, ref); ok {
			return clip, true
		}
	}
	return MediaPoolItem{}, false
}

// FindFolder searches the media pool folder tree depth first for a folder
// whose name or unique ID matches ref. The root folder itself is a
// candidate.
func FindFolder(ctx context.Context, pool MediaPool, ref string) (Folder, bool) {
	root, err := pool.RootFolder(ctx)
	if err != nil || !root.Valid() {
		return Folder{}, false
	}
	return findFolderIn(ctx, root, ref)
}

func findFolderIn(ctx context.Context, folder Folder, ref string) (Folder, bool) {
	if name, err := folder.Name(ctx); err == nil && name == ref {
		return folder, true
	}
	if id, ok := probeUniqueID(ctx, folder.UniqueID); ok && id == ref {
		return folder, true
	}
	subFolders, err := folder.SubFolderList(ctx)
	if err != nil {
		return Folder{}, false
	}
	for _, sub := range subFolders {
		if found, ok := findFolderIn(ctx, sub, ref); ok {
			return found, true
		}
	}
	return Folder{}, false
}

// FindTimeline scans the project's timelines by index for one whose name or
// unique ID matches ref.
func FindTimeline(ctx context.Context, project Project, ref string) (Timeline, bool) {
	count, err := project.TimelineCount(ctx)
	if err != nil {
		return Timeline{}, false
	}
	for i := 1; i <= count; i++ {
		timeline, err := project.TimelineByIndex(ctx, i)
		if err != nil || !timeline.Valid() {
			continue
		}
		if name, err := timeline.Name(ctx); err == nil && name == ref {
			return timeline, true
		}
		if id, ok := probeUniqueID(ctx, timeline.UniqueID); ok && id == ref {
			return timeline, true
		}
	}
	return Timeline{}, false
}

// FindTimelineItem scans every track of the given types for an item whose
// name or unique ID matches ref. Enumeration errors on one track do not
// abort the search of the remaining tracks.
func FindTimelineItem(ctx context.Context, timeline Timeline, ref string, trackTypes ...string) (TimelineItem, bool) {
	if len(trackTypes) == 0 {
		trackTypes = []string{"video", "audio", "subtitle"}
	}
	for _, trackType := range trackTypes {
		count, err := timeline.TrackCount(ctx, trackType)
		if err != nil {
			continue
		}
		for index := 1; index <= count; index++ {
			items, err := timeline.ItemsInTrack(ctx, trackType, index)
			if err != nil {
				continue
			}
			for _, item := range items {
				if name, err := item.Name(ctx); err == nil && name == ref {
					return item, true
				}
				if id, ok := probeUniqueID(ctx, item.UniqueID); ok && id == ref {
					return item, true
				}
			}
		}
	}
	return TimelineItem{}, false
}
