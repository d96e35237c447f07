package tools

import (
	"strings"

	"github.com/samuelgursky/resolve-tools-mcp/internal/config"
)

// NewDefaultRegistry builds the full tool set.
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		ResolveTools(),
		ProjectManagerTools(),
		ProjectTools(),
		MediaStorageTools(),
		MediaPoolTools(),
		MediaPoolItemTools(),
		TimelineTools(),
		TimelineItemTools(),
		GalleryTools(),
		GalleryAlbumTools(),
		GraphTools(),
		ColorGroupTools(),
		FolderTools(),
	)
}

var cloudTools = map[string]bool{
	"create_cloud_project": true,
	"load_cloud_project":   true,
}

// Discoverable reports whether a tool shows up in search results under the
// configured feature flags. Hidden tools stay registered and executable;
// the flags only trim discovery.
func Discoverable(features *config.FeaturesConfig, d Descriptor) bool {
	if features == nil {
		return true
	}
	if !features.GalleryEnabled() && (d.Component == "gallery" || d.Component == "gallery_still_album") {
		return false
	}
	if !features.ColorEnabled() && (d.Component == "graph" || d.Component == "color_group") {
		return false
	}
	if !features.RenderingEnabled() && strings.Contains(d.Name, "render") {
		return false
	}
	if !features.CloudEnabled() && cloudTools[d.Name] {
		return false
	}
	if !features.TranscriptionEnabled() && strings.Contains(d.Name, "transcri") {
		return false
	}
	return true
}

// FilterDiscoverable trims a descriptor list to the discoverable subset.
func FilterDiscoverable(features *config.FeaturesConfig, descriptors []Descriptor) []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if Discoverable(features, d) {
			out = append(out, d)
		}
	}
	return out
}
