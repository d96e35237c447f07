// Package resources serves read-only views of the host state and of the
// server's own diagnostics as MCP resources.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
	"github.com/samuelgursky/resolve-tools-mcp/internal/tools"
	"github.com/samuelgursky/resolve-tools-mcp/pkg/mcp"
)

const (
	URIProjectInfo     = "resolve://project/info"
	URIFolderStructure = "resolve://mediapool/folders"
	URIValidation      = "resolve://tools/validation"
)

// Provider resolves resource URIs.
type Provider struct {
	session    *host.Session
	validation tools.Summary
}

// NewProvider creates a provider over a session and the startup validation
// summary.
func NewProvider(session *host.Session, validation tools.Summary) *Provider {
	return &Provider{session: session, validation: validation}
}

// List describes the available resources.
func (p *Provider) List() []mcp.ResourceDefinition {
	return []mcp.ResourceDefinition{
		{
			URI:         URIProjectInfo,
			Name:        "Project info",
			Description: "Name, ID and timeline summary of the open project.",
			MimeType:    "application/json",
		},
		{
			URI:         URIFolderStructure,
			Name:        "Media pool folders",
			Description: "The open project's media pool folder tree.",
			MimeType:    "application/json",
		},
		{
			URI:         URIValidation,
			Name:        "Tool validation summary",
			Description: "Mismatches between tool declarations and their parameter bindings.",
			MimeType:    "application/json",
		},
	}
}

// Read resolves one resource URI to its JSON content.
func (p *Provider) Read(ctx context.Context, uri string) (mcp.ResourceContent, error) {
	var payload interface{}
	switch uri {
	case URIProjectInfo:
		project, ok := p.session.CurrentProject(ctx)
		if !ok {
			return mcp.ResourceContent{}, fmt.Errorf("%s", tools.ErrNoProject)
		}
		info := map[string]interface{}{}
		if name, err := project.Name(ctx); err == nil {
			info["name"] = name
		}
		if id, err := project.UniqueID(ctx); err == nil && id != "" {
			info["unique_id"] = id
		}
		if count, err := project.TimelineCount(ctx); err == nil {
			info["timeline_count"] = count
		}
		if timeline, err := project.CurrentTimeline(ctx); err == nil && timeline.Valid() {
			if name, err := timeline.Name(ctx); err == nil {
				info["current_timeline"] = name
			}
		}
		payload = info
	case URIFolderStructure:
		pool, ok := p.session.CurrentMediaPool(ctx)
		if !ok {
			return mcp.ResourceContent{}, fmt.Errorf("%s", tools.ErrNoProject)
		}
		root, err := pool.RootFolder(ctx)
		if err != nil || !root.Valid() {
			return mcp.ResourceContent{}, fmt.Errorf("%s", tools.ErrNoMediaPool)
		}
		payload = folderTree(ctx, root)
	case URIValidation:
		payload = p.validation
	default:
		return mcp.ResourceContent{}, fmt.Errorf("resource not found: %s", uri)
	}

	text, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.ResourceContent{}, err
	}
	return mcp.ResourceContent{URI: uri, MimeType: "application/json", Text: string(text)}, nil
}

func folderTree(ctx context.Context, folder host.Folder) map[string]interface{} {
	node := map[string]interface{}{}
	if name, err := folder.Name(ctx); err == nil {
		node["name"] = name
	}
	if clips, err := folder.ClipList(ctx); err == nil {
		names := make([]string, 0, len(clips))
		for _, clip := range clips {
			if name, err := clip.Name(ctx); err == nil {
				names = append(names, name)
			}
		}
		node["clips"] = names
	}
	if subFolders, err := folder.SubFolderList(ctx); err == nil {
		children := make([]map[string]interface{}, 0, len(subFolders))
		for _, sub := range subFolders {
			children = append(children, folderTree(ctx, sub))
		}
		node["folders"] = children
	}
	return node
}
