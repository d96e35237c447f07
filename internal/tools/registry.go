package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Registry holds the tool set. It is immutable after construction; Execute
// and Search are safe for concurrent use.
type Registry struct {
	byName map[string]Tool
	order  []string
}

// NewRegistry builds a registry from tool sets. Duplicate names panic,
// because a duplicate is always a programming error in registration.
func NewRegistry(sets ...[]Tool) *Registry {
	r := &Registry{byName: make(map[string]Tool)}
	for _, set := range sets {
		for _, tool := range set {
			if _, exists := r.byName[tool.Name]; exists {
				panic(fmt.Sprintf("duplicate tool name: %s", tool.Name))
			}
			r.byName[tool.Name] = tool
			r.order = append(r.order, tool.Name)
		}
	}
	sort.Strings(r.order)
	return r
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.byName) }

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.byName[name]
	return tool, ok
}

// Execute runs the named tool. Unknown names and handler panics both come
// back as failed envelopes; Execute never returns an error.
func (r *Registry) Execute(ctx context.Context, deps *Deps, name string, args map[string]interface{}) (result Result) {
	tool, ok := r.byName[name]
	if !ok {
		return Failf("Tool not found: %s", name)
	}
	defer func() {
		if rec := recover(); rec != nil {
			if deps != nil && deps.Log != nil {
				deps.Log.Error("tool handler panicked", nil, map[string]interface{}{
					"tool":  name,
					"panic": fmt.Sprint(rec),
				})
			}
			result = Failf("Internal error executing %s: %v", name, rec)
		}
	}()
	return tool.Run(ctx, deps, args)
}

// Search returns descriptors matching the query, sorted by name. An empty
// query matches everything; a non-empty query matches case insensitively
// against name, component and description. Component narrows the result to
// one component when set.
func (r *Registry) Search(query, component string) []Descriptor {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Descriptor
	for _, name := range r.order {
		tool := r.byName[name]
		if component != "" && tool.Component != component {
			continue
		}
		if query != "" && !matches(tool, query) {
			continue
		}
		out = append(out, tool.Describe())
	}
	return out
}

func matches(tool Tool, query string) bool {
	return strings.Contains(strings.ToLower(tool.Name), query) ||
		strings.Contains(strings.ToLower(tool.Component), query) ||
		strings.Contains(strings.ToLower(tool.Description), query)
}

// Components returns the distinct component names, sorted.
func (r *Registry) Components() []string {
	seen := make(map[string]bool)
	var out []string
	for _, tool := range r.byName {
		if !seen[tool.Component] {
			seen[tool.Component] = true
			out = append(out, tool.Component)
		}
	}
	sort.Strings(out)
	return out
}

// All returns every tool in name order.
func (r *Registry) All() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}
