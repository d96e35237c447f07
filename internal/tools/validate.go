package tools

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Severity of a declaration mismatch.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is one mismatch between a tool's declared parameters and the
// struct its arguments decode into.
type Issue struct {
	Tool     string `json:"tool"`
	Param    string `json:"param"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Summary aggregates validation over a registry.
type Summary struct {
	Tools    int     `json:"tools"`
	Errors   int     `json:"errors"`
	Warnings int     `json:"warnings"`
	Issues   []Issue `json:"issues,omitempty"`
}

// Clean reports whether validation found no errors. Warnings do not make a
// registry unclean.
func (s Summary) Clean() bool { return s.Errors == 0 }

// Validate diffs every tool's params struct against its declared parameter
// list. A field with no declaration is an error: the tool accepts an
// argument that discovery never mentions, so callers cannot know to pass
// it. A declaration with no backing field is a warning: it shows up in
// discovery but decoding silently drops it.
func Validate(r *Registry) Summary {
	summary := Summary{Tools: r.Len()}
	for _, tool := range r.All() {
		fields := paramFields(tool.ParamsType)
		declared := make(map[string]bool, len(tool.Params))
		for _, spec := range tool.Params {
			declared[spec.Name] = true
		}
		for _, field := range sortedKeys(fields) {
			if !declared[field] {
				summary.Errors++
				summary.Issues = append(summary.Issues, Issue{
					Tool:     tool.Name,
					Param:    field,
					Severity: SeverityError,
					Message:  fmt.Sprintf("parameter %q is missing from the tool declaration", field),
				})
			}
		}
		for _, spec := range tool.Params {
			if !fields[spec.Name] {
				summary.Warnings++
				summary.Issues = append(summary.Issues, Issue{
					Tool:     tool.Name,
					Param:    spec.Name,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("declared parameter %q has no binding field", spec.Name),
				})
			}
		}
	}
	return summary
}

// paramFields maps the wire names a params struct accepts. Wire names come
// from the json tag, falling back to the lowercased field name.
func paramFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	if t == nil || t.Kind() != reflect.Struct {
		return fields
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		fields[name] = true
	}
	return fields
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
