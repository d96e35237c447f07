package tools

import (
	"context"
	"reflect"

	"github.com/samuelgursky/resolve-tools-mcp/internal/config"
	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
	"github.com/samuelgursky/resolve-tools-mcp/internal/metrics"
)

// Deps carries everything a tool needs at execution time. Tools receive it
// explicitly instead of reaching for package state, so a registry can be
// built against any host. Metrics is optional.
type Deps struct {
	Session *host.Session
	Config  *config.ServerConfig
	Log     *logging.Logger
	Metrics *metrics.Metrics
}

// ParamSpec declares one parameter of a tool for discovery and validation.
type ParamSpec struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// RunFunc executes a tool against raw arguments.
type RunFunc func(ctx context.Context, deps *Deps, args map[string]interface{}) Result

// Tool is one invokable operation. ParamsType is the struct the raw
// arguments decode into; the validator diffs it against Params.
type Tool struct {
	Name        string
	Component   string
	Description string
	Params      []ParamSpec
	ParamsType  reflect.Type
	Run         RunFunc
}

// Descriptor is the discovery view of a tool.
type Descriptor struct {
	Name        string      `json:"name"`
	Component   string      `json:"component"`
	Description string      `json:"description"`
	Params      []ParamSpec `json:"params"`
}

// Describe returns the tool's discovery view.
func (t Tool) Describe() Descriptor {
	params := t.Params
	if params == nil {
		params = []ParamSpec{}
	}
	return Descriptor{
		Name:        t.Name,
		Component:   t.Component,
		Description: t.Description,
		Params:      params,
	}
}

// NoParams is the params type for tools that take no arguments.
type NoParams struct{}

// P is shorthand for declaring a parameter spec.
func P(name, typ, description string, required bool) ParamSpec {
	return ParamSpec{Name: name, Type: typ, Description: description, Required: required}
}
