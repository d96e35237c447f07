// Package server wires configuration, the host session, the tool registry
// and the middleware chain into an MCP server.
package server

import (
	"context"
	"fmt"

	"github.com/samuelgursky/resolve-tools-mcp/internal/config"
	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
	"github.com/samuelgursky/resolve-tools-mcp/internal/metrics"
	"github.com/samuelgursky/resolve-tools-mcp/internal/middleware"
	"github.com/samuelgursky/resolve-tools-mcp/internal/resources"
	"github.com/samuelgursky/resolve-tools-mcp/internal/tools"
	"github.com/samuelgursky/resolve-tools-mcp/pkg/mcp"
)

// Server owns the dispatch pipeline and the MCP surface.
type Server struct {
	cfg        *config.ServerConfig
	log        *logging.Logger
	session    *host.Session
	registry   *tools.Registry
	chain      *middleware.Chain
	deps       *tools.Deps
	provider   *resources.Provider
	collector  *metrics.Metrics
	validation tools.Summary
}

// New builds a server over a host bridge. Registry validation runs here;
// in strict mode a validation error aborts startup, otherwise issues are
// logged as diagnostics.
func New(cfg *config.ServerConfig, log *logging.Logger, bridge host.Bridge) (*Server, error) {
	session := host.NewSession(bridge, log)
	registry := tools.NewDefaultRegistry()

	validation := tools.Validate(registry)
	for _, issue := range validation.Issues {
		fields := map[string]interface{}{
			"tool":     issue.Tool,
			"param":    issue.Param,
			"severity": issue.Severity,
		}
		if issue.Severity == tools.SeverityError {
			log.Error("tool declaration mismatch", nil, fields)
		} else {
			log.Warn("tool declaration mismatch", fields)
		}
	}
	if cfg.Server.GetStrictValidation() && !validation.Clean() {
		return nil, fmt.Errorf("tool validation failed with %d error(s)", validation.Errors)
	}

	var collector *metrics.Metrics
	if cfg.Server.GetEnableMetrics() {
		collector = metrics.New()
	}

	chain := middleware.NewChain(
		middleware.RequestID{},
		middleware.Recovery{Log: log},
		middleware.Logging{Log: log},
		middleware.Metrics{Collector: collector},
		middleware.Timeout{Duration: cfg.Server.GetTimeout()},
	)

	deps := &tools.Deps{Session: session, Config: cfg, Log: log, Metrics: collector}

	return &Server{
		cfg:        cfg,
		log:        log,
		session:    session,
		registry:   registry,
		chain:      chain,
		deps:       deps,
		provider:   resources.NewProvider(session, validation),
		collector:  collector,
		validation: validation,
	}, nil
}

// Dispatch runs one tool through the middleware chain.
func (s *Server) Dispatch(ctx context.Context, name string, args map[string]interface{}) tools.Result {
	req := &middleware.Request{Tool: name, Args: args}
	return s.chain.Execute(ctx, req, func(ctx context.Context, req *middleware.Request) tools.Result {
		return s.registry.Execute(ctx, s.deps, req.Tool, req.Args)
	})
}

// Registry exposes the tool registry.
func (s *Server) Registry() *tools.Registry { return s.registry }

// Validation exposes the startup validation summary.
func (s *Server) Validation() tools.Summary { return s.validation }

// Metrics exposes the collector; nil when metrics are disabled.
func (s *Server) Metrics() *metrics.Metrics { return s.collector }

// Session exposes the host session.
func (s *Server) Session() *host.Session { return s.session }

// Search lists discoverable tools matching a query.
func (s *Server) Search(query, component string) []tools.Descriptor {
	return tools.FilterDiscoverable(&s.cfg.Features, s.registry.Search(query, component))
}

// RunMCP serves the MCP protocol over the transport until it closes.
func (s *Server) RunMCP(ctx context.Context, transport *mcp.StdioTransport) error {
	mcpServer := mcp.NewServer(s.cfg.Server.GetName(), s.cfg.Server.GetVersion(), transport)
	mcpServer.SetCapabilities(mcp.ServerCapabilities{
		Tools:     map[string]interface{}{},
		Resources: map[string]interface{}{},
	})
	s.registerHandlers(mcpServer)
	s.log.Info("serving", map[string]interface{}{
		"name":    s.cfg.Server.GetName(),
		"version": s.cfg.Server.GetVersion(),
		"tools":   s.registry.Len(),
	})
	return mcpServer.Run(ctx)
}

// Close releases the host session.
func (s *Server) Close() error {
	return s.session.Close()
}
