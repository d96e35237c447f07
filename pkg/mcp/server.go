package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// HandlerFunc handles a single MCP method.
type HandlerFunc func(ctx context.Context, params json.RawMessage) (interface{}, error)

// Server is a method-table JSON-RPC server speaking the MCP protocol over a
// transport. Handlers are registered before Run; the table is not mutated
// afterwards.
type Server struct {
	transport *StdioTransport
	handlers  map[string]HandlerFunc
	info      ServerInfo
	caps      ServerCapabilities
}

// NewServer creates an MCP server over the given transport.
func NewServer(name, version string, transport *StdioTransport) *Server {
	s := &Server{
		transport: transport,
		handlers:  make(map[string]HandlerFunc),
		info:      ServerInfo{Name: name, Version: version},
	}
	s.SetHandler("initialize", s.handleInitialize)
	return s
}

// SetHandler registers a handler for a method.
func (s *Server) SetHandler(method string, handler HandlerFunc) {
	s.handlers[method] = handler
}

// SetCapabilities sets the capabilities advertised on initialize.
func (s *Server) SetCapabilities(caps ServerCapabilities) {
	s.caps = caps
}

func (s *Server) handleInitialize(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req InitializeRequest
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, fmt.Errorf("failed to parse initialize request: %w", err)
		}
	}
	return InitializeResponse{
		ProtocolVersion: ProtocolVersion,
		Capabilities:    s.caps,
		ServerInfo:      s.info,
	}, nil
}

// Run reads requests until the transport closes or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		req, err := s.transport.ReadMessage()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			resp := NewErrorResponse(nil, ErrCodeParseError, err.Error(), nil)
			if werr := s.transport.WriteMessage(resp); werr != nil {
				return werr
			}
			continue
		}

		// Notifications carry no ID and get no response.
		resp := s.dispatch(ctx, req)
		if len(req.ID) == 0 {
			continue
		}
		if err := s.transport.WriteMessage(resp); err != nil {
			return err
		}
	}
}

func (s *Server) dispatch(ctx context.Context, req *Request) *Response {
	handler, ok := s.handlers[req.Method]
	if !ok {
		return NewErrorResponse(req.ID, ErrCodeMethodNotFound,
			fmt.Sprintf("method not found: %s", req.Method), nil)
	}

	result, err := handler(ctx, req.Params)
	if err != nil {
		return NewErrorResponse(req.ID, ErrCodeInternalError, err.Error(), nil)
	}
	return NewResponse(req.ID, result)
}
