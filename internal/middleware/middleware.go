// Package middleware wraps tool dispatch with cross-cutting behavior.
// Middlewares declare an order and run lowest first, each deciding whether
// to call the next link.
package middleware

import (
	"context"
	"sort"

	"github.com/samuelgursky/resolve-tools-mcp/internal/tools"
)

// Request is one dispatch through the chain.
type Request struct {
	ID   string
	Tool string
	Args map[string]interface{}
}

// Handler runs the request, either the next middleware or the registry.
type Handler func(ctx context.Context, req *Request) tools.Result

// Middleware is one link in the dispatch chain.
type Middleware interface {
	Name() string
	Order() int
	Execute(ctx context.Context, req *Request, next Handler) tools.Result
}

// Chain is an ordered middleware pipeline.
type Chain struct {
	links []Middleware
}

// NewChain builds a chain sorted by Order.
func NewChain(links ...Middleware) *Chain {
	sorted := make([]Middleware, len(links))
	copy(sorted, links)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order() < sorted[j].Order() })
	return &Chain{links: sorted}
}

// Execute runs the request through every link, ending at final.
func (c *Chain) Execute(ctx context.Context, req *Request, final Handler) tools.Result {
	handler := final
	for i := len(c.links) - 1; i >= 0; i-- {
		link := c.links[i]
		next := handler
		handler = func(ctx context.Context, req *Request) tools.Result {
			return link.Execute(ctx, req, next)
		}
	}
	return handler(ctx, req)
}
