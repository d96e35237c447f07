package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
	"github.com/samuelgursky/resolve-tools-mcp/internal/metrics"
	"github.com/samuelgursky/resolve-tools-mcp/internal/tools"
)

// RequestID assigns a dispatch ID when the caller did not supply one.
type RequestID struct{}

func (RequestID) Name() string { return "request_id" }
func (RequestID) Order() int   { return 10 }

func (RequestID) Execute(ctx context.Context, req *Request, next Handler) tools.Result {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	return next(ctx, req)
}

// Recovery converts a panicking handler into an error envelope. Outermost
// after RequestID so every downstream link is covered.
type Recovery struct {
	Log *logging.Logger
}

func (Recovery) Name() string { return "recovery" }
func (Recovery) Order() int   { return 20 }

func (m Recovery) Execute(ctx context.Context, req *Request, next Handler) (result tools.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			if m.Log != nil {
				m.Log.Error("dispatch panicked", nil, map[string]interface{}{
					"request_id": req.ID,
					"tool":       req.Tool,
					"panic":      fmt.Sprint(rec),
				})
			}
			result = tools.Failf("Internal error executing %s: %v", req.Tool, rec)
		}
	}()
	return next(ctx, req)
}

// Logging records the start and outcome of every dispatch.
type Logging struct {
	Log *logging.Logger
}

func (Logging) Name() string { return "logging" }
func (Logging) Order() int   { return 30 }

func (m Logging) Execute(ctx context.Context, req *Request, next Handler) tools.Result {
	start := time.Now()
	m.Log.Debug("tool dispatch started", map[string]interface{}{
		"request_id": req.ID,
		"tool":       req.Tool,
	})
	result := next(ctx, req)
	fields := map[string]interface{}{
		"request_id":  req.ID,
		"tool":        req.Tool,
		"success":     result.Success,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if result.Success {
		m.Log.Info("tool dispatch finished", fields)
	} else {
		fields["error"] = result.Error
		m.Log.Warn("tool dispatch failed", fields)
	}
	return result
}

// Metrics observes execution counts and latency.
type Metrics struct {
	Collector *metrics.Metrics
}

func (Metrics) Name() string { return "metrics" }
func (Metrics) Order() int   { return 40 }

func (m Metrics) Execute(ctx context.Context, req *Request, next Handler) tools.Result {
	if m.Collector == nil {
		return next(ctx, req)
	}
	start := time.Now()
	result := next(ctx, req)
	m.Collector.ObserveExecution(req.Tool, result.Success, time.Since(start))
	return result
}

// Timeout bounds each dispatch with a deadline.
type Timeout struct {
	Duration time.Duration
}

func (Timeout) Name() string { return "timeout" }
func (Timeout) Order() int   { return 50 }

func (m Timeout) Execute(ctx context.Context, req *Request, next Handler) tools.Result {
	if m.Duration <= 0 {
		return next(ctx, req)
	}
	ctx, cancel := context.WithTimeout(ctx, m.Duration)
	defer cancel()
	done := make(chan tools.Result, 1)
	go func() {
		done <- next(ctx, req)
	}()
	select {
	case result := <-done:
		return result
	case <-ctx.Done():
		return tools.Failf("Tool execution timed out after %s: %s", m.Duration, req.Tool)
	}
}
