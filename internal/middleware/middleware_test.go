package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
	"github.com/samuelgursky/resolve-tools-mcp/internal/tools"
)

// recorder notes the traversal order of the chain.
type recorder struct {
	name  string
	order int
	trace *[]string
}

func (r recorder) Name() string { return r.name }
func (r recorder) Order() int   { return r.order }

func (r recorder) Execute(ctx context.Context, req *Request, next Handler) tools.Result {
	*r.trace = append(*r.trace, r.name)
	return next(ctx, req)
}

func TestChainRunsLowestOrderFirst(t *testing.T) {
	var trace []string
	chain := NewChain(
		recorder{name: "third", order: 30, trace: &trace},
		recorder{name: "first", order: 10, trace: &trace},
		recorder{name: "second", order: 20, trace: &trace},
	)

	result := chain.Execute(context.Background(), &Request{Tool: "noop"},
		func(ctx context.Context, req *Request) tools.Result {
			trace = append(trace, "handler")
			return tools.OK(nil)
		})

	require.True(t, result.Success)
	assert.Equal(t, []string{"first", "second", "third", "handler"}, trace)
}

func TestRequestIDAssignsWhenMissing(t *testing.T) {
	chain := NewChain(RequestID{})
	req := &Request{Tool: "noop"}

	chain.Execute(context.Background(), req,
		func(ctx context.Context, req *Request) tools.Result {
			return tools.OK(nil)
		})
	assert.NotEmpty(t, req.ID)

	req = &Request{ID: "caller-chosen", Tool: "noop"}
	chain.Execute(context.Background(), req,
		func(ctx context.Context, req *Request) tools.Result {
			return tools.OK(nil)
		})
	assert.Equal(t, "caller-chosen", req.ID)
}

func TestRecoveryConvertsPanicToEnvelope(t *testing.T) {
	chain := NewChain(Recovery{Log: logging.Discard()})

	result := chain.Execute(context.Background(), &Request{Tool: "volatile"},
		func(ctx context.Context, req *Request) tools.Result {
			panic("midnight meltdown")
		})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Internal error executing volatile")
	assert.Contains(t, result.Error, "midnight meltdown")
}

func TestTimeoutBoundsSlowHandlers(t *testing.T) {
	chain := NewChain(Timeout{Duration: 10 * time.Millisecond})

	result := chain.Execute(context.Background(), &Request{Tool: "slow"},
		func(ctx context.Context, req *Request) tools.Result {
			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Second):
			}
			return tools.OK(nil)
		})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Tool execution timed out")
	assert.Contains(t, result.Error, "slow")
}

func TestTimeoutDisabledPassesThrough(t *testing.T) {
	chain := NewChain(Timeout{})

	result := chain.Execute(context.Background(), &Request{Tool: "fast"},
		func(ctx context.Context, req *Request) tools.Result {
			return tools.OK("done")
		})

	require.True(t, result.Success)
	assert.Equal(t, "done", result.Result)
}

func TestLoggingPassesResultThrough(t *testing.T) {
	chain := NewChain(Logging{Log: logging.Discard()})

	result := chain.Execute(context.Background(), &Request{ID: "req-1", Tool: "noop"},
		func(ctx context.Context, req *Request) tools.Result {
			return tools.Fail("expected failure")
		})

	assert.False(t, result.Success)
	assert.Equal(t, "expected failure", result.Error)
}
