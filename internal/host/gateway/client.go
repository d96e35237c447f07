// Package gateway connects the server to the scripting helper that runs
// inside the host application. The wire protocol is one JSON object per
// line: requests carry {id, handle, method, args} and responses carry
// {id, result, error}. Host object references cross the wire as
// {"__handle__": "<id>"} and are rehydrated into host.Object values.
package gateway

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samuelgursky/resolve-tools-mcp/internal/config"
	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
)

const handleKey = "__handle__"

// nullCallableMessage is the raw text the helper forwards when a host
// accessor transiently resolves to a null callable.
const nullCallableMessage = "'NoneType' object is not callable"

type request struct {
	ID     string        `json:"id"`
	Handle string        `json:"handle,omitempty"`
	Method string        `json:"method"`
	Args   []interface{} `json:"args,omitempty"`
}

type response struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Client is a host.Bridge over a TCP connection to the scripting helper.
// Calls are serialized; the helper executes one scripting call at a time
// anyway.
type Client struct {
	cfg *config.HostConfig
	log *logging.Logger

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
	closed bool
}

// Dial connects to the scripting helper at the configured address.
func Dial(ctx context.Context, cfg *config.HostConfig, log *logging.Logger) (*Client, error) {
	if log == nil {
		log = logging.Discard()
	}
	address := cfg.GetGatewayAddress()
	dialer := net.Dialer{Timeout: cfg.GetConnectTimeout()}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("connect to scripting gateway at %s: %w (%s)", address, err, InstallHint())
	}
	log.Info("connected to scripting gateway", map[string]interface{}{"address": address})
	return &Client{
		cfg:    cfg,
		log:    log,
		conn:   conn,
		reader: bufio.NewReader(conn),
	}, nil
}

// App implements host.Bridge. The helper resolves an empty handle to the
// application root.
func (c *Client) App(ctx context.Context) (host.Object, error) {
	result, err := c.roundTrip(ctx, "", "GetResolve", nil)
	if err != nil {
		return nil, err
	}
	obj, _ := result.(host.Object)
	return obj, nil
}

// Close implements host.Bridge.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

func (c *Client) roundTrip(ctx context.Context, handle, method string, args []interface{}) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, fmt.Errorf("gateway connection closed")
	}

	req := request{
		ID:     uuid.New().String(),
		Handle: handle,
		Method: method,
		Args:   encodeArgs(args),
	}

	deadline := time.Now().Add(c.cfg.GetCallTimeout())
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	if _, err := c.conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("gateway write: %w", err)
	}

	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("gateway read: %w", err)
	}
	var resp response
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, fmt.Errorf("gateway decode: %w", err)
	}
	if resp.ID != req.ID {
		return nil, fmt.Errorf("gateway response id mismatch: sent %s, got %s", req.ID, resp.ID)
	}
	if resp.Error != "" {
		return nil, c.wrapError(method, resp.Error)
	}
	if len(resp.Result) == 0 {
		return nil, nil
	}
	var raw interface{}
	if err := json.Unmarshal(resp.Result, &raw); err != nil {
		return nil, fmt.Errorf("gateway decode result: %w", err)
	}
	return c.decodeResult(raw), nil
}

func (c *Client) wrapError(method, message string) error {
	if message == nullCallableMessage {
		return fmt.Errorf("%s: %w", method, host.ErrNullCallable)
	}
	return fmt.Errorf("%s: %s", method, message)
}

// encodeArgs replaces remote object references with their wire form.
func encodeArgs(args []interface{}) []interface{} {
	if len(args) == 0 {
		return nil
	}
	out := make([]interface{}, len(args))
	for i, arg := range args {
		out[i] = encodeValue(arg)
	}
	return out
}

func encodeValue(v interface{}) interface{} {
	switch value := v.(type) {
	case *remoteObject:
		return map[string]interface{}{handleKey: value.handle}
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = encodeValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(value))
		for k, item := range value {
			out[k] = encodeValue(item)
		}
		return out
	default:
		return v
	}
}

// decodeResult rehydrates handle references into host objects.
func (c *Client) decodeResult(v interface{}) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		if handle, ok := value[handleKey].(string); ok && len(value) == 1 {
			return &remoteObject{client: c, handle: handle}
		}
		out := make(map[string]interface{}, len(value))
		for k, item := range value {
			out[k] = c.decodeResult(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = c.decodeResult(item)
		}
		return out
	default:
		return v
	}
}

// remoteObject is a host.Object backed by a helper-side handle.
type remoteObject struct {
	client *Client
	handle string
}

func (o *remoteObject) Call(ctx context.Context, method string, args ...interface{}) (interface{}, error) {
	return o.client.roundTrip(ctx, o.handle, method, args)
}
