package gateway

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgursky/resolve-tools-mcp/internal/config"
	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

// fakeHelper is a line-oriented scripting helper over a real TCP socket.
type fakeHelper struct {
	listener net.Listener
	handle   func(req request) (interface{}, string)
}

func newFakeHelper(t *testing.T, handle func(req request) (interface{}, string)) *fakeHelper {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	h := &fakeHelper{listener: listener, handle: handle}
	go h.serve()
	t.Cleanup(func() { listener.Close() })
	return h
}

func (h *fakeHelper) serve() {
	conn, err := h.listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var req request
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			return
		}
		result, errMsg := h.handle(req)
		resp := map[string]interface{}{"id": req.ID}
		if errMsg != "" {
			resp["error"] = errMsg
		} else if result != nil {
			resp["result"] = result
		}
		payload, _ := json.Marshal(resp)
		if _, err := conn.Write(append(payload, '\n')); err != nil {
			return
		}
	}
}

func (h *fakeHelper) dial(t *testing.T) *Client {
	t.Helper()
	address := h.listener.Addr().String()
	cfg := &config.HostConfig{GatewayAddress: &address}
	client, err := Dial(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestClientResolvesApplicationHandle(t *testing.T) {
	helper := newFakeHelper(t, func(req request) (interface{}, string) {
		switch req.Method {
		case "GetResolve":
			return map[string]interface{}{"__handle__": "app-1"}, ""
		case "GetProductName":
			if req.Handle != "app-1" {
				return nil, "unknown handle"
			}
			return "DaVinci Resolve", ""
		}
		return nil, "unknown method"
	})
	client := helper.dial(t)

	app, err := client.App(context.Background())
	require.NoError(t, err)
	require.NotNil(t, app)

	name, err := app.Call(context.Background(), "GetProductName")
	require.NoError(t, err)
	assert.Equal(t, "DaVinci Resolve", name)
}

func TestClientEncodesObjectArguments(t *testing.T) {
	var echoed []interface{}
	helper := newFakeHelper(t, func(req request) (interface{}, string) {
		switch req.Method {
		case "GetResolve":
			return map[string]interface{}{"__handle__": "app-1"}, ""
		case "Echo":
			echoed = req.Args
			return true, ""
		}
		return nil, "unknown method"
	})
	client := helper.dial(t)

	app, err := client.App(context.Background())
	require.NoError(t, err)

	_, err = app.Call(context.Background(), "Echo", app, "literal")
	require.NoError(t, err)
	require.Len(t, echoed, 2)
	assert.Equal(t, map[string]interface{}{"__handle__": "app-1"}, echoed[0])
	assert.Equal(t, "literal", echoed[1])
}

func TestClientDecodesNestedHandles(t *testing.T) {
	helper := newFakeHelper(t, func(req request) (interface{}, string) {
		switch req.Method {
		case "GetResolve":
			return map[string]interface{}{"__handle__": "app-1"}, ""
		case "GetClipList":
			return []interface{}{
				map[string]interface{}{"__handle__": "clip-1"},
				map[string]interface{}{"__handle__": "clip-2"},
			}, ""
		case "GetName":
			return "clip named " + req.Handle, ""
		}
		return nil, "unknown method"
	})
	client := helper.dial(t)

	app, err := client.App(context.Background())
	require.NoError(t, err)

	raw, err := app.Call(context.Background(), "GetClipList")
	require.NoError(t, err)
	list, ok := raw.([]interface{})
	require.True(t, ok)
	require.Len(t, list, 2)

	clip, ok := list[1].(host.Object)
	require.True(t, ok)
	name, err := clip.Call(context.Background(), "GetName")
	require.NoError(t, err)
	assert.Equal(t, "clip named clip-2", name)
}

func TestClientMapsNullCallableError(t *testing.T) {
	helper := newFakeHelper(t, func(req request) (interface{}, string) {
		if req.Method == "GetResolve" {
			return map[string]interface{}{"__handle__": "app-1"}, ""
		}
		return nil, "'NoneType' object is not callable"
	})
	client := helper.dial(t)

	app, err := client.App(context.Background())
	require.NoError(t, err)

	_, err = app.Call(context.Background(), "GetItemListInTrack", "video", 1)
	require.Error(t, err)
	assert.True(t, host.IsNullCallable(err))
	assert.Contains(t, err.Error(), "GetItemListInTrack")
}

func TestClientRejectsCallsAfterClose(t *testing.T) {
	helper := newFakeHelper(t, func(req request) (interface{}, string) {
		return map[string]interface{}{"__handle__": "app-1"}, ""
	})
	client := helper.dial(t)

	app, err := client.App(context.Background())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	_, err = app.Call(context.Background(), "GetProductName")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway connection closed")
}

func TestDialFailureMentionsInstallHint(t *testing.T) {
	// A closed listener guarantees a refused connection.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := listener.Addr().String()
	listener.Close()

	cfg := &config.HostConfig{GatewayAddress: &address}
	_, err = Dial(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), address)
	assert.Contains(t, err.Error(), InstallHint())
}

func TestScriptPathOverrides(t *testing.T) {
	t.Setenv("RESOLVE_SCRIPT_API", "/custom/api")
	t.Setenv("RESOLVE_SCRIPT_LIB", "/custom/lib/fusionscript.so")

	require.NotEmpty(t, ScriptAPIPaths())
	assert.Equal(t, "/custom/api", ScriptAPIPaths()[0])
	require.NotEmpty(t, ScriptLibPaths())
	assert.Equal(t, "/custom/lib/fusionscript.so", ScriptLibPaths()[0])
	assert.NotEmpty(t, InstallHint())
}
