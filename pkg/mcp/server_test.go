package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(body string) string {
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
}

// readResponses parses every framed response written by the server.
func readResponses(t *testing.T, out *bytes.Buffer) []Response {
	t.Helper()
	reader := bufio.NewReader(out)
	var responses []Response
	for {
		contentLength := -1
		for {
			line, err := reader.ReadString('\n')
			if err == io.EOF {
				return responses
			}
			require.NoError(t, err)
			if line == "\r\n" {
				break
			}
			fmt.Sscanf(line, "Content-Length: %d", &contentLength)
		}
		require.GreaterOrEqual(t, contentLength, 0)
		body := make([]byte, contentLength)
		_, err := io.ReadFull(reader, body)
		require.NoError(t, err)
		var resp Response
		require.NoError(t, json.Unmarshal(body, &resp))
		responses = append(responses, resp)
	}
}

func TestTransportRoundTrip(t *testing.T) {
	in := bytes.NewBufferString(frame(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`))
	var out bytes.Buffer
	transport := NewTransport(in, &out)

	req, err := transport.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "initialize", req.Method)
	assert.Equal(t, json.RawMessage("1"), req.ID)

	_, err = transport.ReadMessage()
	assert.Equal(t, io.EOF, err)

	require.NoError(t, transport.WriteMessage(NewResponse(req.ID, map[string]string{"ok": "yes"})))
	responses := readResponses(t, &out)
	require.Len(t, responses, 1)
	assert.Equal(t, json.RawMessage("1"), responses[0].ID)
}

func TestTransportMissingContentLength(t *testing.T) {
	in := bytes.NewBufferString("X-Something: 1\r\n\r\n")
	transport := NewTransport(in, io.Discard)

	_, err := transport.ReadMessage()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Content-Length")
}

func TestServerHandlesSession(t *testing.T) {
	var in bytes.Buffer
	in.WriteString(frame(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`))
	in.WriteString(frame(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	in.WriteString(frame(`{"jsonrpc":"2.0","id":2,"method":"ping"}`))
	in.WriteString(frame(`{"jsonrpc":"2.0","id":3,"method":"no/such/method"}`))

	var out bytes.Buffer
	server := NewServer("resolve-tools-mcp", "1.0.0", NewTransport(&in, &out))
	server.SetCapabilities(ServerCapabilities{Tools: map[string]interface{}{}})
	server.SetHandler("ping", func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		return "pong", nil
	})

	require.NoError(t, server.Run(context.Background()))

	responses := readResponses(t, &out)
	// The notification gets no response.
	require.Len(t, responses, 3)

	init, ok := responses[0].Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, ProtocolVersion, init["protocolVersion"])
	serverInfo, ok := init["serverInfo"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "resolve-tools-mcp", serverInfo["name"])

	assert.Equal(t, "pong", responses[1].Result)
	assert.Nil(t, responses[1].Error)

	require.NotNil(t, responses[2].Error)
	assert.Equal(t, ErrCodeMethodNotFound, responses[2].Error.Code)
	assert.Contains(t, responses[2].Error.Message, "no/such/method")
}

func TestServerHandlerErrorBecomesJSONRPCError(t *testing.T) {
	var in bytes.Buffer
	in.WriteString(frame(`{"jsonrpc":"2.0","id":1,"method":"explode"}`))

	var out bytes.Buffer
	server := NewServer("test", "0.0.1", NewTransport(&in, &out))
	server.SetHandler("explode", func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		return nil, fmt.Errorf("handler blew up")
	})

	require.NoError(t, server.Run(context.Background()))

	responses := readResponses(t, &out)
	require.Len(t, responses, 1)
	require.NotNil(t, responses[0].Error)
	assert.Equal(t, ErrCodeInternalError, responses[0].Error.Code)
	assert.Equal(t, "handler blew up", responses[0].Error.Message)
}

func TestParseRequestRejectsWrongVersion(t *testing.T) {
	_, err := ParseRequest([]byte(`{"jsonrpc":"1.0","id":1,"method":"x"}`))
	assert.Error(t, err)
}
