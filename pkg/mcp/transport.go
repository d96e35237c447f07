package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// StdioTransport frames JSON-RPC messages with Content-Length headers over a
// reader/writer pair, stdio by default.
type StdioTransport struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdioTransport creates a transport bound to os.Stdin/os.Stdout.
func NewStdioTransport() *StdioTransport {
	return NewTransport(os.Stdin, os.Stdout)
}

// NewTransport creates a transport over arbitrary streams. Tests use this with
// in-memory pipes.
func NewTransport(in io.Reader, out io.Writer) *StdioTransport {
	return &StdioTransport{in: bufio.NewReader(in), out: out}
}

// ReadMessage reads one framed JSON-RPC request. Returns io.EOF once the peer
// closes the stream.
func (t *StdioTransport) ReadMessage() (*Request, error) {
	contentLength := -1
	for {
		line, err := t.in.ReadString('\n')
		if err != nil {
			if err == io.EOF && line == "" {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		if line == "\r\n" || line == "\n" {
			break
		}
		fmt.Sscanf(line, "Content-Length: %d", &contentLength)
	}

	if contentLength < 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(t.in, body); err != nil {
		return nil, fmt.Errorf("failed to read message body: %w", err)
	}

	return ParseRequest(body)
}

// WriteMessage writes one framed JSON-RPC response.
func (t *StdioTransport) WriteMessage(resp *Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to serialize response: %w", err)
	}
	if _, err := fmt.Fprintf(t.out, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := t.out.Write(data); err != nil {
		return fmt.Errorf("failed to write body: %w", err)
	}
	return nil
}
