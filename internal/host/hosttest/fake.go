// Package hosttest provides a scripted in-memory host for tests. Objects
// are programmed with per-method return values or handlers and record
// every call they receive.
package hosttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/samuelgursky/resolve-tools-mcp/internal/host"
)

// Call records one method invocation on a fake object.
type Call struct {
	Method string
	Args   []interface{}
}

// Object is a scriptable host.Object.
type Object struct {
	Label string

	mu       sync.Mutex
	handlers map[string]func(args ...interface{}) (interface{}, error)
	calls    []Call
}

// NewObject creates an empty fake object. The label only shows up in error
// messages for unscripted calls.
func NewObject(label string) *Object {
	return &Object{
		Label:    label,
		handlers: make(map[string]func(args ...interface{}) (interface{}, error)),
	}
}

// Stub programs a method to return a fixed value.
func (o *Object) Stub(method string, value interface{}) *Object {
	return o.Handle(method, func(...interface{}) (interface{}, error) {
		return value, nil
	})
}

// StubErr programs a method to return a fixed error.
func (o *Object) StubErr(method string, err error) *Object {
	return o.Handle(method, func(...interface{}) (interface{}, error) {
		return nil, err
	})
}

// StubSequence programs a method to return each result in order, repeating
// the last one once the sequence is exhausted.
func (o *Object) StubSequence(method string, results []interface{}, errs []error) *Object {
	var n int
	return o.Handle(method, func(...interface{}) (interface{}, error) {
		i := n
		if i >= len(results) {
			i = len(results) - 1
		}
		n++
		var err error
		if i < len(errs) {
			err = errs[i]
		}
		return results[i], err
	})
}

// Handle programs a method with a custom handler.
func (o *Object) Handle(method string, fn func(args ...interface{}) (interface{}, error)) *Object {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.handlers[method] = fn
	return o
}

// Call implements host.Object.
func (o *Object) Call(_ context.Context, method string, args ...interface{}) (interface{}, error) {
	o.mu.Lock()
	o.calls = append(o.calls, Call{Method: method, Args: args})
	fn, ok := o.handlers[method]
	o.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("hosttest: %s has no handler for %s", o.Label, method)
	}
	return fn(args...)
}

// Calls returns a copy of the recorded calls.
func (o *Object) Calls() []Call {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Call, len(o.calls))
	copy(out, o.calls)
	return out
}

// CallCount returns how many times method was invoked.
func (o *Object) CallCount(method string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, c := range o.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Objects converts fakes to host handles for scripting list results.
func Objects(fakes ...*Object) []interface{} {
	out := make([]interface{}, len(fakes))
	for i, f := range fakes {
		out[i] = host.Object(f)
	}
	return out
}

// Bridge is a host.Bridge returning a fixed application object.
type Bridge struct {
	Root   *Object
	AppErr error

	mu     sync.Mutex
	closed bool
}

// NewBridge creates a bridge over the given root object.
func NewBridge(root *Object) *Bridge {
	return &Bridge{Root: root}
}

// App implements host.Bridge.
func (b *Bridge) App(context.Context) (host.Object, error) {
	if b.AppErr != nil {
		return nil, b.AppErr
	}
	if b.Root == nil {
		return nil, nil
	}
	return b.Root, nil
}

// Close implements host.Bridge.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// Closed reports whether Close was called.
func (b *Bridge) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}
