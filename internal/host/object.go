package host

import (
	"context"
	"errors"
	"strings"
)

// Object is an opaque handle to a host-resident object. The host owns the
// object's lifetime; this layer only invokes scripting methods on it.
type Object interface {
	Call(ctx context.Context, method string, args ...interface{}) (interface{}, error)
}

// ErrNullCallable marks the host's transient failure mode where an accessor
// method momentarily resolves to a null callable while the host refreshes
// internal state. Callers may retry; see the timeline item enumeration
// workaround.
var ErrNullCallable = errors.New("host accessor transiently unavailable")

// IsNullCallable reports whether err is the host's transient null-callable
// failure, either as the typed error or as the raw message passed through
// the scripting gateway.
func IsNullCallable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNullCallable) {
		return true
	}
	return strings.Contains(err.Error(), "'NoneType' object is not callable")
}

// Result coercion. The gateway decodes host results as JSON values, so
// numbers arrive as float64 and object references as Object.

func asObject(v interface{}) Object {
	obj, _ := v.(Object)
	return obj
}

func asObjects(v interface{}) []Object {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	objects := make([]Object, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(Object); ok {
			objects = append(objects, obj)
		}
	}
	return objects
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asStrings(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		if ss, ok := v.([]string); ok {
			return ss
		}
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

// Call helpers shared by the typed wrappers.

func callString(ctx context.Context, o Object, method string, args ...interface{}) (string, error) {
	v, err := o.Call(ctx, method, args...)
	return asString(v), err
}

func callStrings(ctx context.Context, o Object, method string, args ...interface{}) ([]string, error) {
	v, err := o.Call(ctx, method, args...)
	return asStrings(v), err
}

func callInt(ctx context.Context, o Object, method string, args ...interface{}) (int, error) {
	v, err := o.Call(ctx, method, args...)
	return asInt(v), err
}

func callBool(ctx context.Context, o Object, method string, args ...interface{}) (bool, error) {
	v, err := o.Call(ctx, method, args...)
	return asBool(v), err
}

func callMap(ctx context.Context, o Object, method string, args ...interface{}) (map[string]interface{}, error) {
	v, err := o.Call(ctx, method, args...)
	return asMap(v), err
}

func callObject(ctx context.Context, o Object, method string, args ...interface{}) (Object, error) {
	v, err := o.Call(ctx, method, args...)
	return asObject(v), err
}

func callObjects(ctx context.Context, o Object, method string, args ...interface{}) ([]Object, error) {
	v, err := o.Call(ctx, method, args...)
	return asObjects(v), err
}

// rawObjects unwraps typed wrappers into the bare handles expected as host
// call arguments.
func rawObjects[T interface{ raw() Object }](wrapped []T) []interface{} {
	out := make([]interface{}, 0, len(wrapped))
	for _, w := range wrapped {
		out = append(out, w.raw())
	}
	return out
}
