package tools

import "fmt"

// Result is the uniform tool outcome. A tool call never surfaces a Go
// error to the caller; failures travel in the envelope so the remote side
// always gets a well-formed response.
type Result struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result,omitempty"`
	Error   string      `json:"error,omitempty"`
	Warning string      `json:"warning,omitempty"`
}

// OK returns a successful result.
func OK(value interface{}) Result {
	return Result{Success: true, Result: value}
}

// OKWarn returns a successful result carrying a warning, used when an
// operation completed partially.
func OKWarn(value interface{}, warning string) Result {
	return Result{Success: true, Result: value, Warning: warning}
}

// Fail returns a failed result with a fixed message.
func Fail(message string) Result {
	return Result{Success: false, Error: message}
}

// Failf returns a failed result with a formatted message.
func Failf(format string, args ...interface{}) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// FailErr returns a failed result from a host error.
func FailErr(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// Messages every tool that needs an open project or timeline reports, kept
// identical so callers can match on them.
const (
	ErrNoProject     = "No project is currently open"
	ErrNoTimeline    = "No timeline is currently active"
	ErrNoMediaPool   = "Media pool is not available"
	ErrNotConnected  = "Host application is not available"
	ErrNoGallery     = "Gallery is not available"
	ErrNoMediaStore  = "Media storage is not available"
	ErrNoProjManager = "Project manager is not available"
)
