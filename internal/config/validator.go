package config

import (
	"fmt"
	"net"
)

// Validator validates configuration.
type Validator struct{}

// NewValidator creates a config validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the complete server configuration. Returns false with a
// list of human-readable problems when invalid.
func (v *Validator) Validate(cfg *ServerConfig) (bool, []string) {
	var errors []string

	errors = append(errors, v.validateHost(&cfg.Host)...)
	errors = append(errors, v.validateServer(&cfg.Server)...)
	errors = append(errors, v.validateLogging(&cfg.Logging)...)

	return len(errors) == 0, errors
}

func (v *Validator) validateHost(cfg *HostConfig) []string {
	var errors []string

	if cfg.GatewayAddress != nil {
		if _, _, err := net.SplitHostPort(*cfg.GatewayAddress); err != nil {
			errors = append(errors, fmt.Sprintf("Host gatewayAddress must be host:port, got %q", *cfg.GatewayAddress))
		}
	}
	if cfg.ConnectTimeoutMillis != nil && *cfg.ConnectTimeoutMillis < 0 {
		errors = append(errors, "Host connectTimeoutMillis must be >= 0")
	}
	if cfg.CallTimeoutMillis != nil && *cfg.CallTimeoutMillis < 0 {
		errors = append(errors, "Host callTimeoutMillis must be >= 0")
	}
	if cfg.TimelineItemRetries != nil && *cfg.TimelineItemRetries < 1 {
		errors = append(errors, "Host timelineItemRetries must be >= 1")
	}
	if cfg.TimelineItemRetryDelayMillis != nil && *cfg.TimelineItemRetryDelayMillis < 0 {
		errors = append(errors, "Host timelineItemRetryDelayMillis must be >= 0")
	}

	return errors
}

func (v *Validator) validateServer(cfg *ServerSettings) []string {
	var errors []string

	if cfg.Timeout != nil && *cfg.Timeout < 0 {
		errors = append(errors, "Server timeout must be >= 0")
	}
	if cfg.HTTPListen != nil && *cfg.HTTPListen != "" {
		if _, _, err := net.SplitHostPort(*cfg.HTTPListen); err != nil {
			errors = append(errors, fmt.Sprintf("Server httpListen must be host:port, got %q", *cfg.HTTPListen))
		}
	}

	return errors
}

func (v *Validator) validateLogging(cfg *LoggingConfig) []string {
	var errors []string

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.Level) {
		errors = append(errors, fmt.Sprintf("Logging level must be one of: %v", validLevels))
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.Format) {
		errors = append(errors, fmt.Sprintf("Logging format must be one of: %v", validFormats))
	}

	return errors
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
