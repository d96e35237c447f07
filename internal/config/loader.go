package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Loader handles loading configuration from multiple sources.
type Loader struct{}

// NewLoader creates a config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Default returns the default configuration.
func Default() *ServerConfig {
	output := "stderr"
	enableReqLog := true
	enableRespLog := false
	timeout := 30000
	retries := 3
	retryDelay := 500

	return &ServerConfig{
		Host: HostConfig{
			TimelineItemRetries:          &retries,
			TimelineItemRetryDelayMillis: &retryDelay,
		},
		Server: ServerSettings{
			Timeout: &timeout,
		},
		Logging: LoggingConfig{
			Level:                 "info",
			Format:                "text",
			Output:                &output,
			EnableRequestLogging:  &enableReqLog,
			EnableResponseLogging: &enableRespLog,
		},
	}
}

// LoadFromFile loads configuration from the first JSON file found among the
// candidate paths. Returns nil without error when no file exists.
func (l *Loader) LoadFromFile(configPath string) (*ServerConfig, error) {
	var candidates []string

	if configPath != "" {
		candidates = append(candidates, configPath)
	}
	if envPath := os.Getenv("RESOLVE_MCP_CONFIG"); envPath != "" {
		candidates = append(candidates, envPath)
	}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, "resolve-mcp.json"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".resolve-mcp", "config.json"))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ServerConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
		}
		return &cfg, nil
	}

	return nil, nil
}

// MergeOverDefaults overlays a loaded file config onto the built-in
// defaults, so a partial config file keeps the defaults for every field it
// omits.
func (l *Loader) MergeOverDefaults(cfg *ServerConfig) *ServerConfig {
	merged := Default()
	if cfg == nil {
		return merged
	}

	if cfg.Host.GatewayAddress != nil {
		merged.Host.GatewayAddress = cfg.Host.GatewayAddress
	}
	if cfg.Host.ConnectTimeoutMillis != nil {
		merged.Host.ConnectTimeoutMillis = cfg.Host.ConnectTimeoutMillis
	}
	if cfg.Host.CallTimeoutMillis != nil {
		merged.Host.CallTimeoutMillis = cfg.Host.CallTimeoutMillis
	}
	if cfg.Host.TimelineItemRetries != nil {
		merged.Host.TimelineItemRetries = cfg.Host.TimelineItemRetries
	}
	if cfg.Host.TimelineItemRetryDelayMillis != nil {
		merged.Host.TimelineItemRetryDelayMillis = cfg.Host.TimelineItemRetryDelayMillis
	}

	if cfg.Server.Name != nil {
		merged.Server.Name = cfg.Server.Name
	}
	if cfg.Server.Version != nil {
		merged.Server.Version = cfg.Server.Version
	}
	if cfg.Server.Timeout != nil {
		merged.Server.Timeout = cfg.Server.Timeout
	}
	if cfg.Server.StrictValidation != nil {
		merged.Server.StrictValidation = cfg.Server.StrictValidation
	}
	if cfg.Server.EnableMetrics != nil {
		merged.Server.EnableMetrics = cfg.Server.EnableMetrics
	}
	if cfg.Server.EnableHealthCheck != nil {
		merged.Server.EnableHealthCheck = cfg.Server.EnableHealthCheck
	}
	if cfg.Server.HTTPListen != nil {
		merged.Server.HTTPListen = cfg.Server.HTTPListen
	}

	if cfg.Logging.Level != "" {
		merged.Logging.Level = cfg.Logging.Level
	}
	if cfg.Logging.Format != "" {
		merged.Logging.Format = cfg.Logging.Format
	}
	if cfg.Logging.Output != nil {
		merged.Logging.Output = cfg.Logging.Output
	}
	if cfg.Logging.EnableRequestLogging != nil {
		merged.Logging.EnableRequestLogging = cfg.Logging.EnableRequestLogging
	}
	if cfg.Logging.EnableResponseLogging != nil {
		merged.Logging.EnableResponseLogging = cfg.Logging.EnableResponseLogging
	}

	if cfg.Features.Rendering != nil {
		merged.Features.Rendering = cfg.Features.Rendering
	}
	if cfg.Features.Color != nil {
		merged.Features.Color = cfg.Features.Color
	}
	if cfg.Features.Gallery != nil {
		merged.Features.Gallery = cfg.Features.Gallery
	}
	if cfg.Features.Cloud != nil {
		merged.Features.Cloud = cfg.Features.Cloud
	}
	if cfg.Features.Transcription != nil {
		merged.Features.Transcription = cfg.Features.Transcription
	}

	return merged
}

// MergeWithEnv overlays environment variables onto the configuration.
func (l *Loader) MergeWithEnv(cfg *ServerConfig) *ServerConfig {
	merged := *cfg

	if addr := os.Getenv("RESOLVE_MCP_GATEWAY"); addr != "" {
		merged.Host.GatewayAddress = &addr
	}
	if v := os.Getenv("RESOLVE_MCP_TIMELINE_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			merged.Host.TimelineItemRetries = &n
		}
	}
	if v := os.Getenv("RESOLVE_MCP_TIMELINE_RETRY_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			merged.Host.TimelineItemRetryDelayMillis = &n
		}
	}

	if level := os.Getenv("RESOLVE_MCP_LOG_LEVEL"); level != "" {
		merged.Logging.Level = level
	}
	if format := os.Getenv("RESOLVE_MCP_LOG_FORMAT"); format != "" {
		merged.Logging.Format = format
	}
	if output := os.Getenv("RESOLVE_MCP_LOG_OUTPUT"); output != "" {
		merged.Logging.Output = &output
	}

	if listen := os.Getenv("RESOLVE_MCP_HTTP_LISTEN"); listen != "" {
		merged.Server.HTTPListen = &listen
	}
	if strict := os.Getenv("RESOLVE_MCP_STRICT_VALIDATION"); strict != "" {
		v := strict == "true" || strict == "1"
		merged.Server.StrictValidation = &v
	}

	return &merged
}
