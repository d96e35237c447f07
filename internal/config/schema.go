package config

import "time"

// ServerConfig is the root configuration structure.
type ServerConfig struct {
	Host     HostConfig     `json:"host"`
	Server   ServerSettings `json:"server"`
	Logging  LoggingConfig  `json:"logging"`
	Features FeaturesConfig `json:"features"`
}

// HostConfig holds settings for the Resolve scripting gateway connection.
type HostConfig struct {
	GatewayAddress       *string `json:"gatewayAddress,omitempty"`
	ConnectTimeoutMillis *int    `json:"connectTimeoutMillis,omitempty"`
	CallTimeoutMillis    *int    `json:"callTimeoutMillis,omitempty"`

	// Tunables for the timeline item enumeration workaround. The host API
	// transiently returns a null callable while a timeline is refreshing;
	// enumeration is retried with a timecode rewrite between attempts.
	TimelineItemRetries          *int `json:"timelineItemRetries,omitempty"`
	TimelineItemRetryDelayMillis *int `json:"timelineItemRetryDelayMillis,omitempty"`
}

// ServerSettings holds server identity and runtime settings.
type ServerSettings struct {
	Name              *string `json:"name,omitempty"`
	Version           *string `json:"version,omitempty"`
	Timeout           *int    `json:"timeout,omitempty"`
	StrictValidation  *bool   `json:"strictValidation,omitempty"`
	EnableMetrics     *bool   `json:"enableMetrics,omitempty"`
	EnableHealthCheck *bool   `json:"enableHealthCheck,omitempty"`
	HTTPListen        *string `json:"httpListen,omitempty"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level                 string  `json:"level"`
	Format                string  `json:"format"`
	Output                *string `json:"output,omitempty"`
	EnableRequestLogging  *bool   `json:"enableRequestLogging,omitempty"`
	EnableResponseLogging *bool   `json:"enableResponseLogging,omitempty"`
}

// FeaturesConfig gates tool groups on discovery. Disabled groups stay
// registered but are hidden from search results.
type FeaturesConfig struct {
	Rendering     *bool `json:"rendering,omitempty"`
	Color         *bool `json:"color,omitempty"`
	Gallery       *bool `json:"gallery,omitempty"`
	Cloud         *bool `json:"cloud,omitempty"`
	Transcription *bool `json:"transcription,omitempty"`
}

// Defaulting accessors.

func (c *HostConfig) GetGatewayAddress() string {
	if c.GatewayAddress != nil {
		return *c.GatewayAddress
	}
	return "127.0.0.1:15120"
}

func (c *HostConfig) GetConnectTimeout() time.Duration {
	if c.ConnectTimeoutMillis != nil {
		return time.Duration(*c.ConnectTimeoutMillis) * time.Millisecond
	}
	return 5 * time.Second
}

func (c *HostConfig) GetCallTimeout() time.Duration {
	if c.CallTimeoutMillis != nil {
		return time.Duration(*c.CallTimeoutMillis) * time.Millisecond
	}
	return 30 * time.Second
}

func (c *HostConfig) GetTimelineItemRetries() int {
	if c.TimelineItemRetries != nil {
		return *c.TimelineItemRetries
	}
	return 3
}

func (c *HostConfig) GetTimelineItemRetryDelay() time.Duration {
	if c.TimelineItemRetryDelayMillis != nil {
		return time.Duration(*c.TimelineItemRetryDelayMillis) * time.Millisecond
	}
	return 500 * time.Millisecond
}

func (s *ServerSettings) GetName() string {
	if s.Name != nil {
		return *s.Name
	}
	return "resolve-tools-mcp"
}

func (s *ServerSettings) GetVersion() string {
	if s.Version != nil {
		return *s.Version
	}
	return "1.0.0"
}

func (s *ServerSettings) GetTimeout() time.Duration {
	if s.Timeout != nil {
		return time.Duration(*s.Timeout) * time.Millisecond
	}
	return 30 * time.Second
}

func (s *ServerSettings) GetStrictValidation() bool {
	return s.StrictValidation != nil && *s.StrictValidation
}

func (s *ServerSettings) GetEnableMetrics() bool {
	return s.EnableMetrics == nil || *s.EnableMetrics
}

func (s *ServerSettings) GetEnableHealthCheck() bool {
	return s.EnableHealthCheck == nil || *s.EnableHealthCheck
}

func (s *ServerSettings) GetHTTPListen() string {
	if s.HTTPListen != nil {
		return *s.HTTPListen
	}
	return ""
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}

func (f *FeaturesConfig) RenderingEnabled() bool     { return enabled(f.Rendering) }
func (f *FeaturesConfig) ColorEnabled() bool         { return enabled(f.Color) }
func (f *FeaturesConfig) GalleryEnabled() bool       { return enabled(f.Gallery) }
func (f *FeaturesConfig) CloudEnabled() bool         { return enabled(f.Cloud) }
func (f *FeaturesConfig) TranscriptionEnabled() bool { return enabled(f.Transcription) }
