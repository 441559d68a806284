package config

import (
	"fmt"

	"github.com/kbukum/voicetext/observability"
	"github.com/kbukum/voicetext/server"
	"github.com/kbukum/voicetext/transcription/deepgram"
	"github.com/kbukum/voicetext/util"
)

// ServiceName is the default service name and config lookup key.
const ServiceName = "voicetext"

// AppConfig is the complete voicetext configuration.
//
//	name: voicetext
//	deepgram:
//	  model: nova-2
//	  language: en
//	server:
//	  port: 8080
//	observability:
//	  enabled: false
type AppConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Deepgram      deepgram.Config      `yaml:"deepgram" mapstructure:"deepgram"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills every section.
func (c *AppConfig) ApplyDefaults() {
	c.Name = util.Coalesce(c.Name, ServiceName)
	c.ServiceConfig.ApplyDefaults()
	c.Deepgram.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates every section.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Deepgram.Validate(); err != nil {
		return fmt.Errorf("config.deepgram: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("config.observability: %w", err)
	}
	return nil
}

// Resource describes this process for telemetry.
func (c *AppConfig) Resource(version string) observability.Resource {
	return observability.Resource{
		ServiceName:    c.Name,
		ServiceVersion: util.Coalesce(c.Version, version),
		Environment:    c.Environment,
	}
}

// LoadApp loads, defaults and validates the application configuration.
func LoadApp(opts ...LoaderOption) (*AppConfig, error) {
	var cfg AppConfig
	if err := Load(ServiceName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
