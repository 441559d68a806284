package deepgram

import (
	"net/url"
	"strings"
	"time"

	"github.com/kbukum/voicetext/credential"
	"github.com/kbukum/voicetext/validation"
)

// Defaults applied by Config.ApplyDefaults.
const (
	// DefaultBaseURL is the public Deepgram API origin.
	DefaultBaseURL = "https://api.deepgram.com"
	// DefaultModel is the speech model requested from /v1/listen.
	DefaultModel = "nova-2"
	// DefaultLanguage is the spoken language hint.
	DefaultLanguage = "en"
	// DefaultContentType describes the audio sent as the request body.
	DefaultContentType = "audio/webm;codecs=opus"
	// DefaultTimeout bounds one upload.
	DefaultTimeout = 60 * time.Second

	listenPath = "/v1/listen"
)

// Config holds configuration for the Deepgram client.
type Config struct {
	// BaseURL is the API origin. Override it for tests or self-hosted
	// deployments.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" json:"base_url" validate:"required,url"`
	// Model is sent as the model query parameter.
	Model string `yaml:"model" mapstructure:"model" json:"model" validate:"notblank"`
	// Language is sent as the language query parameter.
	Language string `yaml:"language" mapstructure:"language" json:"language" validate:"notblank"`
	// ContentType describes the uploaded audio.
	ContentType string `yaml:"content_type" mapstructure:"content_type" json:"content_type" validate:"notblank"`
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env" mapstructure:"api_key_env" json:"api_key_env" validate:"notblank"`
	// Timeout bounds one upload including reading the response.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" json:"timeout" validate:"gt=0"`
}

// DefaultConfig returns the configuration matching Deepgram's hosted API.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.ContentType == "" {
		c.ContentType = DefaultContentType
	}
	if c.APIKeyEnv == "" {
		c.APIKeyEnv = credential.DefaultVariable
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// ListenPath returns the request path with the fixed query string, in the
// order model, language, punctuate.
func (c *Config) ListenPath() string {
	var b strings.Builder
	b.WriteString(listenPath)
	b.WriteString("?model=")
	b.WriteString(url.QueryEscape(c.Model))
	b.WriteString("&language=")
	b.WriteString(url.QueryEscape(c.Language))
	b.WriteString("&punctuate=true")
	return b.String()
}
