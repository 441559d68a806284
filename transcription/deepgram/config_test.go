package deepgram

import (
	"testing"
	"time"

	"github.com/kbukum/voicetext/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaseURL != DefaultBaseURL || cfg.Model != "nova-2" || cfg.Language != "en" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.ContentType != "audio/webm;codecs=opus" {
		t.Errorf("unexpected content type %q", cfg.ContentType)
	}
	if cfg.APIKeyEnv != "DEEPGRAM_API_KEY" {
		t.Errorf("unexpected key variable %q", cfg.APIKeyEnv)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate, got %v", err)
	}
}

func TestConfig_ApplyDefaultsKeepsOverrides(t *testing.T) {
	cfg := Config{BaseURL: "http://127.0.0.1:9999", Model: "nova-3", Timeout: time.Second}
	cfg.ApplyDefaults()
	if cfg.BaseURL != "http://127.0.0.1:9999" || cfg.Model != "nova-3" || cfg.Timeout != time.Second {
		t.Errorf("overrides lost: %+v", cfg)
	}
	if cfg.Language != DefaultLanguage {
		t.Errorf("expected default language, got %q", cfg.Language)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad url", func(c *Config) { c.BaseURL = "not a url" }},
		{"blank model", func(c *Config) { c.Model = "   " }},
		{"blank key variable", func(c *Config) { c.APIKeyEnv = " " }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestConfig_ListenPath(t *testing.T) {
	cfg := DefaultConfig()
	want := "/v1/listen?model=nova-2&language=en&punctuate=true"
	if got := cfg.ListenPath(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	cfg.Language = "pt-BR"
	if got := cfg.ListenPath(); got != "/v1/listen?model=nova-2&language=pt-BR&punctuate=true" {
		t.Errorf("unexpected path %q", got)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{BaseURL: "ftp://example.com"})
	if err == nil {
		t.Fatal("expected error for non-http base url")
	}
}
