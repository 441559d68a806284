package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/voicetext/errors"
)

type endpointConfig struct {
	BaseURL  string `json:"base_url" validate:"required,url"`
	Model    string `json:"model" validate:"notblank"`
	Language string `json:"language" validate:"omitempty,min=2"`
	Timeout  int    `json:"timeout_seconds" validate:"gt=0"`
}

type outerConfig struct {
	Endpoint endpointConfig `json:"endpoint"`
	Format   string         `validate:"oneof=json console"`
}

func TestValidate_Valid(t *testing.T) {
	cfg := endpointConfig{BaseURL: "https://api.deepgram.com", Model: "nova-2", Language: "en", Timeout: 30}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		cfg     endpointConfig
		wantMsg string
	}{
		{"missing url", endpointConfig{Model: "m", Timeout: 1}, "base_url: is required"},
		{"bad url", endpointConfig{BaseURL: "not a url", Model: "m", Timeout: 1}, "base_url: must be a valid URL"},
		{"blank model", endpointConfig{BaseURL: "http://x", Model: "   ", Timeout: 1}, "model: is required"},
		{"short language", endpointConfig{BaseURL: "http://x", Model: "m", Language: "e", Timeout: 1}, "language: must be at least 2"},
		{"zero timeout", endpointConfig{BaseURL: "http://x", Model: "m"}, "timeout_seconds: must be greater than 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("expected %q in %q", tc.wantMsg, err.Error())
			}
		})
	}
}

func TestValidate_NestedFieldPath(t *testing.T) {
	err := Validate(outerConfig{Format: "xml"})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected []FieldError details, got %T", appErr.Details["fields"])
	}

	seen := make(map[string]bool)
	for _, f := range fields {
		seen[f.Field] = true
	}
	for _, want := range []string{"endpoint.base_url", "endpoint.model", "format"} {
		if !seen[want] {
			t.Errorf("expected field %q in %v", want, fields)
		}
	}
}

func TestValidate_NonStruct(t *testing.T) {
	err := Validate("not a struct")
	if err == nil {
		t.Fatal("expected error for non-struct input")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"BaseURL":   "base_u_r_l",
		"Model":     "model",
		"APIKeyEnv": "a_p_i_key_env",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
