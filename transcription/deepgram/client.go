// Package deepgram implements transcription.Provider on Deepgram's
// prerecorded /v1/listen API.
//
// One call resolves the API key, uploads the audio as a single POST and
// extracts results.channels[0].alternatives[0].transcript from the reply.
// There is no retry and no caching. A Client is safe for concurrent use.
package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/kbukum/voicetext/credential"
	"github.com/kbukum/voicetext/errors"
	"github.com/kbukum/voicetext/httpclient"
	"github.com/kbukum/voicetext/logger"
	"github.com/kbukum/voicetext/observability"
	"github.com/kbukum/voicetext/transcription"
	"github.com/kbukum/voicetext/version"
)

// Client implements transcription.Provider using Deepgram.
type Client struct {
	cfg         Config
	resolve     credential.Resolver
	sender      Sender
	adapter     *httpclient.Adapter
	log         *logger.Logger
	metrics     *observability.Metrics
	serviceName string
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics records call metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithCredential replaces the environment lookup of Config.APIKeyEnv.
func WithCredential(r credential.Resolver) Option {
	return func(c *Client) { c.resolve = r }
}

// WithSender replaces the HTTP transport.
func WithSender(s Sender) Option {
	return func(c *Client) { c.sender = s }
}

// WithServiceName sets the prefix of the sender's trace spans.
func WithServiceName(name string) Option {
	return func(c *Client) { c.serviceName = name }
}

// New creates a Deepgram client. Defaults are applied to cfg before it is
// validated.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{cfg: cfg, log: logger.Nop(), serviceName: "voicetext"}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent(ProviderName)

	if c.resolve == nil {
		c.resolve = credential.FromEnv(cfg.APIKeyEnv)
	}
	if c.sender == nil {
		adapter, err := httpclient.New(httpclient.Config{
			Name:    ProviderName,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
			Headers: map[string]string{"User-Agent": version.UserAgent()},
		})
		if err != nil {
			return nil, errors.Configuration(err.Error()).WithCause(err)
		}
		c.adapter = adapter
		c.sender = NewSender(adapter, cfg, SenderOptions{
			Logger:      c.log,
			Metrics:     c.metrics,
			ServiceName: c.serviceName,
		})
	}
	return c, nil
}

// Name returns the provider name.
func (c *Client) Name() string { return ProviderName }

// IsAvailable reports whether a credential is configured. Deepgram itself is
// not contacted.
func (c *Client) IsAvailable(ctx context.Context) bool {
	_, err := c.resolve(ctx)
	return err == nil
}

// Config returns the effective configuration.
func (c *Client) Config() Config { return c.cfg }

// Transcribe uploads req.Audio and returns the transcript.
func (c *Client) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	req = req.EnsureID()
	if logger.RequestIDFromContext(ctx) == "" {
		ctx = logger.ContextWithRequestID(ctx, req.ID)
	}
	log := c.log.WithContext(ctx)

	ctx, span := observability.StartSpan(ctx, observability.SpanTranscribe)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrProvider, ProviderName)
	observability.SetSpanAttribute(ctx, observability.AttrRequestID, req.ID)
	observability.SetSpanAttribute(ctx, observability.AttrPayloadBytes, len(req.Audio))

	start := time.Now()
	text, err := c.transcribe(ctx, log, req.Audio)

	outcome := observability.OutcomeOK
	if err != nil {
		outcome = string(errors.CodeOf(err))
		observability.SetSpanAttribute(ctx, observability.AttrErrorCode, outcome)
		observability.SetSpanError(ctx, err)
	}
	observability.SetSpanAttribute(ctx, observability.AttrOutcome, outcome)
	c.metrics.RecordTranscription(ctx, ProviderName, outcome, time.Since(start), len(req.Audio))

	if err != nil {
		return nil, err
	}
	return &transcription.Result{Transcript: text}, nil
}

func (c *Client) transcribe(ctx context.Context, log *logger.Logger, audio []byte) (string, error) {
	key, err := c.resolve(ctx)
	if err != nil {
		log.Warn("credential not available", logger.Fields(
			logger.FieldCredentialName, c.cfg.APIKeyEnv,
			logger.FieldErrorCode, string(errors.CodeOf(err)),
		))
		return "", errors.Wrap(err)
	}

	log.Debug("sending audio", logger.Fields(logger.FieldPayloadBytes, len(audio)))
	log.Debug("credential loaded", logger.CredentialFields(c.cfg.APIKeyEnv, key))

	resp, err := c.sender.Execute(ctx, Upload{Audio: audio, Credential: key})
	if err != nil {
		if _, ok := errors.AsAppError(err); ok {
			return "", err
		}
		return "", errors.Network(err)
	}

	log.Debug("deepgram response", logger.Fields(logger.FieldStatusCode, resp.StatusCode))
	if resp.IsSuccess() && log.DebugEnabled() {
		log.Debug("deepgram response body", logger.Fields(logger.FieldResponseBody, prettyBody(resp.Body)))
	}

	return ParseResponse(resp)
}

// CheckHealth reports whether the credential is configured without
// revealing it and without calling Deepgram.
func (c *Client) CheckHealth(ctx context.Context) observability.Health {
	h := observability.Health{
		Name:    ProviderName,
		Status:  observability.HealthStatusUp,
		Details: map[string]string{"base_url": c.cfg.BaseURL, "model": c.cfg.Model},
	}
	if _, err := c.resolve(ctx); err != nil {
		h.Status = observability.HealthStatusDegraded
		h.Message = c.cfg.APIKeyEnv + " is not configured"
	}
	return h
}

// Close releases pooled connections.
func (c *Client) Close(ctx context.Context) error {
	if c.adapter != nil {
		return c.adapter.Close(ctx)
	}
	return nil
}

func prettyBody(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}

var _ transcription.Provider = (*Client)(nil)
var _ observability.HealthChecker = (*Client)(nil)
