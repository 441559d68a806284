package deepgram

import (
	"context"
	"net/http"

	"github.com/kbukum/voicetext/errors"
	"github.com/kbukum/voicetext/httpclient"
	"github.com/kbukum/voicetext/logger"
	"github.com/kbukum/voicetext/observability"
	"github.com/kbukum/voicetext/provider"
)

// ProviderName is the provider name used in logs, traces and metrics.
const ProviderName = "deepgram"

// Upload is one audio upload with its resolved credential.
type Upload struct {
	Audio      []byte
	Credential string
}

// Sender performs the upload. It returns the raw response for any status,
// or a NETWORK_ERROR when no complete response was received.
type Sender = provider.RequestResponse[Upload, *httpclient.Response]

// SenderOptions configures the default sender's middleware.
type SenderOptions struct {
	Logger      *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
}

// NewSender builds the default sender over an HTTP adapter, wrapped with
// logging, tracing and metrics.
func NewSender(adapter *httpclient.Adapter, cfg Config, opts SenderOptions) Sender {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "voicetext"
	}

	raw := provider.Func(adapter.Name(), func(ctx context.Context, req httpclient.Request) (*httpclient.Response, error) {
		resp, err := adapter.Do(ctx, req)
		if err != nil && resp == nil {
			return nil, errors.Network(err)
		}
		// Non-2xx responses are handed on; classifying them is ParseResponse's job.
		return resp, nil
	})

	path := cfg.ListenPath()
	contentType := cfg.ContentType
	upload := provider.Adapt[Upload, *httpclient.Response, httpclient.Request, *httpclient.Response](
		raw,
		ProviderName,
		func(_ context.Context, u Upload) (httpclient.Request, error) {
			body := u.Audio
			if body == nil {
				body = []byte{}
			}
			return httpclient.Request{
				Method:  http.MethodPost,
				Path:    path,
				Headers: map[string]string{"Content-Type": contentType},
				Body:    body,
				Auth:    httpclient.TokenAuth(u.Credential),
			}, nil
		},
		func(resp *httpclient.Response) (*httpclient.Response, error) { return resp, nil },
	)

	return provider.Chain(
		provider.WithLogging[Upload, *httpclient.Response](opts.Logger),
		provider.WithTracing[Upload, *httpclient.Response](opts.ServiceName),
		provider.WithMetrics[Upload, *httpclient.Response](opts.Metrics),
	)(upload)
}
