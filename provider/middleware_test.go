package provider_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/kbukum/voicetext/errors"
	"github.com/kbukum/voicetext/logger"
	"github.com/kbukum/voicetext/observability"
	"github.com/kbukum/voicetext/provider"
)

type echoProvider struct {
	name string
}

func (p *echoProvider) Name() string                       { return p.name }
func (p *echoProvider) IsAvailable(_ context.Context) bool { return true }
func (p *echoProvider) Execute(_ context.Context, in string) (string, error) {
	return "echo:" + in, nil
}

type failingProvider struct {
	err error
}

func (p *failingProvider) Name() string                       { return "fail" }
func (p *failingProvider) IsAvailable(_ context.Context) bool { return true }
func (p *failingProvider) Execute(_ context.Context, _ string) (string, error) {
	return "", p.err
}

type orderTracker[I, O any] struct {
	inner provider.RequestResponse[I, O]
	tag   string
	order *[]string
}

func (o *orderTracker[I, O]) Name() string                         { return o.inner.Name() }
func (o *orderTracker[I, O]) IsAvailable(ctx context.Context) bool { return o.inner.IsAvailable(ctx) }
func (o *orderTracker[I, O]) Execute(ctx context.Context, input I) (O, error) {
	*o.order = append(*o.order, o.tag+":before")
	result, err := o.inner.Execute(ctx, input)
	*o.order = append(*o.order, o.tag+":after")
	return result, err
}

func newMetrics(t *testing.T) *observability.Metrics {
	t.Helper()
	m, err := observability.NewMetrics(observability.Meter("test"))
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	return m
}

func TestChain_Empty(t *testing.T) {
	wrapped := provider.Chain[string, string]()(&echoProvider{name: "test"})
	if wrapped.Name() != "test" {
		t.Fatalf("expected 'test', got %q", wrapped.Name())
	}
	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil || result != "echo:hello" {
		t.Fatalf("expected echo:hello, got %q, err %v", result, err)
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(tag string) provider.Middleware[string, string] {
		return func(inner provider.RequestResponse[string, string]) provider.RequestResponse[string, string] {
			return &orderTracker[string, string]{inner: inner, tag: tag, order: &order}
		}
	}

	wrapped := provider.Chain(mw("A"), mw("B"), mw("C"))(&echoProvider{name: "test"})
	if _, err := wrapped.Execute(context.Background(), "x"); err != nil {
		t.Fatal(err)
	}

	want := []string{"A:before", "B:before", "C:before", "C:after", "B:after", "A:after"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestWithLogging_Success(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "voicetext", &buf)
	wrapped := provider.WithLogging[string, string](log)(&echoProvider{name: "deepgram"})

	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil || result != "echo:hello" {
		t.Fatalf("unexpected result %q, err %v", result, err)
	}
	if !strings.Contains(buf.String(), `"provider":"deepgram"`) {
		t.Errorf("expected provider field in log, got %q", buf.String())
	}
	if !wrapped.IsAvailable(context.Background()) {
		t.Error("expected IsAvailable to delegate")
	}
}

func TestWithLogging_ErrorCarriesCode(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "info", Format: "json"}, "voicetext", &buf)
	wrapped := provider.WithLogging[string, string](log)(&failingProvider{err: errors.Network(stderrors.New("dial tcp: refused"))})

	if _, err := wrapped.Execute(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
	out := buf.String()
	if !strings.Contains(out, `"error_code":"NETWORK_ERROR"`) {
		t.Errorf("expected error code in log, got %q", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("expected warn level, got %q", out)
	}
}

func TestWithTracing(t *testing.T) {
	wrapped := provider.WithTracing[string, string]("voicetext")(&echoProvider{name: "trace-test"})
	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil || result != "echo:hello" {
		t.Fatalf("unexpected result %q, err %v", result, err)
	}
	if wrapped.Name() != "trace-test" {
		t.Fatalf("expected name 'trace-test', got %q", wrapped.Name())
	}

	failing := provider.WithTracing[string, string]("voicetext")(&failingProvider{err: stderrors.New("boom")})
	if _, err := failing.Execute(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
}

func TestWithMetrics(t *testing.T) {
	metrics := newMetrics(t)
	wrapped := provider.WithMetrics[string, string](metrics)(&echoProvider{name: "metrics-test"})
	if result, err := wrapped.Execute(context.Background(), "hello"); err != nil || result != "echo:hello" {
		t.Fatalf("unexpected result %q, err %v", result, err)
	}

	failing := provider.WithMetrics[string, string](metrics)(&failingProvider{err: stderrors.New("plain")})
	if _, err := failing.Execute(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}

	nilMetrics := provider.WithMetrics[string, string](nil)(&echoProvider{name: "nil"})
	if _, err := nilMetrics.Execute(context.Background(), "x"); err != nil {
		t.Fatalf("nil metrics must be a no-op, got %v", err)
	}
}

func TestChain_AllMiddlewares(t *testing.T) {
	wrapped := provider.Chain(
		provider.WithLogging[string, string](logger.Nop()),
		provider.WithTracing[string, string]("voicetext"),
		provider.WithMetrics[string, string](newMetrics(t)),
	)(&echoProvider{name: "full-stack"})

	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil || result != "echo:hello" {
		t.Fatalf("unexpected result %q, err %v", result, err)
	}
	if err := provider.CloseIfCloseable(context.Background(), wrapped); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}
