package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Outcome label for a successful call.
const OutcomeOK = "ok"

// Metrics holds the instruments recorded around transcription calls.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	callTotal         metric.Int64Counter
	callDuration      metric.Float64Histogram
	payloadBytes      metric.Int64Histogram
	errorTotal        metric.Int64Counter
	operationTotal    metric.Int64Counter
	operationDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	callTotal, err := meter.Int64Counter("transcription.calls",
		metric.WithDescription("Transcription calls by provider and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.calls counter: %w", err)
	}

	callDuration, err := meter.Float64Histogram("transcription.duration",
		metric.WithDescription("End-to-end transcription call duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.duration histogram: %w", err)
	}

	payloadBytes, err := meter.Int64Histogram("transcription.payload_bytes",
		metric.WithDescription("Size of uploaded audio payloads"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(1<<10, 16<<10, 128<<10, 1<<20, 8<<20, 32<<20),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.payload_bytes histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("transcription.errors",
		metric.WithDescription("Transcription failures by error kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.errors counter: %w", err)
	}

	operationTotal, err := meter.Int64Counter("provider.operations",
		metric.WithDescription("Provider executions by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating provider.operations counter: %w", err)
	}

	operationDuration, err := meter.Float64Histogram("provider.operation.duration",
		metric.WithDescription("Provider execution duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating provider.operation.duration histogram: %w", err)
	}

	return &Metrics{
		callTotal:         callTotal,
		callDuration:      callDuration,
		payloadBytes:      payloadBytes,
		errorTotal:        errorTotal,
		operationTotal:    operationTotal,
		operationDuration: operationDuration,
	}, nil
}

// RecordTranscription records one completed transcription call. outcome is
// OutcomeOK or the error code of the failure.
func (m *Metrics) RecordTranscription(ctx context.Context, provider, outcome string, duration time.Duration, payloadBytes int) {
	if m == nil {
		return
	}
	m.callTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("outcome", outcome),
	))
	m.callDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
	))
	m.payloadBytes.Record(ctx, int64(payloadBytes), metric.WithAttributes(
		attribute.String("provider", provider),
	))
	if outcome != OutcomeOK {
		m.RecordError(ctx, outcome, provider)
	}
}

// RecordOperation records a single provider execution.
func (m *Metrics) RecordOperation(ctx context.Context, provider, operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.operationTotal.Add(ctx, 1, attrs)
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("operation", operation),
	))
}

// RecordError records a failure by kind and component.
func (m *Metrics) RecordError(ctx context.Context, kind, component string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("component", component),
	))
}
