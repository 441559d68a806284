package observability

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Telemetry bundles the installed providers and the shared instruments.
type Telemetry struct {
	Metrics *Metrics

	tp *sdktrace.TracerProvider
	mp *sdkmetric.MeterProvider
}

// Setup starts the OTLP exporters when cfg.Enabled is set. Metrics are
// always created, on the global meter, so callers never need nil checks.
func Setup(ctx context.Context, cfg Config, res Resource) (*Telemetry, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Telemetry{}
	if cfg.Enabled {
		tp, err := InitTracer(ctx, TracerConfig{
			Resource:   res,
			Endpoint:   cfg.Endpoint,
			Insecure:   cfg.Insecure,
			SampleRate: cfg.SampleRate,
		})
		if err != nil {
			return nil, err
		}
		t.tp = tp

		mp, err := InitMeter(ctx, MeterConfig{
			Resource: res,
			Endpoint: cfg.Endpoint,
			Insecure: cfg.Insecure,
			Interval: cfg.MetricInterval,
		})
		if err != nil {
			_ = tp.Shutdown(ctx)
			return nil, err
		}
		t.mp = mp
	}

	m, err := NewMetrics(Meter(res.ServiceName))
	if err != nil {
		_ = t.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	t.Metrics = m
	return t, nil
}

// Enabled reports whether exporters are running.
func (t *Telemetry) Enabled() bool {
	return t.tp != nil
}

// Shutdown flushes and stops the exporters.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.tp != nil {
		errs = append(errs, t.tp.Shutdown(ctx))
	}
	if t.mp != nil {
		errs = append(errs, t.mp.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
