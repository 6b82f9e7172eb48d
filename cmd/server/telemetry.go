package main

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/go-business-service/internal/platform/config"
	"github.com/jsamuelsen11/go-business-service/internal/platform/telemetry"
)

// otelProviders owns the tracer and meter providers. Every field is nil when
// telemetry is disabled, and metrics stays nil so instrumentation is skipped.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes whichever providers were started.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		errs = append(errs, o.tracer.Shutdown(ctx))
	}
	if o.meter != nil {
		errs = append(errs, o.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (_ *otelProviders, err error) {
	o := &otelProviders{}
	if !cfg.Telemetry.Enabled {
		return o, nil
	}
	defer func() {
		if err != nil {
			_ = o.Shutdown(ctx)
		}
	}()

	if o.tracer, err = telemetry.InitTracer(ctx, cfg.Telemetry); err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	if o.meter, err = telemetry.InitMeter(ctx, cfg.Telemetry); err != nil {
		return nil, fmt.Errorf("init meter: %w", err)
	}
	if o.metrics, err = telemetry.NewMetrics(o.meter, cfg.Telemetry.ServiceName); err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return o, nil
}
