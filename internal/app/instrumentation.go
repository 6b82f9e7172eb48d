package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
	"github.com/jsamuelsen11/go-business-service/internal/platform/telemetry"
)

const resultSuccess = "success"

// instrumentation wraps service operations with a span, log lines and
// metrics. metrics may be nil.
type instrumentation struct {
	entity  string
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

func newInstrumentation(entity string, logger *slog.Logger) instrumentation {
	return instrumentation{entity: entity, logger: logger}
}

func (in *instrumentation) tracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer("business-service")
}

// observe runs fn as the named operation. Validation, not-found and
// concurrency failures are logged at warn; anything else at error.
func observe[R any](
	ctx context.Context,
	in *instrumentation,
	op string,
	fn func(context.Context) (R, error),
	attrs ...slog.Attr,
) (R, error) {
	ctx, span := in.tracer().Start(ctx, in.entity+"."+op,
		trace.WithAttributes(
			telemetry.AttrEntity.String(in.entity),
			telemetry.AttrOperation.String(op),
		),
	)
	defer span.End()

	base := []slog.Attr{
		slog.String("operation", op),
		slog.String("entity", in.entity),
	}
	in.logger.LogAttrs(ctx, slog.LevelInfo, "business operation", append(base, attrs...)...)

	start := time.Now()
	v, err := fn(ctx)
	in.record(ctx, op, err, time.Since(start))

	if err != nil {
		kind := domain.KindOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, kind.String())

		level := slog.LevelError
		if kind != domain.KindOther {
			level = slog.LevelWarn
		}
		failure := append(base, attrs...)
		failure = append(failure,
			slog.String("kind", kind.String()),
			slog.Any("error", err),
		)
		in.logger.LogAttrs(ctx, level, "business operation failed", failure...)
	}

	return v, err
}

func (in *instrumentation) record(ctx context.Context, op string, err error, elapsed time.Duration) {
	if in.metrics == nil {
		return
	}

	result := resultSuccess
	if err != nil {
		result = domain.KindOf(err).String()
	}
	set := metric.WithAttributes(
		in.metrics.ServiceAttr(),
		telemetry.AttrEntity.String(in.entity),
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	in.metrics.BusinessOperationTotal.Add(ctx, 1, set)
	in.metrics.BusinessOperationDuration.Record(ctx, elapsed.Seconds(), set)

	if domain.KindOf(err) == domain.KindConcurrency {
		in.metrics.ConcurrencyConflictTotal.Add(ctx, 1, metric.WithAttributes(
			in.metrics.ServiceAttr(),
			telemetry.AttrEntity.String(in.entity),
		))
	}
}
