package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/go-business-service/internal/platform/telemetry"
)

func TestNewMetrics_RegistersEveryInstrument(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := telemetry.NewMetrics(mp, "business-api")
	require.NoError(t, err)

	attrs := metric.WithAttributes(m.ServiceAttr())
	m.ServerRequestDuration.Record(ctx, 0.01, attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
	m.ClientRequestDuration.Record(ctx, 0.02, attrs)
	m.ClientRequestTotal.Add(ctx, 1, attrs)
	m.BusinessOperationTotal.Add(ctx, 1, attrs)
	m.BusinessOperationDuration.Record(ctx, 0.003, attrs)
	m.ConcurrencyConflictTotal.Add(ctx, 1, attrs)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Equal(t, telemetry.MeterName, rm.ScopeMetrics[0].Scope.Name)

	var names []string
	for _, md := range rm.ScopeMetrics[0].Metrics {
		names = append(names, md.Name)
	}
	require.ElementsMatch(t, []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"business.operation.total",
		"business.operation.duration",
		"business.concurrency.conflicts",
	}, names)
}

func TestNewMetrics_ServiceAttr(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "orders")
	require.NoError(t, err)
	require.Equal(t, telemetry.AttrService, m.ServiceAttr().Key)
	require.Equal(t, "orders", m.ServiceAttr().Value.AsString())
}
