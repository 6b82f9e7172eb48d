package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// BusinessOperationTotal counts service operations by entity, operation and result.
	BusinessOperationTotal    metric.Int64Counter
	BusinessOperationDuration metric.Float64Histogram
	// ConcurrencyConflictTotal counts updates rejected for a stale version.
	ConcurrencyConflictTotal metric.Int64Counter

	service attribute.KeyValue
}

// ServiceAttr returns the service.name attribute recorded with every measurement.
func (m *Metrics) ServiceAttr() attribute.KeyValue {
	return m.service
}

// NewMetrics registers every instrument on mp.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(MeterName)

	var errs []error
	seconds := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return h
	}
	count := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return c
	}

	m := &Metrics{
		ServerRequestDuration: seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    count("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: seconds("http.client.request.duration", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    count("http.client.request.total", "Outgoing HTTP requests", "{request}"),

		BusinessOperationTotal:    count("business.operation.total", "Business service operations", "{operation}"),
		BusinessOperationDuration: seconds("business.operation.duration", "Duration of business service operations"),
		ConcurrencyConflictTotal: count("business.concurrency.conflicts",
			"Updates rejected because the supplied version was stale", "{conflict}"),

		service: AttrService.String(serviceName),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}
	return m, nil
}
