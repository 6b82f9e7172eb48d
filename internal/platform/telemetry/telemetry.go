// Package telemetry sets up OpenTelemetry tracing and metrics for the service
// and defines the attribute keys and instruments the rest of the code records
// against.
//
//	tp, err := telemetry.InitTracer(ctx, cfg.Telemetry)
//	mp, err := telemetry.InitMeter(ctx, cfg.Telemetry)
//	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
//
// Both providers are registered globally and must be shut down on exit. A nil
// *Metrics is valid everywhere it is accepted and records nothing.
package telemetry

import "go.opentelemetry.io/otel/attribute"

// Exporters.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// MeterName scopes every instrument created by NewMetrics.
const MeterName = "github.com/jsamuelsen11/go-business-service"

// Attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrService     = attribute.Key("service.name")
	AttrEntity      = attribute.Key("business.entity")
	AttrOperation   = attribute.Key("business.operation")
)
