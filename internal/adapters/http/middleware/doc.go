// Package middleware provides the inbound HTTP pipeline. The router installs
// it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Every middleware is a func(http.Handler) http.Handler, so chi's Use
// accepts them directly.
package middleware
