package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
	drivers    = []string{DriverMemory, DriverSQLite, DriverPostgres, DriverRemote}
)

// problems collects validation failures keyed by dotted config path.
type problems []error

func (p *problems) check(ok bool, key, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf("%s %s", key, fmt.Sprintf(format, args...)))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.check(slices.Contains(allowed, got), key, "must be one of %v, got %q", allowed, got)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems

	p.check(c.Server.Port >= 1 && c.Server.Port <= 65535, "server.port", "must be between 1 and 65535, got %d", c.Server.Port)
	p.check(c.Server.ReadTimeout > 0, "server.read_timeout", "must be positive")
	p.check(c.Server.WriteTimeout > 0, "server.write_timeout", "must be positive")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	p.oneOf("storage.driver", c.Storage.Driver, drivers)
	if c.Storage.Driver == DriverSQLite || c.Storage.Driver == DriverPostgres {
		p.check(c.Storage.DSN != "", "storage.dsn", "must not be empty when driver is %s", c.Storage.Driver)
	}

	c.Client.validate(&p)

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, exporters)
		if c.Telemetry.Exporter == "otlp" {
			p.check(c.Telemetry.Endpoint != "", "telemetry.endpoint", "must not be empty when exporter is otlp")
		}
	}

	p.check(c.Business.BatchMaxWorkers >= 1, "business.batch_max_workers", "must be >= 1, got %d", c.Business.BatchMaxWorkers)

	return errors.Join(p...)
}

func (cl *ClientConfig) validate(p *problems) {
	p.check(cl.BaseURL != "", "client.base_url", "must not be empty")
	p.check(cl.Timeout > 0, "client.timeout", "must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts", "must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier", "must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.Retry.InitialInterval <= cl.Retry.MaxInterval, "client.retry.initial_interval",
		"must not exceed max_interval %s, got %s", cl.Retry.MaxInterval, cl.Retry.InitialInterval)
	p.check(cl.CircuitBreaker.MaxFailures >= 1, "client.circuit_breaker.max_failures",
		"must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second",
		"must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	if cl.RateLimit.RequestsPerSecond > 0 {
		p.check(cl.RateLimit.BurstSize >= 1, "client.rate_limit.burst_size",
			"must be >= 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
	}
}
