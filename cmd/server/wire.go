package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-business-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-business-service/internal/app"
	"github.com/jsamuelsen11/go-business-service/internal/platform/config"
	"github.com/jsamuelsen11/go-business-service/internal/platform/health"
	"github.com/jsamuelsen11/go-business-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-business-service/internal/ports"
)

// registerDependencies wires services, handlers, router and server on top of
// the *backend and *telemetry.Metrics already in the injector.
func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.OrderService, error) {
		store := do.MustInvoke[*backend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewOrderService(store.orders, logger, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CustomerService, error) {
		store := do.MustInvoke[*backend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewCustomerService(store.customers, logger, metrics), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.OrderHandler, error) {
		svc := do.MustInvoke[ports.OrderService](i)
		return handlers.NewOrderHandler(svc, cfg.Business.BatchMaxWorkers), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CustomerHandler, error) {
		svc := do.MustInvoke[ports.CustomerService](i)
		return handlers.NewCustomerHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		orderH := do.MustInvoke[*handlers.OrderHandler](i)
		customerH := do.MustInvoke[*handlers.CustomerHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(orderH, customerH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
