package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/clients/remote"
	"github.com/jsamuelsen11/go-business-service/internal/adapters/storage"
	"github.com/jsamuelsen11/go-business-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/go-business-service/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/go-business-service/internal/app"
	"github.com/jsamuelsen11/go-business-service/internal/domain/customer"
	"github.com/jsamuelsen11/go-business-service/internal/domain/order"
	"github.com/jsamuelsen11/go-business-service/internal/platform/config"
	"github.com/jsamuelsen11/go-business-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-business-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-business-service/internal/ports"
)

// backend is the set of data proxies selected by storage.driver.
type backend struct {
	orders    app.OrderProxy
	customers app.CustomerProxy

	// checker reports backend health. Nil for the memory driver.
	checker ports.HealthChecker

	close func() error
}

func orderOptions() storage.Options[*order.Order, int64] {
	return storage.Options[*order.Order, int64]{TypeName: order.TypeName, Stamp: order.Stamp}
}

func customerOptions() storage.Options[*customer.Customer, int64] {
	return storage.Options[*customer.Customer, int64]{TypeName: customer.TypeName, Stamp: customer.Stamp}
}

func openBackend(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		orderOpts, customerOpts := orderOptions(), customerOptions()
		orderOpts.NextKey = storage.Sequence(0)
		customerOpts.NextKey = storage.Sequence(0)
		return &backend{
			orders:    memory.New(orderOpts),
			customers: memory.New(customerOpts),
			close:     func() error { return nil },
		}, nil

	case config.DriverSQLite, config.DriverPostgres:
		db, err := sqlstore.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		orders, err := sqlstore.New(ctx, db, "orders", orderOptions())
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		customers, err := sqlstore.New(ctx, db, "customers", customerOptions())
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.InfoContext(ctx, "storage opened", slog.String("driver", db.Driver()))
		return &backend{orders: orders, customers: customers, checker: db, close: db.Close}, nil

	case config.DriverRemote:
		client := httpclient.New(&cfg.Client, cfg.Client.ServiceName, metrics, logger)
		req := remote.NewRequester(client, logger)
		logger.InfoContext(ctx, "using remote storage", slog.String("base_url", cfg.Client.BaseURL))
		return &backend{
			orders:    remote.New[*order.Order, int64](req, remote.Resource{Path: "/api/v1/orders", ListField: "orders"}),
			customers: remote.New[*customer.Customer, int64](req, remote.Resource{Path: "/api/v1/customers", ListField: "customers"}),
			checker:   client,
			close:     func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
