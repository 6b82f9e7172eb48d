package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-business-service/internal/domain/order"
	"github.com/jsamuelsen11/go-business-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-business-service/internal/ports"
	"github.com/jsamuelsen11/go-business-service/internal/rules"
)

// Compile-time check that the order service implements ports.OrderService.
var _ ports.OrderService = (*BusinessService[*order.Order, int64])(nil)

// Business rule messages for orders.
const (
	MsgOrderSubmitted     = "a submitted order cannot be changed."
	MsgOrderNegativeTotal = "total must not be negative."
)

// OrderProxy is the data proxy an order service persists through.
type OrderProxy = ports.ServiceDataProxy[*order.Order, int64]

// NewOrderService creates the business service for orders. Updates are
// version-checked, inserts reject a negative total and a submitted order
// cannot be updated. metrics may be nil.
func NewOrderService(proxy OrderProxy, logger *slog.Logger, metrics *telemetry.Metrics) *BusinessService[*order.Order, int64] {
	return NewBusinessService(order.TypeName, proxy, logger,
		WithConcurrencyCheck[*order.Order, int64](VersionCheck[*order.Order]()),
		WithInsertRules[*order.Order, int64](orderInsertRules),
		WithStoredRules[*order.Order, int64](orderStoredRules),
		WithMetrics[*order.Order, int64](metrics),
	)
}

func orderInsertRules(_ context.Context, o *order.Order) ([]rules.Rule, error) {
	return []rules.Rule{
		rules.Func(MsgOrderNegativeTotal, func() bool { return o.Total >= 0 }),
	}, nil
}

// orderStoredRules judges the stored copy, so a caller cannot clear
// SubmittedOn to unlock an order.
func orderStoredRules(current, _ *order.Order) []rules.Rule {
	return []rules.Rule{
		rules.Func(MsgOrderSubmitted, func() bool { return !current.IsSubmitted() }),
	}
}
