package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/go-business-service/internal/domain/customer"
	"github.com/jsamuelsen11/go-business-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-business-service/internal/ports"
	"github.com/jsamuelsen11/go-business-service/internal/rules"
)

// Compile-time check that the customer service implements ports.CustomerService.
var _ ports.CustomerService = (*BusinessService[*customer.Customer, int64])(nil)

// MsgCustomerEmailTaken is reported when another customer already uses the email.
const MsgCustomerEmailTaken = "email must be unique."

// CustomerProxy is the data proxy a customer service persists through.
type CustomerProxy = ports.ServiceDataProxy[*customer.Customer, int64]

// NewCustomerService creates the business service for customers. Customers
// carry no version token, so updates are never version-checked.
func NewCustomerService(proxy CustomerProxy, logger *slog.Logger, metrics *telemetry.Metrics) *BusinessService[*customer.Customer, int64] {
	return NewBusinessService(customer.TypeName, proxy, logger,
		WithInsertRules[*customer.Customer, int64](customerInsertRules(proxy)),
		WithMetrics[*customer.Customer, int64](metrics),
	)
}

func customerInsertRules(proxy CustomerProxy) func(context.Context, *customer.Customer) ([]rules.Rule, error) {
	return func(ctx context.Context, c *customer.Customer) ([]rules.Rule, error) {
		existing, err := proxy.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		return []rules.Rule{
			rules.Func(MsgCustomerEmailTaken, func() bool {
				for _, e := range existing {
					if e.ID != c.ID && strings.EqualFold(e.Email, c.Email) {
						return false
					}
				}
				return true
			}),
		}, nil
	}
}
