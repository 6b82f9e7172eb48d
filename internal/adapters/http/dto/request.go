package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
	"github.com/jsamuelsen11/go-business-service/internal/domain/customer"
	"github.com/jsamuelsen11/go-business-service/internal/domain/order"
)

// MaxBatchSize caps the number of orders in one batch update request.
const MaxBatchSize = 100

const msgVersionRequired = "is required; send the version from the last read"

// CreateOrderRequest represents the JSON body for creating an order.
// Field rules are enforced by the order entity itself.
type CreateOrderRequest struct {
	CustomerID *int64 `json:"customer_id"`
	StatusID   *int64 `json:"status_id,omitempty"`
	Total      int64  `json:"total"`
}

// ToOrder converts the request to a domain Order.
func (r *CreateOrderRequest) ToOrder() *order.Order {
	return &order.Order{
		CustomerID: r.CustomerID,
		StatusID:   r.StatusID,
		Total:      r.Total,
	}
}

// UpdateOrderRequest represents the JSON body for replacing an order. The
// version must echo the one returned by the last read.
type UpdateOrderRequest struct {
	CustomerID *int64 `json:"customer_id"`
	StatusID   *int64 `json:"status_id,omitempty"`
	Total      int64  `json:"total"`
	Version    string `json:"version"`
}

// Validate checks the transport-level contract of the request.
func (r *UpdateOrderRequest) Validate() error {
	if strings.TrimSpace(r.Version) == "" {
		return domain.NewValidationError(domain.FieldResult("version", msgVersionRequired))
	}
	return nil
}

// ToOrder converts the request to a domain Order keyed by id.
func (r *UpdateOrderRequest) ToOrder(id int64) *order.Order {
	return &order.Order{
		ID:         id,
		CustomerID: r.CustomerID,
		StatusID:   r.StatusID,
		Total:      r.Total,
		Version:    r.Version,
	}
}

// BatchUpdateOrderItem is one order in a batch update.
type BatchUpdateOrderItem struct {
	ID int64 `json:"id"`
	UpdateOrderRequest
}

// BatchUpdateOrdersRequest represents the JSON body for updating several
// orders at once. Each item succeeds or fails on its own.
type BatchUpdateOrdersRequest struct {
	Orders []BatchUpdateOrderItem `json:"orders"`
}

// Validate checks the batch size and that every item carries a distinct key
// and a version.
func (r *BatchUpdateOrdersRequest) Validate() error {
	var results []domain.ValidationResult

	switch {
	case len(r.Orders) == 0:
		results = append(results, domain.FieldResult("orders", "must not be empty"))
	case len(r.Orders) > MaxBatchSize:
		results = append(results, domain.FieldResult("orders",
			fmt.Sprintf("must not contain more than %d items, got %d", MaxBatchSize, len(r.Orders))))
	}

	first := make(map[int64]int, len(r.Orders))
	for i, item := range r.Orders {
		if item.ID <= 0 {
			results = append(results, domain.FieldResult(fmt.Sprintf("orders[%d].id", i), domain.MsgRequired))
		} else if prev, dup := first[item.ID]; dup {
			results = append(results, domain.FieldResult(fmt.Sprintf("orders[%d].id", i),
				fmt.Sprintf("repeats orders[%d].id; send each order once", prev)))
		} else {
			first[item.ID] = i
		}
		if strings.TrimSpace(item.Version) == "" {
			results = append(results, domain.FieldResult(fmt.Sprintf("orders[%d].version", i), msgVersionRequired))
		}
	}

	return domain.NewValidationError(results...)
}

// ToOrders converts the batch to domain Orders in request order.
func (r *BatchUpdateOrdersRequest) ToOrders() []*order.Order {
	out := make([]*order.Order, len(r.Orders))
	for i := range r.Orders {
		out[i] = r.Orders[i].ToOrder(r.Orders[i].ID)
	}
	return out
}

// CustomerRequest represents the JSON body for creating or replacing a
// customer.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToCustomer converts the request to a domain Customer keyed by id. Pass 0
// when creating.
func (r *CustomerRequest) ToCustomer(id int64) *customer.Customer {
	return &customer.Customer{
		ID:    id,
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
	}
}
