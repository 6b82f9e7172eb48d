// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-business-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-business-service/internal/domain/customer"
	"github.com/jsamuelsen11/go-business-service/internal/domain/order"
)

// OrderResponse represents a single order in HTTP responses. Its JSON shape
// matches the order entity so other business services can consume it through
// a remote data proxy.
type OrderResponse struct {
	ID          int64   `json:"id"`
	CustomerID  *int64  `json:"customer_id,omitempty"`
	StatusID    *int64  `json:"status_id,omitempty"`
	OrderDate   string  `json:"order_date"`
	Total       int64   `json:"total"`
	SubmittedOn *string `json:"submitted_on,omitempty"`
	Version     string  `json:"version"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// OrderListResponse represents a list of orders in HTTP responses.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Count  int             `json:"count"`
}

// ToOrderResponse converts a domain Order to an HTTP response DTO.
func ToOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		StatusID:   o.StatusID,
		OrderDate:  formatTime(o.OrderDate),
		Total:      o.Total,
		Version:    o.Version,
		CreatedBy:  o.CreatedBy,
		CreatedAt:  formatTime(o.CreatedAt),
		UpdatedAt:  formatTime(o.UpdatedAt),
	}
	if o.SubmittedOn != nil {
		s := formatTime(*o.SubmittedOn)
		resp.SubmittedOn = &s
	}
	return resp
}

// ToOrderListResponse converts domain Orders to an HTTP list response DTO.
func ToOrderListResponse(orders []*order.Order) OrderListResponse {
	items := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items[i] = ToOrderResponse(o)
	}
	return OrderListResponse{Orders: items, Count: len(items)}
}

// CustomerResponse represents a single customer in HTTP responses.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// CustomerListResponse represents a list of customers in HTTP responses.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Count     int                `json:"count"`
}

// ToCustomerResponse converts a domain Customer to an HTTP response DTO.
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

// ToCustomerListResponse converts domain Customers to an HTTP list response DTO.
func ToCustomerListResponse(customers []*customer.Customer) CustomerListResponse {
	items := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		items[i] = ToCustomerResponse(c)
	}
	return CustomerListResponse{Customers: items, Count: len(items)}
}

// BatchItemResult is the outcome of one order in a batch update. Exactly one
// of Order and Error is set.
type BatchItemResult struct {
	ID     int64          `json:"id"`
	Status int            `json:"status"`
	Order  *OrderResponse `json:"order,omitempty"`
	Error  *ErrorResponse `json:"error,omitempty"`
}

// BatchUpdateResponse reports per-item outcomes in request order.
type BatchUpdateResponse struct {
	Results   []BatchItemResult `json:"results"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
}

// ToBatchUpdateResponse pairs each requested order with its update result.
// Failed items carry the same problem body a single update would return.
func ToBatchUpdateResponse(r *http.Request, requested []*order.Order, results []fanout.Result[*order.Order]) BatchUpdateResponse {
	resp := BatchUpdateResponse{Results: make([]BatchItemResult, len(results))}
	for i, res := range results {
		item := BatchItemResult{ID: requested[i].ID}
		if res.Err != nil {
			problem := NewErrorResponse(r, res.Err)
			item.Status = problem.Status
			item.Error = &problem
			resp.Failed++
		} else {
			o := ToOrderResponse(res.Value)
			item.Status = http.StatusOK
			item.Order = &o
			resp.Succeeded++
		}
		resp.Results[i] = item
	}
	return resp
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// HealthResponse is the body of the liveness and readiness endpoints.
// Checks maps each checker name to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
