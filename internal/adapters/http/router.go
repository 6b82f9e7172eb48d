// Package http is the inbound HTTP adapter: routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/handlers"
)

// APIPrefix is the path prefix of the business endpoints.
const APIPrefix = "/api/v1"

// NewRouter registers the health probes and the order and customer
// endpoints behind middlewares, applied in the order given. Unknown paths
// and methods answer with problem+json like every other error.
func NewRouter(
	orderHandler *handlers.OrderHandler,
	customerHandler *handlers.CustomerHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(problem(http.StatusNotFound, "no route for this path"))
	r.MethodNotAllowed(problem(http.StatusMethodNotAllowed, "method not supported on this path"))

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route(APIPrefix, func(r chi.Router) {
		orderRoutes(r, orderHandler)
		customerRoutes(r, customerHandler)
	})

	return r
}

// orderRoutes registers /orders. The static batch segment wins over {id}.
func orderRoutes(r chi.Router, h *handlers.OrderHandler) {
	r.Get("/orders", h.ListOrders)
	r.Post("/orders", h.CreateOrder)
	r.Post("/orders/batch", h.BatchUpdateOrders)
	r.Get("/orders/{id}", h.GetOrder)
	r.Put("/orders/{id}", h.UpdateOrder)
	r.Delete("/orders/{id}", h.DeleteOrder)
}

func customerRoutes(r chi.Router, h *handlers.CustomerHandler) {
	r.Get("/customers", h.ListCustomers)
	r.Post("/customers", h.CreateCustomer)
	r.Get("/customers/{id}", h.GetCustomer)
	r.Put("/customers/{id}", h.UpdateCustomer)
	r.Delete("/customers/{id}", h.DeleteCustomer)
}

func problem(status int, detail string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.NewProblem(r, status, detail))
	}
}
