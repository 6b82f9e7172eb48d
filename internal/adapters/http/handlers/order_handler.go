package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-business-service/internal/ports"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	svc          ports.OrderService
	batchWorkers int
}

// NewOrderHandler creates an OrderHandler. batchWorkers bounds how many
// updates of one batch request run at once.
func NewOrderHandler(svc ports.OrderService, batchWorkers int) *OrderHandler {
	return &OrderHandler{svc: svc, batchWorkers: batchWorkers}
}

// ListOrders handles GET /api/v1/orders.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.GetAll(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToOrderListResponse(orders))
}

// CreateOrder handles POST /api/v1/orders.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.Insert(r.Context(), req.ToOrder())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToOrderResponse(created))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	o, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToOrderResponse(o))
}

// UpdateOrder handles PUT /api/v1/orders/{id}. A stale version yields 409
// with the concurrency problem type.
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), req.ToOrder(id))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToOrderResponse(updated))
}

// BatchUpdateOrders handles POST /api/v1/orders/batch. The response is 200
// whenever the batch itself is well formed; per-item outcomes are in the body.
func (h *OrderHandler) BatchUpdateOrders(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchUpdateOrdersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	orders := req.ToOrders()
	results := h.svc.UpdateBatch(r.Context(), orders, h.batchWorkers)

	writeJSON(w, r, http.StatusOK, dto.ToBatchUpdateResponse(r, orders, results))
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
