package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-business-service/internal/ports"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	svc ports.CustomerService
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// ListCustomers handles GET /api/v1/customers.
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.GetAll(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCustomerListResponse(customers))
}

// CreateCustomer handles POST /api/v1/customers.
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CustomerRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.Insert(r.Context(), req.ToCustomer(0))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToCustomerResponse(created))
}

// GetCustomer handles GET /api/v1/customers/{id}.
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCustomerResponse(c))
}

// UpdateCustomer handles PUT /api/v1/customers/{id}.
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CustomerRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), req.ToCustomer(id))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCustomerResponse(updated))
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}.
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
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
