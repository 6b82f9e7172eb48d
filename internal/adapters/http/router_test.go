package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/go-business-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-business-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-business-service/internal/domain/customer"
	"github.com/jsamuelsen11/go-business-service/internal/domain/order"
	"github.com/jsamuelsen11/go-business-service/mocks"
)

type testServices struct {
	orders    *mocks.MockBusinessService[*order.Order, int64]
	customers *mocks.MockBusinessService[*customer.Customer, int64]
	registry  *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, testServices) {
	t.Helper()
	svcs := testServices{
		orders:    mocks.NewMockBusinessService[*order.Order, int64](t),
		customers: mocks.NewMockBusinessService[*customer.Customer, int64](t),
		registry:  mocks.NewMockHealthRegistry(t),
	}

	router := adapthttp.NewRouter(
		handlers.NewOrderHandler(svcs.orders, 4),
		handlers.NewCustomerHandler(svcs.customers),
		handlers.NewHealthHandler(svcs.registry),
		middlewares...,
	)
	return router, svcs
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	mux, ok := router.(*chi.Mux)
	require.True(t, ok)

	var got []string
	require.NoError(t, chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	}))

	for _, want := range []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /api/v1/orders",
		"POST /api/v1/orders",
		"POST /api/v1/orders/batch",
		"GET /api/v1/orders/{id}",
		"PUT /api/v1/orders/{id}",
		"DELETE /api/v1/orders/{id}",
		"GET /api/v1/customers",
		"POST /api/v1/customers",
		"GET /api/v1/customers/{id}",
		"PUT /api/v1/customers/{id}",
		"DELETE /api/v1/customers/{id}",
	} {
		require.True(t, slices.Contains(got, want), "route %s not registered; have %v", want, got)
	}
}

func TestRouter_AppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router, _ := newTestRouter(t, tag("first"), tag("second"))
	rec := serve(router, http.MethodGet, "/health/live", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"first", "second"}, calls)
}

func TestRouter_DispatchesToServices(t *testing.T) {
	t.Parallel()

	router, svcs := newTestRouter(t)
	svcs.orders.EXPECT().GetAll(mock.Anything).Return([]*order.Order{}, nil)
	svcs.orders.EXPECT().GetByID(mock.Anything, int64(42)).Return(&order.Order{ID: 42}, nil)
	svcs.customers.EXPECT().Delete(mock.Anything, int64(5)).Return(nil)
	svcs.orders.EXPECT().UpdateBatch(mock.Anything, mock.Anything, 4).
		Return([]fanout.Result[*order.Order]{{Value: &order.Order{ID: 1}}})

	require.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/v1/orders", "").Code)
	require.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/v1/orders/42", "").Code)
	require.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, "/api/v1/customers/5", "").Code)

	rec := serve(router, http.MethodPost, "/api/v1/orders/batch",
		`{"orders":[{"id":1,"customer_id":3,"total":1,"version":"v1"}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_UnmatchedRequestsGetProblems(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		target string
		status int
	}{
		{method: http.MethodGet, target: "/nonexistent", status: http.StatusNotFound},
		{method: http.MethodGet, target: "/api/v1/invoices/1", status: http.StatusNotFound},
		{method: http.MethodPatch, target: "/api/v1/orders/7", status: http.StatusMethodNotAllowed},
		{method: http.MethodPut, target: "/api/v1/customers", status: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		rec := serve(router, tt.method, tt.target, "")
		require.Equal(t, tt.status, rec.Code, "%s %s", tt.method, tt.target)
		require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

		var problem dto.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
		require.Equal(t, tt.status, problem.Status)
		require.Equal(t, tt.target, problem.Instance)
	}
}
