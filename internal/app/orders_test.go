package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
	"github.com/jsamuelsen11/go-business-service/internal/domain/customer"
	"github.com/jsamuelsen11/go-business-service/internal/domain/order"
	"github.com/jsamuelsen11/go-business-service/mocks"
)

func int64Ptr(v int64) *int64 { return &v }

func validOrder() *order.Order {
	return &order.Order{
		ID:         7,
		CustomerID: int64Ptr(3),
		StatusID:   int64Ptr(1),
		OrderDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Total:      1250,
		Version:    "v2",
		CreatedBy:  "alice",
	}
}

// --- orders ---

func TestOrderService_Update_SubmittedOrderRejected(t *testing.T) {
	t.Parallel()
	proxy := mocks.NewMockServiceDataProxy[*order.Order, int64](t)
	svc := NewOrderService(proxy, discardLogger(), nil)

	stored := validOrder()
	submitted := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	stored.SubmittedOn = &submitted

	proxy.EXPECT().IsLatencyProne().Return(false)
	proxy.EXPECT().GetByID(mock.Anything, int64(7)).Return(stored, nil)

	// Clearing SubmittedOn on the incoming copy must not unlock the order.
	_, err := svc.Update(context.Background(), validOrder())

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Update() error = %v, want *domain.ValidationError", err)
	}
	if verr.Fields()[order.TypeName] != MsgOrderSubmitted {
		t.Errorf("Fields() = %v, want %q", verr.Fields(), MsgOrderSubmitted)
	}
	proxy.AssertNumberOfCalls(t, "GetByID", 1)
	proxy.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_Update_StaleVersion(t *testing.T) {
	t.Parallel()
	proxy := mocks.NewMockServiceDataProxy[*order.Order, int64](t)
	svc := NewOrderService(proxy, discardLogger(), nil)

	proxy.EXPECT().IsLatencyProne().Return(false)
	proxy.EXPECT().GetByID(mock.Anything, int64(7)).Return(validOrder(), nil)

	incoming := validOrder()
	incoming.Version = "v1"

	_, err := svc.Update(context.Background(), incoming)
	if domain.KindOf(err) != domain.KindConcurrency {
		t.Errorf("Update() error = %v, want concurrency kind", err)
	}
}

func TestOrderService_Update_MissingOrder(t *testing.T) {
	t.Parallel()
	proxy := mocks.NewMockServiceDataProxy[*order.Order, int64](t)
	svc := NewOrderService(proxy, discardLogger(), nil)

	proxy.EXPECT().IsLatencyProne().Return(false)
	proxy.EXPECT().GetByID(mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), validOrder())

	var nerr *domain.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("Update() error = %v, want *domain.NotFoundError", err)
	}
	if nerr.Message != "Order ID 7 could not be found." {
		t.Errorf("Message = %q, want %q", nerr.Message, "Order ID 7 could not be found.")
	}
}

func TestOrderService_Update_RevertsServerOwnedFields(t *testing.T) {
	t.Parallel()
	proxy := mocks.NewMockServiceDataProxy[*order.Order, int64](t)
	svc := NewOrderService(proxy, discardLogger(), nil)

	proxy.EXPECT().IsLatencyProne().Return(false)
	proxy.EXPECT().GetByID(mock.Anything, int64(7)).Return(validOrder(), nil)
	proxy.EXPECT().Update(mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.CreatedBy == "alice" && o.Total == 5000 && o.StatusID == nil
	})).RunAndReturn(func(_ context.Context, o *order.Order) (*order.Order, error) {
		return o, nil
	})

	incoming := validOrder()
	incoming.CreatedBy = "mallory"
	incoming.Total = 5000
	incoming.StatusID = int64Ptr(0)

	if _, err := svc.Update(context.Background(), incoming); err != nil {
		t.Fatalf("Update() error = %v, want nil", err)
	}
}

func TestOrderService_Insert_NegativeTotal(t *testing.T) {
	t.Parallel()
	proxy := mocks.NewMockServiceDataProxy[*order.Order, int64](t)
	svc := NewOrderService(proxy, discardLogger(), nil)

	o := validOrder()
	o.ID = 0
	o.Total = -1

	_, err := svc.Insert(context.Background(), o)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Insert() error = %v, want *domain.ValidationError", err)
	}
	if verr.Fields()[order.TypeName] != MsgOrderNegativeTotal {
		t.Errorf("Fields() = %v, want %q", verr.Fields(), MsgOrderNegativeTotal)
	}
	proxy.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestOrderService_Update_LatencyProneSkipsRuleFetch(t *testing.T) {
	t.Parallel()
	proxy := mocks.NewMockServiceDataProxy[*order.Order, int64](t)
	svc := NewOrderService(proxy, discardLogger(), nil)

	incoming := validOrder()
	proxy.EXPECT().IsLatencyProne().Return(true)
	proxy.EXPECT().Update(mock.Anything, incoming).Return(incoming, nil)

	if _, err := svc.Update(context.Background(), incoming); err != nil {
		t.Fatalf("Update() error = %v, want nil", err)
	}
	proxy.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

// --- customers ---

func TestCustomerService_Insert_DuplicateEmail(t *testing.T) {
	t.Parallel()
	proxy := mocks.NewMockServiceDataProxy[*customer.Customer, int64](t)
	svc := NewCustomerService(proxy, discardLogger(), nil)

	proxy.EXPECT().GetAll(mock.Anything).Return([]*customer.Customer{
		{ID: 1, Name: "Ada", Email: "ADA@example.com"},
	}, nil)

	_, err := svc.Insert(context.Background(), &customer.Customer{Name: "Ada L", Email: "ada@example.com"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Insert() error = %v, want *domain.ValidationError", err)
	}
	if verr.Fields()[customer.TypeName] != MsgCustomerEmailTaken {
		t.Errorf("Fields() = %v, want %q", verr.Fields(), MsgCustomerEmailTaken)
	}
	proxy.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCustomerService_Insert_UniqueEmail(t *testing.T) {
	t.Parallel()
	proxy := mocks.NewMockServiceDataProxy[*customer.Customer, int64](t)
	svc := NewCustomerService(proxy, discardLogger(), nil)

	input := &customer.Customer{Name: "Grace", Email: "grace@example.com"}
	proxy.EXPECT().GetAll(mock.Anything).Return([]*customer.Customer{
		{ID: 1, Name: "Ada", Email: "ada@example.com"},
	}, nil)
	proxy.EXPECT().Insert(mock.Anything, input).Return(&customer.Customer{ID: 2, Name: "Grace", Email: "grace@example.com"}, nil)

	got, err := svc.Insert(context.Background(), input)
	if err != nil {
		t.Fatalf("Insert() error = %v, want nil", err)
	}
	if got.ID != 2 {
		t.Errorf("Insert().ID = %d, want 2", got.ID)
	}
}

func TestCustomerService_Update_NoVersionCheck(t *testing.T) {
	t.Parallel()
	proxy := mocks.NewMockServiceDataProxy[*customer.Customer, int64](t)
	svc := NewCustomerService(proxy, discardLogger(), nil)

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	proxy.EXPECT().IsLatencyProne().Return(false)
	proxy.EXPECT().GetByID(mock.Anything, int64(1)).Return(&customer.Customer{
		ID: 1, Name: "Ada", Email: "ada@example.com", CreatedAt: created,
	}, nil)
	proxy.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, c *customer.Customer) (*customer.Customer, error) {
		return c, nil
	})

	got, err := svc.Update(context.Background(), &customer.Customer{ID: 1, Name: "Ada L", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Update() error = %v, want nil", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want reverted to %v", got.CreatedAt, created)
	}
}
