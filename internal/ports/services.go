package ports

import (
	"context"

	"github.com/jsamuelsen11/go-business-service/internal/app/command"
	"github.com/jsamuelsen11/go-business-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-business-service/internal/domain/customer"
	"github.com/jsamuelsen11/go-business-service/internal/domain/order"
)

// BusinessService is the service port for a single entity type.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every operation has a blocking form and an Async form with identical
// semantics; the Async form delivers exactly one result on the returned
// channel.
type BusinessService[T any, K comparable] interface {
	// GetAll returns every entity.
	GetAll(ctx context.Context) ([]T, error)
	GetAllAsync(ctx context.Context) <-chan command.Result[[]T]

	// GetByID returns one entity.
	// Returns a *domain.ValidationError if id is the zero value.
	GetByID(ctx context.Context, id K) (T, error)
	GetByIDAsync(ctx context.Context, id K) <-chan command.Result[T]

	// Insert validates and creates an entity.
	// Returns a *domain.ValidationError if the entity or a business rule fails.
	Insert(ctx context.Context, entity T) (T, error)
	InsertAsync(ctx context.Context, entity T) <-chan command.Result[T]

	// Update validates and replaces an entity.
	// Returns a *domain.NotFoundError if the entity does not exist and a
	// *domain.ConcurrencyError if its version is stale.
	Update(ctx context.Context, entity T) (T, error)
	UpdateAsync(ctx context.Context, entity T) <-chan command.Result[T]

	// UpdateBatch runs Update for each entity with at most maxWorkers in
	// flight. Results are in input order; each item succeeds or fails alone.
	UpdateBatch(ctx context.Context, entities []T, maxWorkers int) []fanout.Result[T]

	// Delete removes an entity.
	// Returns a *domain.ValidationError if id is the zero value.
	Delete(ctx context.Context, id K) error
	DeleteAsync(ctx context.Context, id K) <-chan command.Result[struct{}]

	// SupportsTransactions and IsLatencyProne pass through the data proxy's
	// capability flags.
	SupportsTransactions() bool
	IsLatencyProne() bool
}

// OrderService is the business service port for orders.
type OrderService = BusinessService[*order.Order, int64]

// CustomerService is the business service port for customers.
type CustomerService = BusinessService[*customer.Customer, int64]
