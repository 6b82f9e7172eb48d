package ports

import "context"

// SupportsGetAll retrieves every entity from a source.
type SupportsGetAll[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
}

// SupportsGetByID retrieves one entity by key.
// Implementations return an error wrapping domain.ErrNotFound when the key
// does not exist.
type SupportsGetByID[T any, K comparable] interface {
	GetByID(ctx context.Context, id K) (T, error)
}

// SupportsInsert creates an entity and returns the stored representation,
// including server-assigned fields (key, version, timestamps).
type SupportsInsert[T any] interface {
	Insert(ctx context.Context, entity T) (T, error)
}

// SupportsUpdate replaces an existing entity and returns the stored
// representation. Implementations return an error wrapping
// domain.ErrNotFound when the entity does not exist.
type SupportsUpdate[T any] interface {
	Update(ctx context.Context, entity T) (T, error)
}

// SupportsDelete removes an entity by key. Whether deleting a missing key is
// an error is left to the implementation.
type SupportsDelete[K comparable] interface {
	Delete(ctx context.Context, id K) error
}

// DataProxy is the full persistence abstraction consumed by business
// services. It never exposes the storage technology behind it.
type DataProxy[T any, K comparable] interface {
	SupportsGetAll[T]
	SupportsGetByID[T, K]
	SupportsInsert[T]
	SupportsUpdate[T]
	SupportsDelete[K]
}

// ServiceDataProxy is a DataProxy that also reports its capabilities.
type ServiceDataProxy[T any, K comparable] interface {
	DataProxy[T, K]

	// SupportsTransactions reports whether the backing store can run
	// multi-statement transactions.
	SupportsTransactions() bool

	// IsLatencyProne reports whether every call is an expensive round trip
	// (e.g. a remote HTTP service). Business services skip the pre-update
	// fetch for latency-prone proxies.
	IsLatencyProne() bool
}
