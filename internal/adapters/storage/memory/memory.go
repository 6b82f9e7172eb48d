// Package memory provides an in-process data proxy. Rows are kept as
// encoded payloads, so entities handed in or out never alias stored state.
package memory

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/storage"
	"github.com/jsamuelsen11/go-business-service/internal/domain"
)

// ErrKeyRequired is returned by Insert when the entity has no key and the
// store has no key generator.
var ErrKeyRequired = errors.New("key required")

// Store is a map-backed data proxy safe for concurrent use.
type Store[T domain.Object[T, K], K cmp.Ordered] struct {
	mu   sync.RWMutex
	rows map[K][]byte
	opts storage.Options[T, K]
}

// New creates an empty Store.
func New[T domain.Object[T, K], K cmp.Ordered](opts storage.Options[T, K]) *Store[T, K] {
	return &Store[T, K]{
		rows: make(map[K][]byte),
		opts: opts,
	}
}

// GetAll returns every row ordered by key.
func (s *Store[T, K]) GetAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.rows))
	for _, id := range slices.Sorted(maps.Keys(s.rows)) {
		v, err := storage.Decode[T](s.rows[id])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// GetByID returns the row stored under id.
func (s *Store[T, K]) GetByID(ctx context.Context, id K) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.rows[id]
	if !ok {
		return zero, storage.NotFound(s.opts.TypeName, id)
	}
	return storage.Decode[T](b)
}

// Insert stores a copy of entity, assigning a key when it has none.
func (s *Store[T, K]) Insert(ctx context.Context, entity T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	row, err := storage.Clone(entity)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var noKey K
	id := row.GetID()
	if id == noKey {
		if s.opts.NextKey == nil {
			return zero, ErrKeyRequired
		}
		id = s.opts.NextKey()
		row.SetID(id)
	}
	if _, ok := s.rows[id]; ok {
		return zero, storage.AlreadyExists(s.opts.TypeName, id)
	}

	return s.write(id, row)
}

// Update replaces the row stored under the entity's key.
func (s *Store[T, K]) Update(ctx context.Context, entity T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	row, err := storage.Clone(entity)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := row.GetID()
	if _, ok := s.rows[id]; !ok {
		return zero, storage.NotFound(s.opts.TypeName, id)
	}

	return s.write(id, row)
}

// write stamps row and stores it. Callers hold the write lock.
func (s *Store[T, K]) write(id K, row T) (T, error) {
	var zero T

	s.opts.Apply(row)
	b, err := storage.Encode(row)
	if err != nil {
		return zero, err
	}
	s.rows[id] = b

	return storage.Decode[T](b)
}

// Delete removes the row stored under id.
func (s *Store[T, K]) Delete(ctx context.Context, id K) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return storage.NotFound(s.opts.TypeName, id)
	}
	delete(s.rows, id)
	return nil
}

// SupportsTransactions reports false.
func (s *Store[T, K]) SupportsTransactions() bool { return false }

// IsLatencyProne reports false.
func (s *Store[T, K]) IsLatencyProne() bool { return false }
