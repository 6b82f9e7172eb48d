// Package storage holds what the local data proxies share: the JSON row
// codec, key sequences, the write hook that stamps versions and timestamps,
// and the not-found and duplicate-key errors.
package storage

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
)

// Options configures a data proxy for one entity type.
type Options[T any, K comparable] struct {
	// TypeName names the entity in error messages.
	TypeName string

	// NextKey issues a key for inserts that arrive without one.
	// When nil, inserts must carry their own key.
	NextKey func() K

	// Stamp is applied to every entity before it is written. Versioned
	// entities use it to issue a fresh version token.
	Stamp func(entity T, now time.Time)

	// Now overrides the clock passed to Stamp. Defaults to time.Now in UTC.
	Now func() time.Time
}

// Clock returns the current write time.
func (o Options[T, K]) Clock() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now().UTC()
}

// Apply runs the Stamp hook, if any, on entity.
func (o Options[T, K]) Apply(entity T) {
	if o.Stamp != nil {
		o.Stamp(entity, o.Clock())
	}
}

// Sequence returns a key generator that yields start+1, start+2, ...
// It is safe for concurrent use.
func Sequence(start int64) func() int64 {
	var n atomic.Int64
	n.Store(start)
	return func() int64 {
		return n.Add(1)
	}
}

// Encode serializes an entity into a row payload.
func Encode[T any](entity T) ([]byte, error) {
	b, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encoding row: %w", err)
	}
	return b, nil
}

// Decode deserializes a row payload. For pointer entity types a new value
// is allocated, so the result never aliases stored state.
func Decode[T any](payload []byte) (T, error) {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("decoding row: %w", err)
	}
	return v, nil
}

// Clone returns a deep copy of entity by round-tripping it through the codec.
func Clone[T any](entity T) (T, error) {
	b, err := Encode(entity)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](b)
}

// NotFound reports a missing record.
func NotFound(typeName string, id any) error {
	return fmt.Errorf("%s %v: %w", typeName, id, domain.ErrNotFound)
}

// AlreadyExists reports an insert whose key is taken.
func AlreadyExists(typeName string, id any) error {
	return fmt.Errorf("%s %v already exists: %w", typeName, id, domain.ErrConflict)
}
