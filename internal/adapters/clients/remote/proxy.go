// Package remote implements data proxies backed by another business service's
// HTTP API. It is the anti-corruption layer for that API: requests and
// responses use the entity's JSON form, and HTTP failures are translated to
// the same domain errors a local store returns.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
)

// Resource locates an entity collection on the remote API.
type Resource struct {
	// Path is the collection path, e.g. "/api/v1/orders".
	Path string
	// ListField is the envelope field holding the items of a list response,
	// e.g. "orders" for {"orders": [...], "count": 2}.
	ListField string
}

// Proxy is a latency-prone data proxy for one entity type.
type Proxy[T domain.Object[T, K], K comparable] struct {
	req *Requester
	res Resource
}

// New returns a Proxy for res that sends requests through req.
func New[T domain.Object[T, K], K comparable](req *Requester, res Resource) *Proxy[T, K] {
	return &Proxy[T, K]{req: req, res: res}
}

// GetAll fetches the collection.
func (p *Proxy[T, K]) GetAll(ctx context.Context) ([]T, error) {
	var env map[string]json.RawMessage
	if err := p.req.Do(ctx, http.MethodGet, p.res.Path, http.StatusOK, nil, &env); err != nil {
		return nil, err
	}

	raw, ok := env[p.res.ListField]
	if !ok {
		return nil, fmt.Errorf("list response from %s has no %q field", p.res.Path, p.res.ListField)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", p.res.Path, err)
	}
	return items, nil
}

// GetByID fetches one entity. A 404 yields a *domain.NotFoundError.
func (p *Proxy[T, K]) GetByID(ctx context.Context, id K) (T, error) {
	var out T
	if err := p.req.Do(ctx, http.MethodGet, p.itemPath(id), http.StatusOK, nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Insert creates entity and returns the remote representation.
func (p *Proxy[T, K]) Insert(ctx context.Context, entity T) (T, error) {
	var out T
	if err := p.req.Do(ctx, http.MethodPost, p.res.Path, http.StatusCreated, entity, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Update replaces entity. The remote service runs its own version check.
func (p *Proxy[T, K]) Update(ctx context.Context, entity T) (T, error) {
	var out T
	if err := p.req.Do(ctx, http.MethodPut, p.itemPath(entity.GetID()), http.StatusOK, entity, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Delete removes the entity stored under id.
func (p *Proxy[T, K]) Delete(ctx context.Context, id K) error {
	return p.req.Do(ctx, http.MethodDelete, p.itemPath(id), http.StatusNoContent, nil, nil)
}

// SupportsTransactions reports false.
func (p *Proxy[T, K]) SupportsTransactions() bool { return false }

// IsLatencyProne reports true; every call is a network round trip.
func (p *Proxy[T, K]) IsLatencyProne() bool { return true }

func (p *Proxy[T, K]) itemPath(id K) string {
	return p.res.Path + "/" + url.PathEscape(fmt.Sprint(id))
}
