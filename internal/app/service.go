// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// BusinessService is the generic core: it runs every operation through the
// command pipeline, fetches the stored copy before an update, enforces the
// optional concurrency check and reconciles non-editable fields before
// handing the entity to the data proxy.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/jsamuelsen11/go-business-service/internal/app/command"
	"github.com/jsamuelsen11/go-business-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-business-service/internal/domain"
	"github.com/jsamuelsen11/go-business-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-business-service/internal/ports"
	"github.com/jsamuelsen11/go-business-service/internal/rules"
)

// ConcurrencyChecker builds the rule comparing the stored copy of an entity
// with the incoming one.
type ConcurrencyChecker[T any] func(current, incoming T) rules.Rule

// VersionCheck returns the ConcurrencyChecker for entity types carrying a
// version token.
func VersionCheck[T interface {
	domain.VersionContainer
	TypeName() string
}]() ConcurrencyChecker[T] {
	return func(current, incoming T) rules.Rule {
		return rules.ConcurrencyCheck(current.TypeName(), current, incoming)
	}
}

// Option configures a BusinessService.
type Option[T domain.Object[T, K], K comparable] func(*BusinessService[T, K])

// WithConcurrencyCheck enables the optimistic concurrency check on Update.
// Without it, Update never compares versions.
func WithConcurrencyCheck[T domain.Object[T, K], K comparable](check ConcurrencyChecker[T]) Option[T, K] {
	return func(s *BusinessService[T, K]) {
		s.concurrencyCheck = check
	}
}

// WithInsertRules sets the business rules evaluated before Insert persists.
func WithInsertRules[T domain.Object[T, K], K comparable](fn func(ctx context.Context, entity T) ([]rules.Rule, error)) Option[T, K] {
	return func(s *BusinessService[T, K]) {
		s.insertRules = fn
	}
}

// WithUpdateRules sets the business rules evaluated before Update fetches
// the stored copy.
func WithUpdateRules[T domain.Object[T, K], K comparable](fn func(ctx context.Context, entity T) ([]rules.Rule, error)) Option[T, K] {
	return func(s *BusinessService[T, K]) {
		s.updateRules = fn
	}
}

// WithStoredRules sets the business rules that judge an update against the
// stored copy. They run after the fetch and before the concurrency check,
// so they see the same snapshot the version is compared with. Latency-prone
// proxies skip them along with the fetch.
func WithStoredRules[T domain.Object[T, K], K comparable](fn func(current, incoming T) []rules.Rule) Option[T, K] {
	return func(s *BusinessService[T, K]) {
		s.storedRules = fn
	}
}

// WithDeleteRules sets the business rules evaluated before Delete.
func WithDeleteRules[T domain.Object[T, K], K comparable](fn func(ctx context.Context, id K) ([]rules.Rule, error)) Option[T, K] {
	return func(s *BusinessService[T, K]) {
		s.deleteRules = fn
	}
}

// WithMetrics records operation counters and durations on m.
func WithMetrics[T domain.Object[T, K], K comparable](m *telemetry.Metrics) Option[T, K] {
	return func(s *BusinessService[T, K]) {
		s.instr.metrics = m
	}
}

// BusinessService implements ports.BusinessService for one entity type on
// top of a data proxy. It holds no per-call state and is safe for
// concurrent use when the proxy is.
type BusinessService[T domain.Object[T, K], K comparable] struct {
	typeName string
	proxy    ports.ServiceDataProxy[T, K]
	instr    instrumentation

	concurrencyCheck ConcurrencyChecker[T]
	insertRules      func(ctx context.Context, entity T) ([]rules.Rule, error)
	updateRules      func(ctx context.Context, entity T) ([]rules.Rule, error)
	storedRules      func(current, incoming T) []rules.Rule
	deleteRules      func(ctx context.Context, id K) ([]rules.Rule, error)
}

// NewBusinessService creates a BusinessService. typeName is used in error
// messages and telemetry. A nil logger discards output.
func NewBusinessService[T domain.Object[T, K], K comparable](
	typeName string,
	proxy ports.ServiceDataProxy[T, K],
	logger *slog.Logger,
	opts ...Option[T, K],
) *BusinessService[T, K] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &BusinessService[T, K]{
		typeName: typeName,
		proxy:    proxy,
		instr:    newInstrumentation(typeName, logger),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAll returns every entity from the proxy.
func (s *BusinessService[T, K]) GetAll(ctx context.Context) ([]T, error) {
	return observe(ctx, &s.instr, "GetAll", s.proxy.GetAll)
}

// GetAllAsync is the non-blocking form of GetAll.
func (s *BusinessService[T, K]) GetAllAsync(ctx context.Context) <-chan command.Result[[]T] {
	return command.Go(ctx, s.GetAll)
}

// GetByID returns the entity stored under id. A zero id fails validation
// without calling the proxy.
func (s *BusinessService[T, K]) GetByID(ctx context.Context, id K) (T, error) {
	return observe(ctx, &s.instr, "GetByID", func(ctx context.Context) (T, error) {
		return command.New("GetByID",
			func(ctx context.Context) (T, error) {
				return s.proxy.GetByID(ctx, id)
			},
			command.WithValidation[T](idRequired(id)),
			command.WithLogger[T](s.instr.logger),
		).Execute(ctx)
	}, slog.Any("id", id))
}

// GetByIDAsync is the non-blocking form of GetByID.
func (s *BusinessService[T, K]) GetByIDAsync(ctx context.Context, id K) <-chan command.Result[T] {
	return command.Go(ctx, func(ctx context.Context) (T, error) {
		return s.GetByID(ctx, id)
	})
}

// Insert validates entity, evaluates the insert rules and creates it.
func (s *BusinessService[T, K]) Insert(ctx context.Context, entity T) (T, error) {
	return observe(ctx, &s.instr, "Insert", func(ctx context.Context) (T, error) {
		return command.New("Insert",
			func(ctx context.Context) (T, error) {
				return s.proxy.Insert(ctx, entity)
			},
			command.WithValidation[T](entityValid(entity)),
			command.WithBusinessRules[T](s.businessRules(func(ctx context.Context) ([]rules.Rule, error) {
				if s.insertRules == nil {
					return nil, nil
				}
				return s.insertRules(ctx, entity)
			})),
			command.WithLogger[T](s.instr.logger),
		).Execute(ctx)
	})
}

// InsertAsync is the non-blocking form of Insert.
func (s *BusinessService[T, K]) InsertAsync(ctx context.Context, entity T) <-chan command.Result[T] {
	return command.Go(ctx, func(ctx context.Context) (T, error) {
		return s.Insert(ctx, entity)
	})
}

// Update validates entity and replaces the stored copy. Unless the proxy is
// latency-prone, the stored copy is fetched first: a missing record (a zero
// key included) yields a *domain.NotFoundError, a failed stored rule a
// *domain.ValidationError, a stale version a *domain.ConcurrencyError, and
// non-editable fields and zero foreign keys are reconciled before persisting.
func (s *BusinessService[T, K]) Update(ctx context.Context, entity T) (T, error) {
	return observe(ctx, &s.instr, "Update", func(ctx context.Context) (T, error) {
		return command.New("Update",
			func(ctx context.Context) (T, error) {
				return s.update(ctx, entity)
			},
			command.WithValidation[T](entityValid(entity)),
			command.WithBusinessRules[T](s.businessRules(func(ctx context.Context) ([]rules.Rule, error) {
				if s.updateRules == nil {
					return nil, nil
				}
				return s.updateRules(ctx, entity)
			})),
			command.WithLogger[T](s.instr.logger),
		).Execute(ctx)
	}, slog.Any("id", entity.GetID()))
}

func (s *BusinessService[T, K]) update(ctx context.Context, entity T) (T, error) {
	var zero T

	if !s.proxy.IsLatencyProne() {
		id := entity.GetID()
		current, err := s.proxy.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && isNil(current)) {
			return zero, &domain.NotFoundError{Message: s.BuildNotFoundError(id)}
		}
		if err != nil {
			return zero, err
		}

		if s.storedRules != nil {
			results := rules.Collect([]string{s.typeName}, s.storedRules(current, entity)...)
			if err := domain.NewValidationError(results...); err != nil {
				return zero, err
			}
		}

		if s.concurrencyCheck != nil {
			if rule := s.concurrencyCheck(current, entity).Validate(); !rule.IsValid() {
				return zero, &domain.ConcurrencyError{Message: rule.ErrorMessage()}
			}
		}

		entity.RevertNonEditableValues(current)
		entity.RevertForeignKeysFromZeroToNull()
	}

	return s.proxy.Update(ctx, entity)
}

// UpdateAsync is the non-blocking form of Update.
func (s *BusinessService[T, K]) UpdateAsync(ctx context.Context, entity T) <-chan command.Result[T] {
	return command.Go(ctx, func(ctx context.Context) (T, error) {
		return s.Update(ctx, entity)
	})
}

// UpdateBatch runs Update for each entity with at most maxWorkers updates in
// flight. Results keep input order; one failure does not stop the others.
// Entities sharing a key are updated one after another in input order, so a
// repeated key is version-checked against the earlier write.
func (s *BusinessService[T, K]) UpdateBatch(ctx context.Context, entities []T, maxWorkers int) []fanout.Result[T] {
	s.instr.logger.InfoContext(ctx, "updating batch",
		slog.String("entity", s.typeName),
		slog.Int("count", len(entities)),
	)

	groups := groupByKey[T, K](entities)
	grouped := fanout.Run(ctx, maxWorkers, groups, func(ctx context.Context, idx []int) ([]fanout.Result[T], error) {
		out := make([]fanout.Result[T], len(idx))
		for i, n := range idx {
			v, err := s.Update(ctx, entities[n])
			out[i] = fanout.Result[T]{Value: v, Err: err}
		}
		return out, nil
	})

	results := make([]fanout.Result[T], len(entities))
	for g, r := range grouped {
		for i, n := range groups[g] {
			if r.Err != nil {
				results[n] = fanout.Result[T]{Err: r.Err}
				continue
			}
			results[n] = r.Value[i]
		}
	}
	if err := fanout.Errors(results); err != nil {
		s.instr.logger.WarnContext(ctx, "batch update partially failed",
			slog.String("entity", s.typeName),
			slog.Any("error", err),
		)
	}
	return results
}

// Delete removes the entity stored under id. A zero id fails validation
// without calling the proxy. The record is not fetched first; deleting a
// missing id is reported (or not) by the proxy.
func (s *BusinessService[T, K]) Delete(ctx context.Context, id K) error {
	_, err := observe(ctx, &s.instr, "Delete", func(ctx context.Context) (struct{}, error) {
		return command.New("Delete",
			func(ctx context.Context) (struct{}, error) {
				return struct{}{}, s.proxy.Delete(ctx, id)
			},
			command.WithValidation[struct{}](idRequired(id)),
			command.WithBusinessRules[struct{}](s.businessRules(func(ctx context.Context) ([]rules.Rule, error) {
				if s.deleteRules == nil {
					return nil, nil
				}
				return s.deleteRules(ctx, id)
			})),
			command.WithLogger[struct{}](s.instr.logger),
		).Execute(ctx)
	}, slog.Any("id", id))
	return err
}

// DeleteAsync is the non-blocking form of Delete.
func (s *BusinessService[T, K]) DeleteAsync(ctx context.Context, id K) <-chan command.Result[struct{}] {
	return command.Go(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.Delete(ctx, id)
	})
}

// SupportsTransactions reports the proxy's transaction capability.
func (s *BusinessService[T, K]) SupportsTransactions() bool {
	return s.proxy.SupportsTransactions()
}

// IsLatencyProne reports whether the proxy is latency-prone.
func (s *BusinessService[T, K]) IsLatencyProne() bool {
	return s.proxy.IsLatencyProne()
}

// BuildNotFoundError returns the message used when Update cannot find the
// stored copy of id.
func (s *BusinessService[T, K]) BuildNotFoundError(id K) string {
	return fmt.Sprintf("%s ID %v could not be found.", s.typeName, id)
}

// businessRules adapts a rule factory to the command's business-rule stage.
// Failures are reported against the entity type.
func (s *BusinessService[T, K]) businessRules(
	build func(ctx context.Context) ([]rules.Rule, error),
) func(ctx context.Context) ([]domain.ValidationResult, error) {
	return func(ctx context.Context) ([]domain.ValidationResult, error) {
		rs, err := build(ctx)
		if err != nil {
			return nil, err
		}
		return rules.Collect([]string{s.typeName}, rs...), nil
	}
}

// groupByKey returns the indexes of entities grouped by key, groups ordered
// by first appearance and indexes ascending within a group.
func groupByKey[T domain.Object[T, K], K comparable](entities []T) [][]int {
	pos := make(map[K]int, len(entities))
	var groups [][]int
	for n, e := range entities {
		if isNil(e) {
			groups = append(groups, []int{n})
			continue
		}
		id := e.GetID()
		g, ok := pos[id]
		if !ok {
			g = len(groups)
			pos[id] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], n)
	}
	return groups
}

// isNil reports whether v is a nil pointer, interface, map or slice. A proxy
// returning a nil entity without an error has no record to offer.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func idRequired[K comparable](id K) func() []domain.ValidationResult {
	return func() []domain.ValidationResult {
		return rules.Collect([]string{"id"}, rules.ValueRequired("id", id))
	}
}

// entityValid turns the entity's own Validate into validation results.
// A non-validation error is reported as a single type-level result.
func entityValid(entity interface{ Validate() error }) func() []domain.ValidationResult {
	return func() []domain.ValidationResult {
		err := entity.Validate()
		if err == nil {
			return nil
		}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return verr.Results
		}
		return []domain.ValidationResult{{Message: err.Error()}}
	}
}
