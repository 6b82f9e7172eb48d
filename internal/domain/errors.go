package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrConcurrency marks a stale write. It wraps ErrConflict so transports
	// that only know about conflicts still map it correctly.
	ErrConcurrency = fmt.Errorf("concurrency %w", ErrConflict)
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationResult is a single validation failure: a message and the member
// (field) names it applies to.
type ValidationResult struct {
	Message string
	Members []string
}

// FieldResult builds a ValidationResult for a single field.
func FieldResult(field, message string) ValidationResult {
	return ValidationResult{Message: message, Members: []string{field}}
}

// ValidationError provides programmatic access to aggregated validation
// failures. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to access verr.Results for per-field details.
type ValidationError struct {
	Results []ValidationResult
}

// NewValidationError returns a *ValidationError for the given results, or nil
// when there are none.
func NewValidationError(results ...ValidationResult) error {
	if len(results) == 0 {
		return nil
	}
	return &ValidationError{Results: results}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Results))
	for _, r := range e.Results {
		if len(r.Members) == 0 {
			parts = append(parts, r.Message)
			continue
		}
		parts = append(parts, strings.Join(r.Members, ",")+": "+r.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Fields flattens the results into a member -> message map. When a member
// appears in several results the messages are joined with "; ".
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Results))
	for _, r := range e.Results {
		for _, m := range r.Members {
			if prev, ok := fields[m]; ok {
				fields[m] = prev + "; " + r.Message
				continue
			}
			fields[m] = r.Message
		}
	}
	return fields
}

// NotFoundError reports that the record targeted by an operation does not
// exist. It unwraps to ErrNotFound.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConcurrencyError reports a stale write: the stored version no longer matches
// the version the caller supplied. It unwraps to ErrConcurrency.
type ConcurrencyError struct {
	Message string
}

func (e *ConcurrencyError) Error() string { return e.Message }

func (e *ConcurrencyError) Unwrap() error { return ErrConcurrency }

// Kind classifies an error returned by a business service.
type Kind int

const (
	KindOther Kind = iota
	KindValidation
	KindNotFound
	KindConcurrency
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConcurrency:
		return "concurrency"
	default:
		return "other"
	}
}

// KindOf reports which failure kind err belongs to. Nil errors and anything
// not produced by the pipeline report KindOther.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConcurrency):
		return KindConcurrency
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindOther
	}
}
