// Package order defines the Order entity. Orders carry an optimistic
// concurrency version token and reference a customer and a status by key.
package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
)

// Compile-time checks that *Order satisfies the entity contracts.
var (
	_ domain.Object[*Order, int64] = (*Order)(nil)
	_ domain.VersionContainer      = (*Order)(nil)
)

// TypeName is the name used for orders in error messages.
const TypeName = "Order"

// Order is a customer order.
type Order struct {
	ID          int64      `json:"id"`
	CustomerID  *int64     `json:"customer_id,omitempty"`
	StatusID    *int64     `json:"status_id,omitempty"`
	OrderDate   time.Time  `json:"order_date"`
	Total       int64      `json:"total"`
	SubmittedOn *time.Time `json:"submitted_on,omitempty"`
	Version     string     `json:"version"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GetID returns the order key.
func (o *Order) GetID() int64 { return o.ID }

// SetID assigns the order key.
func (o *Order) SetID(id int64) { o.ID = id }

// TypeName returns "Order".
func (o *Order) TypeName() string { return TypeName }

// GetVersion returns the concurrency token.
func (o *Order) GetVersion() string { return o.Version }

// IsSubmitted reports whether the order has been submitted.
func (o *Order) IsSubmitted() bool { return o.SubmittedOn != nil }

// Validate checks field-level rules for the Order entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (o *Order) Validate() error {
	var results []domain.ValidationResult

	if o.CustomerID == nil || *o.CustomerID == 0 {
		results = append(results, domain.FieldResult("customer_id", domain.MsgRequired))
	} else if *o.CustomerID < 0 {
		results = append(results, domain.FieldResult("customer_id",
			fmt.Sprintf("must be positive, got %d", *o.CustomerID)))
	}
	if o.StatusID != nil && *o.StatusID < 0 {
		results = append(results, domain.FieldResult("status_id",
			fmt.Sprintf("must be positive, got %d", *o.StatusID)))
	}

	return domain.NewValidationError(results...)
}

// RevertNonEditableValues restores the audit and lifecycle fields from
// current. Callers may change the customer, status and total only.
func (o *Order) RevertNonEditableValues(current *Order) {
	if current == nil {
		return
	}
	o.OrderDate = current.OrderDate
	o.SubmittedOn = current.SubmittedOn
	o.CreatedBy = current.CreatedBy
	o.CreatedAt = current.CreatedAt
}

// RevertForeignKeysFromZeroToNull clears a status key left at zero. The
// customer key is mandatory and Validate already rejects zero.
func (o *Order) RevertForeignKeysFromZeroToNull() {
	if o.StatusID != nil && *o.StatusID == 0 {
		o.StatusID = nil
	}
}

// Stamp is the write hook data proxies apply before storing an order: it
// issues a fresh version token and records the write time. Creation
// timestamps are set only on first write.
func Stamp(o *Order, now time.Time) {
	o.Version = uuid.NewString()
	o.UpdatedAt = now
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = now
	}
}
