// Package customer defines the Customer entity. Customers carry no version
// token, so updates are last-writer-wins.
package customer

import (
	"net/mail"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
)

// Compile-time check that *Customer satisfies the entity contract.
var _ domain.Object[*Customer, int64] = (*Customer)(nil)

// TypeName is the name used for customers in error messages.
const TypeName = "Customer"

// Customer is a party that places orders.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the customer key.
func (c *Customer) GetID() int64 { return c.ID }

// SetID assigns the customer key.
func (c *Customer) SetID(id int64) { c.ID = id }

// TypeName returns "Customer".
func (c *Customer) TypeName() string { return TypeName }

// Validate checks field-level rules for the Customer entity.
func (c *Customer) Validate() error {
	var results []domain.ValidationResult

	if strings.TrimSpace(c.Name) == "" {
		results = append(results, domain.FieldResult("name", domain.MsgRequired))
	}
	switch {
	case strings.TrimSpace(c.Email) == "":
		results = append(results, domain.FieldResult("email", domain.MsgRequired))
	case !validEmail(c.Email):
		results = append(results, domain.FieldResult("email", "must be a valid address"))
	}

	return domain.NewValidationError(results...)
}

// RevertNonEditableValues keeps the original creation time.
func (c *Customer) RevertNonEditableValues(current *Customer) {
	if current == nil {
		return
	}
	c.CreatedAt = current.CreatedAt
}

// RevertForeignKeysFromZeroToNull is a no-op; customers reference nothing.
func (c *Customer) RevertForeignKeysFromZeroToNull() {}

// Stamp is the write hook data proxies apply before storing a customer.
func Stamp(c *Customer, now time.Time) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
