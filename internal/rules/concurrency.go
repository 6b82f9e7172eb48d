package rules

import (
	"fmt"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
)

// ConcurrencyRule compares the stored and incoming version tokens of an
// entity and fails when they differ.
type ConcurrencyRule struct {
	Verdict
	typeName string
	current  domain.VersionContainer
	incoming domain.VersionContainer
}

// ConcurrencyCheck returns a rule comparing current (as stored) against
// incoming (as supplied by the caller).
func ConcurrencyCheck(typeName string, current, incoming domain.VersionContainer) *ConcurrencyRule {
	return &ConcurrencyRule{typeName: typeName, current: current, incoming: incoming}
}

// Validate implements Rule.
func (r *ConcurrencyRule) Validate() Rule {
	stored := r.current.GetVersion()
	supplied := r.incoming.GetVersion()
	if stored != supplied {
		r.Fail(fmt.Sprintf(
			"%s has been changed by another user (stored version %q, supplied version %q); reload it and try again.",
			r.typeName, stored, supplied,
		))
		return r
	}
	r.Pass()
	return r
}
