package rules

import (
	"strings"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
)

// SequenceRule runs its members in order. It is valid iff every member that
// ran is valid.
type SequenceRule struct {
	Verdict
	members   []Rule
	stopFirst bool
	failed    []Rule
}

// Sequence composes rules into an ordered sequence.
func Sequence(members ...Rule) *SequenceRule {
	return &SequenceRule{members: members}
}

// StopOnFirstFailure makes the sequence skip the remaining members once one
// fails. Use it when later rules depend on earlier ones passing.
func (s *SequenceRule) StopOnFirstFailure() *SequenceRule {
	s.stopFirst = true
	return s
}

// Validate implements Rule. The error message joins the messages of all
// failed members.
func (s *SequenceRule) Validate() Rule {
	s.failed = s.failed[:0]
	for _, m := range s.members {
		if m.Validate().IsValid() {
			continue
		}
		s.failed = append(s.failed, m)
		if s.stopFirst {
			break
		}
	}

	if len(s.failed) == 0 {
		s.Pass()
		return s
	}
	msgs := make([]string, len(s.failed))
	for i, f := range s.failed {
		msgs[i] = f.ErrorMessage()
	}
	s.Fail(strings.Join(msgs, " "))
	return s
}

// Failed returns the members that failed during the last Validate call.
func (s *SequenceRule) Failed() []Rule {
	return s.failed
}

// Collect validates rules in order and returns one ValidationResult per
// failing rule, scoped to members. A nil result means every rule passed.
func Collect(members []string, rs ...Rule) []domain.ValidationResult {
	var results []domain.ValidationResult
	for _, r := range rs {
		if r.Validate().IsValid() {
			continue
		}
		results = append(results, domain.ValidationResult{
			Message: r.ErrorMessage(),
			Members: members,
		})
	}
	return results
}
