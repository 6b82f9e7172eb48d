// Package rules provides composable validation rules. A rule runs one check
// and records its verdict; failures are values, never errors or panics.
//
// Rules are constructed fresh for each validation call:
//
//	r := rules.ValueRequired("id", id).Validate()
//	if !r.IsValid() {
//	    // r.ErrorMessage()
//	}
//
// Ordered sequences are valid only when every member is valid:
//
//	results := rules.Collect([]string{"Order"}, notSubmitted, totalPositive)
package rules

// Rule is a single validation check. Validate runs the check and returns the
// rule itself so calls can be chained.
type Rule interface {
	Validate() Rule
	IsValid() bool
	ErrorMessage() string
}

// Verdict holds the outcome of a rule. Embed it in a rule type and call
// Pass or Fail from Validate.
type Verdict struct {
	invalid bool
	message string
}

// IsValid reports whether the last Validate call passed. A rule that has not
// been validated reports true.
func (v *Verdict) IsValid() bool { return !v.invalid }

// ErrorMessage returns the failure message, or "" when valid.
func (v *Verdict) ErrorMessage() string { return v.message }

// Pass records a passing verdict.
func (v *Verdict) Pass() {
	v.invalid = false
	v.message = ""
}

// Fail records a failing verdict with the given message.
func (v *Verdict) Fail(message string) {
	v.invalid = true
	v.message = message
}
