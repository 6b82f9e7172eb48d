package rules

// FuncRule adapts a predicate into a Rule.
type FuncRule struct {
	Verdict
	message string
	ok      func() bool
}

// Func returns a rule that fails with message when ok returns false.
func Func(message string, ok func() bool) *FuncRule {
	return &FuncRule{message: message, ok: ok}
}

// Validate implements Rule.
func (r *FuncRule) Validate() Rule {
	if r.ok() {
		r.Pass()
	} else {
		r.Fail(r.message)
	}
	return r
}
