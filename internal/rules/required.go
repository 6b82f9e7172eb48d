package rules

// RequiredRule fails when its value is the zero value of K.
type RequiredRule[K comparable] struct {
	Verdict
	field string
	value K
}

// ValueRequired returns a rule that fails with "<field> must be supplied" when
// value is the zero value of its type (0, "", nil pointer, zero struct).
func ValueRequired[K comparable](field string, value K) *RequiredRule[K] {
	return &RequiredRule[K]{field: field, value: value}
}

// Validate implements Rule.
func (r *RequiredRule[K]) Validate() Rule {
	var zero K
	if r.value == zero {
		r.Fail(r.field + " must be supplied")
		return r
	}
	r.Pass()
	return r
}

// Field returns the name of the guarded field.
func (r *RequiredRule[K]) Field() string { return r.field }
