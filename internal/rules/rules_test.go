package rules_test

import (
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-business-service/internal/rules"
)

type versioned string

func (v versioned) GetVersion() string { return string(v) }

func TestValueRequired(t *testing.T) {
	t.Parallel()

	t.Run("zero int fails", func(t *testing.T) {
		t.Parallel()
		r := rules.ValueRequired("id", int64(0)).Validate()
		if r.IsValid() {
			t.Fatal("IsValid() = true, want false for zero id")
		}
		if r.ErrorMessage() != "id must be supplied" {
			t.Errorf("ErrorMessage() = %q, want %q", r.ErrorMessage(), "id must be supplied")
		}
	})

	t.Run("non-zero int passes", func(t *testing.T) {
		t.Parallel()
		r := rules.ValueRequired("id", int64(42)).Validate()
		if !r.IsValid() {
			t.Errorf("IsValid() = false, want true; message %q", r.ErrorMessage())
		}
		if r.ErrorMessage() != "" {
			t.Errorf("ErrorMessage() = %q, want empty", r.ErrorMessage())
		}
	})

	t.Run("empty string fails", func(t *testing.T) {
		t.Parallel()
		if rules.ValueRequired("code", "").Validate().IsValid() {
			t.Error("IsValid() = true, want false for empty string")
		}
	})

	t.Run("nil pointer fails", func(t *testing.T) {
		t.Parallel()
		var p *int
		if rules.ValueRequired("ref", p).Validate().IsValid() {
			t.Error("IsValid() = true, want false for nil pointer")
		}
	})

	t.Run("field name is reported", func(t *testing.T) {
		t.Parallel()
		if got := rules.ValueRequired("customer_id", 1).Field(); got != "customer_id" {
			t.Errorf("Field() = %q, want %q", got, "customer_id")
		}
	})
}

func TestValueRequired_RevalidateResetsVerdict(t *testing.T) {
	t.Parallel()

	r := rules.ValueRequired("id", 0)
	r.Validate()
	r.Validate()
	if r.IsValid() {
		t.Error("IsValid() = true after repeated validation of zero value")
	}
}

func TestConcurrencyCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stored   string
		incoming string
		wantOK   bool
	}{
		{name: "equal versions pass", stored: "2", incoming: "2", wantOK: true},
		{name: "stale version fails", stored: "2", incoming: "1", wantOK: false},
		{name: "newer supplied version fails", stored: "1", incoming: "2", wantOK: false},
		{name: "empty supplied version fails", stored: "1", incoming: "", wantOK: false},
		{name: "both empty pass", stored: "", incoming: "", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := rules.ConcurrencyCheck("Order", versioned(tt.stored), versioned(tt.incoming)).Validate()
			if r.IsValid() != tt.wantOK {
				t.Fatalf("IsValid() = %v, want %v", r.IsValid(), tt.wantOK)
			}
			if tt.wantOK {
				return
			}
			msg := r.ErrorMessage()
			if !strings.HasPrefix(msg, "Order has been changed") {
				t.Errorf("ErrorMessage() = %q, want it to name the type", msg)
			}
			if !strings.Contains(msg, `"`+tt.stored+`"`) || !strings.Contains(msg, `"`+tt.incoming+`"`) {
				t.Errorf("ErrorMessage() = %q, want both versions", msg)
			}
		})
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()

	calls := 0
	r := rules.Func("total must not be negative", func() bool {
		calls++
		return false
	})

	if !r.IsValid() {
		t.Error("IsValid() before Validate = false, want true")
	}
	r.Validate()
	if r.IsValid() {
		t.Error("IsValid() = true, want false")
	}
	if r.ErrorMessage() != "total must not be negative" {
		t.Errorf("ErrorMessage() = %q", r.ErrorMessage())
	}
	if calls != 1 {
		t.Errorf("predicate called %d times, want 1", calls)
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	pass := func() rules.Rule { return rules.Func("never", func() bool { return true }) }
	fail := func(msg string) rules.Rule { return rules.Func(msg, func() bool { return false }) }

	t.Run("all valid", func(t *testing.T) {
		t.Parallel()
		s := rules.Sequence(pass(), pass())
		if !s.Validate().IsValid() {
			t.Errorf("IsValid() = false, want true; message %q", s.ErrorMessage())
		}
		if len(s.Failed()) != 0 {
			t.Errorf("Failed() = %d rules, want 0", len(s.Failed()))
		}
	})

	t.Run("any invalid makes sequence invalid", func(t *testing.T) {
		t.Parallel()
		s := rules.Sequence(pass(), fail("first."), pass(), fail("second."))
		if s.Validate().IsValid() {
			t.Fatal("IsValid() = true, want false")
		}
		if s.ErrorMessage() != "first. second." {
			t.Errorf("ErrorMessage() = %q, want %q", s.ErrorMessage(), "first. second.")
		}
		if len(s.Failed()) != 2 {
			t.Errorf("Failed() = %d rules, want 2", len(s.Failed()))
		}
	})

	t.Run("stop on first failure skips the rest", func(t *testing.T) {
		t.Parallel()
		ran := false
		last := rules.Func("late", func() bool {
			ran = true
			return true
		})
		s := rules.Sequence(fail("early."), last).StopOnFirstFailure()
		s.Validate()
		if ran {
			t.Error("rule after first failure ran, want skipped")
		}
		if s.ErrorMessage() != "early." {
			t.Errorf("ErrorMessage() = %q, want %q", s.ErrorMessage(), "early.")
		}
	})

	t.Run("revalidation reflects current state", func(t *testing.T) {
		t.Parallel()
		ok := false
		s := rules.Sequence(rules.Func("flip", func() bool { return ok }))
		if s.Validate().IsValid() {
			t.Fatal("first Validate() IsValid = true, want false")
		}
		ok = true
		if !s.Validate().IsValid() {
			t.Error("second Validate() IsValid = false, want true")
		}
	})
}

func TestCollect(t *testing.T) {
	t.Parallel()

	results := rules.Collect([]string{"Order"},
		rules.Func("ok", func() bool { return true }),
		rules.Func("order is submitted", func() bool { return false }),
		rules.ValueRequired("id", 0),
	)

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Message != "order is submitted" {
		t.Errorf("results[0].Message = %q", results[0].Message)
	}
	if results[1].Message != "id must be supplied" {
		t.Errorf("results[1].Message = %q", results[1].Message)
	}
	if len(results[0].Members) != 1 || results[0].Members[0] != "Order" {
		t.Errorf("results[0].Members = %v, want [Order]", results[0].Members)
	}

	if got := rules.Collect(nil); got != nil {
		t.Errorf("Collect() with no rules = %v, want nil", got)
	}
}
