package caseid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIDCount indicates a literal Override whose length does not match
// the number of combinations it must label.
var ErrIDCount = errors.New("caseid: literal id list length mismatch")

// Override is a caller-supplied global identifier source for a whole
// parametrized axis. Exactly one of the two forms is set:
//
//   - Literal: an ordered token list, one per combination, length-checked
//     against the combination count at resolution time.
//   - FromFunc: a function applied per argument value; per-argument
//     results are joined with "-". An empty result for a value falls back
//     to the derived token for that value.
//
// The zero Override is not valid; construct via Literal or FromFunc.
type Override struct {
	ids []string
	fn  func(v any) string
}

// Literal builds an Override from an explicit ordered token list.
func Literal(ids ...string) *Override {
	return &Override{ids: ids}
}

// FromFunc builds an Override from a per-value identifier function.
func FromFunc(fn func(v any) string) *Override {
	return &Override{fn: fn}
}

// Check validates the Override against the number of combinations n.
// Only literal overrides carry a length constraint.
func (o *Override) Check(n int) error {
	if o == nil || o.fn != nil {
		return nil
	}
	if len(o.ids) != n {
		return fmt.Errorf("%w: %d ids for %d combinations", ErrIDCount, len(o.ids), n)
	}

	return nil
}

// Derived reports whether resolved tokens are computed from the values
// (nil or function overrides) rather than taken verbatim from a
// caller-supplied literal list.
func (o *Override) Derived() bool {
	return o == nil || o.fn != nil
}

// Resolve returns the identifier for combination idx holding vals bound
// to argnames. A nil Override falls through to the derived ValueSet
// token, so callers can resolve unconditionally.
func (o *Override) Resolve(vals []any, argnames []string, idx int) string {
	if o == nil {
		return ValueSet(vals, argnames, idx)
	}
	if o.fn != nil {
		tokens := make([]string, len(vals))
		for i, v := range vals {
			if t := o.fn(v); t != "" {
				tokens[i] = t
				continue
			}
			name := ""
			if i < len(argnames) {
				name = argnames[i]
			}
			tokens[i] = Value(v, name, idx)
		}

		return strings.Join(tokens, "-")
	}

	return o.ids[idx]
}
