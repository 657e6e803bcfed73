// Package product defines dimensions, combinations and sentinel errors
// for cartesian parameter expansion.
package product

import (
	"errors"
	"strings"

	"github.com/meekukin/casekit/caseid"
	"github.com/meekukin/casekit/paramset"
)

// Sentinel errors for product construction.
var (
	// ErrExplicitID indicates a per-entry explicit id inside a bulk
	// cartesian product.
	ErrExplicitID = errors.New("product: explicit entry id forbidden in cartesian product; " +
		"use traditional per-argument ids or a single global id source for the whole product, not both")
	// ErrNoDimensions indicates Build was called without any dimension.
	ErrNoDimensions = errors.New("product: at least one dimension required")
	// ErrBadNames indicates a dimension binding zero or blank argument names.
	ErrBadNames = errors.New("product: dimension must bind at least one non-blank argument name")
)

// Dimension is one independent parameter axis: raw entries bound to one
// or more argument names, in declared order.
type Dimension struct {
	Names   []string
	Entries []paramset.Entry
}

// NewDimension builds a Dimension from a comma-separated argument name
// list ("x" or "a,b") and its raw entries. Names are trimmed; blank
// names yield ErrBadNames.
func NewDimension(names string, entries ...paramset.Entry) (Dimension, error) {
	split := strings.Split(names, ",")
	out := make([]string, 0, len(split))
	for _, n := range split {
		n = strings.TrimSpace(n)
		if n == "" {
			return Dimension{}, ErrBadNames
		}
		out = append(out, n)
	}

	return Dimension{Names: out, Entries: entries}, nil
}

// Combination is one fully resolved row of the product: one value per
// bound argument name in declared order, the concatenated marks of its
// source entries in dimension order, and its final identifier.
// Combinations are never mutated after creation.
type Combination struct {
	ID     string
	Marks  []paramset.Mark
	Values []any
}

// Product is an ordered combination list together with the flattened
// argument names shared by every combination.
type Product struct {
	Names  []string
	Combos []Combination
}

// Option configures identifier resolution for Build and Expand.
type Option func(*options)

type options struct {
	override *caseid.Override
}

// WithIDs supplies a literal ordered token list, one per combination.
// The list length is checked against the combination count.
func WithIDs(ids ...string) Option {
	return func(o *options) { o.override = caseid.Literal(ids...) }
}

// WithIDFunc supplies a per-value identifier function applied to each
// argument value of a combination; results join with "-".
func WithIDFunc(fn func(v any) string) Option {
	return func(o *options) { o.override = caseid.FromFunc(fn) }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
