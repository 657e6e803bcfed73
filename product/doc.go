// Package product builds the full cartesian product across independent
// parameter dimensions, and expands single axes in the traditional
// per-entry style.
//
// What:
//
//   - Dimension: an ordered list of raw entries bound to one or more
//     argument names ("x" or "a,b").
//   - Build: crosses N dimensions into the full product — size equals
//     the product of the dimension sizes — concatenating marks per
//     combination in dimension order and splitting deferred multi-values
//     lazily. Composition direction is left-first: the first dimension
//     is combined against the recursively built product of the rest.
//   - Expand: traditional expansion of a single axis, where per-entry
//     explicit identifiers are honored with the documented precedence
//     (explicit id > global override > derived token).
//
// Why:
//
//   - Reproduces, deterministically and without executing any case
//     code, the combination semantics a host engine would apply to
//     directly declared parametrization.
//
// Errors:
//
//   - ErrExplicitID: an individual entry supplies its own id while the
//     product is built in bulk mode. Use either traditional
//     per-argument ids (Expand) or a single global id source for the
//     whole product, not both.
//   - ErrNoDimensions: Build called with an empty dimension list.
//   - ErrBadNames: a dimension binds zero or blank argument names.
//   - paramset.ErrInconsistentArity and caseid.ErrIDCount pass through.
//
// Complexity: O(Π|dimᵢ| × Σnamesᵢ) time and space for Build — the
// output itself is that large.
package product
