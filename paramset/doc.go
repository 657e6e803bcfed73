// Package paramset models raw parameter entries and decomposes them
// into their (identifier, marks, value) components.
//
// What:
//
//   - Mark: an opaque annotation attached to a value or a whole case.
//     The engine never interprets marks; it only concatenates and
//     forwards them, preserving order and duplicates.
//   - Entry: one raw axis entry — either a bare value (Val) or an
//     annotated entry (Of) carrying its own id and marks, the analogue
//     of an explicitly decorated parameter.
//   - Lazy / LazyItem: deferred producers evaluated at most once, and
//     lazily indexed components of a deferred tuple.
//   - Decompose: splits one Entry into a Decomposed triple, unwrapping
//     multi-argument tuples when several argument names are bound.
//
// Why:
//
//   - Downstream components (cartesian products, registries, binders)
//     need a single normalized shape for "a value, possibly annotated",
//     without ever forcing evaluation of deferred values.
//
// Errors:
//
//   - ErrInconsistentArity: the decomposed value's arity does not equal
//     the number of bound argument names. Never silently truncated.
//
// All operations are synchronous and allocation-light; Lazy evaluation
// is guarded by sync.Once and happens only when the host engine asks.
package paramset
