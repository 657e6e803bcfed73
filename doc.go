// Package casekit expands declarative test-case declarations into the
// concrete, ordered set of parameter combinations a test runner must
// execute — without ever calling user case code during discovery.
//
// 🚀 What is casekit?
//
//	A small, deterministic parametrization engine that brings together:
//		• Identifier generation: readable, stable tokens for any value
//		• Parameter-set decomposition: (id, marks, value) from raw entries
//		• Cartesian products: cross N axes, merging marks per combination
//		• Case registries: prefix / tag / glob / predicate filtering in
//		  declaration order, with fractional interleaving for nested groups
//		• Lazy references & fixture bindings: deferred evaluation, handed
//		  to the host engine only when fully resolved
//
// ✨ Why choose casekit?
//
//   - Deterministic – identical inputs always yield identical identifiers
//   - Lazy – case producers run when the host executes them, never before
//   - Fail-fast – inconsistent arities, id clashes and binding collisions
//     surface as descriptive sentinel errors at collection time
//   - Explicit – tag matching, product direction and binding scopes are
//     documented parameters, not inferred behavior
//
// Under the hood, everything is organized under focused subpackages:
//
//	caseid/      — pure value→token identifier derivation & overrides
//	paramset/    — raw entries, marks, lazy values, the decomposer
//	product/     — cartesian product & traditional single-axis expansion
//	registry/    — providers, enumerators, filters, declaration order
//	binder/      — lazy references and the process-wide binding table
//	parametrize/ — the facade consumed by host execution engines
//	profile/     — YAML collection profiles validated against a schema
//
// Quick sketch:
//
//	providers ──collect──▶ descriptors ──bind──▶ lazy refs
//	             (filter)      (order)    (expand axes)
//
// Dive into each package's doc.go for contracts, errors and complexity.
//
//	go get github.com/meekukin/casekit
package casekit
