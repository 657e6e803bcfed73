// Package binder turns collected case descriptors into the deferred
// references a host execution engine consumes: lazy values for
// self-contained cases, external binding references for cases needing
// inputs they cannot supply themselves.
//
// What:
//
//   - LazyRef: a deferred, not-yet-evaluated value with an id and marks.
//   - FixtureRef: a reference into the binding table, created once per
//     (host scope, id) and looked up thereafter. Self-parametrization
//     axes ride along as annotations; the external runner expands them.
//   - Table: the process-wide binding table — init-on-first-use,
//     append-only for the process lifetime, never overwritten.
//   - Bind: the four-way dispatch over (self-parametrized, needs
//     external inputs), reusing the product builder to simulate exactly
//     the combinations axis expansion would produce.
//
// Why:
//
//   - Discovery must not execute case bodies; everything handed to the
//     host is deferred, and re-binding the same case is a lookup, not a
//     duplicate registration.
//
// Errors:
//
//   - ErrBindingCollision: two distinct declarations claim the same
//     binding identifier under one host scope. Never resolved silently.
//
// Concurrency: the table is the pipeline's only mutation point and is
// mutex-guarded; everything else here is pure.
package binder
