// Package registry discovers case declarations from providers and
// produces the ordered, filtered list of case descriptors the binder
// consumes.
//
// What:
//
//   - Case: one declared case — a named deferred producer with optional
//     explicit id, tags, marks, self-parametrization axes and required
//     external input names.
//   - Provider: a tagged variant resolved once at the registry boundary:
//     Func (explicit case), Container (case-bearing group), Module /
//     ModuleOf (module reference by name or value), ThisModule, and Auto
//     (conventionally named sibling module discovery).
//   - Enumerator: the injected object-graph walker. The registry never
//     introspects members itself; ModuleSet and ContainerSet are the
//     provided implementations, with declaration lines supplied by the
//     declaring side.
//   - Collect: selection by prefix, then glob / tag query / predicate
//     applied after identifiers are finalized, result ordered by
//     declaration position with fractional interleaving for cases
//     nested in containers.
//
// Why:
//
//   - Reproduces host-engine collection semantics (ordering, default
//     identifiers, warning paths) deterministically and without ever
//     calling a case producer.
//
// Ordering:
//
//   - Top-level cases sort by declaration line. A container's cases
//     occupy the container's own line plus the exact fraction i/total,
//     so they interleave correctly with sibling top-level cases without
//     colliding.
//
// Errors:
//
//   - ErrInvalidFilter: a filter argument (prefix, glob, predicate) has
//     the wrong shape.
//   - ErrUnsupportedProvider: a provider is neither a case, a container,
//     nor a module reference.
//   - ErrUnknownModule: a named module was never registered.
//   - ErrAutoDiscovery: neither naming convention resolves; the message
//     names both attempted modules and the originating host.
//
// Non-fatal path: a container declaring its own instantiation hook is
// skipped with a warning (slog) and contributes zero cases.
package registry
