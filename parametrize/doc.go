// Package parametrize is the facade consumed by host execution
// engines: it orchestrates case collection, decomposition and binding
// into one final ordered argvalue list.
//
// What:
//
//   - WithCases: collect matching cases from providers, bind each into
//     deferred references, and flatten the result in declaration order.
//     The host engine receives only fully resolved entries — one
//     (identifier, marks, reference) triple per combination.
//
// Why:
//
//   - A single entry point keeps the pipeline's guarantees in one
//     place: nothing is evaluated during expansion, identifiers are
//     stable across runs, and failures surface at collection time.
//
// The pipeline is synchronous and deterministic; its only side effect
// is external-binding registration in the binder table.
package parametrize
