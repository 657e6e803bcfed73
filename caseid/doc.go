// Package caseid derives short, readable, collision-resistant string
// identifiers for parameter values, mirroring the convention the host
// execution engine uses for directly declared parametrization so that
// test report keys stay consistent either way.
//
// What:
//
//   - Value(v, argname, idx) maps one value to a deterministic token.
//   - ValueSet joins per-argument tokens with "-" in declared order.
//   - Override carries a caller-supplied global id source for a whole
//     axis: a literal, length-checked token list, or a per-value func.
//
// Why:
//
//   - Identifiers are test report keys; they must be stable across runs
//     given identical inputs, and readable enough to select with -run.
//
// Precedence (resolved by the consumers of this package, highest first):
//
//  1. an identifier explicitly attached to the individual entry,
//  2. a global Override for the whole axis,
//  3. the value/index-derived token produced here.
//
// Errors:
//
//   - ErrIDCount: a literal Override's length differs from the number of
//     combinations it must label.
//
// All functions are pure, total and deterministic: every representable
// value yields a token; values no rule covers fall back to argname+idx.
package caseid
