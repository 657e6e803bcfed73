// Package profile loads versioned YAML collection profiles — the
// prefix, glob and tag filters a team keeps alongside its test suites —
// and converts them into registry options.
//
// What:
//
//   - Parse / Load: YAML in, schema-validated Profile out. Profiles are
//     validated against an embedded JSON schema before decoding, so
//     shape errors carry precise schema paths.
//   - Profile.Options: the registry option list equivalent to the
//     profile's filters. The tag match mode is spelled out in the file
//     ("any" or "all"), never inferred.
//
// Errors:
//
//   - ErrInvalidProfile wraps YAML syntax errors and schema violations.
//
// The schema compiles once per process and is reused thereafter.
package profile
