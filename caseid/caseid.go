// Package caseid derives deterministic string identifiers for values
// used as test parameters. See doc.go for the full contract.
package caseid

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Identified is implemented by values that carry their own identifier,
// such as deferred lazy values. When a value implements Identified, its
// CaseID is used verbatim instead of a derived token.
type Identified interface {
	CaseID() string
}

// Value maps one value plus its argument name and positional index to a
// readable token. It is pure, total and deterministic.
//
// Token rules, in order:
//   - Identified values: their own CaseID.
//   - nil → "nil".
//   - bool → "true"/"false".
//   - printable ASCII strings pass through unchanged.
//   - signed/unsigned integers → decimal.
//   - floats → shortest 'g' representation.
//   - []byte and non-printable strings → lowercase hex.
//   - fmt.Stringer → its String(), when printable.
//   - anything else → argname + idx.
//
// Complexity: O(len(token)) time, O(len(token)) space. Never panics.
func Value(v any, argname string, idx int) string {
	if id, ok := v.(Identified); ok {
		return id.CaseID()
	}
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(x)
	case string:
		if printableASCII(x) {
			return x
		}
		return hex.EncodeToString([]byte(x))
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []byte:
		return hex.EncodeToString(x)
	}
	if s, ok := v.(fmt.Stringer); ok {
		if t := s.String(); printableASCII(t) {
			return t
		}
	}
	// unrepresentable value: fall back to a positional token
	return argname + strconv.Itoa(idx)
}

// ValueSet derives the identifier of a combination spanning several
// argument names: per-argument tokens joined with "-" in declared order.
// len(vals) must equal len(argnames); extra entries on either side are
// ignored rather than invented.
//
// Complexity: O(Σ len(tokenᵢ)).
func ValueSet(vals []any, argnames []string, idx int) string {
	n := len(vals)
	if len(argnames) < n {
		n = len(argnames)
	}
	tokens := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tokens = append(tokens, Value(vals[i], argnames[i], idx))
	}

	return strings.Join(tokens, "-")
}

// printableASCII reports whether s contains only printable ASCII runes.
func printableASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return false
		}
	}

	return true
}
