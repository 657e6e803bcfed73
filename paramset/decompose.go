package paramset

import "fmt"

// Decompose splits one raw entry into its (id, marks, value) triple for
// an axis binding nbNames argument names.
//
// Annotated entries surface their own id and marks; the carried value is
// unwrapped to its single element when nbNames == 1, and kept as an
// exact nbNames-slice otherwise. Bare entries yield no id and no marks.
//
// Returns ErrInconsistentArity when nbNames > 1 and the value's arity
// does not equal nbNames. A *Lazy value cannot be length-checked without
// evaluating it, so its split is deferred to the consumer.
//
// Complexity: O(nbNames) time, O(1) extra space.
func Decompose(nbNames int, e Entry) (Decomposed, error) {
	if nbNames < 1 {
		return Decomposed{}, fmt.Errorf("%w: %d argument names bound", ErrInconsistentArity, nbNames)
	}

	if e.annotated {
		if len(e.values) != nbNames {
			return Decomposed{}, fmt.Errorf("%w: %d values found while the number of parameters is %d",
				ErrInconsistentArity, len(e.values), nbNames)
		}
		d := Decomposed{ID: e.id, HasID: e.hasID, Marks: e.marks}
		if nbNames == 1 {
			d.Value = e.values[0]
		} else {
			d.Value = append([]any(nil), e.values...)
		}

		return d, nil
	}

	// bare value
	v := e.values[0]
	if nbNames > 1 {
		switch x := v.(type) {
		case *Lazy:
			// deferred tuple: split lazily at product time
		case []any:
			if len(x) != nbNames {
				return Decomposed{}, fmt.Errorf("%w: %d values found while the number of parameters is %d",
					ErrInconsistentArity, len(x), nbNames)
			}
		default:
			return Decomposed{}, fmt.Errorf("%w: single value bound to %d parameters", ErrInconsistentArity, nbNames)
		}
	}

	return Decomposed{Value: v}, nil
}
