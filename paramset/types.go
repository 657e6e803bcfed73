// Package paramset defines the raw entry model, sentinel errors and the
// opaque Mark annotation shared by the whole pipeline.
package paramset

import "errors"

// ErrInconsistentArity indicates a decomposed value whose arity does not
// match the number of bound argument names.
var ErrInconsistentArity = errors.New("paramset: inconsistent argument count")

// Mark is an opaque annotation attached to a value or a whole case. The
// pipeline merges and forwards marks but never interprets Name or Args.
type Mark struct {
	Name string
	Args []any
}

// JoinMarks concatenates mark lists in order into a fresh slice.
// Duplicates are allowed and preserved.
func JoinMarks(lists ...[]Mark) []Mark {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	if n == 0 {
		return nil
	}
	out := make([]Mark, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}

	return out
}

// Entry is one raw entry of a parameter axis: either a bare value or an
// annotated entry carrying an explicit id and marks. Entries are value
// types; construct them with Val or Of and the With* methods.
type Entry struct {
	values    []any
	id        string
	hasID     bool
	marks     []Mark
	annotated bool
}

// Val wraps a bare value into an Entry. For an axis binding several
// argument names, a bare entry's value must be a []any of matching
// length (or a *Lazy producing one).
func Val(v any) Entry {
	return Entry{values: []any{v}}
}

// Of builds an annotated entry from one value per bound argument name.
func Of(values ...any) Entry {
	return Entry{values: values, annotated: true}
}

// WithID returns a copy of e carrying an explicit identifier.
func (e Entry) WithID(id string) Entry {
	e.id = id
	e.hasID = true

	return e
}

// WithMarks returns a copy of e with marks appended in order.
func (e Entry) WithMarks(marks ...Mark) Entry {
	e.marks = append(append([]Mark(nil), e.marks...), marks...)

	return e
}

// Annotated reports whether e carries its own id/marks/value triple.
func (e Entry) Annotated() bool { return e.annotated }

// Decomposed is the result of splitting one raw Entry.
//
// Value holds the single element when one argument name is bound, and a
// []any of exactly nbNames elements otherwise (or a *Lazy whose split is
// deferred).
type Decomposed struct {
	ID    string
	HasID bool
	Marks []Mark
	Value any
}
