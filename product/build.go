package product

import (
	"fmt"
	"strconv"

	"github.com/meekukin/casekit/paramset"
)

// Build combines N independent dimensions into their full cross
// product. Composition is left-first: the first dimension is combined
// against the recursively built product of the remaining ones, so
// combination order is row-major in declaration order.
//
// Per-entry marks accumulate by concatenation in dimension order.
// Entries carrying their own explicit id are rejected with
// ErrExplicitID. Deferred multi-values (*paramset.Lazy bound to several
// names) are split into lazily indexed components, never evaluated.
//
// Final identifiers come from the global override when supplied, and
// from derived value tokens otherwise. Colliding derived tokens are
// suffixed with the combination index.
func Build(dims []Dimension, opts ...Option) (Product, error) {
	if len(dims) == 0 {
		return Product{}, ErrNoDimensions
	}
	names := make([]string, 0, len(dims))
	for _, d := range dims {
		if len(d.Names) == 0 {
			return Product{}, ErrBadNames
		}
		for _, n := range d.Names {
			if n == "" {
				return Product{}, ErrBadNames
			}
			names = append(names, n)
		}
	}

	rows, err := cross(dims)
	if err != nil {
		return Product{}, err
	}

	o := buildOptions(opts)
	if err = o.override.Check(len(rows)); err != nil {
		return Product{}, err
	}

	combos := make([]Combination, len(rows))
	derived := make([]bool, len(rows))
	for i, r := range rows {
		combos[i] = Combination{
			ID:     o.override.Resolve(r.values, names, i),
			Marks:  r.marks,
			Values: r.values,
		}
		derived[i] = o.override.Derived()
	}
	disambiguate(combos, derived)

	return Product{Names: names, Combos: combos}, nil
}

// disambiguate appends the combination index to derived tokens that
// collide, so structurally different values sharing a textual token
// (int 1 and string "1", say) keep distinct identifiers. Verbatim
// caller-supplied ids are never touched.
func disambiguate(combos []Combination, derived []bool) {
	counts := make(map[string]int, len(combos))
	for _, c := range combos {
		counts[c.ID]++
	}
	for i := range combos {
		if derived[i] && counts[combos[i].ID] > 1 {
			combos[i].ID += strconv.Itoa(i)
		}
	}
}

// row is one partially assembled combination during recursion.
type row struct {
	marks  []paramset.Mark
	values []any
}

// cross performs the left-first recursive product: decompose every
// entry of dims[0], then pair it with each row of the product of
// dims[1:].
func cross(dims []Dimension) ([]row, error) {
	var sub []row
	if len(dims) > 1 {
		var err error
		if sub, err = cross(dims[1:]); err != nil {
			return nil, err
		}
	}

	head := dims[0]
	nb := len(head.Names)
	var result []row
	for _, e := range head.Entries {
		d, err := paramset.Decompose(nb, e)
		if err != nil {
			return nil, err
		}
		if d.HasID {
			return nil, fmt.Errorf("%w (id %q)", ErrExplicitID, d.ID)
		}

		items, err := splitValue(nb, d.Value)
		if err != nil {
			return nil, err
		}

		if len(dims) == 1 {
			result = append(result, row{marks: d.Marks, values: items})
			continue
		}
		for _, s := range sub {
			result = append(result, row{
				marks:  paramset.JoinMarks(d.Marks, s.marks),
				values: concat(items, s.values),
			})
		}
	}

	return result, nil
}

// splitValue turns a decomposed value into one item per bound argument
// name. Deferred tuples split into lazily indexed components.
func splitValue(nb int, v any) ([]any, error) {
	if nb == 1 {
		return []any{v}, nil
	}
	switch x := v.(type) {
	case *paramset.Lazy:
		parts := x.Items(nb)
		items := make([]any, nb)
		for i, p := range parts {
			items[i] = p
		}

		return items, nil
	case []any:
		return x, nil
	default:
		// Decompose already validated concrete arities.
		return nil, fmt.Errorf("%w: single value bound to %d parameters", paramset.ErrInconsistentArity, nb)
	}
}

func concat(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

// Expand resolves a single axis in the traditional per-entry style:
// explicit entry ids are honored and take precedence over a global
// override, which in turn beats derived value tokens.
func Expand(dim Dimension, opts ...Option) (Product, error) {
	nb := len(dim.Names)
	if nb == 0 {
		return Product{}, ErrBadNames
	}
	for _, n := range dim.Names {
		if n == "" {
			return Product{}, ErrBadNames
		}
	}

	o := buildOptions(opts)
	if err := o.override.Check(len(dim.Entries)); err != nil {
		return Product{}, err
	}

	combos := make([]Combination, 0, len(dim.Entries))
	derived := make([]bool, 0, len(dim.Entries))
	for i, e := range dim.Entries {
		d, err := paramset.Decompose(nb, e)
		if err != nil {
			return Product{}, err
		}
		items, err := splitValue(nb, d.Value)
		if err != nil {
			return Product{}, err
		}

		id, fromValues := d.ID, false
		if !d.HasID {
			id = o.override.Resolve(items, dim.Names, i)
			fromValues = o.override.Derived()
		}
		combos = append(combos, Combination{ID: id, Marks: d.Marks, Values: items})
		derived = append(derived, fromValues)
	}
	disambiguate(combos, derived)

	return Product{Names: append([]string(nil), dim.Names...), Combos: combos}, nil
}
