package binder

import (
	"fmt"
	"sync"

	"github.com/meekukin/casekit/paramset"
	"github.com/meekukin/casekit/product"
	"github.com/meekukin/casekit/registry"
)

// Table is a process-wide binding table keyed by (host scope,
// identifier). It is append-only: entries are looked up or newly
// inserted, never removed or overwritten.
type Table struct {
	mu      sync.Mutex
	entries map[tableKey]*Binding
}

type tableKey struct {
	host string
	id   string
}

// NewTable creates an empty binding table. Most callers want Default.
func NewTable() *Table {
	return &Table{entries: map[tableKey]*Binding{}}
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table, created on first use.
func Default() *Table {
	defaultOnce.Do(func() { defaultTable = NewTable() })

	return defaultTable
}

// Lookup resolves a binding by host scope and identifier.
func (t *Table) Lookup(host, id string) (*Binding, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	b, ok := t.entries[tableKey{host: host, id: id}]

	return b, ok
}

// register inserts the descriptor's binding if absent. Re-registering
// the same declaration reuses the existing entry; a different
// declaration under the same key is a collision.
func (t *Table) register(d registry.CaseDescriptor) (*Binding, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := tableKey{host: d.Host, id: d.ID}
	if existing, ok := t.entries[key]; ok {
		if existing.Source != d.Name {
			return nil, fmt.Errorf("%w: id %q in host %q claimed by both %q and %q",
				ErrBindingCollision, d.ID, d.Host, existing.Source, d.Name)
		}

		return existing, nil
	}

	b := &Binding{ID: d.ID, Host: d.Host, Source: d.Name, Producer: d.Producer, Axes: d.Axes}
	t.entries[key] = b

	return b, nil
}

// Bind turns one case descriptor into its ordered deferred references:
//
//   - plain case: one LazyRef over the zero-argument deferred call;
//   - case needing external inputs: one FixtureRef, registered
//     idempotently (self-parametrization axes forwarded, not expanded);
//   - self-parametrized case: one LazyRef per combination the case's
//     own axes produce, with identifier "<caseID>-<combinationID>" and
//     marks = case marks followed by combination marks.
//
// A single axis expands in traditional mode so per-entry explicit ids
// are honored; several axes go through the bulk cartesian product.
// Nothing is evaluated during binding.
func (t *Table) Bind(d registry.CaseDescriptor) ([]Ref, error) {
	switch {
	case d.RequiresBinding():
		if _, err := t.register(d); err != nil {
			return nil, err
		}

		return []Ref{FixtureRef{ID: d.ID, Host: d.Host, Marks: d.Marks, Axes: d.Axes}}, nil

	case d.SelfParametrized():
		p, err := expandAxes(d.Axes)
		if err != nil {
			return nil, fmt.Errorf("binder: expanding case %q: %w", d.ID, err)
		}
		refs := make([]Ref, len(p.Combos))
		for i, c := range p.Combos {
			marks := paramset.JoinMarks(d.Marks, c.Marks)
			refs[i] = LazyRef{paramset.NewLazy(d.ID+"-"+c.ID, deferredCall(d.Producer, c.Values), marks...)}
		}

		return refs, nil

	default:
		return []Ref{LazyRef{paramset.NewLazy(d.ID, deferredCall(d.Producer, nil), d.Marks...)}}, nil
	}
}

// Bind dispatches on the process-wide Default table.
func Bind(d registry.CaseDescriptor) ([]Ref, error) {
	return Default().Bind(d)
}

func expandAxes(axes []product.Dimension) (product.Product, error) {
	if len(axes) == 1 {
		return product.Expand(axes[0])
	}

	return product.Build(axes)
}

// deferredCall partially applies values to the producer without
// evaluating anything: deferred components resolve when the host engine
// finally invokes the call.
func deferredCall(p registry.Producer, values []any) func() any {
	return func() any {
		args := make([]any, len(values))
		for i, v := range values {
			switch x := v.(type) {
			case *paramset.Lazy:
				args[i] = x.Get()
			case *paramset.LazyItem:
				args[i] = x.Get()
			default:
				args[i] = v
			}
		}

		return p(args...)
	}
}
