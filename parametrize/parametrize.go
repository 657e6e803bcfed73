package parametrize

import (
	"log/slog"

	"github.com/meekukin/casekit/binder"
	"github.com/meekukin/casekit/paramset"
	"github.com/meekukin/casekit/product"
	"github.com/meekukin/casekit/registry"
)

// Axis builds one parameter dimension from a comma-separated argument
// name list ("x" or "a,b"), for declaring self-parametrized cases.
func Axis(names string, entries ...paramset.Entry) (product.Dimension, error) {
	return product.NewDimension(names, entries...)
}

// Argvalue is one final entry handed to the host execution engine,
// owned by the facade until handoff and never mutated afterwards.
type Argvalue struct {
	ID    string
	Marks []paramset.Mark
	Ref   binder.Ref
}

// Option configures the facade.
type Option func(*cfg)

type cfg struct {
	regOpts []registry.Option
	table   *binder.Table
}

// WithPrefix overrides the case name prefix.
func WithPrefix(prefix string) Option {
	return func(c *cfg) { c.regOpts = append(c.regOpts, registry.WithPrefix(prefix)) }
}

// WithGlob filters cases by identifier glob ("*" is the only wildcard).
func WithGlob(pattern string) Option {
	return func(c *cfg) { c.regOpts = append(c.regOpts, registry.WithGlob(pattern)) }
}

// WithTags filters cases by tag query.
func WithTags(q registry.TagQuery) Option {
	return func(c *cfg) { c.regOpts = append(c.regOpts, registry.WithTags(q)) }
}

// WithFilter adds an arbitrary case predicate, evaluated last.
func WithFilter(fn func(registry.CaseDescriptor) bool) Option {
	return func(c *cfg) { c.regOpts = append(c.regOpts, registry.WithFilter(fn)) }
}

// WithLogger sets the warning sink for non-fatal collection events.
func WithLogger(l *slog.Logger) Option {
	return func(c *cfg) { c.regOpts = append(c.regOpts, registry.WithLogger(l)) }
}

// WithTable routes external bindings into a specific table instead of
// the process-wide default.
func WithTable(t *binder.Table) Option {
	return func(c *cfg) { c.table = t }
}

// WithCases expands all matching cases for host into the final ordered
// argvalue list: registry collection (prefix, then glob/tags/predicate
// on finalized ids), then binding (lazy references, axis expansion,
// external bindings), flattened in declaration order.
//
// Collection and binding are strictly the composition of
// registry.Collect and binder.Bind; nothing here evaluates a case.
func WithCases(host string, providers []registry.Provider, opts ...Option) ([]Argvalue, error) {
	c := cfg{table: binder.Default()}
	for _, opt := range opts {
		opt(&c)
	}

	descs, err := registry.Collect(host, providers, c.regOpts...)
	if err != nil {
		return nil, err
	}

	var out []Argvalue
	for _, d := range descs {
		refs, err := c.table.Bind(d)
		if err != nil {
			return nil, err
		}
		for _, r := range refs {
			out = append(out, Argvalue{ID: r.RefID(), Marks: r.RefMarks(), Ref: r})
		}
	}

	return out, nil
}
