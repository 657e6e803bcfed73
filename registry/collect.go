package registry

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// collectCfg holds validated collection options.
type collectCfg struct {
	prefix    string
	glob      *regexp.Regexp
	tags      TagQuery
	filter    func(CaseDescriptor) bool
	filterSet bool
	logger    *slog.Logger
}

// Option configures Collect.
type Option func(*rawCfg)

type rawCfg struct {
	prefix    *string
	glob      *string
	tags      TagQuery
	filter    func(CaseDescriptor) bool
	filterSet bool
	logger    *slog.Logger
}

// WithPrefix overrides the case name prefix (default "case_").
func WithPrefix(prefix string) Option {
	return func(c *rawCfg) { c.prefix = &prefix }
}

// WithGlob filters by resolved identifier using a glob-like pattern in
// which "*" is the only wildcard ("*" is substituted by ".*" and the
// result matched anchored against the whole id).
func WithGlob(pattern string) Option {
	return func(c *rawCfg) { c.glob = &pattern }
}

// WithTags filters by tag query; the match mode is explicit in the
// query, never inferred.
func WithTags(q TagQuery) Option {
	return func(c *rawCfg) { c.tags = q }
}

// WithFilter adds an arbitrary predicate, evaluated last, after
// identifiers are finalized.
func WithFilter(fn func(CaseDescriptor) bool) Option {
	return func(c *rawCfg) {
		c.filter = fn
		c.filterSet = true
	}
}

// WithLogger sets the warning sink for non-fatal collection events.
func WithLogger(l *slog.Logger) Option {
	return func(c *rawCfg) { c.logger = l }
}

func resolveCfg(opts []Option) (*collectCfg, error) {
	var raw rawCfg
	for _, opt := range opts {
		opt(&raw)
	}

	cfg := &collectCfg{prefix: DefaultPrefix, tags: raw.tags, logger: raw.logger}
	if raw.prefix != nil {
		if *raw.prefix == "" {
			return nil, fmt.Errorf("%w: prefix must be a non-empty string", ErrInvalidFilter)
		}
		cfg.prefix = *raw.prefix
	}
	if raw.glob != nil {
		if *raw.glob == "" {
			return nil, fmt.Errorf("%w: glob must be a non-empty pattern", ErrInvalidFilter)
		}
		re, err := regexp.Compile("^(?:" + strings.ReplaceAll(*raw.glob, "*", ".*") + ")$")
		if err != nil {
			return nil, fmt.Errorf("%w: glob %q: %v", ErrInvalidFilter, *raw.glob, err)
		}
		cfg.glob = re
	}
	if raw.filterSet {
		if raw.filter == nil {
			return nil, fmt.Errorf("%w: predicate must be a non-nil func", ErrInvalidFilter)
		}
		cfg.filter = raw.filter
		cfg.filterSet = true
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg, nil
}

// Collect resolves providers into an ordered, filtered list of case
// descriptors for the given host module. Candidates are selected by
// prefix during extraction; glob, tag query and predicate apply last,
// after identifiers are finalized, to simplify debugging. Result order
// follows declaration position (stable), not filter application order.
//
// Collect never calls a case producer.
func Collect(host string, providers []Provider, opts ...Option) ([]CaseDescriptor, error) {
	cfg, err := resolveCfg(opts)
	if err != nil {
		return nil, err
	}

	var out []CaseDescriptor
	for _, p := range providers {
		descs, err := resolveProvider(host, p, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, descs...)
	}

	return applyFilters(out, cfg), nil
}

func resolveProvider(host string, p Provider, cfg *collectCfg) ([]CaseDescriptor, error) {
	switch p.kind {
	case kindFunc:
		if p.c == nil || p.c.Producer == nil {
			return nil, fmt.Errorf("%w: case %q has no producer", ErrUnsupportedProvider, nameOf(p.c))
		}
		d := makeDescriptor(*p.c, host, nil, Order{}, cfg)

		return []CaseDescriptor{d}, nil

	case kindContainer:
		if p.cont == nil {
			return nil, fmt.Errorf("%w: nil container", ErrUnsupportedProvider)
		}
		if p.cont.HasInitHook() {
			warnInitHook(cfg.logger, p.cont.name)

			return nil, nil
		}
		flat := flattenContainer(p.cont.name, p.cont, cfg)
		for i := range flat {
			flat[i].Order = Order{Line: 0, Index: i, Total: len(flat)}
		}

		return flat, nil

	case kindModuleSet:
		if p.set == nil {
			return nil, fmt.Errorf("%w: nil module set", ErrUnsupportedProvider)
		}

		return extractModule(p.set, cfg), nil

	case kindModuleName:
		name := resolveModuleName(host, p.module)
		m, ok := LookupModule(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (host %q)", ErrUnknownModule, name, host)
		}

		return extractModule(m, cfg), nil

	case kindThisModule:
		m, ok := LookupModule(host)
		if !ok {
			return nil, fmt.Errorf("%w: %q (host %q)", ErrUnknownModule, host, host)
		}

		return extractModule(m, cfg), nil

	case kindAuto:
		m, err := discoverSibling(host)
		if err != nil {
			return nil, err
		}

		return extractModule(m, cfg), nil

	case kindAutoAlt:
		m, err := discoverSiblingAlt(host)
		if err != nil {
			return nil, err
		}

		return extractModule(m, cfg), nil

	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedProvider, p.kind)
	}
}

func nameOf(c *Case) string {
	if c == nil {
		return "<nil>"
	}

	return c.Name
}

// resolveModuleName resolves "." and ".sub" references against host.
func resolveModuleName(host, name string) string {
	if name == "." {
		return host
	}
	if strings.HasPrefix(name, ".") {
		if i := strings.LastIndex(host, "."); i >= 0 {
			return host[:i] + name
		}

		return name[1:]
	}

	return name
}

// discoverSibling attempts the two naming conventions in order:
// "<host>_cases", then "<pkg>.cases_<stem>" for hosts whose base name
// carries the "test_" stem prefix.
func discoverSibling(host string) (*ModuleSet, error) {
	first := host + "_cases"
	if m, ok := LookupModule(first); ok {
		return m, nil
	}

	second := altSiblingName(host)
	if second != "" {
		if m, ok := LookupModule(second); ok {
			return m, nil
		}
	}

	return nil, fmt.Errorf("%w: unable to import %q or %q for host %q; register the cases module or pass providers explicitly",
		ErrAutoDiscovery, first, second, host)
}

// discoverSiblingAlt resolves only the "<pkg>.cases_<stem>" convention,
// with no fallback to "<host>_cases".
func discoverSiblingAlt(host string) (*ModuleSet, error) {
	name := altSiblingName(host)
	if name == "" {
		return nil, fmt.Errorf("%w: host %q has no %q stem prefix, cannot derive a cases module name",
			ErrAutoDiscovery, host, hostStemPrefix)
	}
	if m, ok := LookupModule(name); ok {
		return m, nil
	}

	return nil, fmt.Errorf("%w: unable to import %q for host %q; register the cases module or pass providers explicitly",
		ErrAutoDiscovery, name, host)
}

// altSiblingName derives "<pkg>.cases_<stem>" from a host whose base
// name carries the "test_" stem prefix, or "" when it does not.
func altSiblingName(host string) string {
	pkg, base := "", host
	if i := strings.LastIndex(host, "."); i >= 0 {
		pkg, base = host[:i], host[i+1:]
	}
	if !strings.HasPrefix(base, hostStemPrefix) {
		return ""
	}
	name := "cases_" + base[len(hostStemPrefix):]
	if pkg != "" {
		name = pkg + "." + name
	}

	return name
}

// extractModule walks a module's owned members in declaration order:
// prefixed cases at their own line, containers expanded in place with
// fractional interleaving. Imported/re-exported members are skipped.
func extractModule(m *ModuleSet, cfg *collectCfg) []CaseDescriptor {
	var out []CaseDescriptor
	for _, mem := range m.Members() {
		if mem.Origin != "" && mem.Origin != m.name {
			continue
		}
		switch {
		case mem.Container != nil:
			if mem.Container.HasInitHook() {
				warnInitHook(cfg.logger, mem.Container.name)
				continue
			}
			flat := flattenContainer(m.name+"."+mem.Container.name, mem.Container, cfg)
			for i := range flat {
				flat[i].Order = Order{Line: mem.Line, Index: i, Total: len(flat)}
			}
			out = append(out, flat...)

		case mem.Case != nil:
			if !strings.HasPrefix(mem.Name, cfg.prefix) {
				continue
			}
			d := makeDescriptor(*mem.Case, m.name, nil, Order{Line: mem.Line}, cfg)
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order.Less(out[j].Order) })

	return out
}

// flattenContainer recursively expands a container into its prefixed
// member cases, in declaration order, capturing the container receiver
// explicitly. Nested containers with an instantiation hook are skipped
// with a warning; other nested containers splice in place.
func flattenContainer(scope string, cs *ContainerSet, cfg *collectCfg) []CaseDescriptor {
	var out []CaseDescriptor
	for _, mem := range cs.Members() {
		switch {
		case mem.Container != nil:
			if mem.Container.HasInitHook() {
				warnInitHook(cfg.logger, mem.Container.name)
				continue
			}
			out = append(out, flattenContainer(scope+"."+mem.Container.name, mem.Container, cfg)...)

		case mem.Case != nil:
			if !strings.HasPrefix(mem.Name, cfg.prefix) {
				continue
			}
			out = append(out, makeDescriptor(*mem.Case, scope, cs.recv, Order{}, cfg))
		}
	}

	return out
}

// makeDescriptor finalizes one case into its immutable descriptor.
func makeDescriptor(c Case, host string, recv any, ord Order, cfg *collectCfg) CaseDescriptor {
	producer := c.Producer
	if recv != nil {
		inner := producer
		producer = func(args ...any) any {
			return inner(append([]any{recv}, args...)...)
		}
	}

	return CaseDescriptor{
		ID:       deriveID(c, cfg.prefix),
		Name:     c.Name,
		Host:     host,
		Order:    ord,
		Marks:    c.Marks,
		Tags:     c.Tags,
		Producer: producer,
		Receiver: recv,
		Axes:     c.Axes,
		Needs:    c.Needs,
	}
}

// deriveID resolves the case identifier: explicit override first, then
// the member name with the collection prefix stripped.
func deriveID(c Case, prefix string) string {
	if c.ID != "" {
		return c.ID
	}
	id := strings.TrimPrefix(c.Name, prefix)
	if id == "" {
		id = c.Name
	}

	return id
}

// applyFilters evaluates glob, tag query and predicate against the
// finalized descriptors, preserving order.
func applyFilters(descs []CaseDescriptor, cfg *collectCfg) []CaseDescriptor {
	if cfg.glob == nil && cfg.tags.Empty() && !cfg.filterSet {
		return descs
	}
	out := descs[:0:0]
	for _, d := range descs {
		if cfg.glob != nil && !cfg.glob.MatchString(d.ID) {
			continue
		}
		if !cfg.tags.Matches(d.Tags) {
			continue
		}
		if cfg.filterSet && !cfg.filter(d) {
			continue
		}
		out = append(out, d)
	}

	return out
}

func warnInitHook(l *slog.Logger, name string) {
	l.Warn("cannot collect cases container because it declares its own instantiation hook",
		slog.String("container", name))
}
