package registry

import (
	"sort"
	"sync"
)

// Member is one raw candidate enumerated by an object-graph walker.
// Exactly one of Case or Container is set.
type Member struct {
	Name string
	// Line is the declaration position within the enumerating scope.
	Line int
	// Origin names the declaring module when the member was imported or
	// re-exported from elsewhere; such members are excluded during
	// module scanning to avoid duplicate collection across modules.
	Origin    string
	Case      *Case
	Container *ContainerSet
}

// Enumerator is the injected object-graph walker: it lists raw members
// of a container in declaration order. The registry performs no member
// introspection of its own.
type Enumerator interface {
	// ScopeName identifies the enumerated scope (module path or
	// container name); it keys external bindings created by its cases.
	ScopeName() string
	// Members returns raw candidates with their declaration lines.
	Members() []Member
}

// ModuleSet is the module-shaped Enumerator: an ordered collection of
// case declarations registered under a module path.
type ModuleSet struct {
	name    string
	members []Member
}

// NewModuleSet creates an empty module set named by its import path.
func NewModuleSet(name string) *ModuleSet {
	return &ModuleSet{name: name}
}

// ScopeName returns the module path.
func (m *ModuleSet) ScopeName() string { return m.name }

// Add declares a case at the given line.
func (m *ModuleSet) Add(line int, c Case) *ModuleSet {
	cc := c
	m.members = append(m.members, Member{Name: c.Name, Line: line, Case: &cc})

	return m
}

// AddContainer declares a nested case container at the given line.
func (m *ModuleSet) AddContainer(line int, cs *ContainerSet) *ModuleSet {
	m.members = append(m.members, Member{Name: cs.name, Line: line, Container: cs})

	return m
}

// AddImported declares a member re-exported from another module; module
// scanning skips it, mirroring ownership-restricted enumeration.
func (m *ModuleSet) AddImported(line int, origin string, c Case) *ModuleSet {
	cc := c
	m.members = append(m.members, Member{Name: c.Name, Line: line, Origin: origin, Case: &cc})

	return m
}

// Members returns the declarations sorted by line, stable.
func (m *ModuleSet) Members() []Member {
	out := append([]Member(nil), m.members...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Line < out[j].Line })

	return out
}

// ContainerSet is the class-shaped Enumerator: a named group of cases,
// possibly nested, with an optional captured receiver.
type ContainerSet struct {
	name     string
	initHook bool
	recv     any
	members  []Member
}

// ContainerOption configures a ContainerSet.
type ContainerOption func(*ContainerSet)

// WithInitHook marks the container as declaring its own instantiation
// hook. Such containers cannot be instantiated generically and are
// skipped with a warning at collection time.
func WithInitHook() ContainerOption {
	return func(cs *ContainerSet) { cs.initHook = true }
}

// WithReceiver captures an explicit receiver value passed as the first
// producer argument of every member case.
func WithReceiver(recv any) ContainerOption {
	return func(cs *ContainerSet) { cs.recv = recv }
}

// NewContainer creates a case container.
func NewContainer(name string, opts ...ContainerOption) *ContainerSet {
	cs := &ContainerSet{name: name}
	for _, opt := range opts {
		opt(cs)
	}

	return cs
}

// ScopeName returns the container name.
func (cs *ContainerSet) ScopeName() string { return cs.name }

// HasInitHook reports whether the container declares an instantiation
// hook.
func (cs *ContainerSet) HasInitHook() bool { return cs.initHook }

// Add declares a member case at the given line.
func (cs *ContainerSet) Add(line int, c Case) *ContainerSet {
	cc := c
	cs.members = append(cs.members, Member{Name: c.Name, Line: line, Case: &cc})

	return cs
}

// AddNested declares a nested container at the given line.
func (cs *ContainerSet) AddNested(line int, nested *ContainerSet) *ContainerSet {
	cs.members = append(cs.members, Member{Name: nested.name, Line: line, Container: nested})

	return cs
}

// Members returns the declarations sorted by line, stable.
func (cs *ContainerSet) Members() []Member {
	out := append([]Member(nil), cs.members...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Line < out[j].Line })

	return out
}

// moduleIndex emulates the import system for module-name providers and
// auto-discovery: modules register once at startup and are looked up by
// path thereafter.
var (
	moduleMu    sync.RWMutex
	moduleIndex = map[string]*ModuleSet{}
)

// RegisterModule publishes a module set under its path, replacing any
// previous registration of the same path.
func RegisterModule(m *ModuleSet) {
	moduleMu.Lock()
	defer moduleMu.Unlock()
	moduleIndex[m.name] = m
}

// LookupModule resolves a registered module path.
func LookupModule(name string) (*ModuleSet, bool) {
	moduleMu.RLock()
	defer moduleMu.RUnlock()
	m, ok := moduleIndex[name]

	return m, ok
}
