package paramset

import (
	"fmt"
	"sync"
)

// Lazy is a deferred zero-argument producer with an identifier and
// marks. Get evaluates the producer at most once; the pipeline itself
// never calls Get — only the host execution engine does.
type Lazy struct {
	id    string
	marks []Mark
	fn    func() any

	once sync.Once
	val  any
}

// NewLazy wraps fn into a deferred value labelled id.
func NewLazy(id string, fn func() any, marks ...Mark) *Lazy {
	return &Lazy{id: id, marks: marks, fn: fn}
}

// Get evaluates the producer on first call and caches the result.
func (l *Lazy) Get() any {
	l.once.Do(func() { l.val = l.fn() })

	return l.val
}

// CaseID returns the identifier attached to the deferred value.
func (l *Lazy) CaseID() string { return l.id }

// Marks returns the marks attached to the deferred value.
func (l *Lazy) Marks() []Mark { return l.marks }

// Items splits a deferred n-tuple into n lazily indexed components
// without evaluating it. Each component forces the underlying tuple at
// most once (shared through l) and then indexes into it.
func (l *Lazy) Items(n int) []*LazyItem {
	items := make([]*LazyItem, n)
	for i := 0; i < n; i++ {
		items[i] = &LazyItem{src: l, index: i, size: n}
	}

	return items
}

// LazyItem is one lazily indexed component of a deferred tuple.
type LazyItem struct {
	src   *Lazy
	index int
	size  int
}

// Get forces the underlying tuple (once, shared with sibling items) and
// returns the component at this item's index. The tuple must evaluate
// to a []any of the split size; anything else panics, since by the time
// the host engine evaluates, collection-time validation is long past.
func (it *LazyItem) Get() any {
	v := it.src.Get()
	tuple, ok := v.([]any)
	if !ok || len(tuple) != it.size {
		panic(fmt.Sprintf("paramset: lazy value %q did not yield a %d-tuple", it.src.CaseID(), it.size))
	}

	return tuple[it.index]
}

// CaseID returns the source identifier suffixed with the item index,
// keeping per-component tokens distinct inside one combination.
func (it *LazyItem) CaseID() string {
	return fmt.Sprintf("%s[%d]", it.src.CaseID(), it.index)
}

// Marks returns the marks of the underlying deferred tuple.
func (it *LazyItem) Marks() []Mark { return it.src.Marks() }
