// Package registry defines the case model, declaration ordering and
// sentinel errors for case collection.
package registry

import (
	"errors"

	"github.com/meekukin/casekit/paramset"
	"github.com/meekukin/casekit/product"
)

// Sentinel errors for registry operations.
var (
	// ErrInvalidFilter indicates a filter argument of the wrong shape.
	ErrInvalidFilter = errors.New("registry: invalid filter argument")
	// ErrUnsupportedProvider indicates a provider that is neither a case,
	// a case-bearing container, nor a module reference.
	ErrUnsupportedProvider = errors.New("registry: unsupported provider shape")
	// ErrUnknownModule indicates a module name absent from the index.
	ErrUnknownModule = errors.New("registry: unknown module")
	// ErrAutoDiscovery indicates that no conventionally named sibling
	// module could be resolved for a host.
	ErrAutoDiscovery = errors.New("registry: auto-discovery failed")
)

// DefaultPrefix is the conventional case-function name prefix.
const DefaultPrefix = "case_"

// hostStemPrefix is the conventional host module stem replaced by the
// alternate auto-discovery naming scheme.
const hostStemPrefix = "test_"

// Producer is a deferred case body. The registry and binder never call
// it; only the host execution engine does, with any externally bound
// inputs as arguments.
type Producer func(args ...any) any

// Case is one declared case, as produced by the provider side.
type Case struct {
	// Name is the declared member name; module members must carry the
	// collection prefix to be selected.
	Name string
	// Producer is the deferred case body.
	Producer Producer
	// ID optionally overrides the derived identifier (Name minus prefix).
	ID string
	// Tags are matched against the collection tag query.
	Tags []string
	// Marks are opaque annotations forwarded to the host engine.
	Marks []paramset.Mark
	// Axes declare self-parametrization: the case's own parameter
	// dimensions, expanded by the binder without host involvement.
	Axes []product.Dimension
	// Needs names required external inputs beyond what Axes cover;
	// a non-empty list promotes the case to an external binding.
	Needs []string
}

// Order is a declaration position supporting fractional interleaving:
// the effective position is Line + Index/Total. Cases nested in a
// container share the container's Line and spread across [0,1) so they
// sort correctly against sibling top-level cases.
type Order struct {
	Line  int
	Index int
	Total int
}

// Less compares effective positions exactly, without floating point.
func (o Order) Less(p Order) bool {
	if o.Line != p.Line {
		return o.Line < p.Line
	}
	ot, pt := o.Total, p.Total
	if ot < 1 {
		ot = 1
	}
	if pt < 1 {
		pt = 1
	}

	return o.Index*pt < p.Index*ot
}

// CaseDescriptor is one collected case, immutable after collection.
type CaseDescriptor struct {
	// ID is the final identifier, stable across runs.
	ID string
	// Name is the original member name.
	Name string
	// Host is the scope key (module or container path) owning any
	// external binding the case creates.
	Host string
	// Order is the declaration position used for result ordering.
	Order Order
	// Marks and Tags are carried over from the declaration.
	Marks []paramset.Mark
	Tags  []string
	// Producer is the deferred case body; for container members it is
	// the original body with the container receiver already captured.
	Producer Producer
	// Receiver is the captured container receiver, if any; forwarded as
	// an explicit value rather than hidden in a partial application.
	Receiver any
	// Axes and Needs mirror the declaration.
	Axes  []product.Dimension
	Needs []string
}

// RequiresBinding reports whether the case needs externally supplied
// inputs and must be promoted to an external binding.
func (d CaseDescriptor) RequiresBinding() bool { return len(d.Needs) > 0 }

// SelfParametrized reports whether the case declares its own axes.
func (d CaseDescriptor) SelfParametrized() bool { return len(d.Axes) > 0 }

// TagMode selects how a multi-tag query matches a case's tag set. The
// rule is an explicit parameter, never inferred from the query shape.
type TagMode int

const (
	// MatchAny selects cases carrying at least one queried tag.
	MatchAny TagMode = iota
	// MatchAll selects cases carrying every queried tag.
	MatchAll
)

// TagQuery filters cases by their declared tags.
type TagQuery struct {
	Tags []string
	Mode TagMode
}

// HasTag queries for one tag.
func HasTag(tag string) TagQuery { return TagQuery{Tags: []string{tag}} }

// HasAnyTag queries for cases carrying at least one of the tags.
func HasAnyTag(tags ...string) TagQuery { return TagQuery{Tags: tags, Mode: MatchAny} }

// HasAllTags queries for cases carrying every tag.
func HasAllTags(tags ...string) TagQuery { return TagQuery{Tags: tags, Mode: MatchAll} }

// Empty reports whether the query filters nothing.
func (q TagQuery) Empty() bool { return len(q.Tags) == 0 }

// Matches evaluates the query against a case's tag set.
func (q TagQuery) Matches(tags []string) bool {
	if q.Empty() {
		return true
	}
	have := make(map[string]bool, len(tags))
	for _, t := range tags {
		have[t] = true
	}
	switch q.Mode {
	case MatchAll:
		for _, t := range q.Tags {
			if !have[t] {
				return false
			}
		}

		return true
	default: // MatchAny
		for _, t := range q.Tags {
			if have[t] {
				return true
			}
		}

		return false
	}
}
