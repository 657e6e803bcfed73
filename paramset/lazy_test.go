package paramset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLazy_EvaluatesOnce verifies Get caches after the first call.
func TestLazy_EvaluatesOnce(t *testing.T) {
	calls := 0
	l := NewLazy("one", func() any {
		calls++

		return calls
	})
	require.Equal(t, 1, l.Get())
	require.Equal(t, 1, l.Get())
	require.Equal(t, 1, calls)
	require.Equal(t, "one", l.CaseID())
}

// TestLazy_Items verifies lazily indexed components share one
// evaluation of the underlying tuple.
func TestLazy_Items(t *testing.T) {
	calls := 0
	l := NewLazy("pair", func() any {
		calls++

		return []any{"x", "y"}
	}, Mark{Name: "db"})

	items := l.Items(2)
	require.Len(t, items, 2)
	require.Equal(t, 0, calls, "splitting must not evaluate")

	require.Equal(t, "y", items[1].Get())
	require.Equal(t, "x", items[0].Get())
	require.Equal(t, 1, calls, "sibling items share one evaluation")

	require.Equal(t, "pair[0]", items[0].CaseID())
	require.Equal(t, []Mark{{Name: "db"}}, items[1].Marks())
}

// TestLazyItem_WrongShape verifies a non-tuple result panics at
// evaluation time with a descriptive message.
func TestLazyItem_WrongShape(t *testing.T) {
	l := NewLazy("bad", func() any { return 5 })
	item := l.Items(2)[0]
	require.Panics(t, func() { item.Get() })
}
