package paramset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDecompose_BareSingle verifies a bare value yields no id, no marks.
func TestDecompose_BareSingle(t *testing.T) {
	d, err := Decompose(1, Val(42))
	require.NoError(t, err)
	require.False(t, d.HasID)
	require.Empty(t, d.Marks)
	require.Equal(t, 42, d.Value)
}

// TestDecompose_AnnotatedSingle verifies unwrapping to the single
// element when one argument name is bound.
func TestDecompose_AnnotatedSingle(t *testing.T) {
	e := Of("hello").WithID("greeting").WithMarks(Mark{Name: "slow"})
	d, err := Decompose(1, e)
	require.NoError(t, err)
	require.True(t, d.HasID)
	require.Equal(t, "greeting", d.ID)
	require.Equal(t, []Mark{{Name: "slow"}}, d.Marks)
	require.Equal(t, "hello", d.Value)
}

// TestDecompose_AnnotatedTuple verifies an exact nbNames-slice survives.
func TestDecompose_AnnotatedTuple(t *testing.T) {
	d, err := Decompose(2, Of(1, 2))
	require.NoError(t, err)
	require.Equal(t, []any{1, 2}, d.Value)
}

// TestDecompose_ArityMismatch verifies a 3-tuple bound to two argument
// names is a hard error, never silently truncated.
func TestDecompose_ArityMismatch(t *testing.T) {
	_, err := Decompose(2, Of(1, 2, 3))
	require.ErrorIs(t, err, ErrInconsistentArity)

	_, err = Decompose(2, Val([]any{1, 2, 3}))
	require.ErrorIs(t, err, ErrInconsistentArity)

	_, err = Decompose(2, Val(1))
	require.ErrorIs(t, err, ErrInconsistentArity)
}

// TestDecompose_BareTuple verifies a bare []any of matching length is
// accepted for a multi-name axis.
func TestDecompose_BareTuple(t *testing.T) {
	d, err := Decompose(3, Val([]any{"a", "b", "c"}))
	require.NoError(t, err)
	require.Equal(t, []any{"a", "b", "c"}, d.Value)
}

// TestDecompose_LazyTupleDeferred verifies a deferred tuple is passed
// through unevaluated for later lazy splitting.
func TestDecompose_LazyTupleDeferred(t *testing.T) {
	called := false
	l := NewLazy("pair", func() any {
		called = true

		return []any{1, 2}
	})
	d, err := Decompose(2, Val(l))
	require.NoError(t, err)
	require.Same(t, l, d.Value)
	require.False(t, called, "decomposition must not evaluate the lazy value")
}

// TestJoinMarks verifies order preservation and duplicate retention.
func TestJoinMarks(t *testing.T) {
	a := []Mark{{Name: "m1"}, {Name: "m2"}}
	b := []Mark{{Name: "m2"}, {Name: "m3"}}
	got := JoinMarks(a, b)
	require.Equal(t, []Mark{{Name: "m1"}, {Name: "m2"}, {Name: "m2"}, {Name: "m3"}}, got)
	require.Nil(t, JoinMarks(nil, nil))
}
