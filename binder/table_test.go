package binder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meekukin/casekit/binder"
	"github.com/meekukin/casekit/paramset"
	"github.com/meekukin/casekit/product"
	"github.com/meekukin/casekit/registry"
)

func plainCase(name string, v any) registry.CaseDescriptor {
	return registry.CaseDescriptor{
		ID:       name,
		Name:     "case_" + name,
		Host:     "app.samples",
		Producer: func(args ...any) any { return v },
	}
}

// TestBind_PlainCase verifies one LazyRef, deferred until Get.
func TestBind_PlainCase(t *testing.T) {
	called := 0
	d := registry.CaseDescriptor{
		ID:    "alpha",
		Name:  "case_alpha",
		Host:  "app.samples",
		Marks: []paramset.Mark{{Name: "smoke"}},
		Producer: func(args ...any) any {
			called++

			return 1
		},
	}

	refs, err := binder.NewTable().Bind(d)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	require.Equal(t, 0, called, "binding must not evaluate")

	lr, ok := refs[0].(binder.LazyRef)
	require.True(t, ok)
	require.Equal(t, "alpha", lr.RefID())
	require.Equal(t, []paramset.Mark{{Name: "smoke"}}, lr.RefMarks())
	require.Equal(t, 1, lr.Get())
	require.Equal(t, 1, called)
}

// TestBind_SelfParametrized verifies one LazyRef per combination with
// "<caseID>-<combinationID>" identifiers and merged marks.
func TestBind_SelfParametrized(t *testing.T) {
	axis, err := product.NewDimension("x",
		paramset.Val(2),
		paramset.Of(3).WithMarks(paramset.Mark{Name: "slow"}),
	)
	require.NoError(t, err)

	d := registry.CaseDescriptor{
		ID:    "beta",
		Name:  "case_beta",
		Host:  "app.samples",
		Marks: []paramset.Mark{{Name: "base"}},
		Axes:  []product.Dimension{axis},
		Producer: func(args ...any) any {
			return args[0].(int) * 10
		},
	}

	refs, err := binder.NewTable().Bind(d)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	require.Equal(t, "beta-2", refs[0].RefID())
	require.Equal(t, "beta-3", refs[1].RefID())
	require.Equal(t, []paramset.Mark{{Name: "base"}}, refs[0].RefMarks())
	require.Equal(t, []paramset.Mark{{Name: "base"}, {Name: "slow"}}, refs[1].RefMarks())

	require.Equal(t, 20, refs[0].(binder.LazyRef).Get())
	require.Equal(t, 30, refs[1].(binder.LazyRef).Get())
}

// TestBind_MultiAxis verifies self-parametrization over two axes uses
// the full cartesian product.
func TestBind_MultiAxis(t *testing.T) {
	ax1, err := product.NewDimension("a", paramset.Val(1), paramset.Val(2))
	require.NoError(t, err)
	ax2, err := product.NewDimension("b", paramset.Val("x"), paramset.Val("y"))
	require.NoError(t, err)

	d := registry.CaseDescriptor{
		ID:   "grid",
		Name: "case_grid",
		Host: "app.samples",
		Axes: []product.Dimension{ax1, ax2},
		Producer: func(args ...any) any {
			return args
		},
	}

	refs, err := binder.NewTable().Bind(d)
	require.NoError(t, err)
	require.Len(t, refs, 4)
	require.Equal(t, "grid-1-x", refs[0].RefID())
	require.Equal(t, "grid-2-y", refs[3].RefID())
}

// TestBind_ExternalInputs verifies promotion to a FixtureRef with an
// idempotent table registration.
func TestBind_ExternalInputs(t *testing.T) {
	tbl := binder.NewTable()
	d := plainCase("with_db", nil)
	d.Needs = []string{"db"}

	refs, err := tbl.Bind(d)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	fr, ok := refs[0].(binder.FixtureRef)
	require.True(t, ok)
	require.Equal(t, "with_db", fr.RefID())

	b, found := tbl.Lookup("app.samples", "with_db")
	require.True(t, found)
	require.Equal(t, "case_with_db", b.Source)

	// second bind is a lookup, not a duplicate registration
	refs, err = tbl.Bind(d)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	again, _ := tbl.Lookup("app.samples", "with_db")
	require.Same(t, b, again)
}

// TestBind_Collision verifies a different declaration claiming the same
// identifier under one host is fatal, never silently resolved.
func TestBind_Collision(t *testing.T) {
	tbl := binder.NewTable()

	first := plainCase("shared", 1)
	first.Needs = []string{"db"}
	_, err := tbl.Bind(first)
	require.NoError(t, err)

	second := plainCase("shared", 2)
	second.Name = "case_other_shared"
	second.Needs = []string{"db"}
	_, err = tbl.Bind(second)
	require.ErrorIs(t, err, binder.ErrBindingCollision)
	require.ErrorContains(t, err, "case_shared")
	require.ErrorContains(t, err, "case_other_shared")

	// a different host scope is a different key, no collision
	second.Host = "app.other"
	_, err = tbl.Bind(second)
	require.NoError(t, err)
}

// TestBind_SelfParametrizedWithExternalInputs verifies axes ride along
// on the FixtureRef instead of expanding into distinct bindings.
func TestBind_SelfParametrizedWithExternalInputs(t *testing.T) {
	axis, err := product.NewDimension("n", paramset.Val(1), paramset.Val(2))
	require.NoError(t, err)

	tbl := binder.NewTable()
	d := plainCase("combo", nil)
	d.Needs = []string{"tmpdir"}
	d.Axes = []product.Dimension{axis}

	refs, err := tbl.Bind(d)
	require.NoError(t, err)
	require.Len(t, refs, 1, "parametrization must not multiply external bindings")
	fr := refs[0].(binder.FixtureRef)
	require.Equal(t, d.Axes, fr.Axes)

	b, found := tbl.Lookup("app.samples", "combo")
	require.True(t, found)
	require.Equal(t, d.Axes, b.Axes)
}

// TestDefault_SingletonTable verifies init-on-first-use stability.
func TestDefault_SingletonTable(t *testing.T) {
	require.Same(t, binder.Default(), binder.Default())
}
