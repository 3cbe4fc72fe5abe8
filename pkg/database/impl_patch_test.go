/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndllang/ndl/pkg/ndl"
	"github.com/ndllang/ndl/pkg/value"
)

func Test_PatchAtRuntime(t *testing.T) {
	require := require.New(t)

	db := loadSingle(t, `
A():
    hp : int = 10
Buff<A>():
    hp += 5
`)
	view := db.NewView()
	a, err := view.Get("root.A")
	require.NoError(err)

	t0 := view.Now()
	hp, err := a.Int("hp", t0)
	require.NoError(err)
	require.EqualValues(10, hp)

	t1, err := view.ApplyPatch("root.Buff")
	require.NoError(err)
	require.Greater(t1, t0)
	require.Equal(t1, view.Now())

	hp, err = a.Int("hp", t1)
	require.NoError(err)
	require.EqualValues(15, hp)

	// the past stays observable
	hp, err = a.Int("hp", t0)
	require.NoError(err)
	require.EqualValues(10, hp)

	t.Run("patches stack", func(t *testing.T) {
		t2, err := view.ApplyPatch("root.Buff")
		require.NoError(err)
		hp, err := a.Int("hp", t2)
		require.NoError(err)
		require.EqualValues(20, hp)
	})

	t.Run("latest observes the current time", func(t *testing.T) {
		hp, err := a.Int("hp", ndl.Latest)
		require.NoError(err)
		require.EqualValues(20, hp)
	})
}

func Test_PatchInheritedMember(t *testing.T) {
	require := require.New(t)

	db := loadSingle(t, `
A():
    hp : int = 10
B(A):
    pass
Buff<B>():
    hp += 5
`)
	view := db.NewView()
	b, err := view.Get("root.B")
	require.NoError(err)

	t1, err := view.ApplyPatch("root.Buff")
	require.NoError(err)

	hp, err := b.Int("hp", t1)
	require.NoError(err)
	require.EqualValues(15, hp)

	// the ancestor is untouched
	a, err := view.Get("root.A")
	require.NoError(err)
	hp, err = a.Int("hp", t1)
	require.NoError(err)
	require.EqualValues(10, hp)
}

func Test_PatchAddsParents(t *testing.T) {
	require := require.New(t)

	db := loadSingle(t, `
A():
    tags : set(text) = {"a"}
Mixin(A):
    tags += {"m"}
B(A):
    pass
P<B>[+Mixin]():
    pass
`)
	view := db.NewView()
	b, err := view.Get("root.B")
	require.NoError(err)

	tags, err := b.Set("tags", ndl.Latest)
	require.NoError(err)
	require.True(tags.Equal(mustTextSet(t, "a")))

	t1, err := view.ApplyPatch("root.P")
	require.NoError(err)

	lin, err := b.Linearized(t1)
	require.NoError(err)
	require.Equal([]ndl.FQON{"root.B", "root.Mixin", "root.A"}, lin)

	tags, err = b.Set("tags", t1)
	require.NoError(err)
	require.True(tags.Equal(mustTextSet(t, "a", "m")))

	t.Run("the target gains the added parent, the past keeps the old ones", func(t *testing.T) {
		parents, err := b.Parents(t1)
		require.NoError(err)
		require.Equal([]ndl.FQON{"root.Mixin", "root.A"}, parents)

		// at t0 nothing changed
		lin, err := b.Linearized(0)
		require.NoError(err)
		require.Equal([]ndl.FQON{"root.B", "root.A"}, lin)
	})
}

func Test_PatchRejection(t *testing.T) {
	require := require.New(t)

	db := loadSingle(t, `
A():
    hp : int = 10
B(A):
    pass
NotAPatch():
    pass
`)
	view := db.NewView()

	t.Run("non-patch object", func(t *testing.T) {
		_, err := view.ApplyPatch("root.NotAPatch")
		require.ErrorIs(err, ndl.ErrPatchError)
		require.EqualValues(0, view.Now())
	})

	t.Run("unknown object", func(t *testing.T) {
		_, err := view.ApplyPatch("root.Ghost")
		require.ErrorIs(err, ndl.ErrNameError)
		require.EqualValues(0, view.Now())
	})
}

func Test_DivisionByZeroPatchRejected(t *testing.T) {
	require := require.New(t)

	db := loadSingle(t, `
A():
    hp : int = 10
Halve<A>():
    hp /= 0
`)
	view := db.NewView()
	_, err := view.ApplyPatch("root.Halve")
	require.ErrorIs(err, ndl.ErrPatchError)

	// rejection leaves the view unchanged
	require.EqualValues(0, view.Now())
	a, err := view.Get("root.A")
	require.NoError(err)
	hp, err := a.Int("hp", ndl.Latest)
	require.NoError(err)
	require.EqualValues(10, hp)
}

func Test_ForkIsolation(t *testing.T) {
	require := require.New(t)

	db := loadSingle(t, `
A():
    hp : int = 10
Buff<A>():
    hp += 5
`)
	parent := db.NewView()
	child := parent.Fork()

	t1, err := child.ApplyPatch("root.Buff")
	require.NoError(err)

	childA, err := child.Get("root.A")
	require.NoError(err)
	hp, err := childA.Int("hp", t1)
	require.NoError(err)
	require.EqualValues(15, hp)

	parentA, err := parent.Get("root.A")
	require.NoError(err)
	for _, at := range []ndl.Order{0, t1, ndl.Latest} {
		hp, err := parentA.Int("hp", at)
		require.NoError(err)
		require.EqualValues(10, hp, "parent changed at t=%v", at)
	}

	t.Run("patches in the parent do not reach the child", func(t *testing.T) {
		_, err := parent.ApplyPatch("root.Buff")
		require.NoError(err)

		grandchild := child.Fork()

		hp, err := childA.Int("hp", ndl.Latest)
		require.NoError(err)
		require.EqualValues(15, hp)

		gcA, err := grandchild.Get("root.A")
		require.NoError(err)
		hp, err = gcA.Int("hp", ndl.Latest)
		require.NoError(err)
		require.EqualValues(15, hp)
	})
}

func Test_Subscribe(t *testing.T) {
	require := require.New(t)

	db := loadSingle(t, `
A():
    hp : int = 10
B(A):
    pass
Buff<A>():
    hp += 5
`)
	view := db.NewView().(*View)

	b, err := view.Get("root.B")
	require.NoError(err)

	fired := make([]ndl.Order, 0)
	notifier := b.Subscribe(func(obj ndl.FQON, t ndl.Order) {
		require.Equal(ndl.FQON("root.B"), obj)
		fired = append(fired, t)
	})

	t1, err := view.ApplyPatch("root.Buff")
	require.NoError(err)
	require.Equal([]ndl.Order{t1}, fired)

	t.Run("closing unregisters", func(t *testing.T) {
		notifier.Close()
		_, err := view.ApplyPatch("root.Buff")
		require.NoError(err)
		require.Len(fired, 1)
	})
}

func Test_PatchedPatch(t *testing.T) {
	require := require.New(t)

	db := loadSingle(t, `
A():
    hp : int = 10
Buff<A>():
    hp += 5
Stronger<Buff>():
    hp += 20
`)
	view := db.NewView()
	a, err := view.Get("root.A")
	require.NoError(err)

	// boost the buff first, then apply it
	_, err = view.ApplyPatch("root.Stronger")
	require.NoError(err)
	t2, err := view.ApplyPatch("root.Buff")
	require.NoError(err)

	hp, err := a.Int("hp", t2)
	require.NoError(err)
	require.EqualValues(35, hp)
}

func mustTextSet(t *testing.T, elems ...string) *value.Set {
	vals := make([]value.IValue, len(elems))
	for i, e := range elems {
		vals[i] = value.Text(e)
	}
	s, err := value.NewSet(vals...)
	require.NoError(t, err)
	return s
}
