/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package ndl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FQON(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to build and split names", func(t *testing.T) {
		f := NewFQON("game.units", "Knight")
		require.Equal(FQON("game.units.Knight"), f)
		require.Equal(Namespace("game.units"), f.Namespace())
		require.Equal("Knight", f.Object())
		require.Equal(Namespace("game.units.Knight"), f.AsNamespace())
	})

	t.Run("top level names have the root namespace", func(t *testing.T) {
		f := NewFQON("", "Entity")
		require.Equal(FQON("Entity"), f)
		require.Equal(Namespace(""), f.Namespace())
		require.Equal("Entity", f.Object())
	})

	t.Run("must be ok to validate names", func(t *testing.T) {
		ok, err := ValidFQON("game.units.Knight")
		require.True(ok)
		require.NoError(err)

		ok, err = ValidFQON("game..Knight")
		require.False(ok)
		require.ErrorIs(err, ErrNameError)

		ok, err = ValidFQON("")
		require.False(ok)
		require.ErrorIs(err, ErrNameError)
	})
}

func Test_Namespace(t *testing.T) {
	require := require.New(t)

	t.Run("namespaces derive from file names and back", func(t *testing.T) {
		ns := NamespaceFromFilename("game/units.ndl")
		require.Equal(Namespace("game.units"), ns)
		require.Equal("game/units.ndl", ns.Filename())
	})

	t.Run("parents walk towards the root", func(t *testing.T) {
		ns := Namespace("a.b.c")
		p, ok := ns.Parent()
		require.True(ok)
		require.Equal(Namespace("a.b"), p)

		p, ok = Namespace("a").Parent()
		require.True(ok)
		require.Equal(Namespace(""), p)

		_, ok = Namespace("").Parent()
		require.False(ok)
	})

	t.Run("resolve joins reference parts", func(t *testing.T) {
		require.Equal(FQON("a.b.C"), Namespace("a").Resolve("b", "C"))
		require.Equal(FQON("C"), Namespace("").Resolve("C"))
	})
}

func Test_ValidIdent(t *testing.T) {
	require := require.New(t)

	ok, err := ValidIdent("Knight_2")
	require.True(ok)
	require.NoError(err)

	for _, bad := range []string{"", "2Knight", "Kni-ght", "Kni ght"} {
		ok, err = ValidIdent(bad)
		require.False(ok, bad)
		require.ErrorIs(err, ErrNameError, bad)
	}
}

func Test_Operator(t *testing.T) {
	require := require.New(t)

	t.Run("operators parse from and print their tokens", func(t *testing.T) {
		for op := Operator_Assign; op < Operator_FakeLast; op++ {
			parsed, ok := ParseOperator(op.String())
			require.True(ok, op)
			require.Equal(op, parsed)
		}
		_, ok := ParseOperator("==")
		require.False(ok)
	})

	t.Run("operator sets answer membership", func(t *testing.T) {
		s := Operators(Operator_Assign, Operator_AddAssign)
		require.True(s.Contains(Operator_Assign))
		require.True(s.Contains(Operator_AddAssign))
		require.False(s.Contains(Operator_DivideAssign))
		require.Equal([]Operator{Operator_Assign, Operator_AddAssign}, s.AsArray())
	})
}
