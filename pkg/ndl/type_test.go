/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package ndl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_BasicType(t *testing.T) {
	require := require.New(t)

	t.Run("fundamental tokens", func(t *testing.T) {
		for token, p := range map[string]Primitive{
			"int": Primitive_Int, "float": Primitive_Float, "text": Primitive_Text,
			"bool": Primitive_Bool, "file": Primitive_File,
		} {
			bt := BasicTypeFromToken(token)
			require.Equal(p, bt.Primitive, token)
			require.True(bt.IsFundamental(), token)
			require.False(bt.IsContainer(), token)
		}
	})

	t.Run("container tokens", func(t *testing.T) {
		require.Equal(Container_Set, BasicTypeFromToken("set").Container)
		require.Equal(Container_OrderedSet, BasicTypeFromToken("orderedset").Container)
		require.True(BasicTypeFromToken("set").IsContainer())
	})

	t.Run("anything else is an object reference", func(t *testing.T) {
		bt := BasicTypeFromToken("Knight")
		require.Equal(Primitive_Object, bt.Primitive)
		require.False(bt.IsFundamental())
		require.False(bt.IsContainer())
	})
}

func Test_Type(t *testing.T) {
	require := require.New(t)

	t.Run("fundamental", func(t *testing.T) {
		typ := NewFundamentalType(Primitive_Int)
		require.True(typ.IsFundamental())
		require.Equal("int", typ.String())
	})

	t.Run("container", func(t *testing.T) {
		typ := NewContainerType(Container_Set, NewFundamentalType(Primitive_Text))
		require.True(typ.IsContainer())
		require.Equal("set(text)", typ.String())
		require.Equal(Primitive_Text, typ.Element().Primitive())
	})

	t.Run("object", func(t *testing.T) {
		typ := NewObjectType("game.Weapon")
		target, ok := typ.Target()
		require.True(ok)
		require.Equal(FQON("game.Weapon"), target)
		require.Equal("game.Weapon", typ.String())
	})

	t.Run("equality is structural", func(t *testing.T) {
		a := NewContainerType(Container_OrderedSet, NewFundamentalType(Primitive_Int))
		b := NewContainerType(Container_OrderedSet, NewFundamentalType(Primitive_Int))
		require.True(a.Equal(b))
		require.False(a.Equal(NewContainerType(Container_Set, NewFundamentalType(Primitive_Int))))
		require.False(a.Equal(nil))
	})
}
