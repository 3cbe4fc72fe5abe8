/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSource = `import units as u
import common

Mod():
    name : text = "base mod"
    weight : float = 1.5
    icon : file = "gfx/mod.png"
    active : bool = True

Knight(u.Unit, common.Armored):
    hp = 150
    tags : set(text) = {"cavalry", "unit"}
    route : orderedset(int) = <3, 1, 2>

SpeedBuff<u.Knight>[+u.Fast](u.Buff):
    speed += 5
    Marker():
        pass
`

func Test_ParseFile(t *testing.T) {
	require := require.New(t)

	ast, err := ParseFile("sample.ndl", sampleSource)
	require.NoError(err)
	require.NotNil(ast)

	t.Run("imports with and without alias", func(t *testing.T) {
		require.Len(ast.Imports, 2)
		require.Equal("units", ast.Imports[0].Namespace.String())
		require.Equal("u", ast.Imports[0].Alias)
		require.Equal("common", ast.Imports[1].Namespace.String())
		require.Equal("", ast.Imports[1].Alias)
	})

	t.Run("plain object with typed members", func(t *testing.T) {
		require.Len(ast.Objects, 3)
		mod := ast.Objects[0]
		require.Equal("Mod", mod.Name)
		require.Nil(mod.Target)
		require.Empty(mod.Parents)
		require.Len(mod.Body.Items, 4)

		name := mod.Body.Items[0].Member
		require.NotNil(name)
		require.Equal("name", name.Name)
		require.Equal("text", name.Type.String())
		require.Equal("=", name.Operation)
		require.Equal("base mod", *name.Value.StringLit)

		weight := mod.Body.Items[1].Member
		require.Equal(1.5, *weight.Value.Float)

		active := mod.Body.Items[3].Member
		require.Equal("True", *active.Value.BoolLit)
	})

	t.Run("inheritance and container values", func(t *testing.T) {
		knight := ast.Objects[1]
		require.Len(knight.Parents, 2)
		require.Equal("u.Unit", knight.Parents[0].String())
		require.Equal("common.Armored", knight.Parents[1].String())

		hp := knight.Body.Items[0].Member
		require.Nil(hp.Type)
		require.Equal(int64(150), *hp.Value.Int)

		tags := knight.Body.Items[1].Member
		require.Equal("set(text)", tags.Type.String())
		require.True(tags.Value.IsSet)
		require.Len(tags.Value.SetItems, 2)

		route := knight.Body.Items[2].Member
		require.True(route.Value.IsOrdSet)
		require.Len(route.Value.OrdItems, 3)
		require.Equal(int64(3), *route.Value.OrdItems[0].Int)
	})

	t.Run("patch with target, inheritance add and nested object", func(t *testing.T) {
		buff := ast.Objects[2]
		require.Equal("SpeedBuff", buff.Name)
		require.NotNil(buff.Target)
		require.Equal("u.Knight", buff.Target.String())
		require.Len(buff.ParentsAdd, 1)
		require.Equal("u.Fast", buff.ParentsAdd[0].String())

		require.Len(buff.Body.Items, 2)
		speed := buff.Body.Items[0].Member
		require.Equal("+=", speed.Operation)

		marker := buff.Body.Items[1].Object
		require.NotNil(marker)
		require.Equal("Marker", marker.Name)
		require.NotEmpty(marker.Body.Pass)
	})
}

func Test_ParseDetails(t *testing.T) {
	require := require.New(t)

	t.Run("empty body forms", func(t *testing.T) {
		for _, body := range []string{"pass", "..."} {
			ast, err := ParseFile("t.ndl", "A():\n    "+body+"\n")
			require.NoError(err, body)
			require.NotEmpty(ast.Objects[0].Body.Pass)
		}
	})

	t.Run("override depth prefix", func(t *testing.T) {
		ast, err := ParseFile("t.ndl", "A(B):\n    @@hp += 5\n")
		require.NoError(err)
		m := ast.Objects[0].Body.Items[0].Member
		require.Equal(2, m.OverrideDepth())
		require.Equal("hp", m.Name)
	})

	t.Run("container literals may span lines", func(t *testing.T) {
		ast, err := ParseFile("t.ndl", "A():\n    tags : set(text) = {\"a\",\n        \"b\"}\n")
		require.NoError(err)
		m := ast.Objects[0].Body.Items[0].Member
		require.Len(m.Value.SetItems, 2)
	})

	t.Run("comments and blank lines are ignored", func(t *testing.T) {
		src := "# header\n\nA():  # trailing\n    # inner\n    hp : int = 1\n"
		ast, err := ParseFile("t.ndl", src)
		require.NoError(err)
		require.Len(ast.Objects, 1)
		require.Len(ast.Objects[0].Body.Items, 1)
	})

	t.Run("negative numbers", func(t *testing.T) {
		ast, err := ParseFile("t.ndl", "A():\n    dx : int = -5\n    dy : float = -1.5\n")
		require.NoError(err)
		require.Equal(int64(-5), *ast.Objects[0].Body.Items[0].Member.Value.Int)
		require.Equal(-1.5, *ast.Objects[0].Body.Items[1].Member.Value.Float)
	})
}

func Test_ParseErrors(t *testing.T) {
	require := require.New(t)

	t.Run("tab indentation is rejected", func(t *testing.T) {
		_, err := ParseFile("t.ndl", "A():\n\thp : int = 1\n")
		require.ErrorIs(err, ErrTokenizeError)
	})

	t.Run("mismatched dedent is rejected", func(t *testing.T) {
		_, err := ParseFile("t.ndl", "A():\n        hp : int = 1\n    dx : int = 2\n")
		require.ErrorIs(err, ErrTokenizeError)
	})

	t.Run("stray characters are rejected", func(t *testing.T) {
		_, err := ParseFile("t.ndl", "A():\n    hp : int = 1 ~ 2\n")
		require.ErrorIs(err, ErrTokenizeError)
	})

	t.Run("malformed headers are rejected", func(t *testing.T) {
		for _, src := range []string{
			"A:\n    pass\n",
			"A()\n    pass\n",
			"A():\n",
		} {
			_, err := ParseFile("t.ndl", src)
			require.ErrorIs(err, ErrParseError, src)
		}
	})
}

func Test_RoundTrip(t *testing.T) {
	require := require.New(t)

	ast, err := ParseFile("sample.ndl", sampleSource)
	require.NoError(err)

	printed := ast.String()
	reparsed, err := ParseFile("sample.ndl", printed)
	require.NoError(err)

	// the canonical rendering is a fixed point
	require.Equal(printed, reparsed.String())
}
