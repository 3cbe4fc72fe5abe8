/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndllang/ndl/pkg/ndl"
)

func Test_ImportsAndAliases(t *testing.T) {
	require := require.New(t)

	files := map[string]string{
		"game.ndl": `import game.units as u
import game.common

Mod():
    hero : u.Unit = u.Knight
    shield : common.Shield = common.Shield
`,
		"game/units.ndl": `
Unit():
    hp : int = 10
Knight(Unit):
    hp = 20
`,
		"game/common.ndl": `
Shield():
    block : int = 1
`,
	}

	db, err := Load("game.ndl", testFetcher(files))
	require.NoError(err)

	view := db.NewView()
	mod, err := view.Get("game.Mod")
	require.NoError(err)

	hero, err := mod.Object("hero", ndl.Latest)
	require.NoError(err)
	require.Equal(ndl.FQON("game.units.Knight"), hero.Name())

	hp, err := hero.Int("hp", ndl.Latest)
	require.NoError(err)
	require.EqualValues(20, hp)
}

func Test_AliasConflicts(t *testing.T) {
	require := require.New(t)

	t.Run("object name colliding with an alias", func(t *testing.T) {
		files := map[string]string{
			"game.ndl":  "import units as u\n\nu():\n    pass\n",
			"units.ndl": "Unit():\n    pass\n",
		}
		_, err := Load("game.ndl", testFetcher(files))
		require.ErrorIs(err, ndl.ErrNameError)
	})

	t.Run("alias declared twice", func(t *testing.T) {
		files := map[string]string{
			"game.ndl":  "import units as u\nimport common as u\n\nA():\n    pass\n",
			"units.ndl": "Unit():\n    pass\n", "common.ndl": "C():\n    pass\n",
		}
		_, err := Load("game.ndl", testFetcher(files))
		require.ErrorIs(err, ndl.ErrNameError)
	})
}

func Test_FetchFailure(t *testing.T) {
	require := require.New(t)

	_, err := Load("game.ndl", testFetcher(map[string]string{
		"game.ndl": "import missing\n\nA():\n    pass\n",
	}))
	require.Error(err)
	require.ErrorContains(err, "missing")
}

func Test_SiblingResolution(t *testing.T) {
	require := require.New(t)

	// references resolve against enclosing namespaces, innermost out
	db := loadSingle(t, `
Weapon():
    damage : int = 1
Outer():
    hp : int = 1
    Inner(Outer):
        arm : Weapon = Weapon
`)
	view := db.NewView()
	inner, err := view.Get("root.Outer.Inner")
	require.NoError(err)

	arm, err := inner.Object("arm", ndl.Latest)
	require.NoError(err)
	require.Equal(ndl.FQON("root.Weapon"), arm.Name())
}
