/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"io/fs"

	"github.com/ndllang/ndl/pkg/ndl"
)

// Loads a database from the root file, fetching it and every transitively
// imported file through the fetcher. Blocking; any failure is fatal to the
// load and reported with its location.
func Load(rootFile string, fetch FileFetcher) (IDatabase, error) {
	db := &Database{
		meta:  newMetaInfo(),
		state: newState(0, nil),
	}
	if err := db.load(rootFile, fetch); err != nil {
		return nil, err
	}
	return db, nil
}

// Loads a database reading source files from the file system
func LoadFS(fsys fs.ReadFileFS, rootFile string) (IDatabase, error) {
	return Load(rootFile, func(fileName string) ([]byte, error) {
		return fsys.ReadFile(fileName)
	})
}

// Database holds the meta info and the load-time state. Everything that
// evolves over time lives in views.
type Database struct {
	meta  *MetaInfo
	state *State
}

// Returns a fresh root view at the load-time state
func (db *Database) NewView() IView {
	return newView(db, nil, 0)
}

// Returns the names of all loaded objects, sorted
func (db *Database) Objects() []ndl.FQON {
	return db.meta.Names()
}

// Returns the static definitions registry
func (db *Database) MetaInfo() *MetaInfo {
	return db.meta
}
