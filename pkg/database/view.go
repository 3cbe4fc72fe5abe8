/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"github.com/erni27/imcache"
	"github.com/google/uuid"

	"github.com/ndllang/ndl/pkg/ndl"
	"github.com/ndllang/ndl/pkg/value"
)

type valueKey struct {
	obj    ndl.FQON
	member string
	t      ndl.Order
}

type linKey struct {
	obj ndl.FQON
	t   ndl.Order
}

// View answers queries against its own commits first; reads below the fork
// point fall through to the parent view, capped at the fork time, and end
// at the database's load-time state.
type View struct {
	db        *Database
	parent    *View
	forkedAt  ndl.Order
	now       ndl.Order
	history   *timeline
	values    imcache.Cache[valueKey, value.IValue]
	lins      imcache.Cache[linKey, []ndl.FQON]
	notifiers map[uuid.UUID]*notifierEntry
}

func newView(db *Database, parent *View, at ndl.Order) *View {
	return &View{
		db:        db,
		parent:    parent,
		forkedAt:  at,
		now:       at,
		history:   newTimeline(),
		notifiers: make(map[uuid.UUID]*notifierEntry),
	}
}

// Returns a child view pinned to this view's current time. Patches applied
// to either view afterwards do not affect the other.
func (v *View) Fork() IView {
	return newView(v.db, v, v.now)
}

// Returns a handle for the object
func (v *View) Get(obj ndl.FQON) (IObject, error) {
	if !v.db.meta.Has(obj) {
		return nil, ndl.ErrObjectNotFound(obj)
	}
	return &Object{name: obj, view: v}, nil
}

// Returns the view's current time
func (v *View) Now() ndl.Order { return v.now }

func (v *View) resolveT(t ndl.Order) ndl.Order {
	if t == ndl.Latest {
		return v.now
	}
	return t
}

// Returns the chain of this view's own latest commit, nil when the view
// has none yet
func (v *View) ownLatest() *State {
	return v.ownChainAt(v.now)
}

// Returns the chain of this view's latest own commit at or before t
func (v *View) ownChainAt(t ndl.Order) *State {
	var best *State
	for _, tm := range v.history.Keys() {
		if ndl.Order(tm) > t {
			break
		}
		if st, ok := v.history.Get(tm); ok {
			best = st
		}
	}
	return best
}

// Returns the state of the object at time t
func (v *View) stateAt(obj ndl.FQON, t ndl.Order) (*ObjectState, error) {
	if chain := v.ownChainAt(t); chain != nil {
		if st, ok := chain.get(obj); ok {
			return st, nil
		}
	}
	if v.parent != nil {
		tp := t
		if tp > v.forkedAt {
			tp = v.forkedAt
		}
		return v.parent.stateAt(obj, tp)
	}
	if st, ok := v.db.state.get(obj); ok {
		return st, nil
	}
	return nil, ndl.ErrObjectNotFound(obj)
}

// Returns the linearization of the object at time t. Computed against the
// parent lists of that time, because patching an ancestor's parents
// changes descendants' linearizations without touching their states.
func (v *View) linearizedAt(obj ndl.FQON, t ndl.Order) ([]ndl.FQON, error) {
	key := linKey{obj: obj, t: t}
	if lin, ok := v.lins.Get(key); ok {
		return lin, nil
	}

	lin, err := linearize(obj, func(f ndl.FQON) ([]ndl.FQON, error) {
		st, err := v.stateAt(f, t)
		if err != nil {
			return nil, err
		}
		return st.parents, nil
	})
	if err != nil {
		return nil, err
	}

	v.lins.Set(key, lin, imcache.WithNoExpiration())
	return lin, nil
}
