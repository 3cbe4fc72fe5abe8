/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/ndllang/ndl/pkg/ndl"
)

// Applies the patch to its target at the view's current time and commits
// the new target state one tick later. Application is atomic: a rejected
// patch leaves the view untouched.
func (v *View) ApplyPatch(patch ndl.FQON) (ndl.Order, error) {
	info, ok := v.db.meta.Object(patch)
	if !ok {
		return 0, ndl.ErrObjectNotFound(patch)
	}
	target, ok := info.Target()
	if !ok {
		return 0, ndl.ErrPatch("object «%v» is not a patch", patch)
	}

	t := v.now
	targetState, err := v.stateAt(target, t)
	if err != nil {
		return 0, err
	}
	patchState, err := v.stateAt(patch, t)
	if err != nil {
		return 0, err
	}

	newParents := patchedParents(info.ParentsAdd(), targetState.parents)

	// relinearize the target against the prospective parent list before
	// anything is published
	lin, err := linearize(target, func(f ndl.FQON) ([]ndl.FQON, error) {
		if f == target {
			return newParents, nil
		}
		st, err := v.stateAt(f, t)
		if err != nil {
			return nil, err
		}
		return st.parents, nil
	})
	if err != nil {
		return 0, ndl.ErrPatch("can not apply «%v» to «%v»: %v", patch, target, err)
	}

	next := targetState.copyForPatch()
	next.parents = newParents
	next.lin = lin
	// a patch entry lands on the value the target itself declares; members
	// the target only inherits get the patch entry as their own
	for id, pm := range patchState.members {
		tm, ok := next.members[id]
		if !ok {
			next.members[id] = pm
			continue
		}
		newVal, err := tm.val.Apply(pm.op, pm.val)
		if err != nil {
			return 0, ndl.ErrPatch("can not apply «%v» to «%v»: %v", patch, target, err)
		}
		tm.val = newVal
		next.members[id] = tm
	}

	tNew := t + 1
	commit := newState(tNew, v.ownLatest())
	commit.objects[target] = next
	v.history.Insert(uint64(tNew), commit)
	v.now = tNew
	v.values.RemoveAll()
	v.lins.RemoveAll()

	logger.Verbose("patch", patch, "applied to", target, "at t =", tNew)

	v.notify(target, tNew)
	return tNew, nil
}

// Fires every subscription whose object is affected by the patched target
func (v *View) notify(target ndl.FQON, t ndl.Order) {
	for _, e := range v.notifiers {
		lin, err := v.linearizedAt(e.obj, t)
		if err != nil {
			continue
		}
		if slices.Contains(lin, target) {
			e.cb(e.obj, t)
		}
	}
}
