/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"github.com/erni27/imcache"

	"github.com/ndllang/ndl/pkg/ndl"
	"github.com/ndllang/ndl/pkg/value"
)

// Calculates a member value at time t by walking the linearization from the
// most distant ancestor towards the object and folding the declared
// operators. Results are memoized per (object, member, t) until a patch
// commits.
func (v *View) valueAt(obj ndl.FQON, member string, t ndl.Order) (value.IValue, error) {
	key := valueKey{obj: obj, member: member, t: t}
	if val, ok := v.values.Get(key); ok {
		return val, nil
	}

	lin, err := v.linearizedAt(obj, t)
	if err != nil {
		return nil, err
	}

	typ, err := v.memberType(lin, member)
	if err != nil {
		return nil, ndl.ErrMemberNotFound(obj, member)
	}

	var acc value.IValue
	for i := len(lin) - 1; i >= 0; i-- {
		st, err := v.stateAt(lin[i], t)
		if err != nil {
			return nil, err
		}
		m, ok := st.Member(member)
		if !ok {
			continue
		}

		if acc == nil {
			if m.op == ndl.Operator_Assign {
				acc = m.val
				continue
			}
			neutral, ok := value.Neutral(typ)
			if !ok {
				return nil, ndl.ErrType(
					"«%v» applies «%v» to member «%s» of «%v» which has no base value",
					lin[i], m.op, member, obj)
			}
			acc = neutral
		}

		if !m.val.AllowedOperations(typ).Contains(m.op) {
			return nil, ndl.ErrType(
				"operator «%v» of «%v.%s» not allowed for type «%v»", m.op, lin[i], member, typ)
		}
		acc, err = acc.Apply(m.op, m.val)
		if err != nil {
			return nil, err
		}
	}

	if acc == nil {
		return nil, ndl.ErrAPI("member «%s» of «%v» has no value at t=%d", member, obj, t)
	}

	v.values.Set(key, acc, imcache.WithNoExpiration())
	return acc, nil
}

// Returns the resolved type of the member by scanning the linearization
func (v *View) memberType(lin []ndl.FQON, member string) (*ndl.Type, error) {
	for _, a := range lin {
		if ai, ok := v.db.meta.Object(a); ok {
			if mi, ok := ai.Member(member); ok {
				if typ, ok := mi.Type(); ok {
					return typ, nil
				}
			}
		}
	}
	return nil, ndl.ErrMemberNotFound(lin[0], member)
}
