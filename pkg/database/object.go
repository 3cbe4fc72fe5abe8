/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"golang.org/x/exp/slices"

	"github.com/ndllang/ndl/pkg/ndl"
	"github.com/ndllang/ndl/pkg/value"
)

// Object handle bound to the view it was retrieved from
type Object struct {
	name ndl.FQON
	view *View
}

func (o *Object) Name() ndl.FQON { return o.name }

func (o *Object) Value(member string, t ndl.Order) (value.IValue, error) {
	return o.view.valueAt(o.name, member, o.view.resolveT(t))
}

func (o *Object) Int(member string, t ndl.Order) (int64, error) {
	val, err := o.Value(member, t)
	if err != nil {
		return 0, err
	}
	if i, ok := val.(value.Int); ok {
		return int64(i), nil
	}
	return 0, errAccessor(o.name, member, "int", val)
}

func (o *Object) Float(member string, t ndl.Order) (float64, error) {
	val, err := o.Value(member, t)
	if err != nil {
		return 0, err
	}
	if f, ok := val.(value.Float); ok {
		return float64(f), nil
	}
	return 0, errAccessor(o.name, member, "float", val)
}

func (o *Object) Text(member string, t ndl.Order) (string, error) {
	val, err := o.Value(member, t)
	if err != nil {
		return "", err
	}
	if s, ok := val.(value.Text); ok {
		return string(s), nil
	}
	return "", errAccessor(o.name, member, "text", val)
}

func (o *Object) Bool(member string, t ndl.Order) (bool, error) {
	val, err := o.Value(member, t)
	if err != nil {
		return false, err
	}
	if b, ok := val.(value.Bool); ok {
		return bool(b), nil
	}
	return false, errAccessor(o.name, member, "bool", val)
}

func (o *Object) File(member string, t ndl.Order) (string, error) {
	val, err := o.Value(member, t)
	if err != nil {
		return "", err
	}
	if f, ok := val.(value.File); ok {
		return string(f), nil
	}
	return "", errAccessor(o.name, member, "file", val)
}

func (o *Object) Set(member string, t ndl.Order) (*value.Set, error) {
	val, err := o.Value(member, t)
	if err != nil {
		return nil, err
	}
	if s, ok := val.(*value.Set); ok {
		return s, nil
	}
	return nil, errAccessor(o.name, member, "set", val)
}

func (o *Object) OrderedSet(member string, t ndl.Order) (*value.OrderedSet, error) {
	val, err := o.Value(member, t)
	if err != nil {
		return nil, err
	}
	if s, ok := val.(*value.OrderedSet); ok {
		return s, nil
	}
	return nil, errAccessor(o.name, member, "orderedset", val)
}

func (o *Object) Object(member string, t ndl.Order) (IObject, error) {
	val, err := o.Value(member, t)
	if err != nil {
		return nil, err
	}
	if ref, ok := val.(value.ObjectRef); ok {
		return o.view.Get(ref.FQON())
	}
	return nil, errAccessor(o.name, member, "object", val)
}

// Returns all member names known on the linearization, sorted
func (o *Object) Members(t ndl.Order) ([]string, error) {
	lin, err := o.view.linearizedAt(o.name, o.view.resolveT(t))
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	members := make([]string, 0)
	for _, a := range lin {
		if ai, ok := o.view.db.meta.Object(a); ok {
			ai.Members(func(id string, _ *MemberInfo) {
				if !seen[id] {
					seen[id] = true
					members = append(members, id)
				}
			})
		}
	}
	slices.Sort(members)
	return members, nil
}

func (o *Object) Parents(t ndl.Order) ([]ndl.FQON, error) {
	st, err := o.view.stateAt(o.name, o.view.resolveT(t))
	if err != nil {
		return nil, err
	}
	return slices.Clone(st.parents), nil
}

func (o *Object) Linearized(t ndl.Order) ([]ndl.FQON, error) {
	lin, err := o.view.linearizedAt(o.name, o.view.resolveT(t))
	if err != nil {
		return nil, err
	}
	return slices.Clone(lin), nil
}

func (o *Object) Has(member string, t ndl.Order) (bool, error) {
	lin, err := o.view.linearizedAt(o.name, o.view.resolveT(t))
	if err != nil {
		return false, err
	}
	_, err = o.view.memberType(lin, member)
	return err == nil, nil
}

func (o *Object) Extends(other ndl.FQON, t ndl.Order) (bool, error) {
	lin, err := o.view.linearizedAt(o.name, o.view.resolveT(t))
	if err != nil {
		return false, err
	}
	return slices.Contains(lin, other), nil
}

func (o *Object) IsPatch() bool {
	info, ok := o.view.db.meta.Object(o.name)
	return ok && info.IsPatch()
}

func (o *Object) Target() (ndl.FQON, bool) {
	if info, ok := o.view.db.meta.Object(o.name); ok {
		return info.Target()
	}
	return "", false
}

func (o *Object) Subscribe(cb UpdateCallback) INotifier {
	return o.view.subscribe(o.name, cb)
}

func errAccessor(obj ndl.FQON, member, want string, got value.IValue) error {
	return ndl.ErrAPI("member «%s» of «%v» is not %s: %v", member, obj, want, got)
}
