/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package value

import (
	"github.com/ndllang/ndl/pkg/ndl"
	"golang.org/x/exp/slices"
)

// OrderedSet is a sequence of unique hashable values that remembers
// insertion order, written `<a, b, c>` in source.
type OrderedSet struct {
	order []string
	elems map[string]IValue
}

// Builds an ordered set from elements, keeping the first occurrence of
// duplicates. Fails on unhashable elements.
func NewOrderedSet(elems ...IValue) (*OrderedSet, error) {
	s := &OrderedSet{
		order: make([]string, 0, len(elems)),
		elems: make(map[string]IValue, len(elems)),
	}
	for _, e := range elems {
		k, err := elementKey(e)
		if err != nil {
			return nil, err
		}
		if _, ok := s.elems[k]; ok {
			continue
		}
		s.order = append(s.order, k)
		s.elems[k] = e
	}
	return s, nil
}

func (v *OrderedSet) Kind() ndl.Primitive { return ndl.Primitive_Container }

// Returns the number of elements
func (v *OrderedSet) Len() int { return len(v.order) }

// Returns true if the element is in the set
func (v *OrderedSet) Contains(e IValue) bool {
	k, err := elementKey(e)
	if err != nil {
		return false
	}
	_, ok := v.elems[k]
	return ok
}

// Returns the elements in insertion order
func (v *OrderedSet) Elements() []IValue {
	elems := make([]IValue, len(v.order))
	for i, k := range v.order {
		elems[i] = v.elems[k]
	}
	return elems
}

func (v *OrderedSet) String() string {
	return joinElements("<", ">", v.Elements())
}

// Ordered-set equality requires identical element order
func (v *OrderedSet) Equal(other IValue) bool {
	o, ok := other.(*OrderedSet)
	return ok && slices.Equal(o.order, v.order)
}

func (v *OrderedSet) Hash() (uint64, error) { return 0, ErrUnhashable(v) }

func (v *OrderedSet) AllowedOperations(t *ndl.Type) ndl.OperatorSet {
	switch t.Container() {
	case ndl.Container_OrderedSet:
		return ndl.Operators(
			ndl.Operator_Assign,
			ndl.Operator_AddAssign,
			ndl.Operator_SubtractAssign,
			ndl.Operator_IntersectAssign,
		)
	case ndl.Container_Set:
		// an ordered operand may shrink a plain set
		return ndl.Operators(
			ndl.Operator_SubtractAssign,
			ndl.Operator_IntersectAssign,
		)
	}
	return 0
}

func (v *OrderedSet) Apply(op ndl.Operator, operand IValue) (IValue, error) {
	o, ok := operand.(*OrderedSet)
	if !ok {
		return nil, ErrOperandKind(op, v, operand)
	}

	res := &OrderedSet{
		order: slices.Clone(v.order),
		elems: make(map[string]IValue, len(v.elems)),
	}
	for k, e := range v.elems {
		res.elems[k] = e
	}

	switch op {
	case ndl.Operator_Assign:
		return o, nil
	case ndl.Operator_AddAssign:
		// left order first, new right-hand elements in their source order
		for _, k := range o.order {
			if _, ok := res.elems[k]; ok {
				continue
			}
			res.order = append(res.order, k)
			res.elems[k] = o.elems[k]
		}
	case ndl.Operator_SubtractAssign:
		order := make([]string, 0, len(res.order))
		for _, k := range res.order {
			if _, drop := o.elems[k]; drop {
				delete(res.elems, k)
				continue
			}
			order = append(order, k)
		}
		res.order = order
	case ndl.Operator_IntersectAssign:
		// intersection preserves left order
		order := make([]string, 0, len(res.order))
		for _, k := range res.order {
			if _, keep := o.elems[k]; !keep {
				delete(res.elems, k)
				continue
			}
			order = append(order, k)
		}
		res.order = order
	default:
		return nil, ErrOperatorMismatch(op, v, operand)
	}
	return res, nil
}
