/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package value

import (
	"github.com/ndllang/ndl/pkg/ndl"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Set is a multiset of hashable values, written `{a, b, c}` in source.
//
// Operations follow multiset semantics: `+=` sums multiplicities, `|=`
// takes the maximum, `-=` subtracts and `&=` takes the minimum.
type Set struct {
	elems counts
}

// Builds a set from elements. Fails on unhashable elements.
func NewSet(elems ...IValue) (*Set, error) {
	s := &Set{elems: make(counts, len(elems))}
	for _, e := range elems {
		k, err := elementKey(e)
		if err != nil {
			return nil, err
		}
		ce := s.elems[k]
		ce.val, ce.count = e, ce.count+1
		s.elems[k] = ce
	}
	return s, nil
}

func (v *Set) Kind() ndl.Primitive { return ndl.Primitive_Container }

// Returns the total number of elements, multiplicities included
func (v *Set) Len() int {
	n := 0
	for _, e := range v.elems {
		n += e.count
	}
	return n
}

// Returns the multiplicity of the element, zero if absent
func (v *Set) Count(e IValue) int {
	k, err := elementKey(e)
	if err != nil {
		return 0
	}
	return v.elems[k].count
}

// Returns true if the element occurs at least once
func (v *Set) Contains(e IValue) bool { return v.Count(e) > 0 }

// Returns the distinct elements in canonical (key) order
func (v *Set) Elements() []IValue {
	keys := maps.Keys(v.elems)
	slices.Sort(keys)
	elems := make([]IValue, 0, len(keys))
	for _, k := range keys {
		elems = append(elems, v.elems[k].val)
	}
	return elems
}

func (v *Set) String() string {
	keys := maps.Keys(v.elems)
	slices.Sort(keys)
	elems := make([]IValue, 0, len(keys))
	for _, k := range keys {
		e := v.elems[k]
		for i := 0; i < e.count; i++ {
			elems = append(elems, e.val)
		}
	}
	return joinElements("{", "}", elems)
}

// Set equality is multiset equality: same elements with same multiplicities
func (v *Set) Equal(other IValue) bool {
	o, ok := other.(*Set)
	if !ok || len(o.elems) != len(v.elems) {
		return false
	}
	for k, e := range v.elems {
		if o.elems[k].count != e.count {
			return false
		}
	}
	return true
}

func (v *Set) Hash() (uint64, error) { return 0, ErrUnhashable(v) }

func (v *Set) AllowedOperations(t *ndl.Type) ndl.OperatorSet {
	if t.Container() != ndl.Container_Set {
		return 0
	}
	return ndl.Operators(
		ndl.Operator_Assign,
		ndl.Operator_AddAssign,
		ndl.Operator_SubtractAssign,
		ndl.Operator_UnionAssign,
		ndl.Operator_IntersectAssign,
	)
}

func (v *Set) Apply(op ndl.Operator, operand IValue) (IValue, error) {
	if op == ndl.Operator_Assign {
		o, ok := operand.(*Set)
		if !ok {
			return nil, ErrOperandKind(op, v, operand)
		}
		return o, nil
	}

	oc, ok := countsOf(operand)
	if !ok {
		return nil, ErrOperandKind(op, v, operand)
	}

	res := &Set{elems: make(counts, len(v.elems))}
	maps.Copy(res.elems, v.elems)

	switch op {
	case ndl.Operator_AddAssign:
		for k, oe := range oc {
			ce := res.elems[k]
			ce.val, ce.count = oe.val, ce.count+oe.count
			res.elems[k] = ce
		}
	case ndl.Operator_UnionAssign:
		for k, oe := range oc {
			if ce := res.elems[k]; oe.count > ce.count {
				res.elems[k] = oe
			}
		}
	case ndl.Operator_SubtractAssign:
		for k, oe := range oc {
			ce, ok := res.elems[k]
			if !ok {
				continue
			}
			ce.count -= oe.count
			if ce.count <= 0 {
				delete(res.elems, k)
			} else {
				res.elems[k] = ce
			}
		}
	case ndl.Operator_IntersectAssign:
		for k, ce := range res.elems {
			oe, ok := oc[k]
			if !ok {
				delete(res.elems, k)
				continue
			}
			if oe.count < ce.count {
				ce.count = oe.count
				res.elems[k] = ce
			}
		}
	default:
		return nil, ErrOperatorMismatch(op, v, operand)
	}
	return res, nil
}
