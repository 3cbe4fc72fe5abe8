/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package value

import (
	"github.com/ndllang/ndl/pkg/ndl"
)

// Bool is a logical value, written True or False in source
type Bool bool

func (v Bool) Kind() ndl.Primitive { return ndl.Primitive_Bool }

func (v Bool) String() string {
	if v {
		return "True"
	}
	return "False"
}

func (v Bool) Equal(other IValue) bool {
	o, ok := other.(Bool)
	return ok && o == v
}

func (v Bool) Hash() (uint64, error) {
	return hashKey("b:" + v.String()), nil
}

func (v Bool) AllowedOperations(t *ndl.Type) ndl.OperatorSet {
	if t.Primitive() != ndl.Primitive_Bool {
		return 0
	}
	return ndl.Operators(ndl.Operator_Assign, ndl.Operator_UnionAssign, ndl.Operator_IntersectAssign)
}

func (v Bool) Apply(op ndl.Operator, operand IValue) (IValue, error) {
	o, ok := operand.(Bool)
	if !ok {
		return nil, ErrOperandKind(op, v, operand)
	}
	switch op {
	case ndl.Operator_Assign:
		return o, nil
	case ndl.Operator_UnionAssign:
		return v || o, nil
	case ndl.Operator_IntersectAssign:
		return v && o, nil
	}
	return nil, ErrOperatorMismatch(op, v, operand)
}
