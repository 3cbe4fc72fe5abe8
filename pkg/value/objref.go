/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package value

import (
	"github.com/ndllang/ndl/pkg/ndl"
)

// ObjectRef refers to another object by FQON. For members of object type
// the referenced object's linearization must contain the declared target;
// the loader verifies that once linearizations exist.
type ObjectRef ndl.FQON

func (v ObjectRef) Kind() ndl.Primitive { return ndl.Primitive_Object }

func (v ObjectRef) String() string { return string(v) }

// Returns the referenced object name
func (v ObjectRef) FQON() ndl.FQON { return ndl.FQON(v) }

func (v ObjectRef) Equal(other IValue) bool {
	o, ok := other.(ObjectRef)
	return ok && o == v
}

func (v ObjectRef) Hash() (uint64, error) {
	return hashKey("o:" + string(v)), nil
}

func (v ObjectRef) AllowedOperations(t *ndl.Type) ndl.OperatorSet {
	if t.Primitive() != ndl.Primitive_Object {
		return 0
	}
	return ndl.Operators(ndl.Operator_Assign)
}

func (v ObjectRef) Apply(op ndl.Operator, operand IValue) (IValue, error) {
	o, ok := operand.(ObjectRef)
	if !ok {
		return nil, ErrOperandKind(op, v, operand)
	}
	if op == ndl.Operator_Assign {
		return o, nil
	}
	return nil, ErrOperatorMismatch(op, v, operand)
}
