/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package value

import (
	"strconv"

	"github.com/ndllang/ndl/pkg/ndl"
)

// Text is a string value
type Text string

// File is a path to an asset file, written as a string literal and
// distinguished from Text by the declared member type.
type File string

func (v Text) Kind() ndl.Primitive { return ndl.Primitive_Text }

func (v Text) String() string { return strconv.Quote(string(v)) }

func (v Text) Equal(other IValue) bool {
	o, ok := other.(Text)
	return ok && o == v
}

func (v Text) Hash() (uint64, error) {
	return hashKey("t:" + string(v)), nil
}

func (v Text) AllowedOperations(t *ndl.Type) ndl.OperatorSet {
	if t.Primitive() != ndl.Primitive_Text {
		return 0
	}
	return ndl.Operators(ndl.Operator_Assign, ndl.Operator_AddAssign)
}

func (v Text) Apply(op ndl.Operator, operand IValue) (IValue, error) {
	o, ok := operand.(Text)
	if !ok {
		return nil, ErrOperandKind(op, v, operand)
	}
	switch op {
	case ndl.Operator_Assign:
		return o, nil
	case ndl.Operator_AddAssign:
		return v + o, nil
	}
	return nil, ErrOperatorMismatch(op, v, operand)
}

func (v File) Kind() ndl.Primitive { return ndl.Primitive_File }

func (v File) String() string { return strconv.Quote(string(v)) }

func (v File) Equal(other IValue) bool {
	o, ok := other.(File)
	return ok && o == v
}

func (v File) Hash() (uint64, error) {
	return hashKey("p:" + string(v)), nil
}

func (v File) AllowedOperations(t *ndl.Type) ndl.OperatorSet {
	if t.Primitive() != ndl.Primitive_File {
		return 0
	}
	return ndl.Operators(ndl.Operator_Assign)
}

func (v File) Apply(op ndl.Operator, operand IValue) (IValue, error) {
	o, ok := operand.(File)
	if !ok {
		return nil, ErrOperandKind(op, v, operand)
	}
	if op == ndl.Operator_Assign {
		return o, nil
	}
	return nil, ErrOperatorMismatch(op, v, operand)
}
