/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package value

import (
	"hash/fnv"
	"strconv"

	"github.com/ndllang/ndl/pkg/ndl"
)

// Int is a signed 64 bit integer value
type Int int64

// Float is a 64 bit floating point value
type Float float64

var numberOps = ndl.Operators(
	ndl.Operator_Assign,
	ndl.Operator_AddAssign,
	ndl.Operator_SubtractAssign,
	ndl.Operator_MultiplyAssign,
	ndl.Operator_DivideAssign,
)

func (v Int) Kind() ndl.Primitive { return ndl.Primitive_Int }

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

func (v Int) Equal(other IValue) bool {
	o, ok := other.(Int)
	return ok && o == v
}

func (v Int) Hash() (uint64, error) {
	return hashKey("i:" + v.String()), nil
}

func (v Int) AllowedOperations(t *ndl.Type) ndl.OperatorSet {
	if t.Primitive() != ndl.Primitive_Int {
		return 0
	}
	return numberOps
}

func (v Int) Apply(op ndl.Operator, operand IValue) (IValue, error) {
	o, ok := operand.(Int)
	if !ok {
		return nil, ErrOperandKind(op, v, operand)
	}
	switch op {
	case ndl.Operator_Assign:
		return o, nil
	case ndl.Operator_AddAssign:
		return v + o, nil
	case ndl.Operator_SubtractAssign:
		return v - o, nil
	case ndl.Operator_MultiplyAssign:
		return v * o, nil
	case ndl.Operator_DivideAssign:
		if o == 0 {
			return nil, ErrDivisionByZero
		}
		return v / o, nil
	}
	return nil, ErrOperatorMismatch(op, v, operand)
}

func (v Float) Kind() ndl.Primitive { return ndl.Primitive_Float }

func (v Float) String() string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 64)
	// keep member values distinguishable from int literals
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'n' || c == 'i' {
			return s
		}
	}
	return s + ".0"
}

func (v Float) Equal(other IValue) bool {
	o, ok := other.(Float)
	return ok && o == v
}

func (v Float) Hash() (uint64, error) {
	return hashKey("f:" + v.String()), nil
}

func (v Float) AllowedOperations(t *ndl.Type) ndl.OperatorSet {
	if t.Primitive() != ndl.Primitive_Float {
		return 0
	}
	return numberOps
}

func (v Float) Apply(op ndl.Operator, operand IValue) (IValue, error) {
	o, ok := operand.(Float)
	if !ok {
		return nil, ErrOperandKind(op, v, operand)
	}
	switch op {
	case ndl.Operator_Assign:
		return o, nil
	case ndl.Operator_AddAssign:
		return v + o, nil
	case ndl.Operator_SubtractAssign:
		return v - o, nil
	case ndl.Operator_MultiplyAssign:
		return v * o, nil
	case ndl.Operator_DivideAssign:
		if o == 0 {
			return nil, ErrDivisionByZero
		}
		return v / o, nil
	}
	return nil, ErrOperatorMismatch(op, v, operand)
}

func hashKey(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}
