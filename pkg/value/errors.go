/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package value

import (
	"errors"
	"fmt"

	"github.com/ndllang/ndl/pkg/ndl"
)

var ErrUnhashableError = errors.New("unhashable value")

// Unhashable values are an API error of the caller
func ErrUnhashable(v IValue) error {
	return fmt.Errorf("%w: %w: %s", ndl.ErrAPIError, ErrUnhashableError, v)
}

var ErrDivisionByZero = errors.New("division by zero")

func ErrOperatorMismatch(op ndl.Operator, acc, operand IValue) error {
	return ndl.ErrType("can not apply «%v %v» to %v", op, operand, acc)
}

func ErrOperandKind(op ndl.Operator, acc, operand IValue) error {
	return ndl.ErrType("operand «%v» of «%v» does not match %v", operand, op, acc)
}
