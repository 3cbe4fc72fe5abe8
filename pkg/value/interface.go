/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package value

import (
	"github.com/ndllang/ndl/pkg/ndl"
)

// Typed immutable member value.
//
// Values never mutate: Apply returns a freshly built value, so states of
// different times can share value handles freely.
type IValue interface {
	// Returns the primitive kind of the value
	Kind() ndl.Primitive

	// Returns the source representation of the value
	String() string

	// Returns is the other value equal to this one. Values of different
	// kinds are never equal.
	Equal(other IValue) bool

	// Returns a hash usable for keying the value in sets.
	// Set and ordered-set values are unhashable and return an error.
	Hash() (uint64, error)

	// Returns the operators admitted when this value is applied to a
	// member of the given type. Empty when the value does not fit the
	// type at all.
	AllowedOperations(t *ndl.Type) ndl.OperatorSet

	// Applies the operand to this value and returns the result.
	// The receiver is the fold accumulator, the operand is the declared
	// member value.
	Apply(op ndl.Operator, operand IValue) (IValue, error)
}
