/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package value

import (
	"github.com/ndllang/ndl/pkg/ndl"
)

// Returns the neutral element of the type, used as fold root when the most
// distant defining ancestor applies a non-assign operator. Object, bool and
// file members have no neutral element.
func Neutral(t *ndl.Type) (IValue, bool) {
	switch t.Container() {
	case ndl.Container_Set:
		s, _ := NewSet()
		return s, true
	case ndl.Container_OrderedSet:
		s, _ := NewOrderedSet()
		return s, true
	}
	switch t.Primitive() {
	case ndl.Primitive_Int:
		return Int(0), true
	case ndl.Primitive_Float:
		return Float(0), true
	case ndl.Primitive_Text:
		return Text(""), true
	}
	return nil, false
}
