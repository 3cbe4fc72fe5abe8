/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package value

import (
	"strings"
)

// Containers key their elements by a canonical string. Only hashable
// (scalar) values may be elements; containers of containers are rejected
// when the member type is built.
func elementKey(v IValue) (string, error) {
	switch x := v.(type) {
	case Int:
		return "i:" + x.String(), nil
	case Float:
		return "f:" + x.String(), nil
	case Text:
		return "t:" + string(x), nil
	case Bool:
		return "b:" + x.String(), nil
	case File:
		return "p:" + string(x), nil
	case ObjectRef:
		return "o:" + string(x), nil
	}
	return "", ErrUnhashable(v)
}

func joinElements(open, close string, elems []IValue) string {
	b := strings.Builder{}
	b.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteString(close)
	return b.String()
}

// Multiplicity table shared by the set operations: key → element and count.
// Ordered sets contribute each element once.
type counts map[string]countedElement

type countedElement struct {
	val   IValue
	count int
}

func countsOf(v IValue) (counts, bool) {
	switch x := v.(type) {
	case *Set:
		c := make(counts, len(x.elems))
		for k, e := range x.elems {
			c[k] = e
		}
		return c, true
	case *OrderedSet:
		c := make(counts, len(x.order))
		for k, e := range x.elems {
			c[k] = countedElement{val: e, count: 1}
		}
		return c, true
	}
	return nil, false
}
