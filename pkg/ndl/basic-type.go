/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package ndl

import "strconv"

// Primitive kind of a type
type Primitive uint8

const (
	Primitive_null Primitive = iota

	Primitive_Int
	Primitive_Float
	Primitive_Text
	Primitive_Bool
	Primitive_File
	Primitive_Object
	Primitive_Container

	Primitive_FakeLast
)

// Container kind of a type. Non-container primitives are Container_Single.
type Container uint8

const (
	Container_Single Container = iota

	Container_Set
	Container_OrderedSet

	Container_FakeLast
)

// Pair of primitive and container kind.
type BasicType struct {
	Primitive Primitive
	Container Container
}

var primitiveNames = map[Primitive]string{
	Primitive_Int:    "int",
	Primitive_Float:  "float",
	Primitive_Text:   "text",
	Primitive_Bool:   "bool",
	Primitive_File:   "file",
	Primitive_Object: "object",
}

var containerNames = map[Container]string{
	Container_Set:        "set",
	Container_OrderedSet: "orderedset",
}

// Returns the source name of the primitive
func (p Primitive) String() string {
	if s, ok := primitiveNames[p]; ok {
		return s
	}
	if p == Primitive_Container {
		return "container"
	}
	return "Primitive(" + strconv.Itoa(int(p)) + ")"
}

// Returns the source name of the container kind
func (c Container) String() string {
	if s, ok := containerNames[c]; ok {
		return s
	}
	if c == Container_Single {
		return "single"
	}
	return "Container(" + strconv.Itoa(int(c)) + ")"
}

// Derives a basic type from a source type token. Identifiers that name
// neither a fundamental nor a container type are object references.
func BasicTypeFromToken(token string) BasicType {
	switch token {
	case "int":
		return BasicType{Primitive_Int, Container_Single}
	case "float":
		return BasicType{Primitive_Float, Container_Single}
	case "text":
		return BasicType{Primitive_Text, Container_Single}
	case "bool":
		return BasicType{Primitive_Bool, Container_Single}
	case "file":
		return BasicType{Primitive_File, Container_Single}
	case "set":
		return BasicType{Primitive_Container, Container_Set}
	case "orderedset":
		return BasicType{Primitive_Container, Container_OrderedSet}
	}
	return BasicType{Primitive_Object, Container_Single}
}

// Returns is the type one of int, float, text, bool or file
func (bt BasicType) IsFundamental() bool {
	switch bt.Primitive {
	case Primitive_Int, Primitive_Float, Primitive_Text, Primitive_Bool, Primitive_File:
		return bt.Container == Container_Single
	}
	return false
}

// Returns does the type hold elements of another type
func (bt BasicType) IsContainer() bool {
	return bt.Primitive == Primitive_Container && bt.Container != Container_Single
}
