/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package ndl

// Declared type of a member: a fundamental type, a container with an owned
// element type, or an object reference with a required supertype.
//
// Types are immutable and shared by handle between the declaring member and
// every member that inherits the declaration.
type Type struct {
	basic   BasicType
	element *Type
	target  FQON
}

// Returns a new fundamental type
func NewFundamentalType(p Primitive) *Type {
	t := &Type{basic: BasicType{Primitive: p, Container: Container_Single}}
	if !t.basic.IsFundamental() {
		panic(ErrInternal("primitive «%v» is not fundamental", p))
	}
	return t
}

// Returns a new container type owning the element type
func NewContainerType(c Container, element *Type) *Type {
	if c == Container_Single {
		panic(ErrInternal("container type needs a container kind"))
	}
	return &Type{
		basic:   BasicType{Primitive: Primitive_Container, Container: c},
		element: element,
	}
}

// Returns a new object type. Values must refer to objects whose
// linearization contains the target.
func NewObjectType(target FQON) *Type {
	return &Type{
		basic:  BasicType{Primitive: Primitive_Object, Container: Container_Single},
		target: target,
	}
}

// Returns the basic type pair
func (t *Type) BasicType() BasicType { return t.basic }

// Returns the primitive kind
func (t *Type) Primitive() Primitive { return t.basic.Primitive }

// Returns the container kind, Container_Single unless the type is a container
func (t *Type) Container() Container { return t.basic.Container }

// Returns the element type of a container type, nil otherwise
func (t *Type) Element() *Type { return t.element }

// Returns the required supertype of an object type and whether there is one
func (t *Type) Target() (FQON, bool) {
	return t.target, t.basic.Primitive == Primitive_Object
}

// Returns is the type fundamental
func (t *Type) IsFundamental() bool { return t.basic.IsFundamental() }

// Returns is the type a container
func (t *Type) IsContainer() bool { return t.basic.IsContainer() }

// Returns the source representation of the type
func (t *Type) String() string {
	switch {
	case t.basic.IsContainer():
		return t.basic.Container.String() + "(" + t.element.String() + ")"
	case t.basic.Primitive == Primitive_Object:
		return t.target.String()
	}
	return t.basic.Primitive.String()
}

// Returns are two type handles structurally equal
func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if other == nil || t.basic != other.basic || t.target != other.target {
		return false
	}
	if t.element == nil || other.element == nil {
		return t.element == other.element
	}
	return t.element.Equal(other.element)
}
