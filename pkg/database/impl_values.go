/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"golang.org/x/exp/slices"

	"github.com/ndllang/ndl/pkg/ndl"
	"github.com/ndllang/ndl/pkg/parser"
	"github.com/ndllang/ndl/pkg/value"
)

// Builds the declared member values of every object into the initial state,
// verifying each declared operator against the member type
func (ld *loader) createValues() error {
	return ld.walkObjects(func(nf *NamespaceFinder, ns ndl.Namespace, fqon ndl.FQON, oast *parser.ObjectAST) error {
		info, _ := ld.db.meta.Object(fqon)
		st := ld.db.state.objects[fqon]

		for _, item := range oast.Body.Items {
			mast := item.Member
			if mast == nil || mast.Operation == "" {
				continue
			}

			mi, ok := info.Member(mast.Name)
			if !ok {
				return ndl.ErrInternal("member info of «%s.%s» not retrievable", fqon, mast.Name)
			}
			typ, ok := mi.Type()
			if !ok {
				return ndl.ErrInternal("member type of «%s.%s» not resolved", fqon, mast.Name)
			}
			op, ok := ndl.ParseOperator(mast.Operation)
			if !ok {
				return ndl.ErrInternal("member «%s.%s» has an invalid operator «%s»", fqon, mast.Name, mast.Operation)
			}

			val, err := ld.valueFromAST(nf, ns, mast.Value, typ)
			if err != nil {
				return err
			}
			if !val.AllowedOperations(typ).Contains(op) {
				return errorAt(
					ndl.ErrType("operator «%v» not allowed for value «%v» of member type «%v»", op, val, typ),
					&mast.Pos)
			}

			st.members[mast.Name] = Member{
				overrideDepth: mast.OverrideDepth(),
				op:            op,
				val:           val,
			}
		}
		return nil
	})
}

// Builds a value from its AST under the declared type
func (ld *loader) valueFromAST(nf *NamespaceFinder, ns ndl.Namespace, vast *parser.ValueAST, typ *ndl.Type) (value.IValue, error) {
	if typ.IsContainer() {
		return ld.containerFromAST(nf, ns, vast, typ)
	}

	switch typ.Primitive() {
	case ndl.Primitive_Int:
		if vast.Int != nil {
			return value.Int(*vast.Int), nil
		}
	case ndl.Primitive_Float:
		if vast.Float != nil {
			return value.Float(*vast.Float), nil
		}
		if vast.Int != nil {
			return value.Float(*vast.Int), nil
		}
	case ndl.Primitive_Text:
		if vast.StringLit != nil {
			return value.Text(*vast.StringLit), nil
		}
	case ndl.Primitive_File:
		if vast.StringLit != nil {
			return value.File(*vast.StringLit), nil
		}
	case ndl.Primitive_Bool:
		if vast.BoolLit != nil {
			return value.Bool(*vast.BoolLit == "True"), nil
		}
	case ndl.Primitive_Object:
		if vast.Ref != nil {
			return ld.objectRefFromAST(nf, ns, vast, typ)
		}
	}
	return nil, errorAt(ndl.ErrType("value «%v» does not fit member type «%v»", vast, typ), &vast.Pos)
}

func (ld *loader) containerFromAST(nf *NamespaceFinder, ns ndl.Namespace, vast *parser.ValueAST, typ *ndl.Type) (value.IValue, error) {
	var items []*parser.ValueAST
	ordered := false
	switch {
	case vast.IsSet:
		items = vast.SetItems
	case vast.IsOrdSet:
		items, ordered = vast.OrdItems, true
	default:
		return nil, errorAt(ndl.ErrType("value «%v» is not a container literal", vast), &vast.Pos)
	}
	if typ.Container() == ndl.Container_OrderedSet && !ordered {
		return nil, errorAt(ndl.ErrType("member type «%v» takes an ordered set literal", typ), &vast.Pos)
	}

	elems := make([]value.IValue, len(items))
	for i, item := range items {
		elem, err := ld.valueFromAST(nf, ns, item, typ.Element())
		if err != nil {
			return nil, err
		}
		elems[i] = elem
	}

	var val value.IValue
	var err error
	if ordered {
		val, err = value.NewOrderedSet(elems...)
	} else {
		val, err = value.NewSet(elems...)
	}
	if err != nil {
		return nil, errorAt(err, &vast.Pos)
	}
	return val, nil
}

// Object references must point to an object whose linearization contains
// the type's target
func (ld *loader) objectRefFromAST(nf *NamespaceFinder, ns ndl.Namespace, vast *parser.ValueAST, typ *ndl.Type) (value.IValue, error) {
	ref, err := nf.find(ns, vast.Ref, ld.db.meta)
	if err != nil {
		return nil, err
	}
	target, _ := typ.Target()
	st, ok := ld.db.state.get(ref)
	if !ok {
		return nil, ndl.ErrInternal("state of «%v» not retrievable", ref)
	}
	if !slices.Contains(st.lin, target) {
		return nil, errorAt(ndl.ErrType("object «%v» does not extend «%v»", ref, target), &vast.Pos)
	}
	return value.ObjectRef(ref), nil
}
