/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"github.com/ndllang/ndl/pkg/ndl"
	"github.com/ndllang/ndl/pkg/parser"
)

// Builds a Type from its AST: a fundamental name, a container with an
// element payload, or an object reference
func (ld *loader) typeFromAST(nf *NamespaceFinder, ns ndl.Namespace, tast *parser.TypeAST) (*ndl.Type, error) {
	if len(tast.Name.Parts) == 1 {
		bt := ndl.BasicTypeFromToken(tast.Name.Parts[0])
		switch {
		case bt.IsFundamental():
			if tast.Payload != nil {
				return nil, errorAt(ndl.ErrType("fundamental type «%s» can not have a payload", tast.Name), &tast.Pos)
			}
			return ndl.NewFundamentalType(bt.Primitive), nil
		case bt.IsContainer():
			if tast.Payload == nil {
				return nil, errorAt(ndl.ErrType("container «%s» needs an element type", tast.Name), &tast.Pos)
			}
			elem, err := ld.typeFromAST(nf, ns, tast.Payload)
			if err != nil {
				return nil, err
			}
			if elem.IsContainer() {
				return nil, errorAt(ndl.ErrType("container elements must be hashable, «%v» is not", elem), &tast.Payload.Pos)
			}
			return ndl.NewContainerType(bt.Container, elem), nil
		}
	}

	if tast.Payload != nil {
		return nil, errorAt(ndl.ErrType("object type «%s» can not have a payload", tast.Name), &tast.Pos)
	}
	target, err := nf.find(ns, tast.Name, ld.db.meta)
	if err != nil {
		return nil, err
	}
	return ndl.NewObjectType(target), nil
}

// Links members without a local type to the unique ancestor that declares
// the type. Patch members resolve through the patch target's linearization.
func (ld *loader) resolveTypes() error {
	for _, fqon := range ld.newObjects {
		info, _ := ld.db.meta.Object(fqon)

		// the own ancestry first; patches continue into the ancestry of
		// their target, chained through nested patch targets
		search := ld.memberScope(fqon)[1:]

		for _, id := range info.order {
			mi := info.members[id]
			if mi.IsInitialDef() && info.IsPatch() {
				// patches may restate the target's type, checked for
				// equality by validatePatches
				continue
			}
			typeNeeded := !mi.IsInitialDef()

			for _, ancestor := range search {
				ai, ok := ld.db.meta.Object(ancestor)
				if !ok {
					continue
				}
				ami, ok := ai.Member(id)
				if !ok || !ami.IsInitialDef() {
					continue
				}
				if !typeNeeded {
					return errorAt(
						ndl.ErrType("ancestor «%v» already defines the type of «%s»", ancestor, id),
						&mi.pos)
				}
				typ, _ := ami.Type()
				mi.setType(typ, false)
				typeNeeded = false
			}

			if typeNeeded {
				return errorAt(ndl.ErrType("no ancestor defines the type of «%s»", id), &mi.pos)
			}
		}
	}
	return ld.checkUniqueDefinitions()
}

// Every member visible on an object must have exactly one initial type
// definition across the object's linearization
func (ld *loader) checkUniqueDefinitions() error {
	for _, fqon := range ld.newObjects {
		st := ld.db.state.objects[fqon]
		first := make(map[string]ndl.FQON)
		var firstErr error
		for _, ancestor := range st.lin {
			ai, ok := ld.db.meta.Object(ancestor)
			if !ok {
				continue
			}
			a := ancestor
			ai.Members(func(id string, ami *MemberInfo) {
				if firstErr != nil || !ami.IsInitialDef() {
					return
				}
				if definer, ok := first[id]; ok && definer != a {
					firstErr = errorAt(
						ndl.ErrType("«%v» already defines the type of «%s», seen again at «%v»", definer, id, a),
						&ami.pos)
					return
				}
				first[id] = a
			})
		}
		if firstErr != nil {
			return firstErr
		}
	}
	return nil
}
