/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/ndllang/ndl/pkg/ndl"
	"github.com/ndllang/ndl/pkg/parser"
)

type loader struct {
	db         *Database
	fetch      FileFetcher
	finders    map[ndl.Namespace]*NamespaceFinder
	order      []ndl.Namespace
	newObjects []ndl.FQON
}

func (db *Database) load(rootFile string, fetch FileFetcher) error {
	ld := &loader{
		db:      db,
		fetch:   fetch,
		finders: make(map[ndl.Namespace]*NamespaceFinder),
	}

	if err := ld.parseAll(rootFile); err != nil {
		return err
	}
	if err := ld.createInfos(); err != nil {
		return err
	}
	if err := ld.fillInfos(); err != nil {
		return err
	}
	if err := ld.linearizeNew(); err != nil {
		return err
	}
	if err := ld.resolveTypes(); err != nil {
		return err
	}
	if err := ld.validatePatches(); err != nil {
		return err
	}
	if err := ld.createValues(); err != nil {
		return err
	}

	logger.Verbose("database ready:", len(ld.newObjects), "objects from", len(ld.order), "files")
	return nil
}

// Parses the root file and, transitively, every imported namespace.
// Namespaces derive from file names; each parsed file gets its own
// NamespaceFinder with the file's alias and import tables.
func (ld *loader) parseAll(rootFile string) error {
	type importRequest struct {
		ns   ndl.Namespace
		from string
	}

	queue := []importRequest{{ns: ndl.NamespaceFromFilename(rootFile), from: "load request"}}
	for len(queue) > 0 {
		req := queue[0]
		queue = queue[1:]
		if _, ok := ld.finders[req.ns]; ok {
			continue
		}

		fileName := req.ns.Filename()
		logger.Verbose("loading file", fileName)

		content, err := ld.fetch(fileName)
		if err != nil {
			return fmt.Errorf("%s: %w", req.from, err)
		}
		ast, err := parser.ParseFile(fileName, string(content))
		if err != nil {
			return err
		}

		nf := newNamespaceFinder(req.ns, ast)
		ld.finders[req.ns] = nf
		ld.order = append(ld.order, req.ns)

		for _, imp := range ast.Imports {
			target := ndl.Namespace(imp.Namespace.String())
			if imp.Alias != "" {
				if err := nf.addAlias(imp.Alias, target, &imp.Pos); err != nil {
					return err
				}
			} else {
				nf.addImport(target, imp.Pos)
			}
			if _, loaded := ld.finders[target]; !loaded {
				queue = append(queue, importRequest{ns: target, from: imp.Pos.String()})
			}
		}
	}
	return nil
}

// Visits every object of every loaded file, nested objects first, the way
// the load passes need them.
func (ld *loader) walkObjects(cb func(nf *NamespaceFinder, ns ndl.Namespace, fqon ndl.FQON, ast *parser.ObjectAST) error) error {
	var recurse func(nf *NamespaceFinder, ns ndl.Namespace, objs []*parser.ObjectAST) error
	recurse = func(nf *NamespaceFinder, ns ndl.Namespace, objs []*parser.ObjectAST) error {
		for _, oast := range objs {
			fqon := ndl.NewFQON(ns, oast.Name)
			if err := recurse(nf, fqon.AsNamespace(), nestedObjects(oast)); err != nil {
				return err
			}
			if err := cb(nf, ns, fqon, oast); err != nil {
				return err
			}
		}
		return nil
	}

	for _, ns := range ld.order {
		nf := ld.finders[ns]
		if err := recurse(nf, ns, nf.ast.Objects); err != nil {
			return err
		}
	}
	return nil
}

func nestedObjects(oast *parser.ObjectAST) []*parser.ObjectAST {
	objs := make([]*parser.ObjectAST, 0)
	for _, item := range oast.Body.Items {
		if item.Object != nil {
			objs = append(objs, item.Object)
		}
	}
	return objs
}

// Pass A: registers an empty ObjectInfo per object
func (ld *loader) createInfos() error {
	return ld.walkObjects(func(nf *NamespaceFinder, ns ndl.Namespace, fqon ndl.FQON, oast *parser.ObjectAST) error {
		if ok, err := ndl.ValidIdent(oast.Name); !ok {
			return errorAt(err, &oast.Pos)
		}
		if nf.conflicts(oast.Name) {
			return errorAt(ndl.ErrName("object name «%s» conflicts with an import alias", oast.Name), &oast.Pos)
		}
		if err := ld.db.meta.add(newObjectInfo(fqon, oast.Pos)); err != nil {
			return errorAt(err, &oast.Pos)
		}
		ld.newObjects = append(ld.newObjects, fqon)
		return nil
	})
}

// Pass B: resolves patch targets, parents and parents-to-add, installs
// member infos and the initial object states
func (ld *loader) fillInfos() error {
	return ld.walkObjects(func(nf *NamespaceFinder, ns ndl.Namespace, fqon ndl.FQON, oast *parser.ObjectAST) error {
		info, ok := ld.db.meta.Object(fqon)
		if !ok {
			return ndl.ErrInternal("object info of «%v» not retrievable", fqon)
		}

		if oast.Target != nil {
			target, err := nf.find(ns, oast.Target, ld.db.meta)
			if err != nil {
				return err
			}
			info.setTarget(target)
		}

		if len(oast.ParentsAdd) > 0 && oast.Target == nil {
			return errorAt(ndl.ErrPatch("only patches can add inheritance parents"), &oast.Pos)
		}
		for _, ref := range oast.ParentsAdd {
			parent, err := nf.find(ns, ref, ld.db.meta)
			if err != nil {
				return err
			}
			info.addParentAdd(parent)
		}

		parents := make([]ndl.FQON, 0, len(oast.Parents))
		for _, ref := range oast.Parents {
			parent, err := nf.find(ns, ref, ld.db.meta)
			if err != nil {
				return err
			}
			parents = append(parents, parent)
		}
		ld.db.state.objects[fqon] = newObjectState(parents)

		for _, item := range oast.Body.Items {
			mast := item.Member
			if mast == nil {
				continue
			}
			if ok, err := ndl.ValidIdent(mast.Name); !ok {
				return errorAt(err, &mast.Pos)
			}
			if mast.Type == nil && mast.Operation == "" {
				return errorAt(ndl.ErrType("member «%s» needs a type or a value", mast.Name), &mast.Pos)
			}
			mi := newMemberInfo(mast.Pos, mast.OverrideDepth())
			if mast.Type != nil {
				typ, err := ld.typeFromAST(nf, ns, mast.Type)
				if err != nil {
					return err
				}
				mi.setType(typ, true)
			}
			if err := info.addMember(mast.Name, mi); err != nil {
				return errorAt(err, &mast.Pos)
			}
		}
		return nil
	})
}

// Computes and memoizes the load-time linearization of every new object
func (ld *loader) linearizeNew() error {
	parentsOf := func(f ndl.FQON) ([]ndl.FQON, error) {
		st, ok := ld.db.state.get(f)
		if !ok {
			return nil, ndl.ErrObjectNotFound(f)
		}
		return st.parents, nil
	}

	for _, fqon := range ld.newObjects {
		st := ld.db.state.objects[fqon]
		if st.lin != nil {
			continue
		}
		lin, err := linearize(fqon, parentsOf)
		if err != nil {
			info, _ := ld.db.meta.Object(fqon)
			return errorAt(err, &info.pos)
		}
		st.lin = lin
	}
	return nil
}

// Load-time validation of every patch: the patched members must exist on
// the target, and the added parents must not break the target's hierarchy
// when virtually inserted at the front of its parent list.
func (ld *loader) validatePatches() error {
	for _, fqon := range ld.newObjects {
		info, _ := ld.db.meta.Object(fqon)
		target, ok := info.Target()
		if !ok {
			continue
		}
		targetState, ok := ld.db.state.get(target)
		if !ok {
			return ndl.ErrInternal("state of patch target «%v» not retrievable", target)
		}

		targetScope := ld.memberScope(target)
		for _, id := range info.order {
			mi := info.members[id]
			tmi, declared := ld.memberInScope(targetScope, id)
			if !declared {
				return errorAt(ndl.ErrPatch("member «%s» is not present on patch target «%v»", id, target), &mi.pos)
			}
			if mi.IsInitialDef() {
				if typ, _ := mi.Type(); !typ.Equal(tmi.typ) {
					return errorAt(ndl.ErrType("member «%s» redeclares type of target «%v»", id, target), &mi.pos)
				}
			}
		}

		newParents := patchedParents(info.ParentsAdd(), targetState.parents)
		_, err := linearize(target, func(f ndl.FQON) ([]ndl.FQON, error) {
			if f == target {
				return newParents, nil
			}
			st, ok := ld.db.state.get(f)
			if !ok {
				return nil, ndl.ErrObjectNotFound(f)
			}
			return st.parents, nil
		})
		if err != nil {
			return errorAt(ndl.ErrPatch("patch «%v» breaks the hierarchy of «%v»: %v", fqon, target, err), &info.pos)
		}
	}
	return nil
}

// Names an object's members may resolve against: its linearization,
// continued through the object's patch-target chain. The object itself
// comes first.
func (ld *loader) memberScope(fqon ndl.FQON) []ndl.FQON {
	scope := make([]ndl.FQON, 0)
	seen := make(map[ndl.FQON]bool)
	for cur := fqon; ; {
		st, ok := ld.db.state.get(cur)
		if !ok {
			break
		}
		for _, a := range st.lin {
			if !seen[a] {
				seen[a] = true
				scope = append(scope, a)
			}
		}
		info, ok := ld.db.meta.Object(cur)
		if !ok {
			break
		}
		target, ok := info.Target()
		if !ok || seen[target] {
			break
		}
		cur = target
	}
	return scope
}

// Returns the first declared member info found in the scope
func (ld *loader) memberInScope(scope []ndl.FQON, id string) (*MemberInfo, bool) {
	for _, a := range scope {
		if ai, ok := ld.db.meta.Object(a); ok {
			if mi, ok := ai.Member(id); ok {
				return mi, true
			}
		}
	}
	return nil, false
}

// New parents of a patched object: added parents first, then the current
// ones, deduplicated preserving order
func patchedParents(add, current []ndl.FQON) []ndl.FQON {
	return dedupFQONs(append(append(make([]ndl.FQON, 0, len(add)+len(current)), add...), current...))
}

func dedupFQONs(names []ndl.FQON) []ndl.FQON {
	res := make([]ndl.FQON, 0, len(names))
	seen := make(map[ndl.FQON]bool, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			res = append(res, n)
		}
	}
	return res
}
