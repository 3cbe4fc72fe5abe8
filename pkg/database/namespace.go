/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ndllang/ndl/pkg/ndl"
	"github.com/ndllang/ndl/pkg/parser"
)

// Per-file scope: the parsed AST plus the file's alias and import tables.
// Resolves references written in the file to fully-qualified object names.
type NamespaceFinder struct {
	namespace ndl.Namespace
	ast       *parser.FileAST
	aliases   map[string]ndl.Namespace
	imports   map[ndl.Namespace]lexer.Position
}

func newNamespaceFinder(ns ndl.Namespace, ast *parser.FileAST) *NamespaceFinder {
	return &NamespaceFinder{
		namespace: ns,
		ast:       ast,
		aliases:   make(map[string]ndl.Namespace),
		imports:   make(map[ndl.Namespace]lexer.Position),
	}
}

func (nf *NamespaceFinder) addAlias(alias string, target ndl.Namespace, pos *lexer.Position) error {
	if _, ok := nf.aliases[alias]; ok {
		return errorAt(ndl.ErrName("import alias «%s» declared twice", alias), pos)
	}
	nf.aliases[alias] = target
	return nil
}

func (nf *NamespaceFinder) addImport(target ndl.Namespace, pos lexer.Position) {
	if _, ok := nf.imports[target]; !ok {
		nf.imports[target] = pos
	}
}

// Returns does an object name collide with an import alias of the file
func (nf *NamespaceFinder) conflicts(name string) bool {
	_, ok := nf.aliases[name]
	return ok
}

// Resolves a reference against the scope: alias expansion of the first
// part, then enclosing namespaces innermost-out (ending with the reference
// taken as absolute). The first registered candidate wins.
func (nf *NamespaceFinder) find(ns ndl.Namespace, ref *parser.RefAST, meta *MetaInfo) (ndl.FQON, error) {
	if len(ref.Parts) > 1 {
		if target, ok := nf.aliases[ref.Parts[0]]; ok {
			cand := target.Resolve(ref.Parts[1:]...)
			if meta.Has(cand) {
				return cand, nil
			}
			return "", errorAt(ndl.ErrObjectNotFound(cand), &ref.Pos)
		}
	}

	for cur := ns; ; {
		cand := cur.Resolve(ref.Parts...)
		if meta.Has(cand) {
			return cand, nil
		}
		parent, ok := cur.Parent()
		if !ok {
			break
		}
		cur = parent
	}

	// names from plainly imported namespaces are in scope as well
	imports := maps.Keys(nf.imports)
	slices.Sort(imports)
	for _, imp := range imports {
		cand := imp.Resolve(ref.Parts...)
		if meta.Has(cand) {
			return cand, nil
		}
	}

	return "", errorAt(ndl.ErrName("reference «%s» does not resolve to a known object", ref), &ref.Pos)
}
