/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package ndl

import (
	"path/filepath"
	"strings"
)

const (
	// Used as delimiter between namespace parts and object names
	NameDelimiter = "."

	// Suffix of loadable source files
	FileSuffix = ".ndl"
)

// Fully qualified object name: dot-joined namespace parts plus the object
// name, e.g. `game.units.Knight`. Nested objects extend the FQON of their
// enclosing object.
type FQON string

// Namespace a file or object provides names in. The root namespace is empty.
type Namespace string

// Builds an FQON from a namespace and an object name.
func NewFQON(ns Namespace, name string) FQON {
	if ns == "" {
		return FQON(name)
	}
	return FQON(string(ns) + NameDelimiter + name)
}

// Returns FQON as string
func (f FQON) String() string { return string(f) }

// Returns the namespace the object lives in (everything up to the last
// delimiter, empty for top level names).
func (f FQON) Namespace() Namespace {
	if i := strings.LastIndex(string(f), NameDelimiter); i >= 0 {
		return Namespace(f[:i])
	}
	return ""
}

// Returns the unqualified object name (the part after the last delimiter).
func (f FQON) Object() string {
	if i := strings.LastIndex(string(f), NameDelimiter); i >= 0 {
		return string(f[i+1:])
	}
	return string(f)
}

// Nested objects provide a namespace of their own.
func (f FQON) AsNamespace() Namespace { return Namespace(f) }

// Returns has fqon valid identifiers in every part and error if not
func ValidFQON(f FQON) (bool, error) {
	if f == "" {
		return false, ErrName("empty object name")
	}
	for _, part := range strings.Split(string(f), NameDelimiter) {
		if ok, err := ValidIdent(part); !ok {
			return false, err
		}
	}
	return true, nil
}

// Derives the namespace from a file name by stripping the file suffix and
// converting path separators to delimiters: `game/units.ndl` → `game.units`.
func NamespaceFromFilename(fileName string) Namespace {
	n := strings.TrimSuffix(filepath.ToSlash(fileName), FileSuffix)
	return Namespace(strings.ReplaceAll(n, "/", NameDelimiter))
}

// Returns the file name a namespace is loaded from, the reverse of
// NamespaceFromFilename.
func (ns Namespace) Filename() string {
	return strings.ReplaceAll(string(ns), NameDelimiter, "/") + FileSuffix
}

// Returns namespace as string
func (ns Namespace) String() string { return string(ns) }

// Returns the enclosing namespace and false when ns already is the root.
func (ns Namespace) Parent() (Namespace, bool) {
	if ns == "" {
		return "", false
	}
	if i := strings.LastIndex(string(ns), NameDelimiter); i >= 0 {
		return Namespace(ns[:i]), true
	}
	return "", true
}

// Joins reference parts onto the namespace, producing a candidate FQON.
func (ns Namespace) Resolve(parts ...string) FQON {
	return NewFQON(ns, strings.Join(parts, NameDelimiter))
}
