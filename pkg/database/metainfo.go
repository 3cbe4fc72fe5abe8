/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"github.com/alecthomas/participle/v2/lexer"
	sorted "github.com/tobshub/go-sortedmap"

	"github.com/ndllang/ndl/pkg/ndl"
)

// Registry of the static per-object definitions, filled at load and
// immutable afterwards.
type MetaInfo struct {
	objects *sorted.SortedMap[ndl.FQON, *ObjectInfo]
}

func newMetaInfo() *MetaInfo {
	return &MetaInfo{
		objects: sorted.New[ndl.FQON, *ObjectInfo](0, func(a, b *ObjectInfo) bool {
			return a.name < b.name
		}),
	}
}

func (m *MetaInfo) add(info *ObjectInfo) error {
	if _, ok := m.objects.Get(info.name); ok {
		return ndl.ErrName("object «%v» declared twice", info.name)
	}
	m.objects.Insert(info.name, info)
	return nil
}

// Returns the object definition and whether it exists
func (m *MetaInfo) Object(f ndl.FQON) (*ObjectInfo, bool) {
	return m.objects.Get(f)
}

// Returns is the object known
func (m *MetaInfo) Has(f ndl.FQON) bool {
	_, ok := m.objects.Get(f)
	return ok
}

// Returns all object names, sorted
func (m *MetaInfo) Names() []ndl.FQON {
	return m.objects.Keys()
}

// Static definition of one object: declaration location, patch target,
// parents to add (patches only) and declared members.
type ObjectInfo struct {
	name       ndl.FQON
	pos        lexer.Position
	target     ndl.FQON
	hasTarget  bool
	parentsAdd []ndl.FQON
	members    map[string]*MemberInfo
	order      []string
}

func newObjectInfo(name ndl.FQON, pos lexer.Position) *ObjectInfo {
	return &ObjectInfo{
		name:    name,
		pos:     pos,
		members: make(map[string]*MemberInfo),
	}
}

// Returns the fully-qualified object name
func (i *ObjectInfo) Name() ndl.FQON { return i.name }

// Returns where the object was declared
func (i *ObjectInfo) Pos() lexer.Position { return i.pos }

// Returns does the object patch another object
func (i *ObjectInfo) IsPatch() bool { return i.hasTarget }

// Returns the patch target, if any
func (i *ObjectInfo) Target() (ndl.FQON, bool) { return i.target, i.hasTarget }

// Returns the parents a patch adds to its target
func (i *ObjectInfo) ParentsAdd() []ndl.FQON { return i.parentsAdd }

// Returns the declared member and whether it exists
func (i *ObjectInfo) Member(id string) (*MemberInfo, bool) {
	mi, ok := i.members[id]
	return mi, ok
}

// Enumerates declared members in declaration order
func (i *ObjectInfo) Members(cb func(id string, mi *MemberInfo)) {
	for _, id := range i.order {
		cb(id, i.members[id])
	}
}

func (i *ObjectInfo) setTarget(f ndl.FQON) {
	i.target = f
	i.hasTarget = true
}

func (i *ObjectInfo) addParentAdd(f ndl.FQON) {
	i.parentsAdd = append(i.parentsAdd, f)
}

func (i *ObjectInfo) addMember(id string, mi *MemberInfo) error {
	if _, ok := i.members[id]; ok {
		return ndl.ErrName("member «%s» of «%v» declared twice", id, i.name)
	}
	i.members[id] = mi
	i.order = append(i.order, id)
	return nil
}

// Static description of one member. The type handle is shared with the
// initial definition once resolved.
type MemberInfo struct {
	pos           lexer.Position
	typ           *ndl.Type
	initialDef    bool
	overrideDepth int
}

func newMemberInfo(pos lexer.Position, overrideDepth int) *MemberInfo {
	return &MemberInfo{pos: pos, overrideDepth: overrideDepth}
}

// Returns where the member was declared
func (m *MemberInfo) Pos() lexer.Position { return m.pos }

// Returns the member type and whether it is resolved yet
func (m *MemberInfo) Type() (*ndl.Type, bool) { return m.typ, m.typ != nil }

// Returns true iff the type was declared here, not inherited
func (m *MemberInfo) IsInitialDef() bool { return m.initialDef }

// Returns the `@`-count declared on the member name
func (m *MemberInfo) OverrideDepth() int { return m.overrideDepth }

func (m *MemberInfo) setType(t *ndl.Type, initial bool) {
	m.typ = t
	m.initialDef = initial
}
