/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	sorted "github.com/tobshub/go-sortedmap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ndllang/ndl/pkg/ndl"
	"github.com/ndllang/ndl/pkg/value"
)

// Declared (operator, value) pair of one member in one object state
type Member struct {
	overrideDepth int
	op            ndl.Operator
	val           value.IValue
}

// Returns the declared operation
func (m Member) Operation() ndl.Operator { return m.op }

// Returns the declared value
func (m Member) Value() value.IValue { return m.val }

// Per-time snapshot of one object: parents, the linearization computed when
// the state was created, and the members that carry a value in this state.
// Immutable once committed; patching copies the state.
type ObjectState struct {
	parents []ndl.FQON
	lin     []ndl.FQON
	members map[string]Member
}

func newObjectState(parents []ndl.FQON) *ObjectState {
	return &ObjectState{
		parents: parents,
		members: make(map[string]Member),
	}
}

// Returns the declared parents
func (s *ObjectState) Parents() []ndl.FQON { return s.parents }

// Returns the linearization memoized at state creation, self first
func (s *ObjectState) Linearization() []ndl.FQON { return s.lin }

// Returns the declared (operator, value) pair of the member in this state
func (s *ObjectState) Member(id string) (Member, bool) {
	m, ok := s.members[id]
	return m, ok
}

// Value handles are immutable and shared between the copies.
func (s *ObjectState) copyForPatch() *ObjectState {
	return &ObjectState{
		parents: slices.Clone(s.parents),
		lin:     slices.Clone(s.lin),
		members: maps.Clone(s.members),
	}
}

// Snapshot of the database at one commit: the states of the objects touched
// by the commit, chained to the previous snapshot for everything else.
type State struct {
	time     ndl.Order
	objects  map[ndl.FQON]*ObjectState
	previous *State
}

func newState(t ndl.Order, previous *State) *State {
	return &State{
		time:     t,
		objects:  make(map[ndl.FQON]*ObjectState),
		previous: previous,
	}
}

// Returns the commit time of the snapshot
func (s *State) Time() ndl.Order { return s.time }

func (s *State) get(f ndl.FQON) (*ObjectState, bool) {
	for cur := s; cur != nil; cur = cur.previous {
		if os, ok := cur.objects[f]; ok {
			return os, true
		}
	}
	return nil, false
}

// Commits of one view, ordered by commit time
type timeline = sorted.SortedMap[uint64, *State]

func newTimeline() *timeline {
	return sorted.New[uint64, *State](0, func(a, b *State) bool {
		return a.time < b.time
	})
}
