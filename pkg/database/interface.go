/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"github.com/ndllang/ndl/pkg/ndl"
	"github.com/ndllang/ndl/pkg/value"
)

// Delivers the content of a source file to the loader. The only I/O
// boundary of the database: callers decide where bytes come from.
type FileFetcher func(fileName string) ([]byte, error)

// Fired when a patch committed in the view affects the subscribed object
type UpdateCallback func(obj ndl.FQON, t ndl.Order)

// Loaded NDL database. Immutable after load; all evolving state lives in
// views.
type IDatabase interface {
	// Returns a fresh root view at the load-time state
	NewView() IView

	// Returns the names of all loaded objects, sorted
	Objects() []ndl.FQON
}

// Time-indexed query handle over a database. A view is not internally
// synchronized: callers serialize mutations.
type IView interface {
	// Returns a child view pinned to this view's current time. Patches
	// applied to either view afterwards do not affect the other.
	Fork() IView

	// Returns a handle for the object
	Get(obj ndl.FQON) (IObject, error)

	// Applies the patch to its target and returns the commit time.
	// A rejected patch leaves the view unchanged.
	ApplyPatch(patch ndl.FQON) (ndl.Order, error)

	// Returns the view's current time
	Now() ndl.Order
}

// Handle for accessing an object independent of time. Pass ndl.Latest to
// observe the view's current time.
type IObject interface {
	// Returns the fully-qualified object name
	Name() ndl.FQON

	// Returns the folded member value at the given time
	Value(member string, t ndl.Order) (value.IValue, error)

	// Typed accessors over Value
	Int(member string, t ndl.Order) (int64, error)
	Float(member string, t ndl.Order) (float64, error)
	Text(member string, t ndl.Order) (string, error)
	Bool(member string, t ndl.Order) (bool, error)
	File(member string, t ndl.Order) (string, error)
	Set(member string, t ndl.Order) (*value.Set, error)
	OrderedSet(member string, t ndl.Order) (*value.OrderedSet, error)

	// Returns a handle for the object an object-typed member refers to
	Object(member string, t ndl.Order) (IObject, error)

	// Returns all member names known on the linearization, sorted
	Members(t ndl.Order) ([]string, error)

	// Returns the declared parents
	Parents(t ndl.Order) ([]ndl.FQON, error)

	// Returns the C3 linearization, self first
	Linearized(t ndl.Order) ([]ndl.FQON, error)

	// Returns is the member known on the linearization
	Has(member string, t ndl.Order) (bool, error)

	// Returns true if other equals this object or appears in its
	// linearization
	Extends(other ndl.FQON, t ndl.Order) (bool, error)

	// Returns does the object carry a patch target
	IsPatch() bool

	// Returns the patch target, if any
	Target() (ndl.FQON, bool)

	// Registers a callback fired whenever a patch committed in this
	// object's view affects this object. Close the notifier to
	// unregister.
	Subscribe(cb UpdateCallback) INotifier
}

// Subscription handle, see IObject.Subscribe
type INotifier interface {
	Close()
}
