/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"github.com/google/uuid"

	"github.com/ndllang/ndl/pkg/ndl"
)

type notifierEntry struct {
	obj ndl.FQON
	cb  UpdateCallback
}

// Subscription registered in a view, alive until closed
type Notifier struct {
	view *View
	id   uuid.UUID
}

func (v *View) subscribe(obj ndl.FQON, cb UpdateCallback) INotifier {
	id := uuid.New()
	v.notifiers[id] = &notifierEntry{obj: obj, cb: cb}
	return &Notifier{view: v, id: id}
}

// Unregisters the subscription
func (n *Notifier) Close() {
	delete(n.view.notifiers, n.id)
}
