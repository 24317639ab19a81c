package reconcile

import "context"

// Adapter defines the model-specific half of a sync run: how to decide what to do
// with one local record and how to carry that decision out against the remote store.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "applications").
	Name() string

	// Plan decides the action for one record. It may query the remote store but
	// must not write to it. The engine calls Plan only after every earlier record
	// has been applied, so the query observes all prior writes of the run.
	Plan(ctx context.Context, item Item) (Action, error)

	// Apply executes a create or update action and returns the id of the written
	// remote entity. It is never called for skip actions or in dry runs.
	Apply(ctx context.Context, item Item, action Action) (string, error)
}
