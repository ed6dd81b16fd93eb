package server

import "sync"

// CancelRegistry tracks in-flight validations flagged for early exit, per
// spec §5. Keyed by document URI rather than JSON-RPC request ID: the one
// long-running operation this server runs outside the request/reply cycle
// is per-document debounced validation, so a document's own superseding
// edit is what needs to pre-empt it, not an arbitrary client cancel
// notification. A long-running validation consults IsCancelled between a
// schema node's top-level children.
type CancelRegistry struct {
	mu        sync.Mutex
	cancelled map[any]bool
}

// NewCancelRegistry returns an empty registry.
func NewCancelRegistry() *CancelRegistry {
	return &CancelRegistry{cancelled: map[any]bool{}}
}

// Cancel flags id as cancelled. Safe to call before the request with that
// id has even started (the flag is simply consulted later).
func (r *CancelRegistry) Cancel(id any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled[id] = true
}

// IsCancelled reports whether id has been flagged.
func (r *CancelRegistry) IsCancelled(id any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelled[id]
}

// Forget drops id's bookkeeping once its request has completed, so the map
// does not grow without bound across a long session.
func (r *CancelRegistry) Forget(id any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cancelled, id)
}

// Checker returns a closure suitable for validator.Context.Cancelled,
// bound to one request id.
func (r *CancelRegistry) Checker(id any) func() bool {
	return func() bool { return r.IsCancelled(id) }
}
