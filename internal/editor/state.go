// Package editor implements the record editing workflow shared by the
// catalog and user pages: a small state machine that buffers one record's
// fields as an all-strings draft, validates it on submit and applies the
// result to the owning store as a single all-or-nothing commit. Deletes go
// through an explicit pending-confirmation state instead of a blocking
// prompt so the flow can be driven (and tested) step by step.
package editor

// State is the editing session state.
type State int

const (
	// StateClosed means no dialog is open; the draft holds no meaningful data.
	StateClosed State = iota
	// StateCreating means a blank draft is being filled for a new record.
	StateCreating
	// StateEditing means the draft was initialized from an existing record.
	StateEditing
	// StatePendingDelete means a delete is waiting for confirmation.
	StatePendingDelete
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateCreating:
		return "creating"
	case StateEditing:
		return "editing"
	case StatePendingDelete:
		return "pending_delete"
	default:
		return "unknown"
	}
}
