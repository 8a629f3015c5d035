package settings

import (
	"sync"

	"github.com/carson-networks/budgetwise/internal/client"
)

// Phase is the load state of a view.
type Phase int

const (
	// PhaseLoading means the initial read is in flight.
	PhaseLoading Phase = iota
	// PhaseFailed means the initial read of a ListView failed. Controllers never enter it.
	PhaseFailed
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Form holds the create-account form fields.
type Form struct {
	Name string
	Type client.AccountType
}

// DefaultForm is an empty name with the first account type.
func DefaultForm() Form {
	return Form{Type: client.DefaultAccountType}
}

// State is an immutable snapshot of a view. Entries must not be modified.
type State struct {
	// Version increases with every change.
	Version uint64
	Phase   Phase
	Entries []Entry
	// Err is the visible error message, empty when there is none.
	Err string

	Form       Form
	Submitting bool
}

// Listener receives every new State. It runs synchronously on the goroutine that
// made the change and must not call back into mutating methods.
type Listener func(State)

// notifier delivers snapshots in version order, dropping any that arrive late.
type notifier struct {
	mu        sync.Mutex
	listener  Listener
	delivered uint64
}

func (n *notifier) subscribe(l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listener = l
}

func (n *notifier) publish(s State) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listener == nil || s.Version <= n.delivered {
		return
	}
	n.delivered = s.Version
	n.listener(s)
}
