package settings

import (
	"context"
	"sync"
)

// ListView is the read-only account list. It loads once and never mutates.
type ListView struct {
	store Store

	mu      sync.Mutex
	version uint64
	phase   Phase
	entries []Entry
	err     string

	notifier notifier
}

// NewListView returns a view over store in PhaseLoading. Call Load to populate it.
func NewListView(store Store) *ListView {
	return &ListView{
		store: store,
		phase: PhaseLoading,
	}
}

// Subscribe registers the listener for state changes, replacing any previous one.
func (v *ListView) Subscribe(l Listener) {
	v.notifier.subscribe(l)
}

// State returns the current snapshot.
func (v *ListView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// Load issues exactly one read. Success moves the view to PhaseReady; failure to
// PhaseFailed with the store's description. There is no retry.
func (v *ListView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.phase = PhaseLoading
	v.err = ""
	s := v.changedLocked()
	v.mu.Unlock()
	v.notifier.publish(s)

	entries, err := fetchEntries(ctx, v.store)

	v.mu.Lock()
	if err != nil {
		v.phase = PhaseFailed
		v.err = err.Error()
	} else {
		v.phase = PhaseReady
		v.entries = entries
	}
	s = v.changedLocked()
	v.mu.Unlock()
	v.notifier.publish(s)

	return err
}

func (v *ListView) changedLocked() State {
	v.version++
	return v.snapshotLocked()
}

func (v *ListView) snapshotLocked() State {
	return State{
		Version: v.version,
		Phase:   v.phase,
		Entries: cloneEntries(v.entries),
		Err:     v.err,
		Form:    DefaultForm(),
	}
}
