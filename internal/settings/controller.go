package settings

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgetwise/internal/client"
)

var (
	// ErrNameRequired is the validation error for a blank account name. Its text is shown to the user.
	ErrNameRequired = errors.New("Account name is required.")
	// ErrSubmitInFlight is returned while a previous create has not settled.
	ErrSubmitInFlight = errors.New("a create is already in flight")
	// ErrUnknownAccount is returned for a delete of an ID not in the list.
	ErrUnknownAccount = errors.New("account is not in the list")
	// ErrPendingAccount is returned for a delete of an account the store has not confirmed.
	ErrPendingAccount = errors.New("account is not saved yet")
)

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the source of provisional creation times.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithTagGenerator sets how pending entries are tagged. Tags must be unique per controller.
func WithTagGenerator(newTag func() string) Option {
	return func(c *Controller) { c.newTag = newTag }
}

// Controller is the read-and-mutate settings view. Creates and deletes are
// applied to the local list before the store answers, then confirmed or rolled
// back. The mutex is never held across a store call.
type Controller struct {
	store  Store
	now    func() time.Time
	newTag func() string

	mu         sync.Mutex
	version    uint64
	phase      Phase
	entries    []Entry
	err        string
	form       Form
	submitting bool
	// pendingTag is the tag of the create in flight, valid while submitting.
	pendingTag string

	notifier notifier
}

// NewController returns a controller over store in PhaseLoading. Call Load to populate it.
func NewController(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		now:    time.Now,
		newTag: func() string { return uuid.Must(uuid.NewV4()).String() },
		phase:  PhaseLoading,
		form:   DefaultForm(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers the listener for state changes, replacing any previous one.
func (c *Controller) Subscribe(l Listener) {
	c.notifier.subscribe(l)
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Load issues one read and replaces the confirmed entries with its result.
// The entry of an in-flight create survives so it stays visible; any other
// Pending entry is dropped. On failure the error is shown and the list is left
// empty; the controller still becomes ready.
func (c *Controller) Load(ctx context.Context) error {
	c.update(func() {
		c.phase = PhaseLoading
	})

	entries, err := fetchEntries(ctx, c.store)

	c.update(func() {
		next := c.livePendingLocked()
		if err != nil {
			c.err = err.Error()
		} else {
			c.err = ""
			next = append(next, entries...)
		}
		c.entries = next
		c.phase = PhaseReady
	})

	return err
}

// SetName updates the form's name field.
func (c *Controller) SetName(name string) {
	c.update(func() {
		c.form.Name = name
	})
}

// SetType updates the form's type field. Unknown types are rejected.
func (c *Controller) SetType(accountType client.AccountType) error {
	if _, err := client.ParseAccountType(string(accountType)); err != nil {
		return err
	}
	c.update(func() {
		c.form.Type = accountType
	})
	return nil
}

// Submit creates an account from the form. A blank name fails synchronously
// with ErrNameRequired and no request. Otherwise a Pending entry is prepended
// immediately and replaced by the stored account once Insert succeeds; on
// failure it is removed and the form is left as typed.
func (c *Controller) Submit(ctx context.Context) error {
	var (
		pending  Pending
		rejected error
	)

	c.mu.Lock()
	switch {
	case c.submitting:
		c.mu.Unlock()
		return ErrSubmitInFlight
	case strings.TrimSpace(c.form.Name) == "":
		c.err = ErrNameRequired.Error()
		rejected = ErrNameRequired
	default:
		c.err = ""
		pending = Pending{
			Tag: c.newTag(),
			Record: Record{
				Name:      strings.TrimSpace(c.form.Name),
				Type:      c.form.Type,
				CreatedAt: c.now(),
			},
		}
		c.entries = prependEntry(c.entries, pending)
		c.submitting = true
		c.pendingTag = pending.Tag
	}
	s := c.changedLocked()
	c.mu.Unlock()
	c.notifier.publish(s)

	if rejected != nil {
		return rejected
	}

	created, err := c.store.Insert(ctx, pending.Record.Name, pending.Record.Type)

	c.update(func() {
		c.entries = removeKey(c.entries, pending.Key())
		if err != nil {
			c.err = err.Error()
		} else {
			confirmed := confirmedFromAccount(created)
			c.entries = prependEntry(removeKey(c.entries, confirmed.Key()), confirmed)
			c.form = DefaultForm()
		}
		c.submitting = false
		c.pendingTag = ""
	})

	return err
}

// Delete removes the confirmed account id from the list, then from the store.
// If the store refuses, the whole list is restored to what it was when Delete
// was called, which also reverts any other change made in the meantime.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	index := -1
	for i, e := range c.entries {
		if e.Key() != id {
			continue
		}
		if !CanDelete(e) {
			c.mu.Unlock()
			return ErrPendingAccount
		}
		index = i
		break
	}
	if index < 0 {
		c.mu.Unlock()
		return ErrUnknownAccount
	}

	snapshot := cloneEntries(c.entries)
	c.entries = append(cloneEntries(c.entries[:index]), c.entries[index+1:]...)
	s := c.changedLocked()
	c.mu.Unlock()
	c.notifier.publish(s)

	err := c.store.Delete(ctx, id)
	if err != nil {
		c.update(func() {
			c.entries = snapshot
			c.err = err.Error()
		})
	}

	return err
}

// update applies fn under the lock and publishes the resulting state.
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	s := c.changedLocked()
	c.mu.Unlock()
	c.notifier.publish(s)
}

func (c *Controller) changedLocked() State {
	c.version++
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	return State{
		Version:    c.version,
		Phase:      c.phase,
		Entries:    cloneEntries(c.entries),
		Err:        c.err,
		Form:       c.form,
		Submitting: c.submitting,
	}
}

// livePendingLocked returns the entry of the create in flight, if it is listed.
func (c *Controller) livePendingLocked() []Entry {
	if !c.submitting {
		return nil
	}
	var out []Entry
	for _, e := range c.entries {
		if p, ok := e.(Pending); ok && p.Tag == c.pendingTag {
			out = append(out, e)
		}
	}
	return out
}
