package settings

import (
	"time"

	"github.com/carson-networks/budgetwise/internal/client"
)

// TempKeyPrefix starts the key of every Pending entry. Server IDs are UUIDs, so
// a pending key can never equal a confirmed one.
const TempKeyPrefix = "temp-"

// Record is the displayable data of an account, confirmed or not.
type Record struct {
	Name      string
	Type      client.AccountType
	CreatedAt time.Time
}

// Entry is one row of the local account list: either Confirmed or Pending.
type Entry interface {
	// Key identifies the row within the list.
	Key() string
	Data() Record

	isEntry()
}

// Confirmed is an account the store has acknowledged.
type Confirmed struct {
	ID     string
	Record Record
}

func (c Confirmed) Key() string  { return c.ID }
func (c Confirmed) Data() Record { return c.Record }
func (Confirmed) isEntry()       {}

// Pending is a tentative account whose insert has not settled yet. Its
// CreatedAt is the local submission time.
type Pending struct {
	Tag    string
	Record Record
}

func (p Pending) Key() string  { return TempKeyPrefix + p.Tag }
func (p Pending) Data() Record { return p.Record }
func (Pending) isEntry()       {}

// CanDelete reports whether entry may offer a delete control. Pending entries
// do not exist in the store yet.
func CanDelete(entry Entry) bool {
	_, ok := entry.(Confirmed)
	return ok
}

func confirmedFromAccount(a client.Account) Confirmed {
	return Confirmed{
		ID: a.ID,
		Record: Record{
			Name:      a.Name,
			Type:      a.Type,
			CreatedAt: a.CreatedAt,
		},
	}
}

func prependEntry(entries []Entry, entry Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entry)
	return append(out, entries...)
}

func removeKey(entries []Entry, key string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Key() != key {
			out = append(out, e)
		}
	}
	return out
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
