package settings

import (
	"context"

	"github.com/carson-networks/budgetwise/internal/client"
)

// Store is the system of record for accounts. *client.Client implements it.
// Errors are shown to the user verbatim through their Error text.
type Store interface {
	// List returns every account ordered by creation time, newest first.
	List(ctx context.Context) ([]client.Account, error)
	Insert(ctx context.Context, name string, accountType client.AccountType) (client.Account, error)
	Delete(ctx context.Context, id string) error
}

// fetchEntries is the single read both views issue on load.
func fetchEntries(ctx context.Context, store Store) ([]Entry, error) {
	accounts, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(accounts))
	for i, a := range accounts {
		entries[i] = confirmedFromAccount(a)
	}
	return entries, nil
}
