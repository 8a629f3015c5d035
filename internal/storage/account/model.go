package account

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

// ErrNotFound is returned when no account matches the requested ID.
var ErrNotFound = errors.New("account not found")

// AccountType is the stored account type. The column carries a CHECK constraint
// limiting it to the values below.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCash     AccountType = "cash"
	AccountTypeCredit   AccountType = "credit"
)

// Account represents an account record.
type Account struct {
	ID        uuid.UUID
	Name      string
	Type      AccountType
	CreatedAt time.Time
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Name string
	Type AccountType
}

var accountColumns = []any{"id", "name", "type", "created_at"}

const accountsTable = "accounts"

// accountRow is the scan target for rows of the accounts table.
type accountRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

func rowToAccount(row accountRow) *Account {
	return &Account{
		ID:        row.ID,
		Name:      row.Name,
		Type:      AccountType(row.Type),
		CreatedAt: row.CreatedAt,
	}
}
