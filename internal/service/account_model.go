package service

import (
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgetwise/internal/storage/account"
)

// AccountType represents an account type in the service layer.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCash     AccountType = "cash"
	AccountTypeCredit   AccountType = "credit"
)

// AccountTypes lists every account type in display order. The first is the default.
var AccountTypes = []AccountType{
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeCash,
	AccountTypeCredit,
}

// Account represents an account in the service layer.
type Account struct {
	ID        uuid.UUID
	Name      string
	Type      AccountType
	CreatedAt time.Time
}

// AccountCreate is the validated input for creating an account.
type AccountCreate struct {
	Name string      `validate:"required,notblank"`
	Type AccountType `validate:"required,accounttype"`
}

// Valid reports whether t is one of AccountTypes.
func (t AccountType) Valid() bool {
	return slices.Contains(AccountTypes, t)
}

func accountTypeToStorage(t AccountType) account.AccountType {
	return account.AccountType(t)
}

func accountTypeFromStorage(t account.AccountType) AccountType {
	return AccountType(t)
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:        row.ID,
		Name:      row.Name,
		Type:      accountTypeFromStorage(row.Type),
		CreatedAt: row.CreatedAt,
	}
}
