package client

import (
	"fmt"
	"time"
)

// AccountType is one of the fixed account kinds the budget server accepts.
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

// DefaultAccountType is preselected on new-account forms.
const DefaultAccountType = AccountTypeChecking

// ParseAccountType validates s against AccountTypes.
func ParseAccountType(s string) (AccountType, error) {
	for _, t := range AccountTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// Account is a stored account as returned by the budget server.
type Account struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
}

type listAccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

type createAccountRequest struct {
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}
