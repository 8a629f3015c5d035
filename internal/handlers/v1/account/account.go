package account

import (
	"time"

	"github.com/carson-networks/budgetwise/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID        string    `json:"id" format:"uuid" doc:"Account UUID"`
	Name      string    `json:"name" doc:"Account name"`
	Type      string    `json:"type" enum:"checking,savings,cash,credit" doc:"Account type"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time, assigned by the server"`
}

func accountToResponse(acc service.Account) Account {
	return Account{
		ID:        acc.ID.String(),
		Name:      acc.Name,
		Type:      string(acc.Type),
		CreatedAt: acc.CreatedAt,
	}
}
