package actions

import (
	"context"

	"github.com/carson-networks/budgetwise/internal/storage/account"
)

// CreateAccount inserts one account. Created holds the stored row once Perform succeeds.
type CreateAccount struct {
	Name string
	Type account.AccountType

	Created *account.Account
}

func (c *CreateAccount) Label() string {
	return "create_account"
}

func (c *CreateAccount) Perform(ctx context.Context, writer AccountWriter) error {
	created, err := writer.Create(ctx, &account.AccountCreate{
		Name: c.Name,
		Type: c.Type,
	})
	if err != nil {
		return err
	}

	c.Created = created
	return nil
}
