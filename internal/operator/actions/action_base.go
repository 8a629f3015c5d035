package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgetwise/internal/storage/account"
)

// AccountWriter is the transactional account storage an action performs against.
type AccountWriter interface {
	Create(ctx context.Context, create *account.AccountCreate) (*account.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type IAction interface {
	// Label names the action in logs and metrics.
	Label() string
	Perform(ctx context.Context, writer AccountWriter) error
}
