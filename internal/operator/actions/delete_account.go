package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type DeleteAccount struct {
	ID uuid.UUID
}

func (d *DeleteAccount) Label() string {
	return "delete_account"
}

func (d *DeleteAccount) Perform(ctx context.Context, writer AccountWriter) error {
	return writer.Delete(ctx, d.ID)
}
