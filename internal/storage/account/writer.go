package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Create inserts an account and returns the stored row, including the
// server-assigned ID and creation time.
func (w *Writer) Create(ctx context.Context, create *AccountCreate) (*Account, error) {
	query := psql.Insert(
		im.Into(accountsTable, "name", "type"),
		im.Values(psql.Arg(create.Name), psql.Arg(string(create.Type))),
		im.Returning(accountColumns...),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}
	return rowToAccount(row), nil
}

// Delete removes the account with the given ID. It returns ErrNotFound when no
// row matched.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(accountsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
