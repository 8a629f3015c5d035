package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budgetwise/internal/storage/account"
)

type Writer struct {
	tx      bob.Tx
	Account *account.Writer
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:      tx,
		Account: account.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
