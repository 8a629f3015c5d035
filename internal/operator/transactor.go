package operator

import (
	"context"

	"github.com/carson-networks/budgetwise/internal/operator/actions"
	"github.com/carson-networks/budgetwise/internal/storage"
)

// Transaction is one unit of work an action runs inside.
type Transaction interface {
	AccountWriter() actions.AccountWriter
	Commit() error
	Rollback() error
}

// Transactor opens transactions.
type Transactor interface {
	Begin(ctx context.Context) (Transaction, error)
}

type storageTransactor struct {
	storage *storage.Storage
}

// NewStorageTransactor runs actions inside storage.Write transactions.
func NewStorageTransactor(s *storage.Storage) Transactor {
	return &storageTransactor{storage: s}
}

func (t *storageTransactor) Begin(ctx context.Context) (Transaction, error) {
	writer, err := t.storage.Write(ctx)
	if err != nil {
		return nil, err
	}
	return storageTransaction{writer: writer}, nil
}

type storageTransaction struct {
	writer *storage.Writer
}

func (t storageTransaction) AccountWriter() actions.AccountWriter {
	return t.writer.Account
}

func (t storageTransaction) Commit() error {
	return t.writer.Commit()
}

func (t storageTransaction) Rollback() error {
	return t.writer.Rollback()
}
