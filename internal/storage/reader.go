package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budgetwise/internal/storage/account"
)

type Reader struct {
	Accounts *account.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts: account.NewReader(exec),
	}
}
