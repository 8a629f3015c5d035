package account

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns every account, newest first. Ties on created_at are broken by ID so
// repeated reads over unchanged data return the same order.
func (r *Reader) List(ctx context.Context) ([]*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(accountsTable),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Account, len(rows))
	for i, row := range rows {
		result[i] = rowToAccount(row)
	}
	return result, nil
}
