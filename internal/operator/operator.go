package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budgetwise/internal/metrics"
	"github.com/carson-networks/budgetwise/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	transactor Transactor
	queue      chan ActionItem
	logger     *logrus.Logger
}

func NewOperator(t Transactor, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		transactor: t,
		queue:      queue,
		logger:     logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		err := o.processItem(item)
		metrics.ObserveMutation(item.action.Label(), err)
		if err != nil {
			o.logger.WithError(err).WithField("action", item.action.Label()).Warn("Operator.processItem.failed")
		}
		item.response <- ActionItemResponse{err: err}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	// The submitter may have given up while the item sat in the queue.
	if err := item.ctx.Err(); err != nil {
		return err
	}

	tx, err := o.transactor.Begin(item.ctx)
	if err != nil {
		return err
	}

	err = item.action.Perform(item.ctx, tx.AccountWriter())
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
