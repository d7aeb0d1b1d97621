package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// ErrActionPanicked is returned for an action that panicked. Its transaction
// is rolled back and the worker keeps serving the queue.
var ErrActionPanicked = errors.New("action panicked")

// WriteStore opens a Writer bound to a new database transaction.
type WriteStore interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is one worker. Every action it takes from the queue runs in its
// own database transaction, committed only when the action succeeds.
type Operator struct {
	id      int
	storage WriteStore
	queue   <-chan ActionItem
	log     logrus.FieldLogger
}

func NewOperator(id int, s WriteStore, queue <-chan ActionItem, log logrus.FieldLogger) *Operator {
	return &Operator{
		id:      id,
		storage: s,
		queue:   queue,
		log:     log,
	}
}

// Run serves the queue until it is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.execute(item)}
	}
}

func (o *Operator) execute(item ActionItem) (err error) {
	// the caller gave up while the item was queued
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	finished := false
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrActionPanicked, r)
			o.log.WithFields(logrus.Fields{
				"worker": o.id,
				"action": fmt.Sprintf("%T", item.action),
				"panic":  r,
			}).Error("Operator.execute.panic")
		}
		if !finished {
			_ = writer.Rollback()
		}
	}()

	if err := item.action.Perform(item.ctx, writer); err != nil {
		o.log.WithError(err).WithFields(logrus.Fields{
			"worker": o.id,
			"action": fmt.Sprintf("%T", item.action),
		}).Debug("Operator.execute.rolledBack")
		return err
	}

	finished = true
	return writer.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan<- ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
