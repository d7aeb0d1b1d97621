package operator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

const (
	queueSize = 1000

	// responseGrace bounds how long Process keeps waiting for a worker after
	// the caller's context is done.
	responseGrace = 5 * time.Second
)

// ErrStopped is returned by Process once Stop has been called.
var ErrStopped = errors.New("operator stopped")

// OperatorDelegator owns the action queue and the workers serving it.
type OperatorDelegator struct {
	storage    WriteStore
	log        logrus.FieldLogger
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup

	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

// NewOperatorDelegator creates a delegator with at least one worker. A nil
// log uses the logrus standard logger.
func NewOperatorDelegator(s WriteStore, numWorkers int, log logrus.FieldLogger) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &OperatorDelegator{
		storage:    s,
		log:        log,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		op := NewOperator(i, d.storage, d.queue, d.log)
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
	d.log.WithField("workers", d.numWorkers).Info("OperatorDelegator.Start")
}

// Stop rejects new actions, lets the workers drain what is queued and waits
// for them to exit.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Process runs action in its own database transaction on one of the workers
// and waits for the outcome.
//
// Once the action is queued, the worker's answer wins over the caller's
// context: a deadline that fires while the transaction commits still reports
// the commit. Only a worker silent for responseGrace past the deadline yields
// ctx.Err().
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	if err := d.enqueue(ctx, ActionItem{ctx: ctx, action: action, response: respCh}); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
	}

	grace := time.NewTimer(responseGrace)
	defer grace.Stop()
	select {
	case resp := <-respCh:
		return resp.err
	case <-grace.C:
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
