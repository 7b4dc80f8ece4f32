package sync

import (
	"context"
	"encoding/json"
	"mediflow-service/internal/app/config"
	"mediflow-service/internal/app/services/shared/syncqueue"
	"mediflow-service/internal/pkg/constvars"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the ledger sync retry queue with at-least-once semantics.
// Tasks that exhaust their retry budget are parked on the dead-letter queue
// for operator inspection.
type Worker struct {
	log          *zap.Logger
	queue        *syncqueue.Service
	synchronizer LedgerSynchronizer
	maxAttempts  int
	stop         chan struct{}
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, queue *syncqueue.Service, synchronizer LedgerSynchronizer) *Worker {
	maxAttempts := cfg.Sync.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = constvars.LedgerSyncMaxAttempts
	}
	return &Worker{
		log:          log,
		queue:        queue,
		synchronizer: synchronizer,
		maxAttempts:  maxAttempts,
		stop:         make(chan struct{}),
	}
}

// Start begins consuming the retry queue. It returns a stop function to halt
// execution.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	deliveries, err := w.queue.Consume("ledger-sync-worker")
	if err != nil {
		return nil, err
	}

	w.log.Info("ledger sync worker started")

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handleDelivery(ctx, delivery.Body)
				w.acknowledge(delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
	}, nil
}

// acknowledge always acks: failed tasks were already requeued or parked by
// handleDelivery, so redelivery of the original message would double-process.
func (w *Worker) acknowledge(delivery amqp.Delivery) {
	if err := delivery.Ack(false); err != nil {
		w.log.Warn("failed to ack ledger sync delivery", zap.Error(err))
	}
}

func (w *Worker) handleDelivery(ctx context.Context, body []byte) {
	var task syncqueue.Task
	if err := json.Unmarshal(body, &task); err != nil {
		w.log.Error("discarding malformed ledger sync task", zap.Error(err))
		return
	}

	err := w.synchronizer.Apply(ctx, &task)
	if err == nil {
		w.log.Info("ledger sync retry succeeded",
			zap.String(constvars.LoggingRecordIDKey, task.RecordID),
			zap.String(constvars.LoggingPatientIDKey, task.PatientID),
			zap.Int(constvars.LoggingAttemptKey, task.FailedCount),
		)
		return
	}

	task.FailedCount++
	if task.FailedCount >= w.maxAttempts {
		w.log.Error("ledger sync task exceeded retry budget, parking on DLQ",
			zap.String(constvars.LoggingRecordIDKey, task.RecordID),
			zap.String(constvars.LoggingPatientIDKey, task.PatientID),
			zap.Int(constvars.LoggingAttemptKey, task.FailedCount),
			zap.Error(err),
		)
		if dlqErr := w.queue.PublishToDLQ(ctx, &task); dlqErr != nil {
			w.log.Error("failed to park ledger sync task on DLQ", zap.Error(dlqErr))
		}
		return
	}

	w.log.Warn("ledger sync retry failed, requeueing",
		zap.String(constvars.LoggingRecordIDKey, task.RecordID),
		zap.Int(constvars.LoggingAttemptKey, task.FailedCount),
		zap.Error(err),
	)
	if pubErr := w.queue.Publish(ctx, &task); pubErr != nil {
		w.log.Error("failed to requeue ledger sync task", zap.Error(pubErr))
	}
}
