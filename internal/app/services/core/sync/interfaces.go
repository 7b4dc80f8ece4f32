package sync

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/app/services/shared/syncqueue"
)

// LedgerSynchronizer reconciles a freshly created diagnostic record with the
// referenced patient's test ledger. Sync* methods are best-effort: they never
// return an error to the record-creation path. Failed attempts are queued on
// the durable retry queue instead.
type LedgerSynchronizer interface {
	SyncLabRecord(ctx context.Context, record *models.LabRecord)
	SyncXrayRecord(ctx context.Context, record *models.XrayRecord)
	// Apply performs one synchronization attempt and reports failure, used by
	// the retry worker.
	Apply(ctx context.Context, task *syncqueue.Task) error
}

// TaskQueue is the slice of the sync queue the synchronizer needs.
type TaskQueue interface {
	Publish(ctx context.Context, task *syncqueue.Task) error
	PublishToDLQ(ctx context.Context, task *syncqueue.Task) error
}
