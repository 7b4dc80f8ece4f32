package sync

import (
	"context"
	"errors"
	"fmt"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/app/services/core/patients"
	"mediflow-service/internal/app/services/shared/syncqueue"
	"mediflow-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

type ledgerSynchronizer struct {
	Log               *zap.Logger
	PatientRepository patients.PatientRepository
	Queue             TaskQueue
}

func NewLedgerSynchronizer(logger *zap.Logger, patientRepository patients.PatientRepository, queue TaskQueue) LedgerSynchronizer {
	return &ledgerSynchronizer{
		Log:               logger,
		PatientRepository: patientRepository,
		Queue:             queue,
	}
}

// FormatLabResult renders lab parameters as the ledger result text, one
// "parameter: value" pair per parameter.
func FormatLabResult(parameters []models.LabParameter) string {
	pairs := make([]string, 0, len(parameters))
	for _, p := range parameters {
		pairs = append(pairs, fmt.Sprintf("%s: %s", p.Parameter, p.Value))
	}
	return strings.Join(pairs, ", ")
}

func (s *ledgerSynchronizer) SyncLabRecord(ctx context.Context, record *models.LabRecord) {
	s.sync(ctx, &syncqueue.Task{
		RecordID:    record.ID,
		PatientID:   record.PatientID,
		TestName:    record.TestName,
		XRay:        false,
		Result:      FormatLabResult(record.Parameters),
		PerformedBy: record.PerformedBy,
		ResultDate:  time.Now(),
	})
}

func (s *ledgerSynchronizer) SyncXrayRecord(ctx context.Context, record *models.XrayRecord) {
	s.sync(ctx, &syncqueue.Task{
		RecordID:    record.ID,
		PatientID:   record.PatientID,
		TestName:    record.TestName,
		XRay:        true,
		Result:      constvars.XrayLedgerResult,
		PerformedBy: record.PerformedBy,
		ResultDate:  time.Now(),
	})
}

// sync attempts the ledger update inline and hands the task to the durable
// queue when the attempt fails. The caller's create operation succeeds either
// way.
func (s *ledgerSynchronizer) sync(ctx context.Context, task *syncqueue.Task) {
	err := s.Apply(ctx, task)
	if err == nil {
		return
	}

	s.Log.Warn("inline ledger sync failed, queueing for retry",
		zap.String(constvars.LoggingRecordIDKey, task.RecordID),
		zap.String(constvars.LoggingPatientIDKey, task.PatientID),
		zap.String(constvars.LoggingTestNameKey, task.TestName),
		zap.Error(err),
	)

	task.FailedCount = 1
	if queueErr := s.Queue.Publish(ctx, task); queueErr != nil {
		s.Log.Error("failed to queue ledger sync task, patient view may be stale",
			zap.String(constvars.LoggingRecordIDKey, task.RecordID),
			zap.String(constvars.LoggingPatientIDKey, task.PatientID),
			zap.Error(queueErr),
		)
	}
}

func (s *ledgerSynchronizer) Apply(ctx context.Context, task *syncqueue.Task) error {
	patient, err := s.PatientRepository.FindByID(ctx, task.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		// Soft reference: an unknown patient leaves nothing to synchronize.
		s.Log.Info("ledger sync skipped, patient does not exist",
			zap.String(constvars.LoggingPatientIDKey, task.PatientID),
			zap.String(constvars.LoggingRecordIDKey, task.RecordID),
		)
		return nil
	}

	groupIdx, itemIdx, found := patient.FindTestItem(task.TestName, task.XRay)
	if !found {
		// Not an error: the record simply has no recommended counterpart.
		return nil
	}

	item := &patient.RecommendedTests[groupIdx].Tests[itemIdx]
	now := task.ResultDate
	item.Status = models.TestStatusCompleted
	item.Result = task.Result
	item.ResultDate = &now
	item.CompletedDate = &now
	item.PerformedBy = task.PerformedBy
	item.LabTechnician = task.PerformedBy

	if item.TestID != "" {
		err = s.PatientRepository.UpdateTestItem(ctx, task.PatientID, item.TestID, item)
		if !errors.Is(err, patients.ErrStaleTestID) {
			return err
		}
		s.Log.Warn("ledger item id went stale mid-sync, replacing the whole ledger",
			zap.String(constvars.LoggingPatientIDKey, task.PatientID),
			zap.String(constvars.LoggingTestNameKey, task.TestName),
		)
	}
	// Items created before stable ids exist only positionally; fall back to
	// replacing the whole ledger (last write wins).
	return s.PatientRepository.ReplaceRecommendedTests(ctx, task.PatientID, patient.RecommendedTests)
}
