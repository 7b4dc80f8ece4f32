package sync

import (
	"context"
	"errors"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/app/services/core/patients"
	"mediflow-service/internal/app/services/shared/syncqueue"
	"mediflow-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	patient *models.Patient
	findErr error

	updatedPatientID string
	updatedTestID    string
	updatedItem      *models.TestItem
	updateErr        error

	replacedPatientID string
	replacedGroups    []models.TestGroup
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.patient, nil
}

func (f *fakePatientRepository) AppendTestGroup(ctx context.Context, patientID string, group *models.TestGroup) error {
	return nil
}

func (f *fakePatientRepository) UpdateTestItem(ctx context.Context, patientID, testID string, item *models.TestItem) error {
	f.updatedPatientID = patientID
	f.updatedTestID = testID
	f.updatedItem = item
	return f.updateErr
}

func (f *fakePatientRepository) ReplaceRecommendedTests(ctx context.Context, patientID string, groups []models.TestGroup) error {
	f.replacedPatientID = patientID
	f.replacedGroups = groups
	return nil
}

type fakeTaskQueue struct {
	published []*syncqueue.Task
	dlq       []*syncqueue.Task
}

func (f *fakeTaskQueue) Publish(ctx context.Context, task *syncqueue.Task) error {
	f.published = append(f.published, task)
	return nil
}

func (f *fakeTaskQueue) PublishToDLQ(ctx context.Context, task *syncqueue.Task) error {
	f.dlq = append(f.dlq, task)
	return nil
}

func ledgerPatient() *models.Patient {
	return &models.Patient{
		ID:   "patient-1",
		Name: "Jane Roe",
		RecommendedTests: []models.TestGroup{
			{
				DoctorName: "dr. Siregar",
				Tests: []models.TestItem{
					{TestID: "tid-cbc", TestName: "Complete Blood Count", XRay: false, Status: models.TestStatusPending},
					{TestID: "tid-chest", TestName: "Chest X-Ray", XRay: true, Status: models.TestStatusPending},
				},
			},
		},
	}
}

func TestFormatLabResult(t *testing.T) {
	parameters := []models.LabParameter{
		{Parameter: "Hemoglobin", Value: "13.5"},
		{Parameter: "WBC", Value: "7200"},
	}
	assert.Equal(t, "Hemoglobin: 13.5, WBC: 7200", FormatLabResult(parameters))
	assert.Equal(t, "", FormatLabResult(nil))
}

func TestApplyTargetedUpdate(t *testing.T) {
	repo := &fakePatientRepository{patient: ledgerPatient()}
	queue := &fakeTaskQueue{}
	synchronizer := NewLedgerSynchronizer(zap.NewNop(), repo, queue)

	task := &syncqueue.Task{
		RecordID:    "rec-1",
		PatientID:   "patient-1",
		TestName:    "Complete Blood Count",
		XRay:        false,
		Result:      "Hemoglobin: 13.5",
		PerformedBy: "Analyst Budi",
		ResultDate:  time.Now(),
	}

	err := synchronizer.Apply(context.Background(), task)
	require.NoError(t, err)

	require.NotNil(t, repo.updatedItem, "a matched item with a test id should use the targeted update")
	assert.Equal(t, "patient-1", repo.updatedPatientID)
	assert.Equal(t, "tid-cbc", repo.updatedTestID)
	assert.Equal(t, models.TestStatusCompleted, repo.updatedItem.Status)
	assert.Equal(t, "Hemoglobin: 13.5", repo.updatedItem.Result)
	assert.Equal(t, "Analyst Budi", repo.updatedItem.PerformedBy)
	assert.Equal(t, "Analyst Budi", repo.updatedItem.LabTechnician)
	require.NotNil(t, repo.updatedItem.CompletedDate)
	assert.Empty(t, repo.replacedPatientID, "whole-ledger replacement should not run")
	assert.Empty(t, queue.published, "a successful apply should not queue a retry")
}

func TestApplyLegacyItemFallsBackToReplace(t *testing.T) {
	patient := ledgerPatient()
	patient.RecommendedTests[0].Tests[0].TestID = ""
	repo := &fakePatientRepository{patient: patient}
	synchronizer := NewLedgerSynchronizer(zap.NewNop(), repo, &fakeTaskQueue{})

	task := &syncqueue.Task{
		RecordID:  "rec-1",
		PatientID: "patient-1",
		TestName:  "Complete Blood Count",
		Result:    "WBC: 7200",
	}

	err := synchronizer.Apply(context.Background(), task)
	require.NoError(t, err)

	assert.Equal(t, "patient-1", repo.replacedPatientID, "items without a test id replace the whole ledger")
	assert.Nil(t, repo.updatedItem)
	require.NotEmpty(t, repo.replacedGroups)
	assert.Equal(t, models.TestStatusCompleted, repo.replacedGroups[0].Tests[0].Status)
}

func TestApplyStaleTestIDFallsBackToReplace(t *testing.T) {
	repo := &fakePatientRepository{patient: ledgerPatient(), updateErr: patients.ErrStaleTestID}
	synchronizer := NewLedgerSynchronizer(zap.NewNop(), repo, &fakeTaskQueue{})

	task := &syncqueue.Task{
		RecordID:  "rec-4",
		PatientID: "patient-1",
		TestName:  "Complete Blood Count",
		Result:    "Hemoglobin: 13.5",
	}

	err := synchronizer.Apply(context.Background(), task)
	require.NoError(t, err)

	assert.Equal(t, "tid-cbc", repo.updatedTestID, "the targeted write runs first")
	assert.Equal(t, "patient-1", repo.replacedPatientID, "an id gone stale mid-sync still converges via the replace path")
	require.NotEmpty(t, repo.replacedGroups)
	assert.Equal(t, models.TestStatusCompleted, repo.replacedGroups[0].Tests[0].Status)
}

func TestApplyXrayMatchRequiresXrayFlag(t *testing.T) {
	patient := ledgerPatient()
	// Same name twice: a lab entry first, the X-ray entry after it.
	patient.RecommendedTests[0].Tests = []models.TestItem{
		{TestID: "tid-lab", TestName: "Chest X-Ray", XRay: false, Status: models.TestStatusPending},
		{TestID: "tid-xray", TestName: "Chest X-Ray", XRay: true, Status: models.TestStatusPending},
	}
	repo := &fakePatientRepository{patient: patient}
	synchronizer := NewLedgerSynchronizer(zap.NewNop(), repo, &fakeTaskQueue{})

	task := &syncqueue.Task{
		RecordID:  "rec-2",
		PatientID: "patient-1",
		TestName:  "Chest X-Ray",
		XRay:      true,
		Result:    constvars.XrayLedgerResult,
	}

	err := synchronizer.Apply(context.Background(), task)
	require.NoError(t, err)

	assert.Equal(t, "tid-xray", repo.updatedTestID, "an x-ray task must skip non-xray entries with the same name")
}

func TestApplyMissingPatientOrItemIsNotAnError(t *testing.T) {
	t.Run("unknown patient", func(t *testing.T) {
		repo := &fakePatientRepository{patient: nil}
		synchronizer := NewLedgerSynchronizer(zap.NewNop(), repo, &fakeTaskQueue{})

		err := synchronizer.Apply(context.Background(), &syncqueue.Task{PatientID: "ghost"})
		assert.NoError(t, err)
		assert.Nil(t, repo.updatedItem)
	})

	t.Run("no matching ledger entry", func(t *testing.T) {
		repo := &fakePatientRepository{patient: ledgerPatient()}
		synchronizer := NewLedgerSynchronizer(zap.NewNop(), repo, &fakeTaskQueue{})

		err := synchronizer.Apply(context.Background(), &syncqueue.Task{
			PatientID: "patient-1",
			TestName:  "Lipid Panel",
		})
		assert.NoError(t, err)
		assert.Nil(t, repo.updatedItem)
		assert.Empty(t, repo.replacedPatientID)
	})
}

func TestSyncLabRecordQueuesOnFailure(t *testing.T) {
	repo := &fakePatientRepository{findErr: errors.New("connection reset")}
	queue := &fakeTaskQueue{}
	synchronizer := NewLedgerSynchronizer(zap.NewNop(), repo, queue)

	record := &models.LabRecord{
		ID: "rec-9",
		DiagnosticRecordBase: models.DiagnosticRecordBase{
			PatientID:   "patient-1",
			TestName:    "Complete Blood Count",
			PerformedBy: "Analyst Budi",
		},
		Parameters: []models.LabParameter{{Parameter: "Hemoglobin", Value: "13.5"}},
	}

	synchronizer.SyncLabRecord(context.Background(), record)

	require.Len(t, queue.published, 1, "a failed inline attempt must be queued")
	task := queue.published[0]
	assert.Equal(t, "rec-9", task.RecordID)
	assert.Equal(t, "patient-1", task.PatientID)
	assert.False(t, task.XRay)
	assert.Equal(t, "Hemoglobin: 13.5", task.Result)
	assert.Equal(t, 1, task.FailedCount)
}

func TestSyncXrayRecordUsesFixedResultText(t *testing.T) {
	repo := &fakePatientRepository{patient: ledgerPatient()}
	queue := &fakeTaskQueue{}
	synchronizer := NewLedgerSynchronizer(zap.NewNop(), repo, queue)

	record := &models.XrayRecord{
		ID: "rec-3",
		DiagnosticRecordBase: models.DiagnosticRecordBase{
			PatientID:   "patient-1",
			TestName:    "Chest X-Ray",
			PerformedBy: "Tech Sari",
		},
	}

	synchronizer.SyncXrayRecord(context.Background(), record)

	require.NotNil(t, repo.updatedItem)
	assert.Equal(t, constvars.XrayLedgerResult, repo.updatedItem.Result)
	assert.Empty(t, queue.published)
}
