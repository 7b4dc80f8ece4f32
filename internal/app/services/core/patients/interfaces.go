package patients

import (
	"context"
	"errors"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/dto/requests"
)

// ErrStaleTestID reports that the patient document exists but none of its
// ledger items carries the given test id anymore, so a targeted update had
// nothing to write.
var ErrStaleTestID = errors.New("no ledger item matches the test id")

type PatientUsecase interface {
	GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	AddRecommendedTests(ctx context.Context, patientID string, request *requests.AddRecommendedTestsRequest) (*models.Patient, error)
}

type PatientRepository interface {
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	AppendTestGroup(ctx context.Context, patientID string, group *models.TestGroup) error
	// UpdateTestItem rewrites the completion fields of the single ledger item
	// carrying testID, leaving the rest of the document untouched.
	UpdateTestItem(ctx context.Context, patientID, testID string, item *models.TestItem) error
	// ReplaceRecommendedTests overwrites the whole ledger array. Last write
	// wins; kept for items that predate stable test ids.
	ReplaceRecommendedTests(ctx context.Context, patientID string, groups []models.TestGroup) error
}
