package patients

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePatientRepository struct {
	patient       *models.Patient
	appendedGroup *models.TestGroup
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientRepository) AppendTestGroup(ctx context.Context, patientID string, group *models.TestGroup) error {
	f.appendedGroup = group
	if f.patient != nil {
		f.patient.RecommendedTests = append(f.patient.RecommendedTests, *group)
	}
	return nil
}

func (f *fakePatientRepository) UpdateTestItem(ctx context.Context, patientID, testID string, item *models.TestItem) error {
	return nil
}

func (f *fakePatientRepository) ReplaceRecommendedTests(ctx context.Context, patientID string, groups []models.TestGroup) error {
	return nil
}

func TestGetPatientByID(t *testing.T) {
	t.Run("unknown patient returns not found", func(t *testing.T) {
		usecase := NewPatientUsecase(&fakePatientRepository{})

		_, err := usecase.GetPatientByID(context.Background(), "ghost")
		require.Error(t, err)
	})

	t.Run("returns the stored patient", func(t *testing.T) {
		usecase := NewPatientUsecase(&fakePatientRepository{patient: &models.Patient{ID: "patient-1", Name: "Jane Roe"}})

		patient, err := usecase.GetPatientByID(context.Background(), "patient-1")
		require.NoError(t, err)
		assert.Equal(t, "Jane Roe", patient.Name)
	})
}

func TestAddRecommendedTests(t *testing.T) {
	validRequest := func() *requests.AddRecommendedTestsRequest {
		return &requests.AddRecommendedTestsRequest{
			DoctorID:   "doc-1",
			DoctorName: "dr. Siregar",
			Specialist: "Internal Medicine",
			Diagnosis:  "Suspected anemia",
			Tests: []requests.RecommendedTestRequest{
				{TestName: "Complete Blood Count", Category: "Hematology"},
				{TestName: "Chest X-Ray", Category: "Chest", XRay: true, Priority: "Urgent"},
			},
		}
	}

	t.Run("assigns stable ids and pending status to each entry", func(t *testing.T) {
		repo := &fakePatientRepository{patient: &models.Patient{ID: "patient-1"}}
		usecase := NewPatientUsecase(repo)

		patient, err := usecase.AddRecommendedTests(context.Background(), "patient-1", validRequest())
		require.NoError(t, err)

		require.NotNil(t, repo.appendedGroup)
		require.Len(t, repo.appendedGroup.Tests, 2)
		for _, item := range repo.appendedGroup.Tests {
			assert.NotEmpty(t, item.TestID, "every new ledger entry carries a stable id")
			assert.Equal(t, models.TestStatusPending, item.Status)
		}
		assert.Equal(t, models.TestPriorityNormal, repo.appendedGroup.Tests[0].Priority, "priority defaults when omitted")
		assert.Equal(t, models.TestPriorityUrgent, repo.appendedGroup.Tests[1].Priority)
		assert.NotEqual(t, repo.appendedGroup.Tests[0].TestID, repo.appendedGroup.Tests[1].TestID)
		assert.Len(t, patient.RecommendedTests, 1)
	})

	t.Run("rejects an empty test list", func(t *testing.T) {
		usecase := NewPatientUsecase(&fakePatientRepository{patient: &models.Patient{ID: "patient-1"}})
		request := validRequest()
		request.Tests = nil

		_, err := usecase.AddRecommendedTests(context.Background(), "patient-1", request)
		require.Error(t, err)
	})

	t.Run("rejects a bad recommended date", func(t *testing.T) {
		usecase := NewPatientUsecase(&fakePatientRepository{patient: &models.Patient{ID: "patient-1"}})
		request := validRequest()
		request.RecommendedDate = "30/08/2026"

		_, err := usecase.AddRecommendedTests(context.Background(), "patient-1", request)
		require.Error(t, err)
	})
}
