package patients

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"
	"mediflow-service/internal/pkg/utils"
	"time"
)

type patientUsecase struct {
	PatientRepository PatientRepository
}

func NewPatientUsecase(patientMongoRepository PatientRepository) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
	}
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

func (uc *patientUsecase) AddRecommendedTests(ctx context.Context, patientID string, request *requests.AddRecommendedTestsRequest) (*models.Patient, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	recommendedDate := time.Now()
	if request.RecommendedDate != "" {
		recommendedDate, err = utils.ParseFlexibleDate(request.RecommendedDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
	}

	group := models.TestGroup{
		DoctorID:        request.DoctorID,
		DoctorName:      request.DoctorName,
		Specialist:      request.Specialist,
		RecommendedDate: recommendedDate,
		Diagnosis:       request.Diagnosis,
		Tests:           make([]models.TestItem, 0, len(request.Tests)),
	}
	for _, test := range request.Tests {
		priority := models.TestPriorityNormal
		if test.Priority != "" {
			priority = models.TestPriority(test.Priority)
		}
		// Every ledger entry gets a stable id here so later status updates
		// can address the item directly instead of matching on testName.
		group.Tests = append(group.Tests, models.TestItem{
			TestID:       utils.GenerateTestItemID(),
			TestName:     test.TestName,
			Category:     test.Category,
			XRay:         test.XRay,
			Priority:     priority,
			Instructions: test.Instructions,
			Notes:        test.Notes,
			Status:       models.TestStatusPending,
		})
	}

	err = uc.PatientRepository.AppendTestGroup(ctx, patientID, &group)
	if err != nil {
		return nil, err
	}

	return uc.GetPatientByID(ctx, patientID)
}
