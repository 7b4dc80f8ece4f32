package labs

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/app/services/core/sync"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"
	"mediflow-service/internal/pkg/utils"
	"time"
)

type labUsecase struct {
	LabRepository LabRepository
	Synchronizer  sync.LedgerSynchronizer
}

func NewLabUsecase(labMongoRepository LabRepository, synchronizer sync.LedgerSynchronizer) LabUsecase {
	return &labUsecase{
		LabRepository: labMongoRepository,
		Synchronizer:  synchronizer,
	}
}

func (uc *labUsecase) CreateLabRecord(ctx context.Context, request *requests.CreateLabRecordRequest) (*models.LabRecord, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if len(request.Parameters) == 0 {
		return nil, exceptions.ErrEmptyLabParameters(nil)
	}

	record := &models.LabRecord{
		DiagnosticRecordBase: models.DiagnosticRecordBase{
			PatientID:   request.PatientID,
			PatientName: request.PatientName,
			TestName:    request.TestName,
			Category:    request.Category,
			Diagnosis:   request.Diagnosis,
			PerformedBy: request.PerformedBy,
			Priority:    models.TestPriority(defaultString(request.Priority, string(models.TestPriorityNormal))),
			Status:      models.TestStatus(defaultString(request.Status, string(models.TestStatusCompleted))),
		},
		Parameters: buildLabParameters(request.Parameters),
	}
	if request.PerformedDate != "" {
		performedDate, err := utils.ParseFlexibleDate(request.PerformedDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		record.PerformedDate = &performedDate
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err = uc.LabRepository.CreateLabRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	// Best-effort: the create succeeds whether or not the patient ledger
	// could be updated.
	uc.Synchronizer.SyncLabRecord(ctx, record)

	return record, nil
}

func (uc *labUsecase) GetLabRecordByID(ctx context.Context, recordID string) (*models.LabRecord, error) {
	record, err := uc.LabRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return record, nil
}

func (uc *labUsecase) ListLabRecords(ctx context.Context, query *requests.ListRecordsQuery) ([]models.LabRecord, int, error) {
	return uc.LabRepository.FindAll(ctx, query)
}

func (uc *labUsecase) UpdateLabRecord(ctx context.Context, recordID string, request *requests.UpdateLabRecordRequest) (*models.LabRecord, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	record, err := uc.GetLabRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if request.PatientName != "" {
		record.PatientName = request.PatientName
	}
	if request.TestName != "" {
		record.TestName = request.TestName
	}
	if request.Category != "" {
		record.Category = request.Category
	}
	if request.Diagnosis != "" {
		record.Diagnosis = request.Diagnosis
	}
	if request.PerformedBy != "" {
		record.PerformedBy = request.PerformedBy
	}
	if request.PerformedDate != "" {
		performedDate, err := utils.ParseFlexibleDate(request.PerformedDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		record.PerformedDate = &performedDate
	}
	if request.Priority != "" {
		record.Priority = models.TestPriority(request.Priority)
	}
	if request.Status != "" {
		record.Status = models.TestStatus(request.Status)
	}
	if request.Parameters != nil {
		record.Parameters = buildLabParameters(request.Parameters)
	}
	record.UpdatedAt = time.Now()

	err = uc.LabRepository.UpdateLabRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *labUsecase) DeleteLabRecord(ctx context.Context, recordID string) error {
	return uc.LabRepository.DeleteByID(ctx, recordID)
}

func buildLabParameters(params []requests.LabParameterRequest) []models.LabParameter {
	out := make([]models.LabParameter, 0, len(params))
	for _, p := range params {
		out = append(out, models.LabParameter{
			Parameter:   p.Parameter,
			Value:       p.Value,
			Unit:        p.Unit,
			NormalRange: p.NormalRange,
			Flag:        models.ParameterFlag(p.Flag),
			Notes:       p.Notes,
		})
	}
	return out
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
