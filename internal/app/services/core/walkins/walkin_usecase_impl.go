package walkins

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/app/services/shared/cache"
	"mediflow-service/internal/app/services/shared/storage"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"
	"mediflow-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Walk-in records belong to unregistered patients, so there is no ledger to
// synchronize; only the asset lifecycle is shared with the registered flow.
// Walk-in counts feed the statistics payload, so mutations still drop the
// cached entry.
type walkInUsecase struct {
	Log              *zap.Logger
	WalkInRepository WalkInRepository
	AssetStorage     storage.AssetStorage
	CacheRepository  cache.CacheRepository
}

func NewWalkInUsecase(
	logger *zap.Logger,
	walkInMongoRepository WalkInRepository,
	assetStorage storage.AssetStorage,
	cacheRepository cache.CacheRepository,
) WalkInUsecase {
	return &walkInUsecase{
		Log:              logger,
		WalkInRepository: walkInMongoRepository,
		AssetStorage:     assetStorage,
		CacheRepository:  cacheRepository,
	}
}

func (uc *walkInUsecase) CreateWalkInRecord(ctx context.Context, request *requests.CreateWalkInRecordRequest) (*models.WalkInXrayRecord, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if len(request.Files) == 0 {
		return nil, exceptions.ErrNoFilesUploaded(nil)
	}
	if len(request.Files) > constvars.MaxUploadFilesPerRequest {
		return nil, exceptions.ErrTooManyFiles(nil)
	}

	walkInID, err := utils.GenerateWalkInID()
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	assets, err := storage.UploadBatch(ctx, uc.Log, uc.AssetStorage, request.Files, constvars.StorageFolderWalkIns)
	if err != nil {
		return nil, err
	}

	record := &models.WalkInXrayRecord{
		WalkInID:    walkInID,
		PatientName: request.PatientName,
		TestName:    request.TestName,
		Category:    request.Category,
		Diagnosis:   request.Diagnosis,
		PerformedBy: request.PerformedBy,
		Priority:    models.TestPriority(defaultString(request.Priority, string(models.TestPriorityNormal))),
		Status:      models.TestStatus(defaultString(request.Status, string(models.TestStatusCompleted))),
		Images:      assets,
	}
	if request.PerformedDate != "" {
		performedDate, err := utils.ParseFlexibleDate(request.PerformedDate)
		if err != nil {
			storage.BestEffortDelete(ctx, uc.Log, uc.AssetStorage, assets)
			return nil, exceptions.ErrCannotParseDate(err)
		}
		record.PerformedDate = &performedDate
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err = uc.WalkInRepository.CreateWalkInRecord(ctx, record)
	if err != nil {
		storage.BestEffortDelete(ctx, uc.Log, uc.AssetStorage, assets)
		return nil, err
	}

	uc.invalidateStatistics(ctx)

	return record, nil
}

func (uc *walkInUsecase) GetWalkInRecordByID(ctx context.Context, recordID string) (*models.WalkInXrayRecord, error) {
	record, err := uc.WalkInRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return record, nil
}

func (uc *walkInUsecase) ListWalkInRecords(ctx context.Context, query *requests.ListRecordsQuery) ([]models.WalkInXrayRecord, int, error) {
	return uc.WalkInRepository.FindAll(ctx, query)
}

func (uc *walkInUsecase) UpdateWalkInRecord(ctx context.Context, recordID string, request *requests.UpdateWalkInRecordRequest) (*models.WalkInXrayRecord, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if len(request.Files) > constvars.MaxUploadFilesPerRequest {
		return nil, exceptions.ErrTooManyFiles(nil)
	}

	record, err := uc.GetWalkInRecordByID(ctx, recordID)
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

	oldAssets := record.Images
	replacedAssets := false
	if len(request.Files) > 0 {
		newAssets, err := storage.UploadBatch(ctx, uc.Log, uc.AssetStorage, request.Files, constvars.StorageFolderWalkIns)
		if err != nil {
			return nil, err
		}
		record.Images = newAssets
		replacedAssets = true
	} else if request.Images != nil {
		for i, patch := range request.Images {
			if i >= len(record.Images) {
				break
			}
			record.Images[i].Note = patch.Note
			if patch.Filename != "" {
				record.Images[i].Filename = patch.Filename
			}
		}
	}

	record.UpdatedAt = time.Now()
	err = uc.WalkInRepository.UpdateWalkInRecord(ctx, record)
	if err != nil {
		if replacedAssets {
			storage.BestEffortDelete(ctx, uc.Log, uc.AssetStorage, record.Images)
		}
		return nil, err
	}

	if replacedAssets {
		storage.BestEffortDelete(ctx, uc.Log, uc.AssetStorage, oldAssets)
	}
	uc.invalidateStatistics(ctx)

	return record, nil
}

func (uc *walkInUsecase) DeleteWalkInRecord(ctx context.Context, recordID string) error {
	record, err := uc.GetWalkInRecordByID(ctx, recordID)
	if err != nil {
		return err
	}

	storage.BestEffortDelete(ctx, uc.Log, uc.AssetStorage, record.Images)

	err = uc.WalkInRepository.DeleteByID(ctx, recordID)
	if err != nil {
		return err
	}

	uc.invalidateStatistics(ctx)
	return nil
}

func (uc *walkInUsecase) invalidateStatistics(ctx context.Context) {
	if err := uc.CacheRepository.Delete(ctx, constvars.RedisKeyXrayStatistics); err != nil {
		uc.Log.Warn("failed to invalidate statistics cache", zap.Error(err))
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
