package xrays

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/app/services/core/sync"
	"mediflow-service/internal/app/services/shared/cache"
	"mediflow-service/internal/app/services/shared/storage"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"
	"mediflow-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type xrayUsecase struct {
	Log             *zap.Logger
	XrayRepository  XrayRepository
	AssetStorage    storage.AssetStorage
	Synchronizer    sync.LedgerSynchronizer
	CacheRepository cache.CacheRepository
}

func NewXrayUsecase(
	logger *zap.Logger,
	xrayMongoRepository XrayRepository,
	assetStorage storage.AssetStorage,
	synchronizer sync.LedgerSynchronizer,
	cacheRepository cache.CacheRepository,
) XrayUsecase {
	return &xrayUsecase{
		Log:             logger,
		XrayRepository:  xrayMongoRepository,
		AssetStorage:    assetStorage,
		Synchronizer:    synchronizer,
		CacheRepository: cacheRepository,
	}
}

func (uc *xrayUsecase) CreateXrayRecord(ctx context.Context, request *requests.CreateXrayRecordRequest) (*models.XrayRecord, error) {
	// Text fields are validated before any upload so a bad request costs no
	// object-store traffic; file presence is checked after, keeping the
	// error precedence stable.
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

	assets, err := storage.UploadBatch(ctx, uc.Log, uc.AssetStorage, request.Files, constvars.StorageFolderXrays)
	if err != nil {
		return nil, err
	}

	record := &models.XrayRecord{
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
		Records: assets,
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

	_, err = uc.XrayRepository.CreateXrayRecord(ctx, record)
	if err != nil {
		// Compensate the batch so a failed write leaves no orphaned blobs.
		storage.BestEffortDelete(ctx, uc.Log, uc.AssetStorage, assets)
		return nil, err
	}

	uc.Synchronizer.SyncXrayRecord(ctx, record)
	uc.invalidateStatistics(ctx)

	return record, nil
}

func (uc *xrayUsecase) GetXrayRecordByID(ctx context.Context, recordID string) (*models.XrayRecord, error) {
	record, err := uc.XrayRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return record, nil
}

func (uc *xrayUsecase) ListXrayRecords(ctx context.Context, query *requests.ListRecordsQuery) ([]models.XrayRecord, int, error) {
	return uc.XrayRepository.FindAll(ctx, query)
}

func (uc *xrayUsecase) UpdateXrayRecord(ctx context.Context, recordID string, request *requests.UpdateXrayRecordRequest) (*models.XrayRecord, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if len(request.Files) > constvars.MaxUploadFilesPerRequest {
		return nil, exceptions.ErrTooManyFiles(nil)
	}

	record, err := uc.GetXrayRecordByID(ctx, recordID)
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

	oldAssets := record.Records
	replacedAssets := false
	if len(request.Files) > 0 {
		// New files replace the existing set. The new batch is uploaded and
		// verified first; the old assets are deleted only after the record
		// write succeeds, so a failed upload never costs existing images.
		newAssets, err := storage.UploadBatch(ctx, uc.Log, uc.AssetStorage, request.Files, constvars.StorageFolderXrays)
		if err != nil {
			return nil, err
		}
		record.Records = newAssets
		replacedAssets = true
	} else if request.Records != nil {
		// Metadata-only patch: external ids are preserved positionally by
		// index, so reordering the array on the client corrupts the mapping.
		for i, patch := range request.Records {
			if i >= len(record.Records) {
				break
			}
			record.Records[i].Note = patch.Note
			if patch.Filename != "" {
				record.Records[i].Filename = patch.Filename
			}
		}
	}

	record.UpdatedAt = time.Now()
	err = uc.XrayRepository.UpdateXrayRecord(ctx, record)
	if err != nil {
		if replacedAssets {
			storage.BestEffortDelete(ctx, uc.Log, uc.AssetStorage, record.Records)
		}
		return nil, err
	}

	if replacedAssets {
		storage.BestEffortDelete(ctx, uc.Log, uc.AssetStorage, oldAssets)
	}
	uc.invalidateStatistics(ctx)

	return record, nil
}

func (uc *xrayUsecase) DeleteXrayRecord(ctx context.Context, recordID string) error {
	record, err := uc.GetXrayRecordByID(ctx, recordID)
	if err != nil {
		return err
	}

	// Asset deletion is best-effort; a failing object store never blocks
	// record removal.
	storage.BestEffortDelete(ctx, uc.Log, uc.AssetStorage, record.Records)

	err = uc.XrayRepository.DeleteByID(ctx, recordID)
	if err != nil {
		return err
	}

	uc.invalidateStatistics(ctx)
	return nil
}

func (uc *xrayUsecase) invalidateStatistics(ctx context.Context) {
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
