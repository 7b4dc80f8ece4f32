package walkins

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/dto/requests"
)

type WalkInUsecase interface {
	CreateWalkInRecord(ctx context.Context, request *requests.CreateWalkInRecordRequest) (*models.WalkInXrayRecord, error)
	GetWalkInRecordByID(ctx context.Context, recordID string) (*models.WalkInXrayRecord, error)
	ListWalkInRecords(ctx context.Context, query *requests.ListRecordsQuery) ([]models.WalkInXrayRecord, int, error)
	UpdateWalkInRecord(ctx context.Context, recordID string, request *requests.UpdateWalkInRecordRequest) (*models.WalkInXrayRecord, error)
	DeleteWalkInRecord(ctx context.Context, recordID string) error
}

type WalkInRepository interface {
	CreateWalkInRecord(ctx context.Context, record *models.WalkInXrayRecord) (recordID string, err error)
	FindByID(ctx context.Context, recordID string) (*models.WalkInXrayRecord, error)
	FindAll(ctx context.Context, query *requests.ListRecordsQuery) ([]models.WalkInXrayRecord, int, error)
	UpdateWalkInRecord(ctx context.Context, record *models.WalkInXrayRecord) error
	DeleteByID(ctx context.Context, recordID string) error
	CountAll(ctx context.Context) (int, error)
}
