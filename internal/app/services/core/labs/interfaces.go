package labs

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/dto/requests"
)

type LabUsecase interface {
	CreateLabRecord(ctx context.Context, request *requests.CreateLabRecordRequest) (*models.LabRecord, error)
	GetLabRecordByID(ctx context.Context, recordID string) (*models.LabRecord, error)
	ListLabRecords(ctx context.Context, query *requests.ListRecordsQuery) ([]models.LabRecord, int, error)
	UpdateLabRecord(ctx context.Context, recordID string, request *requests.UpdateLabRecordRequest) (*models.LabRecord, error)
	DeleteLabRecord(ctx context.Context, recordID string) error
}

type LabRepository interface {
	CreateLabRecord(ctx context.Context, record *models.LabRecord) (recordID string, err error)
	FindByID(ctx context.Context, recordID string) (*models.LabRecord, error)
	FindAll(ctx context.Context, query *requests.ListRecordsQuery) ([]models.LabRecord, int, error)
	UpdateLabRecord(ctx context.Context, record *models.LabRecord) error
	DeleteByID(ctx context.Context, recordID string) error
}
