package xrays

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/dto/responses"
	"time"
)

type XrayUsecase interface {
	CreateXrayRecord(ctx context.Context, request *requests.CreateXrayRecordRequest) (*models.XrayRecord, error)
	GetXrayRecordByID(ctx context.Context, recordID string) (*models.XrayRecord, error)
	ListXrayRecords(ctx context.Context, query *requests.ListRecordsQuery) ([]models.XrayRecord, int, error)
	UpdateXrayRecord(ctx context.Context, recordID string, request *requests.UpdateXrayRecordRequest) (*models.XrayRecord, error)
	DeleteXrayRecord(ctx context.Context, recordID string) error
}

type StatisticsUsecase interface {
	GetStatistics(ctx context.Context) (*responses.XrayStatistics, error)
}

type XrayRepository interface {
	CreateXrayRecord(ctx context.Context, record *models.XrayRecord) (recordID string, err error)
	FindByID(ctx context.Context, recordID string) (*models.XrayRecord, error)
	FindAll(ctx context.Context, query *requests.ListRecordsQuery) ([]models.XrayRecord, int, error)
	UpdateXrayRecord(ctx context.Context, record *models.XrayRecord) error
	DeleteByID(ctx context.Context, recordID string) error

	CountAll(ctx context.Context) (int, error)
	CountCreatedInRange(ctx context.Context, from, to time.Time) (int, error)
	CountCreatedSince(ctx context.Context, from time.Time) (int, error)
	CountGroupedBy(ctx context.Context, field string) (map[string]int, error)
}

// WalkInCounter is the slice of the walk-in store the aggregator needs.
type WalkInCounter interface {
	CountAll(ctx context.Context) (int, error)
}
