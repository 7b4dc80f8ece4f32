package xrays

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWalkInCounter struct {
	total int
}

func (f *fakeWalkInCounter) CountAll(ctx context.Context) (int, error) {
	return f.total, nil
}

func seedXrayRecord(repo *fakeXrayRepository, category, priority, technician string, createdAt time.Time) {
	record := &models.XrayRecord{
		DiagnosticRecordBase: models.DiagnosticRecordBase{
			Category:    category,
			Priority:    models.TestPriority(priority),
			PerformedBy: technician,
			Status:      models.TestStatusCompleted,
		},
	}
	record.CreatedAt = createdAt
	record.UpdatedAt = createdAt
	repo.records[category+technician+createdAt.String()] = record
}

func TestGetStatistics(t *testing.T) {
	now := time.Now()
	january := time.Date(now.Year(), time.January, 15, 10, 0, 0, 0, now.Location())
	march := time.Date(now.Year(), time.March, 2, 8, 30, 0, 0, now.Location())

	repo := newFakeXrayRepository()
	seedXrayRecord(repo, "Chest", "Normal", "Tech Sari", january)
	seedXrayRecord(repo, "Chest", "Urgent", "Tech Sari", march)
	seedXrayRecord(repo, "Skull", "Normal", "Tech Budi", now)

	cacheRepo := newFakeCache()
	usecase := NewStatisticsUsecase(zap.NewNop(), repo, &fakeWalkInCounter{total: 4}, cacheRepo, time.Minute)

	statistics, err := usecase.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, statistics.TotalRecords)
	assert.Equal(t, 4, statistics.TotalWalkIns)
	assert.Equal(t, 1, statistics.Today)
	assert.Equal(t, map[string]int{"Chest": 2, "Skull": 1}, statistics.ByCategory)
	assert.Equal(t, map[string]int{"Normal": 2, "Urgent": 1}, statistics.ByPriority)
	assert.Equal(t, map[string]int{"Tech Sari": 2, "Tech Budi": 1}, statistics.ByTechnician)
	assert.Equal(t, now.Year(), statistics.Year)

	require.Len(t, statistics.MonthlyThisYear, 12, "always twelve buckets, January first")
	assert.Equal(t, 1, statistics.MonthlyThisYear[0])
	assert.Equal(t, 1, statistics.MonthlyThisYear[2])

	sum := 0
	for _, count := range statistics.MonthlyThisYear {
		sum += count
	}
	assert.Equal(t, statistics.TotalRecords, sum, "monthly buckets of the current year cover every seeded record")
}

func TestGetStatisticsServesFromCache(t *testing.T) {
	cached := &responses.XrayStatistics{
		TotalRecords:    42,
		MonthlyThisYear: make([]int, 12),
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	cacheRepo := newFakeCache()
	cacheRepo.values[constvars.RedisKeyXrayStatistics] = string(payload)

	// Empty repository: a non-cached build would report zero records.
	usecase := NewStatisticsUsecase(zap.NewNop(), newFakeXrayRepository(), &fakeWalkInCounter{}, cacheRepo, time.Minute)

	statistics, err := usecase.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, statistics.TotalRecords)
}

func TestGetStatisticsDiscardsMalformedCache(t *testing.T) {
	cacheRepo := newFakeCache()
	cacheRepo.values[constvars.RedisKeyXrayStatistics] = "{not json"

	usecase := NewStatisticsUsecase(zap.NewNop(), newFakeXrayRepository(), &fakeWalkInCounter{total: 2}, cacheRepo, time.Minute)

	statistics, err := usecase.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, statistics.TotalRecords)
	assert.Equal(t, 2, statistics.TotalWalkIns)
}
