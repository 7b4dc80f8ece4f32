package xrays

import (
	"context"
	"mediflow-service/internal/app/services/shared/cache"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/responses"
	"mediflow-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type statisticsUsecase struct {
	Log             *zap.Logger
	XrayRepository  XrayRepository
	WalkInCounter   WalkInCounter
	CacheRepository cache.CacheRepository
	CacheTTL        time.Duration
}

func NewStatisticsUsecase(
	logger *zap.Logger,
	xrayMongoRepository XrayRepository,
	walkInCounter WalkInCounter,
	cacheRepository cache.CacheRepository,
	cacheTTL time.Duration,
) StatisticsUsecase {
	return &statisticsUsecase{
		Log:             logger,
		XrayRepository:  xrayMongoRepository,
		WalkInCounter:   walkInCounter,
		CacheRepository: cacheRepository,
		CacheTTL:        cacheTTL,
	}
}

func (uc *statisticsUsecase) GetStatistics(ctx context.Context) (*responses.XrayStatistics, error) {
	cached, err := uc.CacheRepository.Get(ctx, constvars.RedisKeyXrayStatistics)
	if err != nil {
		uc.Log.Warn("failed to read statistics cache", zap.Error(err))
	}
	if cached != "" {
		statistics := new(responses.XrayStatistics)
		if err := json.Unmarshal([]byte(cached), statistics); err == nil {
			return statistics, nil
		}
		uc.Log.Warn("discarding malformed statistics cache entry")
	}

	statistics, err := uc.buildStatistics(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.CacheRepository.Set(ctx, constvars.RedisKeyXrayStatistics, statistics, uc.CacheTTL); err != nil {
		uc.Log.Warn("failed to store statistics cache", zap.Error(err))
	}

	return statistics, nil
}

func (uc *statisticsUsecase) buildStatistics(ctx context.Context) (*responses.XrayStatistics, error) {
	totalRecords, err := uc.XrayRepository.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalWalkIns, err := uc.WalkInCounter.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today, err := uc.XrayRepository.CountCreatedSince(ctx, utils.StartOfToday(now))
	if err != nil {
		return nil, err
	}

	byCategory, err := uc.XrayRepository.CountGroupedBy(ctx, "category")
	if err != nil {
		return nil, err
	}
	byPriority, err := uc.XrayRepository.CountGroupedBy(ctx, "priority")
	if err != nil {
		return nil, err
	}
	byTechnician, err := uc.XrayRepository.CountGroupedBy(ctx, "performedBy")
	if err != nil {
		return nil, err
	}

	monthly := make([]int, 12)
	for month := time.January; month <= time.December; month++ {
		from, to := utils.MonthRange(now.Year(), month, now.Location())
		count, err := uc.XrayRepository.CountCreatedInRange(ctx, from, to)
		if err != nil {
			return nil, err
		}
		monthly[int(month)-1] = count
	}

	return &responses.XrayStatistics{
		TotalRecords:    totalRecords,
		TotalWalkIns:    totalWalkIns,
		Today:           today,
		ByCategory:      byCategory,
		ByPriority:      byPriority,
		ByTechnician:    byTechnician,
		MonthlyThisYear: monthly,
		Year:            now.Year(),
	}, nil
}
