package dashboard

import (
	"context"
	"math"
	"time"

	"ai-humanizer-be/internal/constant"
	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/pkg/logger"
	"ai-humanizer-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

const statsCacheKey = "dashboard:stats"

// Aggregator computes dashboard statistics. Snapshots are cached
// briefly; every admin mutation calls Invalidate so the next read
// recomputes.
type Aggregator struct {
	logger logger.ILogger
	cache  *cache.Cache
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
		cache:  cache.New(30*time.Second, time.Minute),
	}
}

// Invalidate drops the cached snapshot.
func (a *Aggregator) Invalidate() {
	a.cache.Delete(statsCacheKey)
}

// GetStats retrieves dashboard statistics
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.DashboardStatsResponse, error) {
	if cached, ok := a.cache.Get(statsCacheKey); ok {
		if stats, ok := cached.(*dto.DashboardStatsResponse); ok {
			return stats, nil
		}
	}

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	freeUsers, err := uow.UserRepository().CountByType(ctx, entity.UserTypeFree)
	if err != nil {
		return nil, err
	}

	paidUsers, err := uow.UserRepository().CountByType(ctx, entity.UserTypePaid)
	if err != nil {
		return nil, err
	}

	counters, err := uow.SettingsRepository().GetStatsCounters(ctx)
	if err != nil {
		return nil, err
	}
	if counters == nil {
		counters = constant.DefaultStatsCounters()
	}

	stats := &dto.DashboardStatsResponse{
		TotalUsers:       totalUsers,
		FreeUsers:        freeUsers,
		PaidUsers:        paidUsers,
		TotalTokensUsed:  counters.TotalTokensUsed,
		TotalRevenueINR:  counters.TotalRevenueINR,
		TotalRevenueUSD:  counters.TotalRevenueUSD,
		ActiveAIProvider: string(counters.ActiveAiProvider),
	}

	if totalUsers > 0 {
		rate := float64(paidUsers) / float64(totalUsers) * 100
		stats.ConversionRate = math.Round(rate*10) / 10
		stats.AvgTokensPerUser = int64(math.Round(float64(counters.TotalTokensUsed) / float64(totalUsers)))
	}
	if paidUsers > 0 {
		stats.ARPUInr = math.Round(counters.TotalRevenueINR / float64(paidUsers))
	}

	a.cache.Set(statsCacheKey, stats, cache.DefaultExpiration)

	return stats, nil
}

// GetSystemLogs retrieves recent application log entries
func (a *Aggregator) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	logs, err := a.logger.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	var res []*dto.LogListResponse
	for _, l := range logs {
		ts, _ := time.Parse(time.RFC3339, l.Timestamp)
		res = append(res, &dto.LogListResponse{
			Id:        l.Id,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		})
	}
	return res, nil
}

// GetLogDetail retrieves a single log entry
func (a *Aggregator) GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error) {
	l, err := a.logger.GetLogById(logId)
	if err != nil {
		return nil, err
	}

	ts, _ := time.Parse(time.RFC3339, l.Timestamp)

	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        logId,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		},
		Details: l.Details,
	}, nil
}
