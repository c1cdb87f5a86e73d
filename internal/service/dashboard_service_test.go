package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsSplitsTodayAndYesterday(t *testing.T) {
	repo := &fakeProductionRepo{}
	svc := NewDashboardService(repo)

	today := *validProduction() // 2026-09-01, 80kg
	yesterday := *validProduction()
	yesterday.Date = "2026-08-31"
	yesterday.TotalWeightKg = 120
	require.NoError(t, repo.Create(&today))
	require.NoError(t, repo.Create(&yesterday))

	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	stats, err := svc.GetStats(now)
	require.NoError(t, err)

	assert.Equal(t, 80.0, stats.Today.TotalKg)
	assert.Equal(t, 120.0, stats.YesterdayKg)
	// Only the September record counts toward the monthly rollup.
	assert.Equal(t, 80.0, stats.Monthly.TotalWeightKg)
	require.Len(t, stats.Clients, 1)
	assert.Equal(t, "Export FR", stats.Clients[0].Name)
}

func TestGetActivityFillsMissingDays(t *testing.T) {
	repo := &fakeProductionRepo{}
	svc := NewDashboardService(repo)

	rec := *validProduction()
	require.NoError(t, repo.Create(&rec))

	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	series, err := svc.GetActivity(now, 3)
	require.NoError(t, err)

	require.Len(t, series, 3)
	assert.Equal(t, "2026-08-31", series[0].Date)
	assert.Equal(t, 0.0, series[0].TotalKg)
	assert.Equal(t, "2026-09-01", series[1].Date)
	assert.Equal(t, 80.0, series[1].TotalKg)
	assert.Equal(t, "2026-09-02", series[2].Date)
}

func TestGetStatsEmptyCollection(t *testing.T) {
	svc := NewDashboardService(&fakeProductionRepo{})

	stats, err := svc.GetStats(time.Now())
	require.NoError(t, err)

	assert.Zero(t, stats.Today.TotalKg)
	assert.Zero(t, stats.Monthly.TotalWeightKg)
	assert.Empty(t, stats.Clients)
}
