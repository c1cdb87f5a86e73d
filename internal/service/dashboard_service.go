package service

import (
	"time"

	"go-agroprod-ws/internal/analytics"
	"go-agroprod-ws/internal/repository"
)

type DashboardService interface {
	GetStats(now time.Time) (*DashboardStats, error)
	GetActivity(now time.Time, days int) ([]analytics.ActivityPoint, error)
}

// DashboardStats bundles everything the dashboard shows: the live daily
// panel, yesterday's total for the trend arrow, the monthly rollup, and the
// per-client production shares.
type DashboardStats struct {
	Today       analytics.DailyMetrics    `json:"today"`
	YesterdayKg float64                   `json:"yesterday_kg"`
	Monthly     analytics.MonthlyMetrics  `json:"monthly"`
	Clients     []analytics.ClientSummary `json:"clients"`
}

type dashboardService struct {
	productionRepo repository.ProductionRepository
}

func NewDashboardService(productionRepo repository.ProductionRepository) DashboardService {
	return &dashboardService{productionRepo: productionRepo}
}

// GetStats reduces the full production collection into the dashboard view.
// Everything is recomputed from scratch: the collection in the database is
// the only state.
func (s *dashboardService) GetStats(now time.Time) (*DashboardStats, error) {
	records, err := s.productionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	stats := &DashboardStats{
		Today:       analytics.DailySummary(records, today),
		YesterdayKg: analytics.DailySummary(records, yesterday).TotalKg,
		Monthly:     analytics.MonthlySummary(records, now.Year(), now.Month()),
		Clients:     analytics.ClientBreakdown(records, now.Year(), now.Month()),
	}
	return stats, nil
}

func (s *dashboardService) GetActivity(now time.Time, days int) ([]analytics.ActivityPoint, error) {
	records, err := s.productionRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return analytics.ActivitySeries(records, now, days), nil
}
