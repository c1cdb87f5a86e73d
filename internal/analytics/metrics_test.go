package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agroprod-ws/internal/model"
)

func prod(date, lot, client string, emp int, kg, waste, infestation float64) model.ProductionRecord {
	return model.ProductionRecord{
		Date:            date,
		LotNumber:       lot,
		ClientName:      client,
		ProductName:     "Tomate Roma",
		EmployeeCount:   emp,
		TotalWeightKg:   kg,
		WasteKg:         waste,
		InfestationRate: infestation,
	}
}

func TestDailySummary(t *testing.T) {
	records := []model.ProductionRecord{
		prod("2026-09-01", "LOT-01", "Export FR", 5, 50, 2, 1),
		prod("2026-09-01", "LOT-02", "Local Market", 3, 30, 1, 2),
		prod("2026-08-31", "LOT-03", "Export FR", 4, 100, 0, 0),
	}

	m := DailySummary(records, "2026-09-01")

	assert.Equal(t, 2, m.RecordCount)
	assert.Equal(t, 80.0, m.TotalKg)
	assert.Equal(t, 8, m.TotalEmployees)
	assert.Equal(t, 3.0, m.TotalWasteKg)
	assert.Equal(t, 10.0, m.YieldPerEmployee)
}

func TestDailySummaryZeroEmployeesYieldsZero(t *testing.T) {
	records := []model.ProductionRecord{
		prod("2026-09-01", "LOT-01", "Export FR", 0, 50, 0, 0),
	}

	m := DailySummary(records, "2026-09-01")

	// Never NaN or Inf with an empty crew.
	assert.Equal(t, 0.0, m.YieldPerEmployee)
	assert.Equal(t, 50.0, m.TotalKg)
}

func TestDailySummaryEmpty(t *testing.T) {
	m := DailySummary(nil, "2026-09-01")
	assert.Equal(t, DailyMetrics{Date: "2026-09-01"}, m)
}

func TestMonthlySummary(t *testing.T) {
	records := []model.ProductionRecord{
		prod("2026-09-01", "LOT-01", "Export FR", 5, 50, 2, 4),
		prod("2026-09-15", "LOT-02", "Local Market", 5, 70, 4, 6),
		prod("2026-08-20", "LOT-03", "Export FR", 9, 900, 9, 9), // other month
		{Date: "not-a-date", ClientName: "Broken", TotalWeightKg: 500},
	}

	m := MonthlySummary(records, 2026, time.September)

	assert.Equal(t, 2, m.RecordCount)
	assert.Equal(t, 120.0, m.TotalWeightKg)
	assert.Equal(t, 6.0, m.TotalWasteKg)
	assert.Equal(t, 10, m.TotalEmployees)
	assert.Equal(t, 12.0, m.AvgWeightYield)
	assert.Equal(t, 5.0, m.AvgInfestation)
	assert.Equal(t, 5.0, m.AvgEmployees)
}

func TestMonthlySummaryZeroEmployeesGuardsDenominatorToOne(t *testing.T) {
	records := []model.ProductionRecord{
		prod("2026-09-01", "LOT-01", "Export FR", 0, 40, 0, 0),
	}

	m := MonthlySummary(records, 2026, time.September)

	// The monthly view divides by max(1, employees) rather than branching
	// to zero like the daily view does.
	assert.Equal(t, 40.0, m.AvgWeightYield)
}

func TestMonthlySummaryEmptyMonth(t *testing.T) {
	m := MonthlySummary(nil, 2026, time.September)
	assert.Equal(t, MonthlyMetrics{}, m)
}

func TestClientBreakdownSortedByTotalKg(t *testing.T) {
	records := []model.ProductionRecord{
		prod("2026-09-01", "LOT-01", "Export FR", 2, 30, 1, 2),
		prod("2026-09-02", "LOT-02", "Export FR", 2, 30, 3, 4),
		prod("2026-09-03", "LOT-03", "Local Market", 4, 100, 2, 1),
	}

	summary := ClientBreakdown(records, 2026, time.September)
	require.Len(t, summary, 2)

	assert.Equal(t, "Local Market", summary[0].Name)
	assert.Equal(t, 100.0, summary[0].TotalKg)
	assert.Equal(t, 25.0, summary[0].YieldPerEmp)

	assert.Equal(t, "Export FR", summary[1].Name)
	assert.Equal(t, 2, summary[1].RecordCount)
	assert.Equal(t, 60.0, summary[1].TotalKg)
	assert.Equal(t, 15.0, summary[1].YieldPerEmp)
	assert.Equal(t, 2.0, summary[1].AvgWasteKg)
	assert.Equal(t, 3.0, summary[1].AvgInfestation)
}

func TestClientBreakdownZeroEmployeesGuarded(t *testing.T) {
	records := []model.ProductionRecord{
		prod("2026-09-01", "LOT-01", "Export FR", 0, 30, 0, 0),
	}

	summary := ClientBreakdown(records, 2026, time.September)
	require.Len(t, summary, 1)
	assert.Equal(t, 30.0, summary[0].YieldPerEmp)
}

func TestActivitySeriesFillsMissingDays(t *testing.T) {
	records := []model.ProductionRecord{
		prod("2026-09-01", "LOT-01", "Export FR", 1, 10, 0, 0),
		prod("2026-09-01", "LOT-02", "Export FR", 1, 15, 0, 0),
		prod("2026-08-30", "LOT-03", "Export FR", 1, 5, 0, 0),
	}
	end := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	series := ActivitySeries(records, end, 3)
	require.Len(t, series, 3)

	assert.Equal(t, ActivityPoint{Date: "2026-08-30", TotalKg: 5}, series[0])
	assert.Equal(t, ActivityPoint{Date: "2026-08-31", TotalKg: 0}, series[1])
	assert.Equal(t, ActivityPoint{Date: "2026-09-01", TotalKg: 25}, series[2])
}

func TestMetricsIdempotent(t *testing.T) {
	records := []model.ProductionRecord{
		prod("2026-09-01", "LOT-01", "Export FR", 5, 50, 2, 4),
		prod("2026-09-02", "LOT-02", "Local Market", 3, 70, 4, 6),
		prod("2026-09-02", "LOT-03", "Export DE", 0, 20, 1, 2),
	}

	first := MonthlySummary(records, 2026, time.September)
	second := MonthlySummary(records, 2026, time.September)
	assert.Equal(t, first, second)

	firstClients := ClientBreakdown(records, 2026, time.September)
	secondClients := ClientBreakdown(records, 2026, time.September)
	assert.Equal(t, firstClients, secondClients)
}
