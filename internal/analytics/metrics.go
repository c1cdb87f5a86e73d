// Package analytics holds the pure aggregation core: dashboard rollups,
// stock reconciliation and lot traceability. Every function here is a
// stateless reduction over full record slices, recomputed from scratch on
// each call. Nothing in this package touches the database or returns errors;
// missing numeric fields were already defaulted to zero at the entry
// boundary and empty inputs degrade to zero-valued outputs.
package analytics

import (
	"sort"
	"time"

	"go-agroprod-ws/internal/model"
)

// DailyMetrics summarizes all production runs of a single calendar day.
type DailyMetrics struct {
	Date             string  `json:"date"`
	RecordCount      int     `json:"record_count"`
	TotalKg          float64 `json:"total_kg"`
	TotalEmployees   int     `json:"total_employees"`
	TotalWasteKg     float64 `json:"total_waste_kg"`
	YieldPerEmployee float64 `json:"yield_per_employee"`
}

// MonthlyMetrics summarizes the current calendar month.
type MonthlyMetrics struct {
	RecordCount    int     `json:"record_count"`
	TotalOutput    float64 `json:"total_output"`
	TotalWeightKg  float64 `json:"total_weight_kg"`
	TotalWasteKg   float64 `json:"total_waste_kg"`
	TotalEmployees int     `json:"total_employees"`
	AvgYield       float64 `json:"avg_yield"`
	AvgWeightYield float64 `json:"avg_weight_yield"`
	AvgInfestation float64 `json:"avg_infestation"`
	AvgEmployees   float64 `json:"avg_employees"`
}

// ClientSummary aggregates a month of production for one client.
type ClientSummary struct {
	Name           string  `json:"name"`
	RecordCount    int     `json:"record_count"`
	TotalKg        float64 `json:"total_kg"`
	TotalWasteKg   float64 `json:"total_waste_kg"`
	TotalEmployees int     `json:"total_employees"`
	YieldPerEmp    float64 `json:"yield_per_emp"`
	AvgWasteKg     float64 `json:"avg_waste_kg"`
	AvgInfestation float64 `json:"avg_infestation"`
}

// ActivityPoint is one day of the recent-activity chart series.
type ActivityPoint struct {
	Date    string  `json:"date"`
	TotalKg float64 `json:"total_kg"`
}

// FilterByDay keeps records whose date equals day (ISO YYYY-MM-DD string
// equality, no timezone interpretation).
func FilterByDay(records []model.ProductionRecord, day string) []model.ProductionRecord {
	var out []model.ProductionRecord
	for _, r := range records {
		if r.Date == day {
			out = append(out, r)
		}
	}
	return out
}

// FilterByMonth keeps records whose parsed date falls in the given
// year/month. Unparseable dates are skipped.
func FilterByMonth(records []model.ProductionRecord, year int, month time.Month) []model.ProductionRecord {
	var out []model.ProductionRecord
	for _, r := range records {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			out = append(out, r)
		}
	}
	return out
}

// DailySummary reduces one day of production into totals and yield per
// employee. With zero employees the yield is 0, never a division error.
func DailySummary(records []model.ProductionRecord, day string) DailyMetrics {
	m := DailyMetrics{Date: day}
	for _, r := range FilterByDay(records, day) {
		m.RecordCount++
		m.TotalKg += r.TotalWeightKg
		m.TotalEmployees += r.EmployeeCount
		m.TotalWasteKg += r.WasteKg
	}
	if m.TotalEmployees > 0 {
		m.YieldPerEmployee = m.TotalKg / float64(m.TotalEmployees)
	}
	return m
}

// MonthlySummary reduces a calendar month of production into cumulative
// stats. Average yields guard the employee denominator to 1 when zero,
// matching the daily view's sister metric only in never failing, not in the
// value it degrades to.
func MonthlySummary(records []model.ProductionRecord, year int, month time.Month) MonthlyMetrics {
	monthly := FilterByMonth(records, year, month)
	m := MonthlyMetrics{RecordCount: len(monthly)}
	if len(monthly) == 0 {
		return m
	}

	var infestationSum float64
	for _, r := range monthly {
		m.TotalOutput += r.TotalProduction
		m.TotalWeightKg += r.TotalWeightKg
		m.TotalWasteKg += r.WasteKg
		m.TotalEmployees += r.EmployeeCount
		infestationSum += r.InfestationRate
	}

	m.AvgYield = m.TotalOutput / float64(atLeastOne(m.TotalEmployees))
	m.AvgWeightYield = m.TotalWeightKg / float64(atLeastOne(m.TotalEmployees))
	m.AvgInfestation = infestationSum / float64(len(monthly))
	m.AvgEmployees = float64(m.TotalEmployees) / float64(len(monthly))
	return m
}

// ClientBreakdown aggregates a month of production per client, sorted by
// total weight descending (client name breaks ties so reruns stay stable).
func ClientBreakdown(records []model.ProductionRecord, year int, month time.Month) []ClientSummary {
	monthly := FilterByMonth(records, year, month)

	type acc struct {
		count       int
		totalKg     float64
		totalWaste  float64
		totalEmp    int
		totalInfest float64
	}
	byClient := make(map[string]*acc)
	for _, r := range monthly {
		a := byClient[r.ClientName]
		if a == nil {
			a = &acc{}
			byClient[r.ClientName] = a
		}
		a.count++
		a.totalKg += r.TotalWeightKg
		a.totalWaste += r.WasteKg
		a.totalEmp += r.EmployeeCount
		a.totalInfest += r.InfestationRate
	}

	out := make([]ClientSummary, 0, len(byClient))
	for name, a := range byClient {
		out = append(out, ClientSummary{
			Name:           name,
			RecordCount:    a.count,
			TotalKg:        a.totalKg,
			TotalWasteKg:   a.totalWaste,
			TotalEmployees: a.totalEmp,
			YieldPerEmp:    a.totalKg / float64(atLeastOne(a.totalEmp)),
			AvgWasteKg:     a.totalWaste / float64(a.count),
			AvgInfestation: a.totalInfest / float64(a.count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalKg != out[j].TotalKg {
			return out[i].TotalKg > out[j].TotalKg
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ActivitySeries returns per-day production weight for the last days calendar
// days ending at end, oldest first. Days without records appear as zeros so
// charts keep a continuous axis.
func ActivitySeries(records []model.ProductionRecord, end time.Time, days int) []ActivityPoint {
	if days <= 0 {
		return nil
	}
	byDay := make(map[string]float64)
	for _, r := range records {
		byDay[r.Date] += r.TotalWeightKg
	}

	out := make([]ActivityPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i).Format("2006-01-02")
		out = append(out, ActivityPoint{Date: day, TotalKg: byDay[day]})
	}
	return out
}

func atLeastOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}
