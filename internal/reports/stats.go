package reports

import (
	"time"

	"go-sales-diary/internal/models"
)

// MonthStats is the dashboard headline: month-to-date value against
// the monthly target.
type MonthStats struct {
	MTDValue   float64 `json:"mtd_value"`
	Percentage float64 `json:"percentage"` // capped at 100
	Balance    float64 `json:"balance"`    // remaining to target, floored at 0
	MonthName  string  `json:"month_name"` // e.g. "May 2024"
}

// ComputeMonthStats sums every report that falls inside month's
// calendar month and relates it to the monthly target.
func ComputeMonthStats(sales []models.DailyReport, target float64, month time.Time) MonthStats {
	var value float64
	for _, r := range sales {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue // unparseable date, skip rather than crash
		}
		if d.Year() == month.Year() && d.Month() == month.Month() {
			value += r.TotalValue
		}
	}

	stats := MonthStats{
		MTDValue:  value,
		MonthName: month.Format("January 2006"),
	}
	if target > 0 {
		stats.Percentage = value / target * 100
		if stats.Percentage > 100 {
			stats.Percentage = 100
		}
	}
	if target > value {
		stats.Balance = target - value
	}
	return stats
}
