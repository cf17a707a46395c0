package serviceimpl

import (
	"time"

	"taskflow/pkg/clock"
)

// resolveWindow fills zero year/month with the current calendar month.
// Resolved per call so a long-running process never serves a stale default.
func resolveWindow(clk clock.Clock, year, month int) (int, int) {
	now := clk.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month
}

// monthRange returns the half-open [start, end) UTC range of the month.
func monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
