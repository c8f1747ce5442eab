package statutory

import (
	"fmt"
	"time"
)

// FinancialYearOf returns the Indian financial year (April through March)
// containing d, identified by its starting calendar year: March 2026 is
// FY2025, April 2026 is FY2026.
func FinancialYearOf(d time.Time) int {
	if d.Month() < time.April {
		return d.Year() - 1
	}
	return d.Year()
}

// FYStart returns the first day of the given financial year.
func FYStart(fy int) time.Time {
	return time.Date(fy, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// MonthYear formats a date as the canonical period key, e.g. "2025-04".
func MonthYear(d time.Time) string {
	return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
}
