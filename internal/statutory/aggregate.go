package statutory

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"anupalan/internal/domain"
)

// PeriodKey identifies one statutory filing period.
type PeriodKey struct {
	ReportType    domain.ReportType
	FinancialYear int
	MonthYear     string
}

// ResultLine is one employee's contribution figures feeding an aggregate.
// Callers must dedupe by employee before aggregating; a duplicate employee in
// the same period would be double counted.
type ResultLine struct {
	PeriodKey
	EmployeeID           uuid.UUID
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	TotalAmount          decimal.Decimal
}

// PeriodTotals is the organization-level roll-up for one filing period.
type PeriodTotals struct {
	PeriodKey
	Headcount            int
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	TotalAmount          decimal.Decimal
}

// Aggregate groups result lines by filing period and sums headcount and
// contribution totals. A pure reduction: an empty input yields an empty
// slice, and output order is deterministic.
func Aggregate(lines []ResultLine) []PeriodTotals {
	grouped := make(map[PeriodKey]*PeriodTotals)
	for _, l := range lines {
		t, ok := grouped[l.PeriodKey]
		if !ok {
			t = &PeriodTotals{
				PeriodKey:            l.PeriodKey,
				EmployeeContribution: decimal.Zero,
				EmployerContribution: decimal.Zero,
				TotalAmount:          decimal.Zero,
			}
			grouped[l.PeriodKey] = t
		}
		t.Headcount++
		t.EmployeeContribution = t.EmployeeContribution.Add(l.EmployeeContribution)
		t.EmployerContribution = t.EmployerContribution.Add(l.EmployerContribution)
		t.TotalAmount = t.TotalAmount.Add(l.TotalAmount)
	}

	out := make([]PeriodTotals, 0, len(grouped))
	for _, t := range grouped {
		t.EmployeeContribution = t.EmployeeContribution.Round(2)
		t.EmployerContribution = t.EmployerContribution.Round(2)
		t.TotalAmount = t.TotalAmount.Round(2)
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ReportType != b.ReportType {
			return a.ReportType < b.ReportType
		}
		if a.FinancialYear != b.FinancialYear {
			return a.FinancialYear < b.FinancialYear
		}
		return a.MonthYear < b.MonthYear
	})
	return out
}
