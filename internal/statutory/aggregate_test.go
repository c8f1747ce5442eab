package statutory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anupalan/internal/domain"
)

func TestAggregate_EmptyInput(t *testing.T) {
	totals := Aggregate(nil)
	assert.Empty(t, totals)
}

func TestAggregate_GroupsByPeriod(t *testing.T) {
	pfApril := PeriodKey{ReportType: domain.ReportPFRegister, FinancialYear: 2025, MonthYear: "2025-04"}
	pfMay := PeriodKey{ReportType: domain.ReportPFRegister, FinancialYear: 2025, MonthYear: "2025-05"}
	esiApril := PeriodKey{ReportType: domain.ReportESIChallan, FinancialYear: 2025, MonthYear: "2025-04"}

	lines := []ResultLine{
		{PeriodKey: pfApril, EmployeeID: uuid.New(), EmployeeContribution: d("1800"), EmployerContribution: d("2499.50"), TotalAmount: d("4299.50")},
		{PeriodKey: pfApril, EmployeeID: uuid.New(), EmployeeContribution: d("1440"), EmployerContribution: d("1200"), TotalAmount: d("2640")},
		{PeriodKey: pfMay, EmployeeID: uuid.New(), EmployeeContribution: d("1800"), EmployerContribution: d("2499.50"), TotalAmount: d("4299.50")},
		{PeriodKey: esiApril, EmployeeID: uuid.New(), EmployeeContribution: d("135"), EmployerContribution: d("585"), TotalAmount: d("720")},
	}

	totals := Aggregate(lines)
	require.Len(t, totals, 3)

	// Deterministic order: report type, then financial year, then month.
	assert.Equal(t, esiApril, totals[0].PeriodKey)
	assert.Equal(t, pfApril, totals[1].PeriodKey)
	assert.Equal(t, pfMay, totals[2].PeriodKey)

	april := totals[1]
	assert.Equal(t, 2, april.Headcount)
	assert.Equal(t, "3240.00", april.EmployeeContribution.StringFixed(2))
	assert.Equal(t, "3699.50", april.EmployerContribution.StringFixed(2))
	assert.Equal(t, "6939.50", april.TotalAmount.StringFixed(2))
}

func TestAggregate_SingleLinePeriod(t *testing.T) {
	key := PeriodKey{ReportType: domain.ReportPTReturn, FinancialYear: 2025, MonthYear: "2025-07"}
	totals := Aggregate([]ResultLine{
		{PeriodKey: key, EmployeeID: uuid.New(), EmployeeContribution: d("200"), TotalAmount: d("200")},
	})
	require.Len(t, totals, 1)
	assert.Equal(t, 1, totals[0].Headcount)
	assert.Equal(t, "200.00", totals[0].TotalAmount.StringFixed(2))
	assert.Equal(t, "0.00", totals[0].EmployerContribution.StringFixed(2))
}
