package export

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"anupalan/internal/domain"
	"anupalan/internal/port"
)

// XLSXContentType is the MIME type of the generated workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ContributionWorkbook renders a monthly contribution register (PF register,
// ESI challan or PT return) as a single-sheet xlsx workbook with a totals row.
func ContributionWorkbook(title, monthYear string, lines []port.ContributionLine) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	if err := f.SetSheetName(sheet, title); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	rows := [][]interface{}{
		{fmt.Sprintf("%s - %s", title, monthYear)},
		{},
		{"Employee Code", "Employee Name", "Wages", "Employee Contribution", "Employer Contribution", "Total Contribution"},
	}
	for i := range lines {
		l := &lines[i]
		rows = append(rows, []interface{}{
			l.EmployeeCode,
			l.EmployeeName,
			l.Wages.StringFixed(2),
			l.EmployeeContribution.StringFixed(2),
			l.EmployerContribution.StringFixed(2),
			l.TotalContribution.StringFixed(2),
		})
	}
	rows = append(rows, totalsRow(lines))

	if err := writeRows(f, title, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf, nil
}

// Form16Workbook renders the annual Form 16 run: one row per employee with
// the stored income tax computation figures.
func Form16Workbook(financialYear int, rows16 []domain.Form16Row) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	title := "Form 16"
	if err := f.SetSheetName(sheet, title); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	rows := [][]interface{}{
		{fmt.Sprintf("Form 16 - FY %d-%d", financialYear, financialYear+1)},
		{},
		{"Employee Code", "Employee Name", "PAN", "Gross Salary", "Standard Deduction", "Taxable Income", "Cess", "Total Tax Liability", "TDS Deducted"},
	}
	for i := range rows16 {
		r := &rows16[i]
		rows = append(rows, []interface{}{
			r.EmployeeCode,
			r.EmployeeName,
			r.PAN,
			r.GrossSalary.StringFixed(2),
			r.StandardDeduction.StringFixed(2),
			r.TaxableIncome.StringFixed(2),
			r.Cess.StringFixed(2),
			r.TotalTaxLiability.StringFixed(2),
			r.TDSDeducted.StringFixed(2),
		})
	}

	if err := writeRows(f, title, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf, nil
}

func totalsRow(lines []port.ContributionLine) []interface{} {
	wages, employee, employer, total := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for i := range lines {
		wages = wages.Add(lines[i].Wages)
		employee = employee.Add(lines[i].EmployeeContribution)
		employer = employer.Add(lines[i].EmployerContribution)
		total = total.Add(lines[i].TotalContribution)
	}
	return []interface{}{
		"Total",
		"",
		wages.StringFixed(2),
		employee.StringFixed(2),
		employer.StringFixed(2),
		total.StringFixed(2),
	}
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("export: write row %d: %w", i+1, err)
		}
	}
	return nil
}
