package export

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"anupalan/internal/domain"
	"anupalan/internal/port"
)

func TestContributionWorkbook(t *testing.T) {
	lines := []port.ContributionLine{
		{
			EmployeeID:           uuid.New(),
			EmployeeCode:         "EMP001",
			EmployeeName:         "Asha Rao",
			Wages:                decimal.NewFromInt(15000),
			EmployeeContribution: decimal.NewFromInt(1800),
			EmployerContribution: decimal.NewFromFloat(2499.5),
			TotalContribution:    decimal.NewFromFloat(4299.5),
		},
		{
			EmployeeID:           uuid.New(),
			EmployeeCode:         "EMP002",
			EmployeeName:         "Vikram Shah",
			Wages:                decimal.NewFromInt(10000),
			EmployeeContribution: decimal.NewFromInt(1200),
			EmployerContribution: decimal.NewFromFloat(1666.33),
			TotalContribution:    decimal.NewFromFloat(2866.33),
		},
	}

	buf, err := ContributionWorkbook("PF Contribution Register", "2024-09", lines)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("PF Contribution Register")
	require.NoError(t, err)
	// Title, blank, header, two lines, totals.
	require.Len(t, rows, 6)

	assert.Equal(t, "PF Contribution Register - 2024-09", rows[0][0])
	assert.Equal(t, "Employee Code", rows[2][0])
	assert.Equal(t, "EMP001", rows[3][0])
	assert.Equal(t, "1800.00", rows[3][3])
	assert.Equal(t, "EMP002", rows[4][0])

	assert.Equal(t, "Total", rows[5][0])
	assert.Equal(t, "25000.00", rows[5][2])
	assert.Equal(t, "3000.00", rows[5][3])
	assert.Equal(t, "4165.83", rows[5][4])
	assert.Equal(t, "7165.83", rows[5][5])
}

func TestContributionWorkbook_NoLines(t *testing.T) {
	buf, err := ContributionWorkbook("ESI Challan", "2024-09", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("ESI Challan")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "0.00", rows[3][2])
}

func TestForm16Workbook(t *testing.T) {
	rows16 := []domain.Form16Row{
		{
			EmployeeCode:      "EMP001",
			EmployeeName:      "Asha Rao",
			PAN:               "ABCDE1234F",
			GrossSalary:       decimal.NewFromInt(1200000),
			StandardDeduction: decimal.NewFromInt(50000),
			TaxableIncome:     decimal.NewFromInt(900000),
			Cess:              decimal.NewFromInt(3700),
			TotalTaxLiability: decimal.NewFromInt(96200),
			TDSDeducted:       decimal.NewFromInt(96200),
		},
	}

	buf, err := Form16Workbook(2024, rows16)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Form 16")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Form 16 - FY 2024-2025", rows[0][0])
	assert.Equal(t, "PAN", rows[2][2])
	assert.Equal(t, "ABCDE1234F", rows[3][2])
	assert.Equal(t, "1200000.00", rows[3][3])
	assert.Equal(t, "96200.00", rows[3][7])
}
