package statutory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputePF_WagesAboveCeiling(t *testing.T) {
	res, err := ComputePF(d("15000"), d("5000"), d("15000"))
	require.NoError(t, err)

	assert.Equal(t, "15000.00", res.PFWages.StringFixed(2))
	assert.Equal(t, "1800.00", res.EmployeeContribution.StringFixed(2))
	assert.Equal(t, "1249.50", res.EmployerContributionPF.StringFixed(2))
	assert.Equal(t, "1250.00", res.EmployerContributionEPS.StringFixed(2))
	assert.Equal(t, "49.50", res.AdminCharges.StringFixed(2))
	assert.Equal(t, "4299.50", res.TotalContribution.StringFixed(2))
}

func TestComputePF_WagesBelowCeiling(t *testing.T) {
	res, err := ComputePF(d("10000"), d("2000"), d("15000"))
	require.NoError(t, err)

	assert.Equal(t, "12000.00", res.PFWages.StringFixed(2))
	assert.Equal(t, "1440.00", res.EmployeeContribution.StringFixed(2))
	assert.Equal(t, "999.60", res.EmployerContributionPF.StringFixed(2))
	// 1.67% of 12,000 — below the wage ceiling the EPS cap does not apply.
	assert.Equal(t, "200.40", res.EmployerContributionEPS.StringFixed(2))
	assert.Equal(t, "39.60", res.AdminCharges.StringFixed(2))
}

func TestComputePF_ResolvedCeilingDrivesEPSCap(t *testing.T) {
	// With an administrator-raised ceiling, the same wage base no longer
	// triggers the EPS cap.
	res, err := ComputePF(d("15000"), d("5000"), d("25000"))
	require.NoError(t, err)

	assert.Equal(t, "20000.00", res.PFWages.StringFixed(2))
	assert.Equal(t, "334.00", res.EmployerContributionEPS.StringFixed(2))
}

func TestComputePF_RejectsNegativeInputs(t *testing.T) {
	_, err := ComputePF(d("-1"), d("0"), d("15000"))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "basicSalary", verr.Field)

	_, err = ComputePF(d("1000"), d("-5"), d("15000"))
	require.Error(t, err)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dearnessAllowance", verr.Field)
}

func TestComputePF_Idempotent(t *testing.T) {
	first, err := ComputePF(d("12345.67"), d("890.12"), d("15000"))
	require.NoError(t, err)
	second, err := ComputePF(d("12345.67"), d("890.12"), d("15000"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeESI(t *testing.T) {
	tests := []struct {
		name             string
		monthlySalary    string
		ceiling          string
		wantWages        string
		wantEmployee     string
		wantEmployer     string
		wantEligible     bool
	}{
		{
			name:          "below ceiling is eligible",
			monthlySalary: "18000",
			ceiling:       "21000",
			wantWages:     "18000.00",
			wantEmployee:  "135.00",
			wantEmployer:  "585.00",
			wantEligible:  true,
		},
		{
			name:          "at ceiling is eligible",
			monthlySalary: "21000",
			ceiling:       "21000",
			wantWages:     "21000.00",
			wantEmployee:  "157.50",
			wantEmployer:  "682.50",
			wantEligible:  true,
		},
		{
			name:          "above ceiling computes capped preview",
			monthlySalary: "25000",
			ceiling:       "21000",
			wantWages:     "21000.00",
			wantEmployee:  "157.50",
			wantEmployer:  "682.50",
			wantEligible:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeESI(d(tt.monthlySalary), d(tt.ceiling))
			require.NoError(t, err)
			assert.Equal(t, tt.wantWages, res.ESIWages.StringFixed(2))
			assert.Equal(t, tt.wantEmployee, res.EmployeeContribution.StringFixed(2))
			assert.Equal(t, tt.wantEmployer, res.EmployerContribution.StringFixed(2))
			assert.Equal(t, tt.wantEligible, res.IsEligible)
		})
	}
}

func TestComputeESI_RejectsNegativeSalary(t *testing.T) {
	_, err := ComputeESI(d("-100"), d("21000"))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "monthlySalary", verr.Field)
}
