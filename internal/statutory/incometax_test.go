package statutory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anupalan/internal/domain"
)

func annualBasic(s string) WageComponents {
	return WageComponents{BasicSalary: d(s)}
}

func TestComputeIncomeTax_NewRegimeRebateFullyOffsets(t *testing.T) {
	// Gross 700,000 less the 50,000 standard deduction gives taxable income
	// 650,000: base tax (650,000-300,000)*0.05 = 17,500, fully rebated.
	in := TaxInput{Annual: annualBasic("700000"), Regime: domain.RegimeNew}
	res, err := ComputeIncomeTax(in, DefaultTaxSlabs(domain.RegimeNew))
	require.NoError(t, err)

	assert.Equal(t, "650000.00", res.TaxableIncome.StringFixed(2))
	assert.Equal(t, "17500.00", res.TaxCalculated.StringFixed(2))
	assert.Equal(t, "17500.00", res.RebateUnder87A.StringFixed(2))
	assert.Equal(t, "0.00", res.TaxAfterRebate.StringFixed(2))
	assert.Equal(t, "0.00", res.Cess.StringFixed(2))
	assert.Equal(t, "0.00", res.TotalTaxLiability.StringFixed(2))
}

func TestComputeIncomeTax_RebateCliff(t *testing.T) {
	// Exactly at the 700,000 threshold: full rebate.
	at := TaxInput{Annual: annualBasic("750000"), Regime: domain.RegimeNew}
	res, err := ComputeIncomeTax(at, DefaultTaxSlabs(domain.RegimeNew))
	require.NoError(t, err)
	assert.Equal(t, "700000.00", res.TaxableIncome.StringFixed(2))
	assert.Equal(t, "0.00", res.TaxAfterRebate.StringFixed(2))

	// One currency unit above: no rebate at all.
	above := TaxInput{Annual: annualBasic("750001"), Regime: domain.RegimeNew}
	res, err = ComputeIncomeTax(above, DefaultTaxSlabs(domain.RegimeNew))
	require.NoError(t, err)
	assert.Equal(t, "700001.00", res.TaxableIncome.StringFixed(2))
	assert.Equal(t, "0.00", res.RebateUnder87A.StringFixed(2))
	// (700,000-300,000)*0.05 + 1*0.10 = 20,000.10
	assert.Equal(t, "20000.10", res.TaxCalculated.StringFixed(2))
	assert.Equal(t, "20000.10", res.TaxAfterRebate.StringFixed(2))
	assert.Equal(t, "800.00", res.Cess.StringFixed(2))
	assert.Equal(t, "20800.10", res.TotalTaxLiability.StringFixed(2))
}

func TestComputeIncomeTax_OldRegimeDeductions(t *testing.T) {
	in := TaxInput{
		Annual: WageComponents{
			BasicSalary:        d("800000"),
			HouseRentAllowance: d("200000"),
			SpecialAllowance:   d("100000"),
		},
		Regime: domain.RegimeOld,
		Declaration: DeclarationTotals{
			Section80C: d("150000"),
			Section80D: d("25000"),
			Section80G: d("10000"),
			HRAClaim:   d("120000"),
		},
	}
	res, err := ComputeIncomeTax(in, DefaultTaxSlabs(domain.RegimeOld))
	require.NoError(t, err)

	assert.Equal(t, "1100000.00", res.GrossSalary.StringFixed(2))
	// 1,100,000 - 50,000 - 305,000 = 745,000
	assert.Equal(t, "745000.00", res.TaxableIncome.StringFixed(2))
	// 250,000*0.05 + 245,000*0.20 = 12,500 + 49,000 = 61,500
	assert.Equal(t, "61500.00", res.TaxCalculated.StringFixed(2))
	assert.Equal(t, "0.00", res.RebateUnder87A.StringFixed(2))
	assert.Equal(t, "2460.00", res.Cess.StringFixed(2))
	assert.Equal(t, "63960.00", res.TotalTaxLiability.StringFixed(2))
}

func TestComputeIncomeTax_NewRegimeIgnoresDeclaration(t *testing.T) {
	decl := DeclarationTotals{Section80C: d("150000"), HRAClaim: d("100000")}
	with := TaxInput{Annual: annualBasic("1200000"), Regime: domain.RegimeNew, Declaration: decl}
	without := TaxInput{Annual: annualBasic("1200000"), Regime: domain.RegimeNew}

	a, err := ComputeIncomeTax(with, DefaultTaxSlabs(domain.RegimeNew))
	require.NoError(t, err)
	b, err := ComputeIncomeTax(without, DefaultTaxSlabs(domain.RegimeNew))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeIncomeTax_DeductionsNeverDriveTaxableNegative(t *testing.T) {
	in := TaxInput{
		Annual:      annualBasic("300000"),
		Regime:      domain.RegimeOld,
		Declaration: DeclarationTotals{Section80C: d("500000")},
	}
	res, err := ComputeIncomeTax(in, DefaultTaxSlabs(domain.RegimeOld))
	require.NoError(t, err)
	assert.Equal(t, "0.00", res.TaxableIncome.StringFixed(2))
	assert.Equal(t, "0.00", res.TotalTaxLiability.StringFixed(2))
}

func TestComputeIncomeTax_Refundable(t *testing.T) {
	in := TaxInput{
		Annual:         annualBasic("1250000"),
		Regime:         domain.RegimeNew,
		TDSDeducted:    d("80000"),
		AdvanceTaxPaid: d("20000"),
	}
	res, err := ComputeIncomeTax(in, DefaultTaxSlabs(domain.RegimeNew))
	require.NoError(t, err)

	// Taxable 1,200,000: 400,000*0.05 + 300,000*0.10 + 200,000*0.15 = 80,000
	assert.Equal(t, "80000.00", res.TaxCalculated.StringFixed(2))
	assert.Equal(t, "3200.00", res.Cess.StringFixed(2))
	assert.Equal(t, "83200.00", res.TotalTaxLiability.StringFixed(2))
	// 100,000 paid against 83,200 due.
	assert.Equal(t, "16800.00", res.TaxRefundable.StringFixed(2))
}

func TestComputeIncomeTax_NoRefundWhenUnderpaid(t *testing.T) {
	in := TaxInput{
		Annual:      annualBasic("1250000"),
		Regime:      domain.RegimeNew,
		TDSDeducted: d("10000"),
	}
	res, err := ComputeIncomeTax(in, DefaultTaxSlabs(domain.RegimeNew))
	require.NoError(t, err)
	assert.Equal(t, "0.00", res.TaxRefundable.StringFixed(2))
}

func TestComputeIncomeTax_RejectsInvalidInputs(t *testing.T) {
	var verr *ValidationError

	_, err := ComputeIncomeTax(TaxInput{
		Annual: WageComponents{BasicSalary: d("-1")},
		Regime: domain.RegimeNew,
	}, DefaultTaxSlabs(domain.RegimeNew))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "basicSalary", verr.Field)

	_, err = ComputeIncomeTax(TaxInput{
		Annual: annualBasic("500000"),
		Regime: domain.TaxRegime("flat"),
	}, DefaultTaxSlabs(domain.RegimeNew))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "regime", verr.Field)

	_, err = ComputeIncomeTax(TaxInput{
		Annual: annualBasic("500000"),
		Regime: domain.RegimeNew,
	}, nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "slabs", verr.Field)
}

// TestMarginalTax_CrossCheck verifies the slab engine against a naive
// per-slab-width accumulation: taxing the exact sum of all bounded slab
// widths must equal the table's own precomputed total.
func TestMarginalTax_CrossCheck(t *testing.T) {
	for _, regime := range []domain.TaxRegime{domain.RegimeNew, domain.RegimeOld} {
		slabs := DefaultTaxSlabs(regime)

		income := decimal.Zero
		expected := decimal.Zero
		for _, s := range slabs {
			if s.To == nil {
				break
			}
			width := s.To.Sub(s.From)
			income = income.Add(width)
			expected = expected.Add(width.Mul(s.Rate))
		}

		got := marginalTax(income, slabs)
		assert.True(t, got.Equal(expected),
			"%s regime: got %s want %s", regime, got, expected)
	}
}

func TestComputeIncomeTax_Idempotent(t *testing.T) {
	in := TaxInput{
		Annual:         annualBasic("987654.32"),
		Regime:         domain.RegimeNew,
		TDSDeducted:    d("12345.67"),
		AdvanceTaxPaid: d("1000"),
	}
	first, err := ComputeIncomeTax(in, DefaultTaxSlabs(domain.RegimeNew))
	require.NoError(t, err)
	second, err := ComputeIncomeTax(in, DefaultTaxSlabs(domain.RegimeNew))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
